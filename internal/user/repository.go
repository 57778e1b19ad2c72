package user

import (
	"context"
	"database/sql"
	"errors"

	"dukaan-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetRole(ctx context.Context, userID string) (string, error)

	GetProfile(ctx context.Context, userID string) (*Profile, error)
	CreateProfile(ctx context.Context, p *Profile) (*Profile, error)
	UpdateProfile(ctx context.Context, p *Profile) (*Profile, error)
	UpsertProfile(ctx context.Context, params UpsertProfileParams) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateUser(ctx context.Context, email, passwordHash string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, created_at
	`, email, passwordHash).Scan(&u.ID, &u.Email, &u.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return &u, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// GetRole resolves the user's role from user_roles. Users without a row are
// customers.
func (r *repository) GetRole(ctx context.Context, userID string) (string, error) {
	var role string
	err := r.db.QueryRowContext(ctx, `
		SELECT role FROM user_roles WHERE user_id = $1
	`, userID).Scan(&role)

	if errors.Is(err, sql.ErrNoRows) {
		return "customer", nil
	}
	if err != nil {
		return "", err
	}

	return role, nil
}

// GetProfile fetches a user's profile by user ID.
func (r *repository) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetProfile"),
		zap.String("user_id", userID),
	)

	query := `
		SELECT user_id, email, full_name, phone_number, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p Profile
	err := row.Scan(&p.UserID, &p.Email, &p.FullName, &p.PhoneNumber, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("profile not found")
			return nil, ErrProfileNotFound
		}
		log.Error("failed to scan profile", zap.Error(err))
		return nil, err
	}

	return &p, nil
}

// CreateProfile creates a new profile for a user.
func (r *repository) CreateProfile(ctx context.Context, p *Profile) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProfile"),
		zap.String("user_id", p.UserID),
	)

	query := `
		INSERT INTO profiles (user_id, email, full_name, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		p.UserID, p.Email, p.FullName, p.PhoneNumber,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		log.Error("failed to create profile", zap.Error(err))
		return nil, err
	}

	log.Info("profile created successfully")
	return p, nil
}

// UpdateProfile updates an existing profile.
func (r *repository) UpdateProfile(ctx context.Context, p *Profile) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateProfile"),
		zap.String("user_id", p.UserID),
	)

	// COALESCE keeps existing values when the input field is nil
	query := `
		UPDATE profiles
		SET full_name = COALESCE($2, full_name),
			phone_number = COALESCE($3, phone_number),
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING email, full_name, phone_number, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		p.UserID, p.FullName, p.PhoneNumber,
	).Scan(&p.Email, &p.FullName, &p.PhoneNumber, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		log.Error("failed to update profile", zap.Error(err))
		return nil, err
	}

	return p, nil
}

// UpsertProfile writes the contact details captured by checkout, keyed by
// user_id.
func (r *repository) UpsertProfile(ctx context.Context, params UpsertProfileParams) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, email, full_name, phone_number)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET email = EXCLUDED.email,
			full_name = EXCLUDED.full_name,
			phone_number = EXCLUDED.phone_number,
			updated_at = NOW()
	`, params.UserID, params.Email, params.FullName, params.PhoneNumber)

	return err
}
