package category

import (
	"context"
	"database/sql"
	"errors"

	"dukaan-be/internal/logger"
	"dukaan-be/internal/user"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, categoryID string) (*Category, error)
	Create(ctx context.Context, input NewCategoryInput) (*Category, error)
	Update(ctx context.Context, categoryID string, input UpdateCategoryInput) (*Category, error)
	Delete(ctx context.Context, categoryID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListCategories"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, image_url, created_at
		FROM categories
		ORDER BY name ASC
	`)
	if err != nil {
		log.Error("failed to query categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt); err != nil {
			log.Error("failed to scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, categoryID string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, image_url, created_at
		FROM categories
		WHERE id = $1
	`, categoryID).Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) Create(ctx context.Context, input NewCategoryInput) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, description, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, image_url, created_at
	`, input.Name, input.Description, input.ImageURL).
		Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == user.PgUniqueViolation {
			return nil, ErrCategoryNameTaken
		}
		return nil, err
	}

	return &c, nil
}

func (r *repository) Update(ctx context.Context, categoryID string, input UpdateCategoryInput) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		UPDATE categories
		SET name = COALESCE($2, name),
			description = COALESCE($3, description),
			image_url = COALESCE($4, image_url)
		WHERE id = $1
		RETURNING id, name, description, image_url, created_at
	`, categoryID, input.Name, input.Description, input.ImageURL).
		Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == user.PgUniqueViolation {
			return nil, ErrCategoryNameTaken
		}
		return nil, err
	}

	return &c, nil
}

func (r *repository) Delete(ctx context.Context, categoryID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
