package user

import (
	"context"

	"dukaan-be/internal/logger"

	"go.uber.org/zap"
)

type AuthResult struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)

	GetProfile(ctx context.Context, userID, email string) (*Profile, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*Profile, error)
	UpsertCheckoutProfile(ctx context.Context, params UpsertProfileParams) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.CreateUser(ctx, input.Email, hash)
	if err != nil {
		return nil, err
	}

	// Seed the profile so the full name from signup survives to first view.
	if _, err := s.repo.CreateProfile(ctx, &Profile{
		UserID:   u.ID,
		Email:    u.Email,
		FullName: &input.FullName,
	}); err != nil {
		logger.FromCtx(ctx).Warn("failed to seed profile on register",
			zap.String("user_id", u.ID),
			zap.Error(err),
		)
	}

	return s.issueToken(ctx, u)
}

func (s *service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	u, err := s.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPasswordHash(input.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(ctx, u)
}

func (s *service) issueToken(ctx context.Context, u *User) (*AuthResult, error) {
	role, err := s.repo.GetRole(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	token, err := GenerateJWT(u.ID, u.Email, role)
	if err != nil {
		return nil, err
	}

	res := &AuthResult{Token: token}
	res.User.ID = u.ID
	res.User.Email = u.Email
	res.User.Role = role
	return res, nil
}

func (s *service) IsAdmin(ctx context.Context, userID string) (bool, error) {
	role, err := s.repo.GetRole(ctx, userID)
	if err != nil {
		return false, err
	}
	return role == "admin", nil
}

// GetProfile returns the user's profile, creating an empty one on first view.
func (s *service) GetProfile(ctx context.Context, userID, email string) (*Profile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err == nil {
		return p, nil
	}
	if err != ErrProfileNotFound {
		return nil, err
	}

	return s.repo.CreateProfile(ctx, &Profile{UserID: userID, Email: email})
}

func (s *service) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*Profile, error) {
	return s.repo.UpdateProfile(ctx, &Profile{
		UserID:      userID,
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
	})
}

// UpsertCheckoutProfile is the best-effort profile write issued by checkout.
func (s *service) UpsertCheckoutProfile(ctx context.Context, params UpsertProfileParams) error {
	return s.repo.UpsertProfile(ctx, params)
}
