package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the customer-facing identity record. It is created lazily:
// either on first profile view or by the checkout pipeline's best-effort
// upsert.
type Profile struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	FullName    *string   `json:"full_name,omitempty"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=10"`
}

// UpsertProfileParams carries the profile fields captured by checkout.
type UpsertProfileParams struct {
	UserID      string
	Email       string
	FullName    string
	PhoneNumber string
}
