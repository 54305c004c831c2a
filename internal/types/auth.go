package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RegisterRequest represents the request to register a new account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResendVerificationRequest asks for a fresh email-verification link.
type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest represents a profile update. Empty fields are left unchanged.
type UpdateProfileRequest struct {
	Name            string `json:"name,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// User represents an account profile for API responses.
type User struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	ProfileImageURL  string    `json:"profileImageUrl,omitempty"`
	EmailVerified    bool      `json:"emailVerified"`
	SubscriptionPlan string    `json:"subscriptionPlan"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// SubscriptionPremium is the plan name that unlocks every template theme.
const SubscriptionPremium = "Premium"

// IsPremium reports whether the user's plan unlocks premium templates.
func (u *User) IsPremium() bool {
	return u != nil && u.SubscriptionPlan == SubscriptionPremium
}

// AuthResponse represents the register/login response with profile and bearer token.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ResendVerificationRequest using the validator.
func (r *ResendVerificationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
