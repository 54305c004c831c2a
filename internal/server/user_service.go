// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/jdoe/resume-builder/internal/config"
	"github.com/jdoe/resume-builder/internal/db"
	"github.com/jdoe/resume-builder/internal/email"
	"github.com/jdoe/resume-builder/internal/types"
)

// UserStore is the subset of database operations the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash, verificationToken string) (*db.UserRecord, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*db.UserRecord, error)
	UpdateUserProfile(ctx context.Context, id uuid.UUID, name, profileImageURL string) (*db.UserRecord, error)
	VerifyUserEmail(ctx context.Context, token string) (*db.UserRecord, error)
	SetVerificationToken(ctx context.Context, id uuid.UUID, token string) error
}

// UserService provides business logic for account operations: registration,
// login, email verification, and profile management.
type UserService struct {
	db             UserStore
	passwordConfig *config.PasswordConfig
	mailer         *email.Sender
	publicURL      string
}

// NewUserService creates a new UserService with the given dependencies.
// mailer may be nil, in which case verification mail is skipped.
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig, mailer *email.Sender, publicURL string) *UserService {
	return &UserService{
		db:             store,
		passwordConfig: passwordConfig,
		mailer:         mailer,
		publicURL:      strings.TrimRight(publicURL, "/"),
	}
}

// toUser converts a database row to the API profile, excluding credentials.
func toUser(rec *db.UserRecord) *types.User {
	if rec == nil {
		return nil
	}
	return &types.User{
		ID:               rec.ID,
		Name:             rec.Name,
		Email:            rec.Email,
		ProfileImageURL:  rec.ProfileImageURL,
		EmailVerified:    rec.EmailVerified,
		SubscriptionPlan: rec.SubscriptionPlan,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
}

func (s *UserService) verificationLink(token string) string {
	return s.publicURL + "/api/auth/verify-email?token=" + token
}

func (s *UserService) sendVerificationMail(rec *db.UserRecord, token string) {
	if s.mailer == nil || token == "" {
		return
	}
	// Mail delivery must not block or fail the request.
	go func() {
		if err := s.mailer.SendVerification(rec.Email, rec.Name, s.verificationLink(token)); err != nil {
			log.Printf("[email] failed to send verification to %s: %v", rec.Email, err)
		}
	}()
}

// Register creates a new account and mails a verification link.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	existing, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token := uuid.New().String()
	rec, err := s.db.CreateUser(ctx, req.Name, req.Email, passwordHash, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.sendVerificationMail(rec, token)
	return toUser(rec), nil
}

// Login authenticates a user by email and password.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	rec, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Same error for unknown email and wrong password.
	if rec == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, rec.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toUser(rec), nil
}

// VerifyEmail consumes a verification token and marks the account verified.
func (s *UserService) VerifyEmail(ctx context.Context, token string) (*types.User, error) {
	if token == "" {
		return nil, &ErrInvalidVerificationToken{}
	}
	rec, err := s.db.VerifyUserEmail(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to verify email: %w", err)
	}
	if rec == nil {
		return nil, &ErrInvalidVerificationToken{}
	}
	return toUser(rec), nil
}

// ResendVerification issues a fresh verification token and mails it. Already
// verified accounts and unknown emails are treated as success so the endpoint
// does not leak which emails are registered.
func (s *UserService) ResendVerification(ctx context.Context, emailAddr string) error {
	rec, err := s.db.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}
	if rec == nil || rec.EmailVerified {
		return nil
	}

	token := uuid.New().String()
	if err := s.db.SetVerificationToken(ctx, rec.ID, token); err != nil {
		return fmt.Errorf("failed to set verification token: %w", err)
	}

	s.sendVerificationMail(rec, token)
	return nil
}

// GetProfile returns the account profile for the given user id.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	rec, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if rec == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return toUser(rec), nil
}

// UpdateProfile applies a partial profile update. Empty fields keep their
// current values.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.User, error) {
	rec, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if rec == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}

	name := rec.Name
	if req.Name != "" {
		name = req.Name
	}
	profileImageURL := rec.ProfileImageURL
	if req.ProfileImageURL != "" {
		profileImageURL = req.ProfileImageURL
	}

	updated, err := s.db.UpdateUserProfile(ctx, userID, name, profileImageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return toUser(updated), nil
}
