package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRecord is a full user row, including credential fields that never
// leave this package's callers unredacted.
type UserRecord struct {
	ID                uuid.UUID
	Name              string
	Email             string
	PasswordHash      string
	ProfileImageURL   string
	EmailVerified     bool
	VerificationToken string
	SubscriptionPlan  string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

const userColumns = `id, name, email, password_hash, profile_image_url,
	email_verified, verification_token, subscription_plan, created_at, updated_at`

func scanUser(row pgx.Row) (*UserRecord, error) {
	var u UserRecord
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.ProfileImageURL,
		&u.EmailVerified, &u.VerificationToken, &u.SubscriptionPlan, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a new user and returns the stored row.
func (db *DB) CreateUser(ctx context.Context, name, email, passwordHash, verificationToken string) (*UserRecord, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, verification_token)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		name, email, passwordHash, verificationToken,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// GetUser fetches a user by id. Returns nil when not found.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*UserRecord, error) {
	row := db.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByEmail fetches a user by email. Returns nil when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*UserRecord, error) {
	row := db.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// UpdateUserProfile updates name and profile image, returning the new row.
func (db *DB) UpdateUserProfile(ctx context.Context, id uuid.UUID, name, profileImageURL string) (*UserRecord, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE users SET name = $1, profile_image_url = $2, updated_at = NOW()
		 WHERE id = $3
		 RETURNING `+userColumns,
		name, profileImageURL, id,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return u, nil
}

// VerifyUserEmail marks the user holding the verification token as verified.
// Returns nil when no user holds the token.
func (db *DB) VerifyUserEmail(ctx context.Context, token string) (*UserRecord, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE users SET email_verified = TRUE, verification_token = '', updated_at = NOW()
		 WHERE verification_token = $1 AND verification_token <> ''
		 RETURNING `+userColumns,
		token,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to verify email: %w", err)
	}
	return u, nil
}

// SetVerificationToken stores a fresh verification token for the user.
func (db *DB) SetVerificationToken(ctx context.Context, id uuid.UUID, token string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET verification_token = $1, updated_at = NOW() WHERE id = $2`,
		token, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set verification token: %w", err)
	}
	return nil
}

// SetSubscriptionPlan changes the user's subscription plan.
func (db *DB) SetSubscriptionPlan(ctx context.Context, id uuid.UUID, plan string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET subscription_plan = $1, updated_at = NOW() WHERE id = $2`,
		plan, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set subscription plan: %w", err)
	}
	return nil
}
