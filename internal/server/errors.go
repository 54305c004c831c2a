// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrResumeNotFound indicates the resume does not exist or is not owned
// by the requesting user
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// ErrOrderNotFound indicates no payment order matches the gateway order id
type ErrOrderNotFound struct {
	OrderID string
}

func (e *ErrOrderNotFound) Error() string {
	return fmt.Sprintf("order not found: %s", e.OrderID)
}

// ErrInvalidVerificationToken indicates the email verification token is
// unknown or already used
type ErrInvalidVerificationToken struct{}

func (e *ErrInvalidVerificationToken) Error() string {
	return "invalid or expired verification token"
}

// ErrInvalidSignature indicates a payment callback signature did not verify
type ErrInvalidSignature struct{}

func (e *ErrInvalidSignature) Error() string {
	return "payment signature verification failed"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrInvalidSignature:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrResumeNotFound, *ErrOrderNotFound:
		return http.StatusNotFound
	case *ErrValidation, *ErrInvalidVerificationToken:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
