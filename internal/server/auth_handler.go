// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jdoe/resume-builder/internal/server/middleware"
	"github.com/jdoe/resume-builder/internal/types"
)

// maxUploadSize caps profile image and thumbnail uploads at 5 MiB.
const maxUploadSize = 5 << 20

// AuthHandler handles authentication and profile HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	validator   *validator.Validate
	uploadDir   string
	publicURL   string
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService, uploadDir, publicURL string) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		validator:   validator.New(),
		uploadDir:   uploadDir,
		publicURL:   strings.TrimRight(publicURL, "/"),
	}
}

// Register handles user registration requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	jsonResponse(w, http.StatusCreated, types.AuthResponse{User: user, Token: token})
}

// Login handles user login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	jsonResponse(w, http.StatusOK, types.AuthResponse{User: user, Token: token})
}

// VerifyEmail consumes the token from the verification link.
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	user, err := h.userService.VerifyEmail(r.Context(), token)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Email verified successfully",
		"user":    user,
	})
}

// ResendVerification mails a fresh verification link.
func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req types.ResendVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if err := h.userService.ResendVerification(r.Context(), req.Email); err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Verification email sent"})
}

// Profile returns the authenticated user's profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, user)
}

// UpdateProfile applies a partial profile update for the authenticated user.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, user)
}

// UploadProfileImage stores an uploaded profile image and records its URL.
func (h *AuthHandler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	url, err := saveUploadedImage(r, "image", h.uploadDir, "profiles", h.publicURL)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.userService.UpdateProfile(r.Context(), userID, &types.UpdateProfileRequest{ProfileImageURL: url}); err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"imageUrl": url})
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
