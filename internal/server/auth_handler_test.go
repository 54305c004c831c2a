package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoe/resume-builder/internal/server/middleware"
	"github.com/jdoe/resume-builder/internal/types"
)

func newTestAuthHandler(t *testing.T, store UserStore) *AuthHandler {
	t.Helper()
	return NewAuthHandler(testUserService(store), testJWTService("test-secret"), t.TempDir(), "http://localhost:8080")
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeAuthResponse(t *testing.T, rec *httptest.ResponseRecorder) types.AuthResponse {
	t.Helper()
	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	h := newTestAuthHandler(t, newFakeUserStore())

	rec := postJSON(t, h.Register, "/api/auth/register", types.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeAuthResponse(t, rec)
	require.NotNil(t, resp.User)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	require.NotEmpty(t, resp.Token)

	claims, err := h.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h := newTestAuthHandler(t, newFakeUserStore())

	rec := postJSON(t, h.Register, "/api/auth/register", types.RegisterRequest{
		Name:     "Jane",
		Email:    "not-an-email",
		Password: "password123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error: Email - email")
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	h := newTestAuthHandler(t, newFakeUserStore())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := newTestAuthHandler(t, newFakeUserStore())
	body := types.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"}

	require.Equal(t, http.StatusCreated, postJSON(t, h.Register, "/api/auth/register", body).Code)
	assert.Equal(t, http.StatusConflict, postJSON(t, h.Register, "/api/auth/register", body).Code)
}

func TestAuthHandler_Login(t *testing.T) {
	h := newTestAuthHandler(t, newFakeUserStore())
	postJSON(t, h.Register, "/api/auth/register", types.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})

	rec := postJSON(t, h.Login, "/api/auth/login", types.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeAuthResponse(t, rec).Token)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	h := newTestAuthHandler(t, newFakeUserStore())
	postJSON(t, h.Register, "/api/auth/register", types.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})

	rec := postJSON(t, h.Login, "/api/auth/login", types.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_VerifyEmail(t *testing.T) {
	store := newFakeUserStore()
	h := newTestAuthHandler(t, store)
	rec := postJSON(t, h.Register, "/api/auth/register", types.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})
	userID := decodeAuthResponse(t, rec).User.ID
	token := store.users[userID].VerificationToken

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify-email?token="+token, nil)
	verifyRec := httptest.NewRecorder()
	h.VerifyEmail(verifyRec, req)

	assert.Equal(t, http.StatusOK, verifyRec.Code)
	assert.Contains(t, verifyRec.Body.String(), "Email verified successfully")
	assert.True(t, store.users[userID].EmailVerified)
}

func TestAuthHandler_VerifyEmail_BadToken(t *testing.T) {
	h := newTestAuthHandler(t, newFakeUserStore())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify-email?token=nope", nil)
	rec := httptest.NewRecorder()
	h.VerifyEmail(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Profile(t *testing.T) {
	store := newFakeUserStore()
	h := newTestAuthHandler(t, store)
	rec := postJSON(t, h.Register, "/api/auth/register", types.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})
	userID := decodeAuthResponse(t, rec).User.ID

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	profileRec := httptest.NewRecorder()
	h.Profile(profileRec, req)

	require.Equal(t, http.StatusOK, profileRec.Code)
	var user types.User
	require.NoError(t, json.Unmarshal(profileRec.Body.Bytes(), &user))
	assert.Equal(t, "Jane", user.Name)
}

func TestAuthHandler_Profile_Unauthenticated(t *testing.T) {
	h := newTestAuthHandler(t, newFakeUserStore())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()
	h.Profile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	store := newFakeUserStore()
	h := newTestAuthHandler(t, store)
	rec := postJSON(t, h.Register, "/api/auth/register", types.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})
	userID := decodeAuthResponse(t, rec).User.ID

	body, _ := json.Marshal(types.UpdateProfileRequest{Name: "Jane Doe"})
	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", bytes.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	updateRec := httptest.NewRecorder()
	h.UpdateProfile(updateRec, req)

	require.Equal(t, http.StatusOK, updateRec.Code)
	assert.Equal(t, "Jane Doe", store.users[userID].Name)
}

func multipartImageRequest(t *testing.T, target, field, filename string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.Copy(fw, bytes.NewReader([]byte("fake image bytes")))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAuthHandler_UploadProfileImage(t *testing.T) {
	store := newFakeUserStore()
	h := newTestAuthHandler(t, store)
	rec := postJSON(t, h.Register, "/api/auth/register", types.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})
	userID := decodeAuthResponse(t, rec).User.ID

	req := multipartImageRequest(t, "/api/auth/upload-image", "image", "avatar.png")
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	uploadRec := httptest.NewRecorder()
	h.UploadProfileImage(uploadRec, req)

	require.Equal(t, http.StatusOK, uploadRec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(uploadRec.Body.Bytes(), &resp))
	url := resp["imageUrl"]
	require.NotEmpty(t, url)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/profiles/"))
	assert.Equal(t, ".png", filepath.Ext(url))
	assert.Equal(t, url, store.users[userID].ProfileImageURL)
}

func TestAuthHandler_UploadProfileImage_RejectsExtension(t *testing.T) {
	h := newTestAuthHandler(t, newFakeUserStore())

	req := multipartImageRequest(t, "/api/auth/upload-image", "image", "script.sh")
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()
	h.UploadProfileImage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractValidationErrors_NonValidatorError(t *testing.T) {
	assert.Equal(t, "validation error: invalid request", extractValidationErrors(context.Canceled))
}
