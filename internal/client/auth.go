package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/jdoe/resume-builder/internal/types"
)

// Register creates an account and begins the session with the returned token.
func (c *Client) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}
	var resp types.AuthResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	c.session.Begin(resp.Token, resp.User)
	return resp.User, nil
}

// Login authenticates and begins the session with the returned token.
func (c *Client) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid login: %w", err)
	}
	var resp types.AuthResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.session.Begin(resp.Token, resp.User)
	return resp.User, nil
}

// Logout tears the session down locally. The backend keeps no session state.
func (c *Client) Logout() {
	c.session.Clear()
}

// VerifyEmail confirms an address using the token from the verification mail.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	return c.getJSON(ctx, "/auth/verify-email?token="+url.QueryEscape(token), nil)
}

// ResendVerification requests a fresh verification mail for the address.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	req := &types.ResendVerificationRequest{Email: email}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}
	return c.sendJSON(ctx, http.MethodPost, "/auth/resend-verification", req, nil)
}

// Profile fetches the caller's profile and refreshes the cached copy.
func (c *Client) Profile(ctx context.Context) (*types.User, error) {
	var user types.User
	if err := c.getJSON(ctx, "/auth/profile", &user); err != nil {
		return nil, err
	}
	c.session.SetUser(&user)
	return &user, nil
}

// UpdateProfile updates the caller's profile and refreshes the cached copy.
func (c *Client) UpdateProfile(ctx context.Context, req *types.UpdateProfileRequest) (*types.User, error) {
	var user types.User
	if err := c.sendJSON(ctx, http.MethodPut, "/auth/profile", req, &user); err != nil {
		return nil, err
	}
	c.session.SetUser(&user)
	return &user, nil
}

// UploadProfileImage uploads a profile picture and returns its URL.
func (c *Client) UploadProfileImage(ctx context.Context, filename string, image io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish upload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/upload-image", writer.FormDataContentType(), &buf)
	if err != nil {
		return "", err
	}
	var resp struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return "", err
	}
	return resp.ImageURL, nil
}
