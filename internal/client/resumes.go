package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/jdoe/resume-builder/internal/types"
)

// CreateResume creates a resume with an initial title and theme.
func (c *Client) CreateResume(ctx context.Context, req *types.CreateResumeRequest) (*types.Resume, error) {
	var resume types.Resume
	if err := c.sendJSON(ctx, http.MethodPost, "/resumes", req, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// ListResumes returns all of the caller's resumes.
func (c *Client) ListResumes(ctx context.Context) ([]types.Resume, error) {
	var resumes []types.Resume
	if err := c.getJSON(ctx, "/resumes", &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

// GetResume fetches one resume by id.
func (c *Client) GetResume(ctx context.Context, id uuid.UUID) (*types.Resume, error) {
	var resume types.Resume
	if err := c.getJSON(ctx, "/resumes/"+id.String(), &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// UpdateResume saves the whole resume document. The server stores it as
// given; the response is the persisted document, unreshaped.
func (c *Client) UpdateResume(ctx context.Context, resume *types.Resume) (*types.Resume, error) {
	var saved types.Resume
	if err := c.sendJSON(ctx, http.MethodPut, "/resumes/"+resume.ID.String(), resume, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteResume removes a resume permanently.
func (c *Client) DeleteResume(ctx context.Context, id uuid.UUID) error {
	return c.deleteReq(ctx, "/resumes/"+id.String())
}

// UploadResumeThumbnail attaches a preview image to a resume and returns
// the stored thumbnail URL.
func (c *Client) UploadResumeThumbnail(ctx context.Context, id uuid.UUID, filename string, image io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("thumbnail", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish upload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPut, "/resumes/"+id.String()+"/upload-images", writer.FormDataContentType(), &buf)
	if err != nil {
		return "", err
	}
	var resp struct {
		ThumbnailLink string `json:"thumbnailLink"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return "", err
	}
	return resp.ThumbnailLink, nil
}
