package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
)

// SendResume emails a rendered resume PDF through the backend's delivery
// service. The request is multipart: recipient, subject, message, and the
// PDF as an attachment.
func (c *Client) SendResume(ctx context.Context, recipient, subject, message, filename string, pdf []byte) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"recipient": recipient,
		"subject":   subject,
		"message":   message,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to build email request: %w", err)
		}
	}

	part, err := writer.CreateFormFile("attachment", filename)
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	if _, err := part.Write(pdf); err != nil {
		return fmt.Errorf("failed to attach pdf: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish email request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/email/send-resume", writer.FormDataContentType(), &buf)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}
