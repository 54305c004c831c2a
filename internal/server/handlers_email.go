// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"io"
	"net/http"
	"net/mail"
	"path/filepath"
)

// maxAttachmentSize caps emailed resume attachments at 10 MiB.
const maxAttachmentSize = 10 << 20

// handleSendResume emails an exported resume PDF to a recipient. The request
// is a multipart form with recipient, subject, message, and an attachment file.
func (s *Server) handleSendResume(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestUserID(w, r); !ok {
		return
	}
	if s.mailer == nil {
		jsonError(w, http.StatusServiceUnavailable, "Email delivery is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	recipient := r.FormValue("recipient")
	if _, err := mail.ParseAddress(recipient); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid recipient address")
		return
	}
	subject := r.FormValue("subject")
	if subject == "" {
		subject = "My Resume"
	}
	message := r.FormValue("message")

	file, header, err := r.FormFile("attachment")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Missing attachment")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAttachmentSize))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Failed to read attachment")
		return
	}

	filename := filepath.Base(header.Filename)
	if filename == "" || filename == "." {
		filename = "resume.pdf"
	}

	if err := s.mailer.SendWithAttachment(recipient, subject, message, filename, data); err != nil {
		jsonError(w, http.StatusBadGateway, err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Email sent successfully"})
}
