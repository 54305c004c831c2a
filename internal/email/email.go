// Package email sends transactional mail over SMTP: account verification
// links and resume attachments.
package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
)

// Sender delivers mail through a single SMTP account.
type Sender struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewSender creates a sender for the given SMTP account.
func NewSender(host string, port int, user, pass, from string) *Sender {
	if from == "" {
		from = user
	}
	return &Sender{host: host, port: port, user: user, pass: pass, from: from}
}

func (s *Sender) addr() string {
	return fmt.Sprintf("%s:%d", s.host, s.port)
}

func (s *Sender) auth() smtp.Auth {
	if s.user == "" {
		return nil
	}
	return smtp.PlainAuth("", s.user, s.pass, s.host)
}

// SendVerification mails the account verification link to a new user.
func (s *Sender) SendVerification(to, name, link string) error {
	msg := s.verificationMessage(to, name, link)
	if err := smtp.SendMail(s.addr(), s.auth(), s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

func (s *Sender) verificationMessage(to, name, link string) []byte {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\n"+
			"Welcome! Please verify your email address by opening the link below:\r\n\r\n"+
			"%s\r\n\r\n"+
			"If you did not create an account, you can ignore this message.\r\n",
		name, link,
	)
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Verify your email\r\n"+
			"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		s.from, to, body,
	)
	return []byte(msg)
}

// SendWithAttachment mails a message with one file attached, typically an
// exported resume PDF.
func (s *Sender) SendWithAttachment(to, subject, message, filename string, attachment []byte) error {
	msg, err := s.attachmentMessage(to, subject, message, filename, attachment)
	if err != nil {
		return err
	}
	if err := smtp.SendMail(s.addr(), s.auth(), s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *Sender) attachmentMessage(to, subject, message, filename string, attachment []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", s.from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", writer.Boundary())

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=utf-8")
	part, err := writer.CreatePart(textHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to build message body: %w", err)
	}
	if _, err := part.Write([]byte(message)); err != nil {
		return nil, fmt.Errorf("failed to build message body: %w", err)
	}

	fileHeader := textproto.MIMEHeader{}
	fileHeader.Set("Content-Type", "application/pdf")
	fileHeader.Set("Content-Transfer-Encoding", "base64")
	fileHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	part, err = writer.CreatePart(fileHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to attach file: %w", err)
	}

	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(attachment)))
	base64.StdEncoding.Encode(encoded, attachment)
	// RFC 2045 caps encoded lines at 76 characters.
	for len(encoded) > 0 {
		n := 76
		if len(encoded) < n {
			n = len(encoded)
		}
		if _, err := part.Write(encoded[:n]); err != nil {
			return nil, fmt.Errorf("failed to attach file: %w", err)
		}
		if _, err := part.Write([]byte("\r\n")); err != nil {
			return nil, fmt.Errorf("failed to attach file: %w", err)
		}
		encoded = encoded[n:]
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish message: %w", err)
	}
	return buf.Bytes(), nil
}
