// Package config provides configuration loading and validation for the
// resume-builder server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents settings that can be loaded from a JSON file. All
// fields are optional; missing values use defaults or come from env vars.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	UploadDir   string `json:"upload_dir,omitempty"`   // Directory for uploaded images

	// Email delivery
	SMTPHost string `json:"smtp_host,omitempty"`
	SMTPPort int    `json:"smtp_port,omitempty"`
	SMTPUser string `json:"smtp_user,omitempty"`
	SMTPPass string `json:"smtp_pass,omitempty"`
	SMTPFrom string `json:"smtp_from,omitempty"` // From address for outgoing mail

	// Payment gateway
	PaymentKeyID     string `json:"payment_key_id,omitempty"`
	PaymentKeySecret string `json:"payment_key_secret,omitempty"`
	PaymentBaseURL   string `json:"payment_base_url,omitempty"` // Gateway API root

	// Public base URL used in verification links
	PublicURL string `json:"public_url,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills empty fields from environment variables and applies
// defaults. Env vars never override values read from the config file.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.UploadDir == "" {
		c.UploadDir = envOr("UPLOAD_DIR", "uploads")
	}
	if c.SMTPHost == "" {
		c.SMTPHost = os.Getenv("SMTP_HOST")
	}
	if c.SMTPUser == "" {
		c.SMTPUser = os.Getenv("SMTP_USER")
	}
	if c.SMTPPass == "" {
		c.SMTPPass = os.Getenv("SMTP_PASS")
	}
	if c.SMTPFrom == "" {
		c.SMTPFrom = os.Getenv("SMTP_FROM")
	}
	if c.PaymentKeyID == "" {
		c.PaymentKeyID = os.Getenv("PAYMENT_KEY_ID")
	}
	if c.PaymentKeySecret == "" {
		c.PaymentKeySecret = os.Getenv("PAYMENT_KEY_SECRET")
	}
	if c.PaymentBaseURL == "" {
		c.PaymentBaseURL = os.Getenv("PAYMENT_BASE_URL")
	}
	if c.PublicURL == "" {
		c.PublicURL = envOr("PUBLIC_URL", "http://localhost:8080")
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.SMTPPort == 0 {
		c.SMTPPort = 587
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.SMTPPort < 1 || c.SMTPPort > 65535 {
		return fmt.Errorf("config error: 'smtp_port' out of range: %d", c.SMTPPort)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
