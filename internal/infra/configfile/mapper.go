package configfile

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Kedar1021/to-do-app/internal/domain"
)

func toFile(cfg domain.Config) fileConfig {
	return fileConfig{
		API: fileAPI{
			BaseURL:   cfg.API.BaseURL,
			Timeout:   cfg.API.Timeout.String(),
			TokenPath: cfg.API.TokenPath,
		},
		Credential: fileCredential{
			Username: cfg.Credential.Username,
			Password: cfg.Credential.Password,
			Email:    cfg.Credential.Email,
		},
		Task: fileTask{
			Title:       cfg.Task.Title,
			Description: cfg.Task.Description,
			DueDate:     cfg.Task.DueDate,
			Priority:    string(cfg.Task.Priority),
			Status:      string(cfg.Task.Status),
			Starred:     cfg.Task.Starred,
		},
		Schema: fileSchema{
			Database:      cfg.Schema.Database,
			ExpectedTable: cfg.Schema.ExpectedTable,
		},
		Diagnostics: fileDiagnostics{
			PreviewLines:   cfg.Diagnostics.PreviewLines,
			MaxMarkupBytes: cfg.Diagnostics.MaxMarkupBytes,
		},
		Log: fileLog{Debug: cfg.Log.Debug},
	}
}

// mapConfig validates the file shape and turns it into a domain.Config.
// Task priority/status are passed through untouched: rejecting them is the backend's job.
func mapConfig(path string, fc fileConfig) (domain.Config, error) {
	base := strings.TrimSpace(fc.API.BaseURL)
	if base == "" {
		return domain.Config{}, invalidField(path, "api.base_url", "base url is required")
	}
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.Config{}, invalidField(path, "api.base_url", fmt.Sprintf("expected an http(s) URL, got %q", base))
	}

	timeout, err := time.ParseDuration(strings.TrimSpace(fc.API.Timeout))
	if err != nil {
		return domain.Config{}, invalidField(path, "api.timeout", err.Error())
	}
	if timeout <= 0 {
		return domain.Config{}, invalidField(path, "api.timeout", "timeout must be positive")
	}

	if strings.TrimSpace(fc.API.TokenPath) == "" {
		return domain.Config{}, invalidField(path, "api.token_path", "token path is required")
	}
	if strings.TrimSpace(fc.Credential.Username) == "" {
		return domain.Config{}, invalidField(path, "credential.username", "username is required")
	}
	if strings.TrimSpace(fc.Schema.ExpectedTable) == "" {
		return domain.Config{}, invalidField(path, "schema.expected_table", "expected table is required")
	}
	if fc.Diagnostics.PreviewLines < 1 {
		return domain.Config{}, invalidField(path, "diagnostics.preview_lines", "preview lines must be at least 1")
	}
	if fc.Diagnostics.MaxMarkupBytes < 0 {
		return domain.Config{}, invalidField(path, "diagnostics.max_markup_bytes", "must not be negative")
	}

	return domain.Config{
		API: domain.APIConfig{
			BaseURL:   base,
			Timeout:   timeout,
			TokenPath: strings.TrimSpace(fc.API.TokenPath),
		},
		Credential: domain.Credential{
			Username: fc.Credential.Username,
			Password: fc.Credential.Password,
			Email:    fc.Credential.Email,
		},
		Task: domain.TaskDraft{
			Title:       fc.Task.Title,
			Description: fc.Task.Description,
			DueDate:     fc.Task.DueDate,
			Priority:    domain.Priority(fc.Task.Priority),
			Status:      domain.TaskStatus(fc.Task.Status),
			Starred:     fc.Task.Starred,
		},
		Schema: domain.SchemaConfig{
			Database:      fc.Schema.Database,
			ExpectedTable: fc.Schema.ExpectedTable,
		},
		Diagnostics: domain.DiagnosticsConfig{
			PreviewLines:   fc.Diagnostics.PreviewLines,
			MaxMarkupBytes: fc.Diagnostics.MaxMarkupBytes,
		},
		Log: domain.LogConfig{Debug: fc.Log.Debug},
	}, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "configfile.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
