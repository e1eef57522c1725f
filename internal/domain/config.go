package domain

import "time"

// Config represents the todoprobe configuration loaded from todoprobe.yaml.
type Config struct {
	API         APIConfig
	Credential  Credential
	Task        TaskDraft
	Schema      SchemaConfig
	Diagnostics DiagnosticsConfig
	Log         LogConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
	// TokenPath is the JSONPath of the access token in the login response.
	TokenPath string
}

type SchemaConfig struct {
	Database      string
	ExpectedTable string
}

type DiagnosticsConfig struct {
	PreviewLines int
	// MaxMarkupBytes bounds a single HTML token; 0 means unlimited.
	MaxMarkupBytes int
}

type LogConfig struct {
	Debug bool
}

// DefaultConfig reproduces the constants the diagnostic has always used against a local backend.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8000/api/v1",
			Timeout:   30 * time.Second,
			TokenPath: "$.access",
		},
		Credential: Credential{
			Username: "debug_user_1",
			Password: "StrongPass123!",
			Email:    "debug1@example.com",
		},
		Task: TaskDraft{
			Title:       "Debug Task",
			Description: "Testing backend",
			DueDate:     nil,
			Priority:    PriorityMedium,
			Status:      StatusPending,
			Starred:     false,
		},
		Schema: SchemaConfig{
			Database:      "db.sqlite3",
			ExpectedTable: "tasks_task",
		},
		Diagnostics: DiagnosticsConfig{
			PreviewLines: 20,
		},
	}
}
