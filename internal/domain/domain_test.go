package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCredentialRequests(t *testing.T) {
	c := Credential{Username: "u", Password: "p", Email: "e@example.com"}

	login, err := json.Marshal(c.Login())
	if err != nil {
		t.Fatalf("marshal login: %v", err)
	}
	if string(login) != `{"username":"u","password":"p"}` {
		t.Fatalf("unexpected login body %s", login)
	}

	reg, err := json.Marshal(c.Register())
	if err != nil {
		t.Fatalf("marshal register: %v", err)
	}
	if string(reg) != `{"username":"u","email":"e@example.com","password":"p"}` {
		t.Fatalf("unexpected register body %s", reg)
	}
}

func TestTaskDraftEncodesNullDueDate(t *testing.T) {
	b, err := json.Marshal(DefaultConfig().Task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"due_date":null`) {
		t.Fatalf("expected explicit null due_date, got %s", b)
	}
	if !strings.Contains(string(b), `"priority":"MEDIUM"`) || !strings.Contains(string(b), `"status":"PENDING"`) {
		t.Fatalf("expected default enums, got %s", b)
	}
}

func TestDefaultConfigFiniteTimeout(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.API.Timeout <= 0 {
		t.Fatalf("expected finite default timeout")
	}
	if cfg.Schema.ExpectedTable != "tasks_task" {
		t.Fatalf("unexpected expected table %q", cfg.Schema.ExpectedTable)
	}
	if cfg.Diagnostics.PreviewLines != 20 {
		t.Fatalf("unexpected preview lines %d", cfg.Diagnostics.PreviewLines)
	}
}
