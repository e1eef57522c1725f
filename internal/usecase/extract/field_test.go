package extract

import (
	"strings"
	"testing"
)

func TestField_AccessToken(t *testing.T) {
	got, err := Field([]byte(`{"access":"abc123","refresh":"r1"}`), "$.access")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("expected abc123, got %q", got)
	}
}

func TestField_MissingKey(t *testing.T) {
	_, err := Field([]byte(`{"refresh":"r1"}`), "$.access")
	if err == nil {
		t.Fatalf("expected error for missing key")
	}
}

func TestField_NullValue(t *testing.T) {
	_, err := Field([]byte(`{"access":null}`), "$.access")
	if err == nil {
		t.Fatalf("expected error for null value")
	}
	if !strings.Contains(err.Error(), "no value found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestField_NonJSONBody(t *testing.T) {
	_, err := Field([]byte("<html></html>"), "$.access")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "not valid JSON") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestField_EmptyExpression(t *testing.T) {
	if _, err := Field([]byte(`{}`), "  "); err == nil {
		t.Fatalf("expected error for empty expression")
	}
}

func TestField_NestedAndScalar(t *testing.T) {
	got, err := Field([]byte(`{"data":{"tokens":{"access":"x"},"n":7}}`), "$.data.tokens.access")
	if err != nil || got != "x" {
		t.Fatalf("expected x, got %q err=%v", got, err)
	}

	got, err = Field([]byte(`{"data":{"n":7}}`), "$.data.n")
	if err != nil || got != "7" {
		t.Fatalf("expected 7, got %q err=%v", got, err)
	}
}
