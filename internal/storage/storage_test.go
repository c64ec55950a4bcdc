package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "operators.json")
	err := os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}
	return path
}

func TestGetOperator(t *testing.T) {
	path := writeConfig(t, `{"operators":[{"username":"admin","password_hash":"hash","roles":["ADMIN"]}]}`)
	sto, err := NewJsonStorage(path)
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}

	operator, err := sto.GetOperator(context.Background(), "admin")
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}
	if operator.PasswordHash != "hash" {
		t.Errorf("Expected password hash %q, got %q", "hash", operator.PasswordHash)
	}

	_, err = sto.GetOperator(context.Background(), "nobody")
	if !errors.Is(err, OperatorNotFoundError) {
		t.Errorf("Expected %q, got %q", OperatorNotFoundError, err)
	}
}

func TestLoadConfigReload(t *testing.T) {
	path := writeConfig(t, `{"operators":[]}`)
	sto, err := NewJsonStorage(path)
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}

	err = os.WriteFile(path, []byte(`{"operators":[{"username":"late"}]}`), 0o600)
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}
	if err := sto.LoadConfig(); err != nil {
		t.Fatalf("Unexpected error %q", err)
	}

	if _, err := sto.GetOperator(context.Background(), "late"); err != nil {
		t.Errorf("Expected operator after reload, got %q", err)
	}
}

func TestNewJsonStorageInvalidFile(t *testing.T) {
	testCases := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "Missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.json") },
		},
		{
			name: "Malformed json",
			path: func(t *testing.T) string { return writeConfig(t, `{"operators":`) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewJsonStorage(tc.path(t))
			if err == nil {
				t.Errorf("Expected error, got none")
			}
		})
	}
}
