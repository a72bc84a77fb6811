package security

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLimitedReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int64
		wantErr bool
	}{
		{"under limit", "abc", 10, false},
		{"exactly at limit", "abcdefghij", 10, false},
		{"over limit", "abcdefghijk", 10, true},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := io.ReadAll(NewLimitedReader(strings.NewReader(tt.input), tt.limit))
			if tt.wantErr {
				if !errors.Is(err, ErrSizeLimit) {
					t.Fatalf("expected ErrSizeLimit, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(data) != tt.input {
				t.Errorf("read %q, want %q", data, tt.input)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeds.txt")
	if err := os.WriteFile(path, []byte("primary=#3182CE\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFile(path, 1024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "primary=#3182CE\n" {
		t.Errorf("ReadFile() = %q", data)
	}

	if _, err := ReadFile(path, 4); !errors.Is(err, ErrSizeLimit) {
		t.Errorf("expected ErrSizeLimit, got %v", err)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing"), 1024); err == nil {
		t.Error("expected error for missing file")
	}
}
