package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.txt")
	if err := os.WriteFile(path, []byte("1, 2\n3 4\n5\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	raw, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if raw != "1, 2\n3 4\n5\n" {
		t.Fatalf("unexpected raw input: %q", raw)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFromReaderLimit(t *testing.T) {
	if _, err := FromReader(strings.NewReader(strings.Repeat("1", MaxSize))); err != nil {
		t.Fatalf("expected input at the limit to load, got %v", err)
	}
	if _, err := FromReader(strings.NewReader(strings.Repeat("1", MaxSize+1))); err == nil {
		t.Fatalf("expected error for oversized input")
	}
}
