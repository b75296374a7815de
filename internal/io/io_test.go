package io

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")

	err := WriteStringToFile(path, "# hello\n")
	if err != nil { t.Fatal(err) }

	content, err := ReadFileToString(path)
	if err != nil { t.Fatal(err) }
	if content != "# hello\n" {
		t.Errorf("content = %q, want %q", content, "# hello\n")
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadFileToString(filepath.Join(t.TempDir(), "missing.md"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
