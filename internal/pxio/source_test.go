package pxio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenAndReadAt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "country.db")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	if src.Size() != 10 {
		t.Fatalf("Size() = %d, want 10", src.Size())
	}
	b, err := src.ReadAt(3, 4)
	if err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if string(b) != "3456" {
		t.Fatalf("ReadAt = %q, want 3456", string(b))
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Fatalf("expected error opening a missing file")
	}
}

func TestReadAtShortRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.db")
	if err := os.WriteFile(path, []byte("ab"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	if _, err := src.ReadAt(0, 10); err == nil {
		t.Fatalf("expected short-read error")
	}
}

func TestFindBlobPath(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "Biolife.DB")
	mbPath := filepath.Join(dir, "biolife.mb")
	if err := os.WriteFile(dbPath, []byte("db"), 0o644); err != nil {
		t.Fatalf("WriteFile db: %v", err)
	}
	if err := os.WriteFile(mbPath, []byte("mb"), 0o644); err != nil {
		t.Fatalf("WriteFile mb: %v", err)
	}

	got, ok, err := FindBlobPath(dbPath)
	if err != nil {
		t.Fatalf("FindBlobPath: %v", err)
	}
	if !ok {
		t.Fatalf("expected to find a companion .mb file")
	}
	if got != mbPath {
		t.Fatalf("FindBlobPath = %q, want %q", got, mbPath)
	}
}

func TestFindBlobPathMissing(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "country.db")
	if err := os.WriteFile(dbPath, []byte("db"), 0o644); err != nil {
		t.Fatalf("WriteFile db: %v", err)
	}

	_, ok, err := FindBlobPath(dbPath)
	if err != nil {
		t.Fatalf("FindBlobPath: %v", err)
	}
	if ok {
		t.Fatalf("expected no companion .mb file")
	}
}
