package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeClasses(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classes.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write classes: %v", err)
	}
	return path
}

func TestLoad_PositionalIDs(t *testing.T) {
	c, err := Load(writeClasses(t, "cat\n  dog \n\nbird\n"), 10)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 classes, got %d", c.Len())
	}
	if c.Name(1) != "dog" {
		t.Fatalf("expected trimmed dog at 1, got %q", c.Name(1))
	}
	id, err := c.ID("bird")
	if err != nil || id != 2 {
		t.Fatalf("expected bird=2, got %d err=%v", id, err)
	}
}

func TestLoad_MissingFileIsConfigError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), 10)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestLoad_EmptyFileIsConfigError(t *testing.T) {
	_, err := Load(writeClasses(t, "\n \n"), 10)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestLoad_OversizedCatalog(t *testing.T) {
	_, err := Load(writeClasses(t, "a\nb\nc\n"), 2)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError for 3 classes over 2 colours, got %v", err)
	}
	if _, err := Load(writeClasses(t, "a\nb\n"), 2); err != nil {
		t.Fatalf("catalog at the bound should load: %v", err)
	}
}

func TestID_NotFound(t *testing.T) {
	c, err := New([]string{"a"}, 0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = c.ID("z")
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Name != "z" {
		t.Fatalf("expected NotFoundError for z, got %v", err)
	}
}

func TestID_DuplicatesResolveToFirst(t *testing.T) {
	c, _ := New([]string{"x", "y", "x"}, 0)
	if id, _ := c.ID("x"); id != 0 {
		t.Fatalf("expected first duplicate id 0, got %d", id)
	}
	if !c.Contains(2) || c.Contains(3) || c.Contains(-1) {
		t.Fatalf("unexpected Contains results")
	}
}

func TestNames_ReturnsCopy(t *testing.T) {
	c, _ := New([]string{"a", "b"}, 0)
	n := c.Names()
	n[0] = "mutated"
	if c.Name(0) != "a" {
		t.Fatalf("catalog mutated through Names()")
	}
}
