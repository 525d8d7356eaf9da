package mdtidy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, dir, name, content string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestReflowFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "plan.md", "one two\nthree\n", 0o600)

	changed, err := ReflowFile(path)
	if err != nil {
		t.Fatalf("ReflowFile: %v", err)
	}
	if !changed {
		t.Fatalf("expected change")
	}
	if got := readFile(t, path); got != "one two three\n" {
		t.Fatalf("unexpected content: %q", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode not preserved: %v", info.Mode().Perm())
	}

	changed, err = ReflowFile(path)
	if err != nil {
		t.Fatalf("second ReflowFile: %v", err)
	}
	if changed {
		t.Fatalf("second pass should not change the file")
	}
}

func TestPlanReflowDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "plan.md", "a\nb\n", 0o644)
	change, err := PlanReflow(path, WithWidth(40))
	if err != nil {
		t.Fatalf("PlanReflow: %v", err)
	}
	if !change.Changed() || change.After != "a b\n" || change.Path != path {
		t.Fatalf("unexpected change: %+v", change)
	}
	if got := readFile(t, path); got != "a\nb\n" {
		t.Fatalf("file written by PlanReflow: %q", got)
	}
}

func TestTrimFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "notes.md", "a\nb\n```\n\n\n", 0o644)
	changed, err := TrimFile(path)
	if err != nil {
		t.Fatalf("TrimFile: %v", err)
	}
	if !changed {
		t.Fatalf("expected change")
	}
	if got := readFile(t, path); got != "a\nb\n" {
		t.Fatalf("unexpected content: %q", got)
	}
	changed, err = TrimFile(path)
	if err != nil || changed {
		t.Fatalf("second TrimFile = (%v, %v), want (false, nil)", changed, err)
	}
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := TrimFile(filepath.Join(dir, "missing.md"))
	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "read" {
		t.Fatalf("expected read FileError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist in chain, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.md") {
		t.Fatalf("error should name the path: %v", err)
	}

	if _, err := ReflowFile(dir); !errors.Is(err, ErrIsDirectory) {
		t.Fatalf("expected ErrIsDirectory, got %v", err)
	}

	binary := "abc\x00def\n\n\n"
	path := writeTemp(t, dir, "blob.md", binary, 0o644)
	_, err = TrimFile(path)
	if !errors.Is(err, ErrBinaryInput) || !errors.As(err, &fe) || fe.Op != "validate" {
		t.Fatalf("expected validate ErrBinaryInput, got %v", err)
	}
	if got := readFile(t, path); got != binary {
		t.Fatalf("binary file modified: %q", got)
	}
}
