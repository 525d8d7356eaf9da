package mdtidy

import (
	"os"
)

// FileError records a failed read, validation or write of one file.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// FileChange is the result of transforming one file in memory.
type FileChange struct {
	Path   string
	Before string
	After  string
	mode   os.FileMode
}

// Changed reports whether the transform altered any byte.
func (c FileChange) Changed() bool {
	return c.Before != c.After
}

// PlanReflow reads path and reflows it without writing anything back.
func PlanReflow(path string, opts ...ReflowOption) (FileChange, error) {
	text, mode, err := readText(path)
	if err != nil {
		return FileChange{}, err
	}
	return FileChange{Path: path, Before: text, After: Reflow(text, opts...), mode: mode}, nil
}

// ReflowFile reflows the file at path in place. The file is only rewritten
// when the result differs from what is on disk.
func ReflowFile(path string, opts ...ReflowOption) (bool, error) {
	change, err := PlanReflow(path, opts...)
	if err != nil {
		return false, err
	}
	return change.Changed(), apply(change)
}

// TrimFile removes trailing blank lines and a dangling closing fence from the
// file at path. An unreadable or unwritable file is left untouched.
func TrimFile(path string) (bool, error) {
	text, mode, err := readText(path)
	if err != nil {
		return false, err
	}
	change := FileChange{Path: path, Before: text, After: Trim(text), mode: mode}
	return change.Changed(), apply(change)
}

func apply(change FileChange) error {
	if !change.Changed() {
		return nil
	}
	if err := os.WriteFile(change.Path, []byte(change.After), change.mode.Perm()); err != nil {
		return &FileError{Op: "write", Path: change.Path, Err: err}
	}
	return nil
}

func readText(path string) (string, os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, &FileError{Op: "read", Path: path, Err: err}
	}
	if info.IsDir() {
		return "", 0, &FileError{Op: "read", Path: path, Err: ErrIsDirectory}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, &FileError{Op: "read", Path: path, Err: err}
	}
	if err := ValidateInput(data); err != nil {
		return "", 0, &FileError{Op: "validate", Path: path, Err: err}
	}
	return string(data), info.Mode(), nil
}
