package mdtidy

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern selects the files ReflowDir processes when no pattern is set.
const DefaultPattern = "*.md"

// ErrNestedPattern reports a pattern that reaches below the directory.
var ErrNestedPattern = errors.New("pattern must match names directly inside the directory")

// DirRequest configures ReflowDir.
type DirRequest struct {
	Dir     string
	Pattern string
	Options []ReflowOption
	// Logger receives per-file failures. Nil discards them.
	Logger *slog.Logger
	// Progress receives one "Processing <path>" line per file. Nil is quiet.
	Progress io.Writer
	// DryRun computes changes without writing them.
	DryRun bool
	// OnChange is called for every file whose content differs.
	OnChange func(FileChange)
}

// FailedFile pairs a path with the error that stopped its processing.
type FailedFile struct {
	Path string
	Err  error
}

// DirResult summarizes a ReflowDir run.
type DirResult struct {
	Processed int
	Changed   []string
	Failed    []FailedFile
}

// ReflowDir reflows every file directly inside req.Dir whose name matches
// req.Pattern, one at a time in lexicographic order. A file that cannot be
// read, decoded or written is logged and recorded in the result; the run
// continues with the next file. Only failing to list the directory is
// returned as an error.
func ReflowDir(req DirRequest) (DirResult, error) {
	var res DirResult
	if req.Dir == "" {
		return res, fmt.Errorf("reflow dir: Dir is empty")
	}
	pattern := req.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	if strings.ContainsRune(pattern, '/') {
		return res, fmt.Errorf("reflow dir: %q: %w", pattern, ErrNestedPattern)
	}
	if !doublestar.ValidatePattern(pattern) {
		return res, fmt.Errorf("reflow dir: %q: %w", pattern, doublestar.ErrBadPattern)
	}
	logger := req.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	names, err := matchingFiles(req.Dir, pattern)
	if err != nil {
		return res, fmt.Errorf("reflow dir: %w", err)
	}
	for _, name := range names {
		path := filepath.Join(req.Dir, name)
		if req.Progress != nil {
			fmt.Fprintf(req.Progress, "Processing %s\n", path)
		}
		res.Processed++
		change, err := PlanReflow(path, req.Options...)
		if err == nil && !req.DryRun {
			err = apply(change)
		}
		if err != nil {
			logger.Error("failed to process file", "path", path, "error", err)
			res.Failed = append(res.Failed, FailedFile{Path: path, Err: err})
			continue
		}
		if !change.Changed() {
			logger.Debug("unchanged", "path", path)
			continue
		}
		logger.Debug("reflowed", "path", path, "dry_run", req.DryRun)
		res.Changed = append(res.Changed, path)
		if req.OnChange != nil {
			req.OnChange(change)
		}
	}
	return res, nil
}

// matchingFiles lists non-directory entries of dir matching pattern, sorted
// by name.
func matchingFiles(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
