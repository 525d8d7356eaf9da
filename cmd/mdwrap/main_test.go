package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupPlans(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.md")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "done.md"), []byte("fine\n"), 0o644))
	return dir, path
}

func TestRunRewrites(t *testing.T) {
	dir, path := setupPlans(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--dir", dir}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "one two\n", string(got))

	out := stdout.String()
	require.Contains(t, out, "Processing "+filepath.Join(dir, "done.md")+"\n")
	require.Contains(t, out, "Processing "+path+"\n")
	require.Contains(t, out, "Files changed: 1\n - "+path+"\n")
}

func TestRunCheck(t *testing.T) {
	dir, path := setupPlans(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--dir", dir, "--check"}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stdout.String(), "Files needing reflow: 1\n - "+path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "one\ntwo\n", string(got), "check must not write")
}

func TestRunCheckClean(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "done.md"), []byte("fine\n"), 0o644))
	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, run([]string{"--dir", dir, "--check"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "Files needing reflow: 0\n")
}

func TestRunDiff(t *testing.T) {
	dir, path := setupPlans(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--dir", dir, "--diff"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	require.Contains(t, out, "\n-one\n")
	require.Contains(t, out, "\n+one two\n")
	require.NotContains(t, out, "\x1b[", "no color when stdout is not a terminal")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "one\ntwo\n", string(got))
}

func TestRunWidthAndTaskFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.md")
	require.NoError(t, os.WriteFile(path, []byte("- [ ] one two three\n"), 0o644))
	var stdout, stderr bytes.Buffer

	code := run([]string{"--dir", dir, "-w", "14", "--task-checkbox"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "- [ ] one two\n      three\n", string(got))
}

func TestRunConfigFile(t *testing.T) {
	dir, path := setupPlans(t)
	cfgPath := filepath.Join(t.TempDir(), "mdwrap.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dir: "+dir+"\nwidth: 5\n"), 0o600))
	var stdout, stderr bytes.Buffer

	code := run([]string{"--config", cfgPath}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "one\ntwo\n", string(got), "width 5 cannot join the two words")
	require.Contains(t, stdout.String(), "Files changed: 0\n")
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.md")
	require.NoError(t, os.WriteFile(bad, []byte("\xff\n"), 0o644))
	var stdout, stderr bytes.Buffer

	code := run([]string{"--dir", dir}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stdout.String(), "Files failed: 1\n - "+bad)
	require.Contains(t, stderr.String(), "failed to process file")
}

func TestRunUsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad width", args: []string{"--dir", t.TempDir(), "--width", "0"}, want: "width must be greater than 0"},
		{name: "nested pattern", args: []string{"--dir", t.TempDir(), "--pattern", "a/*.md"}, want: "must not contain '/'"},
		{name: "extra args", args: []string{"stray"}, want: "unexpected arguments: stray"},
		{name: "unknown flag", args: []string{"--bogus"}, want: "bogus"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.Equal(t, 2, run(tc.args, &stdout, &stderr))
			require.Contains(t, stderr.String(), tc.want)
		})
	}
}

func TestRunMissingDir(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--dir", filepath.Join(t.TempDir(), "nope")}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "mdwrap:")
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--version"}, &stdout, &stderr))
	require.NotEmpty(t, strings.TrimSpace(stdout.String()))
}

func TestColorizeDiff(t *testing.T) {
	in := "--- a.md\n+++ a.md\n@@ -1 +1 @@\n-old\n+new\n ctx\n"
	want := "--- a.md\n+++ a.md\n" +
		ansiCyan + "@@ -1 +1 @@" + ansiReset + "\n" +
		ansiRed + "-old" + ansiReset + "\n" +
		ansiGreen + "+new" + ansiReset + "\n" +
		" ctx\n"
	require.Equal(t, want, colorizeDiff(in))
}
