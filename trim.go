package mdtidy

import "strings"

const fenceMarker = "```"

// Trim drops trailing blank lines and then a dangling closing fence marker,
// returning the text with exactly one trailing newline. Only a bare "```"
// counts as a marker; a fence carrying a language tag is kept.
func Trim(text string) string {
	lines := splitLines(text)
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == fenceMarker {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n") + "\n"
}
