package mdtidy

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"
)

var markerToken = regexp.MustCompile(`^(#+|[-*+]|\d+\.)$`)

// textWidth reports the display width of s in terminal cells.
func textWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// prefixWidth counts runes, so a tab in list indentation takes one column.
func prefixWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// splitAtoms breaks text into the unbreakable units the wrapper places.
// A token that would be read as a heading, list marker or fence when it
// starts a line is glued to the token before it.
func splitAtoms(text string) []string {
	fields := strings.Fields(text)
	atoms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(atoms) > 0 && unsafeLineStart(f) {
			atoms[len(atoms)-1] += " " + f
			continue
		}
		atoms = append(atoms, f)
	}
	return atoms
}

func unsafeLineStart(tok string) bool {
	if strings.HasPrefix(tok, "```") {
		return true
	}
	return markerToken.MatchString(tok)
}

// gluePipes joins every atom up to the last one containing "|" into a single
// atom, so wrapped continuation lines never read back as table rows.
func gluePipes(atoms []string) []string {
	last := -1
	for i, atom := range atoms {
		if strings.Contains(atom, "|") {
			last = i
		}
	}
	if last < 1 {
		return atoms
	}
	head := strings.Join(atoms[:last+1], " ")
	return append([]string{head}, atoms[last+1:]...)
}

// wrapAtoms fills lines greedily up to width. An atom wider than width is
// placed alone on its own line and never split.
func wrapAtoms(atoms []string, width int) []string {
	if width < 1 {
		width = 1
	}
	var (
		lines     []string
		b         strings.Builder
		lineWidth int
	)
	for _, atom := range atoms {
		w := textWidth(atom)
		if b.Len() > 0 && lineWidth+1+w > width {
			lines = append(lines, b.String())
			b.Reset()
			lineWidth = 0
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
			lineWidth++
		}
		b.WriteString(atom)
		lineWidth += w
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return lines
}

// firstAtomWidth is the width of the atom a wrapped line opens with.
func firstAtomWidth(line string) int {
	atoms := splitAtoms(line)
	if len(atoms) == 0 {
		return 0
	}
	return textWidth(atoms[0])
}
