package mdtidy

import (
	"regexp"
	"strings"
	"unicode"
)

type lineKind uint8

const (
	linePlain lineKind = iota
	lineFence
	lineFenced
	lineTable
	lineBlank
	lineHeading
	lineListItem
)

var (
	headingPattern  = regexp.MustCompile(`^(#+)\s+(.*)$`)
	listItemPattern = regexp.MustCompile(`^(\s*)(([-*+]|\d+\.)\s+)(.*)$`)
	taskBoxPattern  = regexp.MustCompile(`^(\[[ xX]\]\s+)(.*)$`)
)

// classifiedLine is one physical line after classification. For headings
// prefix holds the hash run; for list items it holds indent, marker and the
// whitespace after the marker (plus a task checkbox when enabled).
type classifiedLine struct {
	kind   lineKind
	prefix string
	body   string
}

func classify(line string, inFence bool, cfg reflowConfig) classifiedLine {
	if isFenceBoundary(line) {
		return classifiedLine{kind: lineFence}
	}
	if inFence {
		return classifiedLine{kind: lineFenced}
	}
	trimmed := strings.TrimSpace(line)
	if isTableRow(line, trimmed) {
		return classifiedLine{kind: lineTable}
	}
	if trimmed == "" {
		return classifiedLine{kind: lineBlank}
	}
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return classifiedLine{kind: lineHeading, prefix: m[1], body: strings.TrimSpace(m[2])}
	}
	if m := listItemPattern.FindStringSubmatch(line); m != nil {
		prefix := m[1] + m[2]
		body := strings.TrimSpace(m[4])
		if cfg.taskCheckbox {
			if box := taskBoxPattern.FindStringSubmatch(body); box != nil {
				prefix += box[1]
				body = strings.TrimSpace(box[2])
			}
		}
		return classifiedLine{kind: lineListItem, prefix: prefix, body: body}
	}
	return classifiedLine{kind: linePlain, body: trimmed}
}

func isFenceBoundary(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "```")
}

// isTableRow treats any line with a pipe as layout-sensitive unless it reads
// as a bullet.
func isTableRow(line, trimmed string) bool {
	if !strings.Contains(line, "|") {
		return false
	}
	return !strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "*")
}

func leadingWidth(line string) int {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	return prefixWidth(line[:len(line)-len(rest)])
}
