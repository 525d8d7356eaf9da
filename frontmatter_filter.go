package mdtidy

import "strings"

const maxFrontMatterProbeLines = 1024

// frontMatterEnd returns how many leading lines form a front matter block,
// or 0 when the document does not open with one. An opening delimiter whose
// closing twin never shows up is treated as ordinary text.
func frontMatterEnd(lines []string) int {
	if len(lines) < 3 {
		return 0
	}
	delim, ok := parseOpeningFrontMatterDelimiter(lines[0])
	if !ok {
		return 0
	}
	if !frontMatterMetadataLikely(lines[1]) {
		return 0
	}
	limit := min(len(lines), maxFrontMatterProbeLines)
	for i := 2; i < limit; i++ {
		if strings.TrimSpace(lines[i]) == delim {
			return i + 1
		}
	}
	return 0
}

func parseOpeningFrontMatterDelimiter(line string) (string, bool) {
	switch trimmed := strings.TrimSpace(trimBOM(line)); trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	default:
		return "", false
	}
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.Contains(trimmed, ":") || strings.Contains(trimmed, "=")
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
