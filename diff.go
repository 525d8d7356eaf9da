package mdtidy

import (
	diff "github.com/shogoki/gotextdiff"
)

// UnifiedDiff renders the change from before to after as a unified diff
// labelled with path. Equal inputs produce an empty string.
func UnifiedDiff(path, before, after string) string {
	if before == after {
		return ""
	}
	return string(diff.Diff(path, []byte(before), path, []byte(after)))
}
