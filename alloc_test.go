package mdtidy

import (
	"strings"
	"testing"
)

func TestReflowAllocations(t *testing.T) {
	src := benchmarkDocument()
	lines := strings.Count(src, "\n")
	allocs := testing.AllocsPerRun(20, func() {
		_ = Reflow(src)
	})
	if perLine := allocs / float64(lines); perLine > 40 {
		t.Fatalf("too many allocations per input line: got %.2f", perLine)
	}
}
