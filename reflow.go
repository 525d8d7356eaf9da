package mdtidy

import (
	"strings"
)

type blockKind uint8

const (
	blockNone blockKind = iota
	blockParagraph
	blockHeading
	blockListItem
)

// block is the run of lines waiting to be wrapped together.
type block struct {
	kind blockKind
	raw  string
	// prefix opens the first output line: the hash run for headings, the
	// indent and marker for list items.
	prefix string
	width  int
	lines  []string
	// lastWidth and lastAtoms describe the newest heading line.
	lastWidth int
	lastAtoms int
}

type reflower struct {
	cfg     reflowConfig
	out     strings.Builder
	inFence bool
	block   block
}

// Reflow rewraps the paragraphs, headings and list items of a Markdown
// document so no line exceeds the configured width. Code fences, tables and
// blank lines are passed through unchanged. Reflow is idempotent.
func Reflow(text string, opts ...ReflowOption) string {
	r := &reflower{cfg: newReflowConfig(opts)}
	r.out.Grow(len(text) + len(text)/16)
	lines := splitLines(text)
	if r.cfg.frontMatter {
		if end := frontMatterEnd(lines); end > 0 {
			for _, line := range lines[:end] {
				r.emit(line)
			}
			lines = lines[end:]
		}
	}
	for _, line := range lines {
		r.feed(line)
	}
	r.flush()
	return r.out.String()
}

func (r *reflower) feed(line string) {
	cl := classify(line, r.inFence, r.cfg)
	switch cl.kind {
	case lineFence:
		r.flush()
		r.emit(line)
		r.inFence = !r.inFence
	case lineFenced:
		r.emit(line)
	case lineTable:
		r.flush()
		r.emit(line)
	case lineBlank:
		r.flush()
		r.emit("")
	case lineHeading:
		r.flush()
		r.block = block{
			kind:   blockHeading,
			raw:    line,
			prefix: cl.prefix,
			width:  r.cfg.width - (prefixWidth(cl.prefix) + 1),
			lines:  []string{cl.body},
		}
		r.block.measureLast(cl.body)
	case lineListItem:
		r.flush()
		r.block = block{
			kind:   blockListItem,
			raw:    line,
			prefix: cl.prefix,
			width:  r.cfg.width - prefixWidth(cl.prefix),
			lines:  []string{cl.body},
		}
	default:
		r.plain(line, cl.body)
	}
}

// plain routes a paragraph line into the open block. Lines hanging under a
// list item and lines that continue a wrapped heading stay with that block
// so a second pass reproduces the first.
func (r *reflower) plain(line, body string) {
	switch r.block.kind {
	case blockParagraph:
		r.block.lines = append(r.block.lines, body)
		return
	case blockListItem:
		if leadingWidth(line) >= prefixWidth(r.block.prefix) {
			r.block.lines = append(r.block.lines, body)
			return
		}
	case blockHeading:
		if r.continuesHeading(line, body) {
			r.block.lines = append(r.block.lines, body)
			r.block.measureLast(body)
			return
		}
	}
	r.flush()
	r.block = block{kind: blockParagraph, width: r.cfg.width, lines: []string{body}}
}

// continuesHeading reports whether line could only have been produced by
// wrapping the open heading: line itself fits the heading width, the line
// above is full and the first atom of line does not fit on it. Absorbed
// lines rewrap to themselves.
func (r *reflower) continuesHeading(line, body string) bool {
	b := &r.block
	if b.lines[0] == "" || leadingWidth(line) > 0 {
		return false
	}
	if b.lastWidth > b.width && b.lastAtoms > 1 {
		return false
	}
	atoms := splitAtoms(body)
	if len(atoms) > 1 && textWidth(strings.Join(atoms, " ")) > b.width {
		return false
	}
	return b.lastWidth+1+firstAtomWidth(body) > b.width
}

func (b *block) measureLast(body string) {
	atoms := splitAtoms(body)
	b.lastAtoms = len(atoms)
	b.lastWidth = textWidth(strings.Join(atoms, " "))
}

func (r *reflower) flush() {
	b := r.block
	r.block = block{}
	switch b.kind {
	case blockParagraph:
		for _, line := range wrapAtoms(splitAtoms(strings.Join(b.lines, " ")), b.width) {
			r.emit(line)
		}
	case blockHeading:
		r.flushHeading(b)
	case blockListItem:
		r.flushListItem(b)
	}
}

func (r *reflower) flushHeading(b block) {
	if len(b.lines) == 1 && prefixWidth(b.prefix)+1+textWidth(b.lines[0]) <= r.cfg.width {
		r.emit(b.raw)
		return
	}
	wrapped := wrapAtoms(splitAtoms(strings.Join(b.lines, " ")), b.width)
	if len(wrapped) == 0 {
		r.emit(b.raw)
		return
	}
	r.emit(b.prefix + " " + wrapped[0])
	// Continuation lines carry neither hashes nor indent.
	for _, line := range wrapped[1:] {
		r.emit(line)
	}
}

func (r *reflower) flushListItem(b block) {
	wrapped := wrapAtoms(gluePipes(splitAtoms(strings.Join(b.lines, " "))), b.width)
	if len(wrapped) == 0 {
		r.emit(b.raw)
		return
	}
	r.emit(b.prefix + wrapped[0])
	hang := strings.Repeat(" ", prefixWidth(b.prefix))
	for _, line := range wrapped[1:] {
		r.emit(hang + line)
	}
}

func (r *reflower) emit(line string) {
	r.out.WriteString(line)
	r.out.WriteByte('\n')
}

// splitLines splits text into lines without terminators. A final newline
// does not start an extra empty line and CRLF endings are read as LF.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
