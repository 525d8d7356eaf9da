// Package mdtidy tidies Markdown files in place.
//
// Two independent transforms are provided:
//
//   - Trim drops trailing blank lines and a dangling closing code fence,
//     leaving exactly one trailing newline.
//   - Reflow rewraps paragraphs, headings and list items to a maximum width
//     while copying code fences, tables and blank lines through verbatim.
//
// Both are pure functions over text. TrimFile, ReflowFile and ReflowDir
// apply them to files on disk and only rewrite a file when its content
// changes.
//
// Example:
//
//	out := mdtidy.Reflow(src, mdtidy.WithWidth(72))
//	changed, err := mdtidy.ReflowFile("docs/plans/roadmap.md")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Reflow classifies each line as a fence boundary, a line inside a fence, a
// table row, a blank line, a heading, a list item or paragraph text, in that
// order. Consecutive paragraph lines are joined and greedily rewrapped.
// Wrapped headings continue without repeating their hashes; wrapped list
// items continue under the first character of the item text.
package mdtidy
