package markdown

import (
	"github.com/npillmayer/markdoc/input/markdown/inline"
)

// BlockEvent is one structural unit of the document, emitted by the
// scanner in document order.
type BlockEvent interface {
	block()
}

// Heading is a '#'-prefixed line. Level is between 1 and 6; deeper
// nesting in the source is clamped, not rejected.
type Heading struct {
	Level int
	Spans []inline.Span
}

// Paragraph is a plain text line, possibly with image references
// interleaved between tokenized text segments.
type Paragraph struct {
	Spans []inline.Span
}

// ListItem is an unordered list entry ('* ' or '- ').
type ListItem struct {
	Spans []inline.Span
}

// CodeFenceBoundary marks entering or leaving a fenced code region.
type CodeFenceBoundary struct {
	Entering bool
}

// CodeFenceLine is one verbatim line inside a code fence. No inline
// processing is applied.
type CodeFenceLine struct {
	Text string
}

// MathBlock is display math on its own block-level line(s). Source is
// the buffered content with delimiters stripped; Raw keeps the
// delimited text for literal fallback.
type MathBlock struct {
	Source string
	Raw    string
}

// Table is a rectangular grid of tokenized cells; rows and columns are
// both order-significant.
type Table struct {
	Grid [][][]inline.Span
}

// HorizontalRule is a lone '---' line.
type HorizontalRule struct{}

// BlankLine is an empty (or whitespace-only) input line.
type BlankLine struct{}

func (h Heading) block()           {}
func (p Paragraph) block()         {}
func (li ListItem) block()         {}
func (b CodeFenceBoundary) block() {}
func (l CodeFenceLine) block()     {}
func (m MathBlock) block()         {}
func (t Table) block()             {}
func (r HorizontalRule) block()    {}
func (b BlankLine) block()         {}
