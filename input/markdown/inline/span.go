package inline

import "fmt"

// Style selects the emphasis variant of a span.
type Style int8

// Emphasis styles, ordered by marker length.
const (
	Italic Style = iota + 1 // *payload*
	Bold                    // **payload**
	BoldItalic              // ***payload***
)

func (sty Style) String() string {
	switch sty {
	case Italic:
		return "italic"
	case Bold:
		return "bold"
	case BoldItalic:
		return "bold-italic"
	}
	return "?"
}

// MathShape identifies the delimiter pair a math span was written with.
type MathShape int8

// Math delimiter shapes.
const (
	DollarInline   MathShape = iota + 1 // $…$
	ParenInline                         // \(…\)
	DollarDisplay                       // $$…$$
	BracketDisplay                      // \[…\]
)

// IsDisplay is true for delimiter shapes denoting display math.
func (sh MathShape) IsDisplay() bool {
	return sh == DollarDisplay || sh == BracketDisplay
}

func (sh MathShape) String() string {
	switch sh {
	case DollarInline:
		return "$…$"
	case ParenInline:
		return `\(…\)`
	case DollarDisplay:
		return "$$…$$"
	case BracketDisplay:
		return `\[…\]`
	}
	return "?"
}

// Span is one inline markup unit. Spans are flat: payloads are never
// re-tokenized, markers inside a payload are literal characters.
type Span interface {
	fmt.Stringer
	span()
}

// Text is a run of unmarked text, emitted verbatim.
type Text struct {
	Content string
}

// Emphasis is an asterisk-marked run, with the markers stripped.
type Emphasis struct {
	Content string
	Style   Style
}

// Math is a formula span. Source carries the LaTeX payload with the
// delimiters stripped and surrounding whitespace trimmed; Raw keeps the
// original delimited segment for literal fallback when the formula
// cannot be converted.
type Math struct {
	Source string
	Raw    string
	Shape  MathShape
}

// Image is a reference to an image, either a path or a URL.
// Image spans are produced by the block scanner's paragraph handling,
// never by Tokenize itself.
type Image struct {
	Alt    string
	Target string
}

func (t Text) span()     {}
func (e Emphasis) span() {}
func (m Math) span()     {}
func (i Image) span()    {}

func (t Text) String() string     { return fmt.Sprintf("text(%q)", t.Content) }
func (e Emphasis) String() string { return fmt.Sprintf("%s(%q)", e.Style, e.Content) }
func (m Math) String() string     { return fmt.Sprintf("math[%s](%q)", m.Shape, m.Source) }
func (i Image) String() string    { return fmt.Sprintf("image(%q → %s)", i.Alt, i.Target) }
