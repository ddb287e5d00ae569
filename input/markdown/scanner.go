package markdown

import (
	"regexp"
	"strings"

	"github.com/npillmayer/markdoc/input/markdown/inline"
)

// parserState is the block scanner's state. Exactly one state is
// active at any time.
type parserState int8

const (
	stateNormal parserState = iota
	stateCodeFence
	stateMathBlock
	stateTable
)

// mathShape distinguishes $$…$$ blocks from \[…\] blocks. A block is
// only closed by the delimiter shape that opened it.
type mathShape int8

const (
	dollarBlock mathShape = iota
	bracketBlock
)

// singleLineMathRx matches a display formula opening and closing on
// one stripped line.
var singleLineMathRx = regexp.MustCompile(`^(?:\$\$(?s:.*?)\$\$|\\\[(?s:.*?)\\\])$`)

// mathDelimsRx strips a leading and a trailing display/inline math
// delimiter, together with adjacent whitespace.
var mathDelimsRx = regexp.MustCompile(`^(?:\${1,2}|\\\(|\\\[)\s*|\s*(?:\${1,2}|\\\)|\\\])$`)

// imageRx finds image references within a paragraph line.
var imageRx = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

type scanner struct {
	state     parserState
	mathBuf   []string
	mathShape mathShape
	tableBuf  []string
	events    []BlockEvent
	lineno    int
}

// Scan runs the block state machine over a whole document and returns
// the resulting event stream. All scanner state is local to one call.
func Scan(text string) []BlockEvent {
	s := &scanner{}
	for i, line := range strings.Split(text, "\n") {
		s.lineno = i + 1
		s.process(line)
	}
	s.finish()
	return s.events
}

func (s *scanner) emit(ev BlockEvent) {
	s.events = append(s.events, ev)
}

func (s *scanner) process(line string) {
	stripped := strings.TrimSpace(line)
	switch s.state {
	case stateCodeFence:
		if strings.HasPrefix(stripped, "```") {
			s.emit(CodeFenceBoundary{Entering: false})
			s.state = stateNormal
			return
		}
		s.emit(CodeFenceLine{Text: line})
		return
	case stateMathBlock:
		s.mathBuf = append(s.mathBuf, line)
		if s.closesMathBlock(stripped) {
			s.flushMathBlock()
		}
		return
	}

	// stateNormal or stateTable
	if stripped == "" {
		if s.state == stateTable {
			s.flushTable()
		}
		s.emit(BlankLine{})
		return
	}
	if isTableRow(stripped) {
		if isSeparatorRow(stripped) {
			// header separator, carries no content
			tracer().Debugf("line %d: table separator row discarded", s.lineno)
			return
		}
		s.tableBuf = append(s.tableBuf, stripped)
		s.state = stateTable
		return
	}
	if s.state == stateTable {
		// not a table row anymore: flush, then treat the line normally
		s.flushTable()
	}

	if strings.HasPrefix(stripped, "```") {
		s.emit(CodeFenceBoundary{Entering: true})
		s.state = stateCodeFence
		return
	}
	if shape, open := opensMathBlock(stripped); open {
		tracer().Debugf("line %d: math block opens", s.lineno)
		s.mathShape = shape
		s.mathBuf = append(s.mathBuf, line)
		s.state = stateMathBlock
		return
	}
	if singleLineMathRx.MatchString(stripped) {
		s.emit(MathBlock{Source: stripMathDelims(stripped), Raw: stripped})
		return
	}
	if stripped == "---" {
		s.emit(HorizontalRule{})
		return
	}
	if strings.HasPrefix(stripped, "#") {
		s.emitHeading(stripped)
		return
	}
	if strings.HasPrefix(stripped, "* ") || strings.HasPrefix(stripped, "- ") {
		rest := strings.TrimSpace(stripped[2:])
		s.emit(ListItem{Spans: inline.Tokenize(rest)})
		return
	}
	s.emit(Paragraph{Spans: paragraphSpans(stripped)})
}

// finish flushes open buffers at end-of-input. An unclosed math block
// is incomplete and its lines are emitted literally as a paragraph.
func (s *scanner) finish() {
	if s.state == stateTable {
		s.flushTable()
	}
	if s.state == stateMathBlock && len(s.mathBuf) > 0 {
		tracer().Infof("math block still open at end of input, flushing literally")
		raw := strings.Join(s.mathBuf, "\n")
		s.emit(Paragraph{Spans: []inline.Span{inline.Text{Content: raw}}})
		s.mathBuf = nil
		s.state = stateNormal
	}
	// an open code fence has already emitted its lines; it simply gets
	// no closing boundary
}

// opensMathBlock reports whether a stripped line opens a multi-line
// display math block, i.e. starts a display delimiter without closing
// it on the same line.
func opensMathBlock(stripped string) (mathShape, bool) {
	if strings.HasPrefix(stripped, "$$") {
		closed := len(stripped) >= 4 && strings.HasSuffix(stripped, "$$")
		return dollarBlock, !closed
	}
	if strings.HasPrefix(stripped, `\[`) {
		return bracketBlock, !strings.HasSuffix(stripped, `\]`)
	}
	return 0, false
}

// closesMathBlock reports whether a stripped line ends the currently
// open math block. The closing delimiter must match the shape that
// opened the block.
func (s *scanner) closesMathBlock(stripped string) bool {
	switch s.mathShape {
	case bracketBlock:
		return strings.HasSuffix(stripped, `\]`)
	default:
		return strings.HasSuffix(stripped, "$$")
	}
}

func (s *scanner) flushMathBlock() {
	raw := strings.Join(s.mathBuf, "\n")
	s.emit(MathBlock{Source: stripMathDelims(raw), Raw: raw})
	s.mathBuf = nil
	s.state = stateNormal
}

func (s *scanner) emitHeading(stripped string) {
	hashes := 0
	for hashes < len(stripped) && stripped[hashes] == '#' {
		hashes++
	}
	level := hashes
	if level > 6 {
		level = 6
	}
	text := strings.TrimSpace(stripped[hashes:])
	s.emit(Heading{Level: level, Spans: inline.Tokenize(text)})
}

// stripMathDelims removes the delimiter pair around a formula and trims
// surrounding whitespace.
func stripMathDelims(src string) string {
	return strings.TrimSpace(mathDelimsRx.ReplaceAllString(strings.TrimSpace(src), ""))
}

// paragraphSpans splits a paragraph line at image references and
// tokenizes the text segments in between. Image targets are passed
// through untouched; resolution is the emitter's concern.
func paragraphSpans(stripped string) []inline.Span {
	matches := imageRx.FindAllStringSubmatchIndex(stripped, -1)
	if matches == nil {
		return inline.Tokenize(stripped)
	}
	var spans []inline.Span
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, inline.Tokenize(stripped[last:m[0]])...)
		}
		spans = append(spans, inline.Image{
			Alt:    stripped[m[2]:m[3]],
			Target: stripped[m[4]:m[5]],
		})
		last = m[1]
	}
	if last < len(stripped) {
		spans = append(spans, inline.Tokenize(stripped[last:])...)
	}
	return spans
}
