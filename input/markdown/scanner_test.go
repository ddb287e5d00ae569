package markdown

import (
	"strings"
	"testing"

	"github.com/npillmayer/markdoc/input/markdown/inline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestScanHeadings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan("# One\n### Three\n######## Deep")
	assert.Len(t, events, 3)
	assert.Equal(t, Heading{Level: 1, Spans: []inline.Span{inline.Text{Content: "One"}}}, events[0])
	assert.Equal(t, 3, events[1].(Heading).Level)
	h := events[2].(Heading)
	assert.Equal(t, 6, h.Level, "heading levels deeper than 6 clamp, not reject")
	assert.Equal(t, []inline.Span{inline.Text{Content: "Deep"}}, h.Spans)
}

func TestScanHorizontalRuleAndBlank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan("---\n\ntext")
	assert.Len(t, events, 3)
	assert.Equal(t, HorizontalRule{}, events[0])
	assert.Equal(t, BlankLine{}, events[1])
	assert.IsType(t, Paragraph{}, events[2])
}

func TestScanListItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan("* first\n- *second*")
	assert.Len(t, events, 2)
	assert.Equal(t, ListItem{Spans: []inline.Span{inline.Text{Content: "first"}}}, events[0])
	li := events[1].(ListItem)
	assert.Equal(t, []inline.Span{inline.Emphasis{Content: "second", Style: inline.Italic}}, li.Spans)
}

func TestScanCodeFence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan("```\nx := 1\n# not a heading\n```")
	assert.Equal(t, []BlockEvent{
		CodeFenceBoundary{Entering: true},
		CodeFenceLine{Text: "x := 1"},
		CodeFenceLine{Text: "# not a heading"},
		CodeFenceBoundary{Entering: false},
	}, events)
}

func TestScanCodeFenceNeverClosed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan("```\ninterior")
	assert.Equal(t, []BlockEvent{
		CodeFenceBoundary{Entering: true},
		CodeFenceLine{Text: "interior"},
	}, events, "an unclosed fence emits its lines with no trailing boundary")
}

func TestScanMultiLineMathBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan("$$\nx+y\n$$")
	assert.Len(t, events, 1, "expected exactly one math block event")
	mb := events[0].(MathBlock)
	assert.Equal(t, "x+y", mb.Source)
	assert.Equal(t, "$$\nx+y\n$$", mb.Raw)
}

func TestScanSingleLineMathBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan(`$$E = mc^2$$`)
	assert.Equal(t, []BlockEvent{MathBlock{Source: "E = mc^2", Raw: "$$E = mc^2$$"}}, events)
	//
	events = Scan(`\[ a \le b \]`)
	assert.Len(t, events, 1)
	assert.Equal(t, `a \le b`, events[0].(MathBlock).Source)
}

func TestScanMathBlockClosingShapeMustMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan("$$\na\n\\]\nb\n$$")
	assert.Len(t, events, 1, `a \] line must not close a $$ block`)
	mb := events[0].(MathBlock)
	assert.Contains(t, mb.Raw, `\]`)
}

func TestScanMathBlockNeverClosed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan("$$\nx+y")
	assert.Len(t, events, 1)
	p, ok := events[0].(Paragraph)
	assert.True(t, ok, "an unclosed math block flushes literally as a paragraph")
	assert.Equal(t, []inline.Span{inline.Text{Content: "$$\nx+y"}}, p.Spans)
}

func TestScanParagraphWithImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan("See ![fig](fig.png) above.")
	assert.Len(t, events, 1)
	p := events[0].(Paragraph)
	assert.Equal(t, []inline.Span{
		inline.Text{Content: "See "},
		inline.Image{Alt: "fig", Target: "fig.png"},
		inline.Text{Content: " above."},
	}, p.Spans)
}

func TestScanTableFlushedByBlankLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan("| a | b |\n|---|---|\n| 1 | 2 |\n\nafter")
	assert.Len(t, events, 3)
	table, ok := events[0].(Table)
	assert.True(t, ok, "expected table before the blank line")
	assert.Len(t, table.Grid, 2, "separator row must be discarded")
	assert.Equal(t, BlankLine{}, events[1])
	assert.IsType(t, Paragraph{}, events[2])
}

func TestScanTableFlushedByNonTableLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan("| a |\n# heading")
	assert.Len(t, events, 2)
	assert.IsType(t, Table{}, events[0])
	assert.Equal(t, 1, events[1].(Heading).Level, "flushing line re-evaluates under normal rules")
}

func TestScanTableFlushedAtEndOfInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	events := Scan("| a | b |")
	assert.Len(t, events, 1)
	assert.IsType(t, Table{}, events[0])
}

func TestScanDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	doc := strings.Join([]string{
		"# Title",
		"",
		"Some *emphasized* text with $x^2$ inline.",
		"",
		"| h1 | h2 |",
		"|----|----|",
		"| a  | b  |",
		"",
		"---",
	}, "\n")
	events := Scan(doc)
	types := make([]string, 0, len(events))
	for _, ev := range events {
		switch ev.(type) {
		case Heading:
			types = append(types, "heading")
		case BlankLine:
			types = append(types, "blank")
		case Paragraph:
			types = append(types, "para")
		case Table:
			types = append(types, "table")
		case HorizontalRule:
			types = append(types, "rule")
		}
	}
	assert.Equal(t, []string{"heading", "blank", "para", "blank", "table", "blank", "rule"}, types)
}
