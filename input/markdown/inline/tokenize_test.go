package inline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TokenizeTestEnviron struct {
	suite.Suite
}

func TestTokenizeFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	suite.Run(t, new(TokenizeTestEnviron))
}

// --- Tests -----------------------------------------------------------------

func (env *TokenizeTestEnviron) TestPlainTextPassthrough() {
	spans := Tokenize("a line without any markers")
	env.Require().Len(spans, 1)
	env.Equal(Text{Content: "a line without any markers"}, spans[0])
}

func (env *TokenizeTestEnviron) TestEmptyInput() {
	spans := Tokenize("")
	env.Require().Len(spans, 1)
	env.Equal(Text{}, spans[0])
}

func (env *TokenizeTestEnviron) TestBoldItalicIsOneSpan() {
	spans := Tokenize("***A***")
	env.Require().Len(spans, 1, "expected a single bold-italic span, not two italics")
	env.Equal(Emphasis{Content: "A", Style: BoldItalic}, spans[0])
}

func (env *TokenizeTestEnviron) TestEmphasisStyles() {
	spans := Tokenize("*a* **b** ***c***")
	env.Require().Len(spans, 5)
	env.Equal(Emphasis{Content: "a", Style: Italic}, spans[0])
	env.Equal(Text{Content: " "}, spans[1])
	env.Equal(Emphasis{Content: "b", Style: Bold}, spans[2])
	env.Equal(Emphasis{Content: "c", Style: BoldItalic}, spans[4])
}

func (env *TokenizeTestEnviron) TestEmptyDelimiterPair() {
	spans := Tokenize("****")
	env.Require().Len(spans, 1)
	env.Equal(Emphasis{Content: "", Style: Bold}, spans[0])
}

func (env *TokenizeTestEnviron) TestUnbalancedMarkerIsLiteral() {
	spans := Tokenize("a * b")
	env.Require().Len(spans, 1)
	env.Equal(Text{Content: "a * b"}, spans[0])
}

func (env *TokenizeTestEnviron) TestDollarMathStripsDelimiters() {
	spans := Tokenize("$$ x^2 $$")
	env.Require().Len(spans, 1)
	m, ok := spans[0].(Math)
	env.Require().True(ok, "expected a math span")
	env.Equal("x^2", m.Source)
	env.Equal("$$ x^2 $$", m.Raw)
	env.Equal(DollarDisplay, m.Shape)
	env.True(m.Shape.IsDisplay())
}

func (env *TokenizeTestEnviron) TestInlineMathShapes() {
	spans := Tokenize(`$a$ and \(b\) and \[c\]`)
	env.Require().Len(spans, 5)
	env.Equal(Math{Source: "a", Raw: "$a$", Shape: DollarInline}, spans[0])
	env.Equal(Math{Source: "b", Raw: `\(b\)`, Shape: ParenInline}, spans[2])
	env.Equal(Math{Source: "c", Raw: `\[c\]`, Shape: BracketDisplay}, spans[4])
}

func (env *TokenizeTestEnviron) TestMathAcrossLineBreak() {
	spans := Tokenize("$x +\ny$")
	env.Require().Len(spans, 1)
	m, ok := spans[0].(Math)
	env.Require().True(ok, "expected a math span across the line break")
	env.Equal("x +\ny", m.Source)
}

func (env *TokenizeTestEnviron) TestMathPayloadNotReTokenized() {
	spans := Tokenize("$a * b * c$")
	env.Require().Len(spans, 1)
	m, ok := spans[0].(Math)
	env.Require().True(ok)
	env.Equal("a * b * c", m.Source, "markers inside math must stay literal")
}

func (env *TokenizeTestEnviron) TestMixedTextAndMarkup() {
	spans := Tokenize("see **bold** and $x$ here")
	env.Require().Len(spans, 5)
	env.Equal(Text{Content: "see "}, spans[0])
	env.Equal(Emphasis{Content: "bold", Style: Bold}, spans[1])
	env.Equal(Text{Content: " and "}, spans[2])
	env.Equal(Math{Source: "x", Raw: "$x$", Shape: DollarInline}, spans[3])
	env.Equal(Text{Content: " here"}, spans[4])
}

// Precedence is a property of the rules slice, not an accident of
// pattern ordering: every rule's own fragment must win against all
// later rules on its canonical example.
func TestRulePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markdoc.scan")
	defer teardown()
	//
	examples := []struct {
		input string
		want  Span
	}{
		{"***x***", Emphasis{Content: "x", Style: BoldItalic}},
		{"**x**", Emphasis{Content: "x", Style: Bold}},
		{"*x*", Emphasis{Content: "x", Style: Italic}},
		{"$$x$$", Math{Source: "x", Raw: "$$x$$", Shape: DollarDisplay}},
		{`\[x\]`, Math{Source: "x", Raw: `\[x\]`, Shape: BracketDisplay}},
		{`\(x\)`, Math{Source: "x", Raw: `\(x\)`, Shape: ParenInline}},
		{"$x$", Math{Source: "x", Raw: "$x$", Shape: DollarInline}},
	}
	for _, ex := range examples {
		spans := Tokenize(ex.input)
		if assert.Len(t, spans, 1, "input %q", ex.input) {
			assert.Equal(t, ex.want, spans[0], "input %q", ex.input)
		}
	}
}
