package inline

import (
	"regexp"
	"strings"
)

// A rule pairs a fragment of the split alternation with a classifier
// for segments that fragment may have matched. classify receives the
// whole segment and must return false if the segment does not belong
// to this rule after all.
type rule struct {
	fragment string
	classify func(seg string) (Span, bool)
}

// rules is the precedence order for inline markup, most specific first.
// Math fragments match non-greedy and across embedded line breaks.
var rules = []rule{
	{`\*\*\*[^*]*\*\*\*`, emphasisClassifier(`\*\*\*([^*]*)\*\*\*`, BoldItalic)},
	{`\*\*[^*]*\*\*`, emphasisClassifier(`\*\*([^*]*)\*\*`, Bold)},
	{`\*[^*]*\*`, emphasisClassifier(`\*([^*]*)\*`, Italic)},
	{`\$\$(?s:.*?)\$\$`, mathClassifier(`\$\$((?s:.*?))\$\$`, DollarDisplay)},
	{`\\\[(?s:.*?)\\\]`, mathClassifier(`\\\[((?s:.*?))\\\]`, BracketDisplay)},
	{`\\\((?s:.*?)\\\)`, mathClassifier(`\\\(((?s:.*?))\\\)`, ParenInline)},
	{`\$(?s:.*?)\$`, mathClassifier(`\$((?s:.*?))\$`, DollarInline)},
}

// splitRx is the union of all rule fragments. Go's regexp engine
// prefers earlier alternatives, so the slice order above is the match
// precedence as well.
var splitRx = compileUnion(rules)

func compileUnion(rules []rule) *regexp.Regexp {
	fragments := make([]string, len(rules))
	for i, r := range rules {
		fragments[i] = "(?:" + r.fragment + ")"
	}
	return regexp.MustCompile(strings.Join(fragments, "|"))
}

func emphasisClassifier(pattern string, sty Style) func(string) (Span, bool) {
	rx := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return func(seg string) (Span, bool) {
		m := rx.FindStringSubmatch(seg)
		if m == nil {
			return nil, false
		}
		return Emphasis{Content: m[1], Style: sty}, true
	}
}

func mathClassifier(pattern string, sh MathShape) func(string) (Span, bool) {
	rx := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return func(seg string) (Span, bool) {
		m := rx.FindStringSubmatch(seg)
		if m == nil {
			return nil, false
		}
		return Math{Source: strings.TrimSpace(m[1]), Raw: seg, Shape: sh}, true
	}
}

// classify runs a matched segment through the rules, in precedence
// order. A segment failing every rule is preserved literally.
func classify(seg string) Span {
	for _, r := range rules {
		if span, ok := r.classify(seg); ok {
			return span
		}
	}
	tracer().Debugf("segment matched split pattern but no classifier: %q", seg)
	return Text{Content: seg}
}

// Tokenize splits text into an ordered sequence of spans. Unmarked text
// between markers is emitted verbatim; unbalanced markers never match
// and pass through as plain text. Empty input yields a single empty
// text span.
func Tokenize(text string) []Span {
	if text == "" {
		return []Span{Text{}}
	}
	locs := splitRx.FindAllStringIndex(text, -1)
	if locs == nil {
		return []Span{Text{Content: text}}
	}
	spans := make([]Span, 0, 2*len(locs)+1)
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			spans = append(spans, Text{Content: text[last:loc[0]]})
		}
		spans = append(spans, classify(text[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, Text{Content: text[last:]})
	}
	return spans
}
