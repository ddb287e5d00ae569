/*
Package inline tokenizes a single logical line of markdown text into a
flat sequence of typed spans.

Spans cover plain text, emphasis (*italic*, **bold**, ***bold-italic***),
math formulas in four delimiter shapes ($…$, \(…\), $$…$$, \[…\]), and
image references. The tokenizer has no notion of document structure;
block-level concerns (fences, tables, multi-line math) live in the
parent package.

Precedence between overlapping markers is expressed as an ordered list
of matcher/classifier rules, tried most-specific first. Spans are never
nested: the payload of an emphasis or math span is kept verbatim, and a
segment that fails every classifier is preserved literally as text.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markdoc.scan'.
func tracer() tracing.Trace {
	return tracing.Select("markdoc.scan")
}
