/*
Package markdown scans a markdown document into a stream of block-level
events.

The scanner is a single-pass, line-oriented state machine with four
states: normal, inside a code fence, inside a multi-line math block,
and inside a table. Inline text within blocks is delegated to the
inline sub-package; table rows are buffered and assembled into a
rectangular grid of tokenized cells.

The event stream is consumed by an Emitter, which renders it into a
target document. This package knows nothing about the output format.

Failures while scanning never abort the document: an unclosed math
block or code fence is flushed literally, and a table is flushed as
soon as a non-table line is seen.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markdoc.scan'.
func tracer() tracing.Trace {
	return tracing.Select("markdoc.scan")
}
