/*
Package htmldoc renders a markdown block-event stream into an HTML
document artifact.

The emitter supports six heading levels, paragraphs composed of mixed
emphasis/math/plain runs, tables from a rectangular span grid, a
horizontal rule drawn as a paragraph border, and centered images
constrained to at most 80% of the usable content width. Formulas are
validated by the math bridge; a formula the bridge rejects appears as
its original delimited text, an image that cannot be resolved appears
as a visible placeholder. Neither ever aborts the document.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmldoc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markdoc.backend'.
func tracer() tracing.Trace {
	return tracing.Select("markdoc.backend")
}
