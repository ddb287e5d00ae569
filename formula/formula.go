/*
Package formula is the bridge from LaTeX formula sources to parsed math
expressions.

Conversion failures are always recoverable: an empty source, a formula
the parser cannot digest, or a parser fault all yield a coded error and
never a panic. Callers are expected to fall back to rendering the
original delimited text.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package formula

import (
	"strings"

	"github.com/go-latex/latex"
	"github.com/go-latex/latex/ast"
	"github.com/npillmayer/markdoc/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markdoc.formula'.
func tracer() tracing.Trace {
	return tracing.Select("markdoc.formula")
}

// Bridge converts formula sources. Create one bridge per conversion
// run; it carries the symbol replacements applied before parsing.
type Bridge struct {
	replacements *strings.Replacer
}

// NewBridge creates a bridge. pairs is an optional list of old/new
// source replacements for symbols the parser does not support,
// e.g. ("\nabla", "∇").
func NewBridge(pairs ...string) *Bridge {
	b := &Bridge{}
	if len(pairs) > 0 {
		b.replacements = strings.NewReplacer(pairs...)
	}
	return b
}

// Convert parses a LaTeX source string into a math expression. The
// source is expected to have its delimiters already stripped.
// Empty or whitespace-only input is a no-op failure, not an exception.
func (b *Bridge) Convert(src string) (node ast.Node, err error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, core.Error(core.EINVALID, "empty formula")
	}
	if b.replacements != nil {
		src = b.replacements.Replace(src)
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("formula parser fault: %v", r)
			node, err = nil, core.Error(core.EINVALID, "formula not convertible: %s", excerpt(src))
		}
	}()
	node, err = latex.ParseExpr(src)
	if err != nil {
		tracer().Infof("formula does not parse: %v", err)
		return nil, core.WrapError(err, core.EINVALID, "formula not convertible: %s", excerpt(src))
	}
	return node, nil
}

// excerpt shortens a formula source for user messages.
func excerpt(src string) string {
	const max = 40
	if len(src) <= max {
		return src
	}
	return src[:max] + "…"
}
