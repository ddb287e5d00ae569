package htmldoc

import (
	"github.com/npillmayer/markdoc/input/markdown/inline"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// appendSpans renders inline spans as children of parent. A failing
// span never skips or corrupts its neighbours.
func (doc *Document) appendSpans(parent *html.Node, spans []inline.Span) {
	for _, span := range spans {
		switch s := span.(type) {
		case inline.Text:
			if s.Content != "" {
				parent.AppendChild(text(s.Content))
			}
		case inline.Emphasis:
			parent.AppendChild(emphasisNode(s))
		case inline.Math:
			parent.AppendChild(doc.mathNode(s.Source, s.Raw, s.Shape.IsDisplay()))
		case inline.Image:
			parent.AppendChild(doc.imageNode(s))
		}
	}
}

func emphasisNode(e inline.Emphasis) *html.Node {
	var node *html.Node
	switch e.Style {
	case inline.Bold:
		node = element(atom.Strong)
	case inline.BoldItalic:
		node = element(atom.Strong)
		em := element(atom.Em)
		em.AppendChild(text(e.Content))
		node.AppendChild(em)
		return node
	default:
		node = element(atom.Em)
	}
	node.AppendChild(text(e.Content))
	return node
}

// mathNode renders a formula. The bridge validates the source; only a
// formula that parses is marked up as math (carrying its delimited
// LaTeX source for a client-side math renderer). A rejected formula
// falls back to the original delimited text, rendered literally.
func (doc *Document) mathNode(source string, raw string, display bool) *html.Node {
	if _, err := doc.bridge.Convert(source); err != nil {
		tracer().Infof("formula fallback to literal text: %v", err)
		if display {
			p := element(atom.P)
			p.AppendChild(text(raw))
			return p
		}
		return text(raw)
	}
	var node *html.Node
	if display {
		node = element(atom.P)
		setAttr(node, "class", "math display")
		setAttr(node, "style", "text-align:center")
	} else {
		node = element(atom.Span)
		setAttr(node, "class", "math inline")
	}
	node.AppendChild(text(raw))
	return node
}
