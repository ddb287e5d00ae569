package htmldoc

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/markdoc/core/percent"
	"github.com/npillmayer/markdoc/formula"
	"github.com/npillmayer/markdoc/input/markdown"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultContentWidth is the usable content width in pixels, the base
// for the image width constraint.
const DefaultContentWidth = 760

// maxImageWidth is the share of the content width an image may occupy.
var maxImageWidth = percent.FromInt(80)

// Document is an emitter rendering block events into an HTML tree.
// Create one per conversion run with NewDocument, feed it to
// markdown.Convert, then serialize it with WriteTo.
type Document struct {
	bridge       *formula.Bridge
	docdir       string
	contentWidth int
	root         *html.Node // the <html> element
	body         *html.Node
	codeNode     *html.Node // open <code> while inside a fence
	listNode     *html.Node // open <ul> while emitting list items
}

// NewDocument creates an empty HTML document. docdir is the directory
// of the source document, the base for relative image paths.
func NewDocument(docdir string, bridge *formula.Bridge) *Document {
	if bridge == nil {
		bridge = formula.NewBridge()
	}
	doc := &Document{
		bridge:       bridge,
		docdir:       docdir,
		contentWidth: DefaultContentWidth,
	}
	doc.root = element(atom.Html)
	head := element(atom.Head)
	meta := element(atom.Meta)
	setAttr(meta, "charset", "utf-8")
	head.AppendChild(meta)
	doc.root.AppendChild(head)
	doc.body = element(atom.Body)
	doc.root.AppendChild(doc.body)
	return doc
}

var _ markdown.Emitter = (*Document)(nil)

// EmitBlock renders one block event. Recoverable failures (formulas,
// images) degrade to literal or placeholder content; EmitBlock itself
// only fails on events arriving in an impossible order.
func (doc *Document) EmitBlock(ev markdown.BlockEvent) error {
	if _, ok := ev.(markdown.ListItem); !ok {
		doc.listNode = nil // a non-item event ends the current list
	}
	switch e := ev.(type) {
	case markdown.Heading:
		h := element(headingAtom(e.Level))
		doc.appendSpans(h, e.Spans)
		doc.body.AppendChild(h)
	case markdown.Paragraph:
		p := element(atom.P)
		doc.appendSpans(p, e.Spans)
		doc.body.AppendChild(p)
	case markdown.ListItem:
		if doc.listNode == nil {
			doc.listNode = element(atom.Ul)
			doc.body.AppendChild(doc.listNode)
		}
		li := element(atom.Li)
		doc.appendSpans(li, e.Spans)
		doc.listNode.AppendChild(li)
	case markdown.CodeFenceBoundary:
		if e.Entering {
			pre := element(atom.Pre)
			doc.codeNode = element(atom.Code)
			pre.AppendChild(doc.codeNode)
			doc.body.AppendChild(pre)
		} else {
			doc.codeNode = nil
		}
	case markdown.CodeFenceLine:
		if doc.codeNode == nil {
			return fmt.Errorf("code line outside of a code fence")
		}
		doc.codeNode.AppendChild(text(e.Text + "\n"))
	case markdown.MathBlock:
		doc.body.AppendChild(doc.mathNode(e.Source, e.Raw, true))
	case markdown.Table:
		doc.body.AppendChild(doc.tableNode(e))
	case markdown.HorizontalRule:
		p := element(atom.P)
		setAttr(p, "style", "border-bottom:1px solid;margin:1em 0")
		doc.body.AppendChild(p)
	case markdown.BlankLine:
		doc.body.AppendChild(element(atom.P))
	default:
		return fmt.Errorf("unknown block event %T", ev)
	}
	return nil
}

// WriteTo serializes the document.
func (doc *Document) WriteTo(w io.Writer) error {
	return html.Render(w, doc.root)
}

func (doc *Document) tableNode(t markdown.Table) *html.Node {
	table := element(atom.Table)
	setAttr(table, "border", "1") // 'Table Grid' look
	for _, row := range t.Grid {
		tr := element(atom.Tr)
		for _, cell := range row {
			td := element(atom.Td)
			doc.appendSpans(td, cell)
			tr.AppendChild(td)
		}
		table.AppendChild(tr)
	}
	return table
}

func headingAtom(level int) atom.Atom {
	switch level {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	}
	return atom.H6
}

// --- Node helpers ----------------------------------------------------------

func element(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
}

func text(content string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: content}
}

func setAttr(n *html.Node, key, val string) {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func itoa(n int) string { return strconv.Itoa(n) }
