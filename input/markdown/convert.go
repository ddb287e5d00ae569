package markdown

import (
	"io"
	"os"
	"strings"

	"github.com/npillmayer/markdoc/core"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Emitter renders a stream of block events into an output document.
// Emitters receive events strictly in document order. An emitter error
// aborts the conversion; recoverable conditions (a formula that does
// not convert, an image that cannot be fetched) are to be handled
// inside the emitter with a literal or placeholder fallback.
type Emitter interface {
	EmitBlock(ev BlockEvent) error
}

// ReadDocument reads a whole UTF-8 document, tolerating and stripping a
// byte order mark, and normalizes line endings.
func ReadDocument(r io.Reader) (string, error) {
	bom := unicode.BOMOverride(encoding.Nop.NewDecoder())
	raw, err := io.ReadAll(transform.NewReader(r, bom))
	if err != nil {
		return "", core.WrapError(err, core.EINTERNAL, "cannot read input document")
	}
	return strings.ReplaceAll(string(raw), "\r\n", "\n"), nil
}

// Convert scans a document and feeds the event stream to an emitter.
// Read failures are fatal; everything else degrades locally.
func Convert(r io.Reader, em Emitter) error {
	text, err := ReadDocument(r)
	if err != nil {
		return err
	}
	events := Scan(text)
	tracer().Infof("document scanned into %d block events", len(events))
	for _, ev := range events {
		if err := em.EmitBlock(ev); err != nil {
			return err
		}
	}
	return nil
}

// ConvertFile converts the document at path. A file that cannot be
// opened is the only fatal condition, surfaced immediately.
func ConvertFile(path string, em Emitter) error {
	f, err := os.Open(path)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot open document %s", path)
	}
	defer f.Close()
	return Convert(f, em)
}
