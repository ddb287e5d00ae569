package htmldoc

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"net/http"

	_ "image/gif"  // register decoders for the common raster formats
	_ "image/jpeg"

	"github.com/npillmayer/markdoc/input/markdown/inline"
	"github.com/npillmayer/markdoc/resources"
	"golang.org/x/image/draw"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// imageNode resolves and embeds an image, centered and constrained to
// at most 80% of the usable content width, height scaled
// proportionally. An image that cannot be resolved degrades to a
// visible placeholder.
func (doc *Document) imageNode(img inline.Image) *html.Node {
	loader := resources.ResolveImage(doc.docdir, img.Target)
	data, err := loader.Bytes()
	if err != nil {
		tracer().Infof("image placeholder for %s: %v", img.Target, err)
		return placeholderNode(img)
	}
	maxw := maxImageWidth.Of(doc.contentWidth)
	data, width := fitImage(data, maxw)
	wrapper := element(atom.P)
	setAttr(wrapper, "style", "text-align:center")
	node := element(atom.Img)
	setAttr(node, "src", dataURI(data))
	setAttr(node, "alt", img.Alt)
	if width > 0 {
		setAttr(node, "width", itoa(width))
	}
	wrapper.AppendChild(node)
	return wrapper
}

func placeholderNode(img inline.Image) *html.Node {
	node := element(atom.Span)
	setAttr(node, "class", "placeholder")
	label := img.Alt
	if label == "" {
		label = img.Target
	}
	node.AppendChild(text("[image not available: " + label + "]"))
	return node
}

// fitImage decodes data and, if the image is wider than maxw,
// downscales it proportionally and re-encodes it as PNG. It returns
// the (possibly rewritten) bytes plus the display width, or 0 if the
// data does not decode as a raster image and is embedded untouched.
func fitImage(data []byte, maxw int) ([]byte, int) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		tracer().Debugf("image does not decode (%v), embedding as-is", err)
		return data, 0
	}
	b := src.Bounds()
	if b.Dx() <= maxw {
		return data, b.Dx()
	}
	h := b.Dy() * maxw / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxw, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return data, maxw
	}
	tracer().Debugf("image downscaled from %dpx to %dpx width", b.Dx(), maxw)
	return buf.Bytes(), maxw
}

func dataURI(data []byte) string {
	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
