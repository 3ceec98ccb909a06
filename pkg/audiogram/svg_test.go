package audiogram

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"testing"

	svg "github.com/ajstarks/svgo/float"
)

// svgNode is a generic element used to inspect rendered SVG.
type svgNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []svgNode  `xml:",any"`
}

func (n svgNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (n svgNode) float(t *testing.T, name string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(n.attr(name), 64)
	if err != nil {
		t.Fatalf("attribute %s=%q of <%s> is not a number: %v", name, n.attr(name), n.XMLName.Local, err)
	}
	return v
}

// walk returns every descendant element in document order.
func (n svgNode) walk() []svgNode {
	var nodes []svgNode
	for _, c := range n.Children {
		nodes = append(nodes, c)
		nodes = append(nodes, c.walk()...)
	}
	return nodes
}

func parseSVG(t *testing.T, data []byte) svgNode {
	t.Helper()
	var root svgNode
	if err := xml.Unmarshal(data, &root); err != nil {
		t.Fatalf("rendered SVG is not valid XML: %v\n%s", err, data)
	}
	if root.XMLName.Local != "svg" {
		t.Fatalf("expected <svg> root, got <%s>", root.XMLName.Local)
	}
	return root
}

// drawSVG runs draw on a fresh document and returns the parsed result.
func drawSVG(t *testing.T, draw func(doc *svg.SVG)) svgNode {
	t.Helper()
	var buf bytes.Buffer
	doc := svg.New(&buf)
	doc.Start(500, 500)
	draw(doc)
	doc.End()
	return parseSVG(t, buf.Bytes())
}

func filterNodes(nodes []svgNode, keep func(svgNode) bool) []svgNode {
	var out []svgNode
	for _, n := range nodes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

func byClass(class string) func(svgNode) bool {
	return func(n svgNode) bool { return n.attr("class") == class }
}

func byName(name string) func(svgNode) bool {
	return func(n svgNode) bool { return n.XMLName.Local == name }
}
