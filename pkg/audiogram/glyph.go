package audiogram

import (
	"math"

	svg "github.com/ajstarks/svgo/float"
	"github.com/tdewolff/canvas"
)

// Glyph draws one audiology symbol centered on pos. size is the nominal symbol
// size in px, every glyph scales it on its own.
type Glyph func(doc *svg.SVG, size float64, pos Point, color string)

const glyphStrokeWidth = 2

func drawPath(doc *svg.SVG, p *canvas.Path, color, fill string) {
	doc.Path(p.ToSVG(), strokeAttr(color, glyphStrokeWidth, fill))
}

func drawLine(doc *svg.SVG, x1, y1, x2, y2 float64, color string) {
	doc.Line(x1, y1, x2, y2, strokeAttr(color, glyphStrokeWidth, "none"))
}

func Square(doc *svg.SVG, size float64, pos Point, color string) {
	s := size / 2
	doc.Rect(pos.X-s, pos.Y-s, s*2, s*2, strokeAttr(color, glyphStrokeWidth, "white"))
}

func Circle(doc *svg.SVG, size float64, pos Point, color string) {
	doc.Circle(pos.X, pos.Y, size*0.5, strokeAttr(color, glyphStrokeWidth, "white"))
}

func Triangle(doc *svg.SVG, size float64, pos Point, color string) {
	s := size * 0.6

	p := &canvas.Path{}
	p.MoveTo(pos.X, pos.Y-s*0.9)
	p.LineTo(pos.X+s, pos.Y+s*0.9)
	p.LineTo(pos.X-s, pos.Y+s*0.9)
	p.Close()
	drawPath(doc, p, color, "white")
}

// dir is -1 for an arrow pointing to the bottom left, 1 for bottom right
func noResponseArrow(doc *svg.SVG, size float64, pos Point, color string, dir float64) {
	x := pos.X
	y := pos.Y + size/4

	s := size * 0.7
	arrowLen := s * 1.2
	tailLen := 0.55 * s
	oy := s * 0.6

	tipX := x + dir*arrowLen
	tipY := y + arrowLen + oy

	p := &canvas.Path{}
	p.MoveTo(x, y+oy)
	p.LineTo(tipX, tipY)
	p.MoveTo(tipX, tipY)
	p.LineTo(tipX-dir*tailLen, tipY)
	p.MoveTo(tipX, tipY)
	p.LineTo(tipX, tipY-tailLen)
	drawPath(doc, p, color, "none")
}

func BottomLeftArrow(doc *svg.SVG, size float64, pos Point, color string) {
	noResponseArrow(doc, size, pos, color, -1)
}

func BottomRightArrow(doc *svg.SVG, size float64, pos Point, color string) {
	noResponseArrow(doc, size, pos, color, 1)
}

// dir is -1 for "[" and 1 for "]"
func bracket(doc *svg.SVG, size float64, pos Point, color string, dir float64) {
	s := size * 0.4
	v := s * 3

	edge := pos.X + dir*s
	top := pos.Y - v/2
	bottom := pos.Y + v/2

	drawLine(doc, pos.X, top, edge, top, color)
	drawLine(doc, edge, top, edge, bottom, color)
	drawLine(doc, edge, bottom, pos.X, bottom, color)
}

func LeftBracket(doc *svg.SVG, size float64, pos Point, color string) {
	bracket(doc, size, pos, color, -1)
}

func RightBracket(doc *svg.SVG, size float64, pos Point, color string) {
	bracket(doc, size, pos, color, 1)
}

func X(doc *svg.SVG, size float64, pos Point, color string) {
	s := size * 0.5

	p := &canvas.Path{}
	p.MoveTo(pos.X+s, pos.Y-s)
	p.LineTo(pos.X-s, pos.Y+s)
	p.MoveTo(pos.X-s, pos.Y-s)
	p.LineTo(pos.X+s, pos.Y+s)
	drawPath(doc, p, color, "none")
}

func GreaterThan(doc *svg.SVG, size float64, pos Point, color string) {
	s := size * 0.5
	drawLine(doc, pos.X-s, pos.Y-s, pos.X+s, pos.Y, color)
	drawLine(doc, pos.X+s, pos.Y, pos.X-s, pos.Y+s, color)
}

func LessThan(doc *svg.SVG, size float64, pos Point, color string) {
	s := size * 0.5
	drawLine(doc, pos.X+s, pos.Y-s, pos.X-s, pos.Y, color)
	drawLine(doc, pos.X-s, pos.Y, pos.X+s, pos.Y+s, color)
}

// U marks the discomfort threshold
func U(doc *svg.SVG, size float64, pos Point, color string) {
	s := size * 0.5

	p := &canvas.Path{}
	p.MoveTo(pos.X-s, pos.Y)
	p.ArcTo(s, s, 0, true, false, pos.X+s, pos.Y)
	p.LineTo(pos.X+s, pos.Y-s*1.3)
	p.MoveTo(pos.X-s, pos.Y)
	p.LineTo(pos.X-s, pos.Y-s*1.3)
	drawPath(doc, p, color, "none")
}

// S marks a free field measurement
func S(doc *svg.SVG, size float64, pos Point, color string) {
	r := size * 0.3
	x := pos.X
	y := pos.Y + r
	vy := -r * 2

	// top serif
	drawLine(doc, x+r/2, y-r+vy, x, y-r+vy, color)

	upper := Point{X: x, Y: y + vy}
	p := &canvas.Path{}
	p.MoveTo(upper.X+r*math.Cos(math.Pi/2), upper.Y+r*math.Sin(math.Pi/2))
	p.ArcTo(r, r, 0, false, true, upper.X+r*math.Cos(math.Pi*1.5), upper.Y+r*math.Sin(math.Pi*1.5))
	drawPath(doc, p, color, "none")

	lower := Point{X: x, Y: y + r*2 + vy}
	p = &canvas.Path{}
	p.MoveTo(lower.X+r*math.Cos(-math.Pi/2), lower.Y+r*math.Sin(-math.Pi/2))
	p.ArcTo(r, r, 0, false, true, lower.X+r*math.Cos(math.Pi/2), lower.Y+r*math.Sin(math.Pi/2))
	drawPath(doc, p, color, "none")

	// bottom serif
	drawLine(doc, x, y+3*r+vy, x-r*0.7, y+3*r+vy, color)
}

func Z(doc *svg.SVG, size float64, pos Point, color string) {
	const a = 0.75
	s := size

	drawLine(doc, pos.X-s*a, pos.Y+s, pos.X+s*a, pos.Y+s, color)
	drawLine(doc, pos.X+s*a, pos.Y+s, pos.X-s*a, pos.Y-s, color)
	drawLine(doc, pos.X-s*a, pos.Y-s, pos.X+s*a, pos.Y-s, color)
}

// A marks a threshold measured with a hearing aid
func A(doc *svg.SVG, size float64, pos Point, color string) {
	const a = 0.75
	s := size * 0.6

	drawLine(doc, pos.X-s*a, pos.Y+s, pos.X, pos.Y-s, color)
	drawLine(doc, pos.X, pos.Y-s, pos.X+s*a, pos.Y+s, color)
	// crossbar
	drawLine(doc, pos.X-s*a/2, pos.Y+s*0.2, pos.X+s*a/2, pos.Y+s*0.2, color)
}

// Asterisk marks over-masking or insufficient masking. It is drawn up and to the
// left of pos, like a footnote mark.
func Asterisk(doc *svg.SVG, size float64, pos Point, color string) {
	x := pos.X - size*0.8
	y := pos.Y - size*0.8
	s := size * 0.4

	cos, sin := math.Cos(math.Pi/6), math.Sin(math.Pi/6)

	drawLine(doc, x+s*sin, y+s*cos, x-s*sin, y-s*cos, color)
	drawLine(doc, x+s*sin, y-s*cos, x-s*sin, y+s*cos, color)
	drawLine(doc, x+s, y, x-s, y, color)
}

// VT marks a vibrotactile response
func VT(doc *svg.SVG, size float64, pos Point, color string) {
	x := pos.X + size
	y := pos.Y - size/2
	s := size * 0.5
	xt := s / 3

	// V
	drawLine(doc, x-s/2, y, x, y-s, color)
	drawLine(doc, x-s/2, y, x-s, y-s, color)
	// T
	drawLine(doc, x+s/2+xt, y, x+s/2+xt, y-s, color)
	drawLine(doc, x+xt, y-s, x+s+xt, y-s, color)
}

var glyphs = map[string]Glyph{
	"square":             Square,
	"circle":             Circle,
	"triangle":           Triangle,
	"bottom_left_arrow":  BottomLeftArrow,
	"bottom_right_arrow": BottomRightArrow,
	"left_bracket":       LeftBracket,
	"right_bracket":      RightBracket,
	"x":                  X,
	"greater_than":       GreaterThan,
	"less_than":          LessThan,
	"u":                  U,
	"s":                  S,
	"z":                  Z,
	"a":                  A,
	"asterisk":           Asterisk,
	"vt":                 VT,
}

func GlyphByName(name string) (Glyph, bool) {
	g, ok := glyphs[name]
	return g, ok
}

// GlyphNames lists the catalog in no particular order.
func GlyphNames() []string {
	names := make([]string, 0, len(glyphs))
	for name := range glyphs {
		names = append(names, name)
	}
	return names
}
