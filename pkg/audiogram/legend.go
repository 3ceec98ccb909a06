package audiogram

import (
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// Legend row labels, also used as keys of Legend.Hidden
const (
	LegendAirNotMasked    = "Non masqué"
	LegendAirMasked       = "Masqué"
	LegendDiscomfort      = "Inconfort"
	LegendFreeField       = "Champ libre"
	LegendHearingAid      = "Avec appareil auditif"
	LegendBoneNotMasked   = "Non masqué "
	LegendBoneMasked      = "Masqué "
	LegendNoResponse      = "Pas de réponse"
	LegendVibrotactile    = "Vibrotactile"
	LegendInsufficientMsk = "Surassourdissement ou\nmasque insuffisant"
)

type legendRow struct {
	label string
	right Glyph
	left  Glyph
}

var airConductionRows = []legendRow{
	{LegendAirNotMasked, Circle, X},
	{LegendAirMasked, Square, Triangle},
	{LegendDiscomfort, U, U},
	{LegendFreeField, S, S},
	{LegendHearingAid, A, A},
}

var boneConductionRows = []legendRow{
	{LegendBoneNotMasked, LessThan, GreaterThan},
	{LegendBoneMasked, LeftBracket, RightBracket},
}

// Legend draws the symbol key of the chart. The right ear column sits on the
// left of the panel, like on a printed audiogram.
type Legend struct {
	Style Style
	// Vertical unit between rows
	Space float64
	// Nominal glyph size
	SymbolSize  float64
	SymbolColor string
	// Row labels that must not be drawn
	Hidden map[string]bool
}

func NewDefaultLegend(style Style) *Legend {
	return &Legend{
		Style:       style,
		Space:       10,
		SymbolSize:  10,
		SymbolColor: style.Gray,
		Hidden:      map[string]bool{},
	}
}

func (l *Legend) hidden(label string) bool {
	return l.Hidden != nil && l.Hidden[label]
}

func (l *Legend) drawText(doc *svg.SVG, content string, x, y float64, anchor string) {
	for i, line := range strings.Split(content, "\n") {
		doc.Text(x, y+float64(i)*20, line, textAttr(l.Style.LegendFontFamily, l.Style.LegendFontSize, anchor, l.Style.Gray))
	}
}

func (l *Legend) drawBand(doc *svg.SVG, left, top, width, height float64) {
	doc.Rect(left, top, width, height, `fill="`+l.Style.SuperLightGray+`" stroke="none"`)
}

// Draw renders the legend inside bounds with its top-left corner at topLeft and
// returns the height of the framed panel.
func (l *Legend) Draw(doc *svg.SVG, bounds Size, topLeft Point) float64 {
	const (
		symbolXOffset = 15
		textYOffset   = 4
	)

	ss := l.SymbolSize
	left, top, width := topLeft.X, topLeft.Y, bounds.Width
	center := left + width/2
	rightEarX := left + l.Space + symbolXOffset
	leftEarX := left + width - l.Space - symbolXOffset

	v := 15 + top
	l.drawText(doc, "DROITE", left+l.Space+4, v, "start")
	l.drawText(doc, "GAUCHE", left+width-l.Space-4, v, "end")

	section := func(title string, rows []legendRow) {
		v += l.Space - 1
		l.drawBand(doc, left, v, width, 3*l.Space-1)
		v += 2*l.Space - 1
		l.drawText(doc, title, center, v, "middle")

		for _, row := range rows {
			if l.hidden(row.label) {
				continue
			}
			v += 2*l.Space - 1
			l.drawText(doc, row.label, center, v+textYOffset, "middle")
			row.right(doc, ss, Point{X: rightEarX, Y: v}, l.SymbolColor)
			row.left(doc, ss, Point{X: leftEarX, Y: v}, l.SymbolColor)
		}
	}

	section("SEUIL AÉRIEN", airConductionRows)
	section("SEUIL OSSEUX", boneConductionRows)

	v += 0.5 * l.Space
	v += l.Space - 1
	l.drawBand(doc, left, v, width, l.Space-1)
	v += 2*l.Space - 1

	if !l.hidden(LegendNoResponse) {
		l.drawText(doc, LegendNoResponse, center, v+4, "middle")
		BottomLeftArrow(doc, ss, Point{X: rightEarX + 5, Y: v - ss}, l.SymbolColor)
		BottomRightArrow(doc, ss, Point{X: leftEarX - 5, Y: v - ss}, l.SymbolColor)
		v += 2*l.Space - 1
	}

	if !l.hidden(LegendVibrotactile) {
		shift := ss/2 + 2
		l.drawText(doc, LegendVibrotactile, center, v+4, "middle")
		VT(doc, ss, Point{X: leftEarX - ss, Y: v + shift}, l.SymbolColor)
		VT(doc, ss, Point{X: rightEarX - ss, Y: v + shift}, l.SymbolColor)
		v += 2*l.Space - 1
	}

	if !l.hidden(LegendInsufficientMsk) {
		l.drawText(doc, LegendInsufficientMsk, center, v+4, "middle")
		Asterisk(doc, ss, Point{X: leftEarX + ss*0.8, Y: v + ss*2}, l.SymbolColor)
		Asterisk(doc, ss, Point{X: rightEarX + ss*0.8, Y: v + ss*2}, l.SymbolColor)
		v += 4*l.Space - 1
	}

	height := v - top - 5
	doc.Roundrect(left, top, width, height, 10, 10, `fill="none" stroke="`+l.Style.Gray+`" stroke-width="1.5"`)

	return height
}
