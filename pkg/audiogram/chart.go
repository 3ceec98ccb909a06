package audiogram

import (
	"bytes"
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo/float"
)

// The chart is laid out on a letter page (2550x3300 at 300 dpi) scaled down.
const pageScale = 0.6

const (
	ThresholdLinkClass   = "threshold-link"
	ThresholdMarkerClass = "threshold"
)

type Chart struct {
	Axis       Axis
	Ear        Ear
	Thresholds []Threshold
	Style      Style
	// Nil disables the legend
	Legend *Legend
	// Top-left corner of the legend under the right ear panel, shifted with Ear
	LegendOrigin Point
	LegendSize   Size
	Page         Size
	MarkerSize   float64
	// Distance between an axis and its tick labels
	TickOffset float64
	// Hearing level of the bold reference line
	ReferenceDB float64
}

func NewDefaultChart() *Chart {
	axis := NewDefaultAxis()
	style := NewDefaultStyle()

	return &Chart{
		Axis:         axis,
		Ear:          EarRight,
		Thresholds:   DefaultThresholds(),
		Style:        style,
		Legend:       NewDefaultLegend(style),
		LegendOrigin: Point{X: axis.OriginX, Y: axis.DBToY(MaxDB) + 60},
		LegendSize:   Size{Width: 260},
		Page:         Size{Width: 2550 * pageScale, Height: 3300 * pageScale},
		MarkerSize:   10,
		TickOffset:   8,
		ReferenceDB:  20,
	}
}

// Points maps the thresholds to pixel coordinates, in input order.
func (c *Chart) Points() ([]Point, error) {
	points := make([]Point, 0, len(c.Thresholds))
	for _, t := range c.Thresholds {
		x, err := c.Axis.FreqToX(t.Frequency, c.Ear)
		if err != nil {
			return nil, fmt.Errorf("threshold at %v dB: %w", t.DB, err)
		}
		points = append(points, Point{X: x, Y: c.Axis.DBToY(float64(t.DB))})
	}
	return points, nil
}

func (c *Chart) label(doc *svg.SVG, x, y float64, text, anchor string) {
	doc.Text(x, y, text, textAttr(c.Style.FontFamily, c.Style.LabelFontSize, anchor, c.Style.Gray))
}

func (c *Chart) drawGrid(doc *svg.SVG) error {
	startX, endX, startY, endY := c.Axis.Bounds(c.Ear)
	gridAttr := fmt.Sprintf(`stroke="%s"`, c.Style.GridColor)

	for db := MinDB; db <= MaxDB; db += StepDB {
		y := c.Axis.DBToY(float64(db))
		doc.Line(startX, y, endX, y, gridAttr)
		if db == MinDB {
			continue
		}
		c.label(doc, startX-c.TickOffset, y+6, fmt.Sprintf("%d", db), "end")
	}

	for i, freq := range GridFrequencies {
		x, err := c.Axis.FreqToX(freq, c.Ear)
		if err != nil {
			return err
		}
		doc.Line(x, startY, x, endY, gridAttr)

		text := fmt.Sprintf("%g", freq)
		if i == 0 {
			text += " Hz"
		}
		c.label(doc, x, startY-c.TickOffset, text, "middle")
	}

	refY := c.Axis.DBToY(c.ReferenceDB)
	doc.Line(startX, refY, endX, refY, `stroke="black" stroke-width="2"`)

	// rotated around (unitX, 270), left of the tick labels of the ear panel
	unitX := 30 + c.Axis.earOffset(c.Ear)
	doc.Text(unitX-50, 270+35, "dB HL",
		fmt.Sprintf(`font-size="15px" transform="rotate(-90 %g 270)" font-family="%s" fill="%s"`, unitX, c.Style.FontFamily, c.Style.Gray))

	for _, freq := range DashedGridFrequencies {
		x, err := c.Axis.FreqToX(freq, c.Ear)
		if err != nil {
			return err
		}
		doc.Line(x, startY, x, endY, gridAttr+` stroke-dasharray="5,5"`)
	}

	return nil
}

// Links are drawn before the markers so the markers stay on top.
func (c *Chart) drawThresholds(doc *svg.SVG, points []Point) {
	linkAttr := fmt.Sprintf(`class="%s" stroke="black" stroke-width="2" stroke-dasharray="15,15"`, ThresholdLinkClass)
	for i := 1; i < len(points); i++ {
		doc.Line(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, linkAttr)
	}

	s := c.MarkerSize
	markerAttr := fmt.Sprintf(`class="%s" fill="white" stroke="%s"`, ThresholdMarkerClass, c.Ear.Color())
	for _, p := range points {
		doc.Rect(p.X-s/2, p.Y-s/2, s, s, markerAttr)
	}
}

// Render writes the chart as a standalone SVG document. Nothing is written if
// a threshold lies outside the frequency table.
func (c *Chart) Render(w io.Writer) error {
	points, err := c.Points()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	doc := svg.New(&buf)
	doc.Start(c.Page.Width, c.Page.Height)

	if err := c.drawGrid(doc); err != nil {
		return err
	}
	c.drawThresholds(doc, points)

	if c.Legend != nil {
		origin := c.LegendOrigin
		origin.X += c.Axis.earOffset(c.Ear)
		c.Legend.Draw(doc, c.LegendSize, origin)
	}

	doc.End()

	_, err = w.Write(buf.Bytes())
	return err
}

func (c *Chart) WriteSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create SVG file: %w", err)
	}
	defer f.Close()

	if err := c.Render(f); err != nil {
		return fmt.Errorf("failed to render audiogram: %w", err)
	}
	return f.Close()
}
