package audiogram

import "fmt"

type Point struct {
	X float64
	Y float64
}

type Size struct {
	Width  float64
	Height float64
}

// Style holds the colors and fonts shared by the chart and the legend.
// Font families are CSS lists, the first installed family wins.
type Style struct {
	FontFamily       string
	LegendFontFamily string
	// Axis labels and legend text
	Gray           string
	GridColor      string
	SuperLightGray string
	LabelFontSize  float64
	LegendFontSize float64
	StrokeWidth    float64
}

func rgb(r, g, b int) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

func NewDefaultStyle() Style {
	return Style{
		FontFamily:       "FiraCode-Regular, Fira Code, monospace",
		LegendFontFamily: "Lato, Fira Code, sans-serif",
		Gray:             rgb(70, 70, 70),
		GridColor:        "lightgray",
		SuperLightGray:   rgb(240, 240, 240),
		LabelFontSize:    20,
		LegendFontSize:   16,
		StrokeWidth:      2,
	}
}

// svgo writes any argument holding "=" as raw attributes, anything else as a style.
func strokeAttr(color string, width float64, fill string) string {
	return fmt.Sprintf(`stroke="%s" stroke-width="%g" stroke-linecap="round" fill="%s"`, color, width, fill)
}

func textAttr(family string, size float64, anchor, fill string) string {
	return fmt.Sprintf(`text-anchor="%s" font-size="%gpx" font-family="%s" fill="%s"`, anchor, size, family, fill)
}
