package audiogram

import (
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

type TextPageOptions struct {
	Page PageSize
	// Standard PDF font, no font file needed
	FontName string
	FontSize float64
	Color    string
	// Baseline of the first line, in points from the bottom-left corner
	Origin Point
}

// Defaults match a reportlab canvas: A4 page, Helvetica 12, text starting at (40, 800).
func NewDefaultTextPageOptions() TextPageOptions {
	return TextPageOptions{
		Page:     PageSize{WidthPx: 595.27, HeightPx: 841.89, DPI: DPI},
		FontName: "Helvetica",
		FontSize: 12,
		Color:    "#000000",
		Origin:   Point{X: 40, Y: 800},
	}
}

func textStampDescription(opts TextPageOptions) string {
	heightPt := opts.Page.HeightPx / opts.Page.DPI * DPI
	// anchor the text box at the top-left, the first baseline sits one font size lower
	offY := heightPt - opts.Origin.Y - opts.FontSize
	return fmt.Sprintf("font:%s, points:%g, pos:tl, off:%.1f %.1f, scale:1 abs, rotation:0, fillcolor:%s, align:l",
		opts.FontName, opts.FontSize, opts.Origin.X, offY*-1, opts.Color)
}

func writeBlankPage(page PageSize, outFile string) error {
	w, h := page.MM()
	c := canvas.New(w, h)
	if err := renderers.Write(outFile, c); err != nil {
		return fmt.Errorf("failed to write blank page: %w", err)
	}
	return nil
}

// WriteTextPage writes a single page PDF holding lines, one per row.
func WriteTextPage(lines []string, outFile string, opts TextPageOptions) error {
	if len(lines) == 0 {
		return fmt.Errorf("no text to write")
	}

	if err := writeBlankPage(opts.Page, outFile); err != nil {
		return err
	}

	text := strings.Join(lines, "\n")
	if err := api.AddTextWatermarksFile(outFile, outFile, []string{"1"}, true, text, textStampDescription(opts), nil); err != nil {
		return fmt.Errorf("failed to write text page: %w", err)
	}
	return nil
}
