package audiogram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

// PageSize describes the output page in device pixels at DPI.
type PageSize struct {
	WidthPx  float64
	HeightPx float64
	DPI      float64
}

// US letter at 300 dpi
var LetterPage300DPI = PageSize{WidthPx: 2550, HeightPx: 3300, DPI: 300}

// tdewolff/canvas uses mm as the unit of measurement
func (p PageSize) MM() (float64, float64) {
	return p.WidthPx / p.DPI * 25.4, p.HeightPx / p.DPI * 25.4
}

type Converter interface {
	Convert(ctx context.Context, svgPath, pdfPath string, page PageSize) error
}

const (
	ConverterCanvas = "canvas"
	ConverterRsvg   = "rsvg"
)

func NewConverter(name string) (Converter, error) {
	switch name {
	case "", ConverterCanvas:
		return CanvasConverter{}, nil
	case ConverterRsvg:
		return RsvgConverter{Binary: "rsvg-convert"}, nil
	default:
		return nil, fmt.Errorf("unknown converter: %s", name)
	}
}

// CanvasConverter converts in process with tdewolff/canvas.
type CanvasConverter struct{}

// fitView scales a src canvas uniformly into the page and pins it to the top edge.
// canvas coordinates grow upwards, so the top of the page is at dstH.
func fitView(srcW, srcH, dstW, dstH float64) canvas.Matrix {
	scale := min(dstW/srcW, dstH/srcH)
	return canvas.Identity.Translate(0, dstH-srcH*scale).Scale(scale, scale)
}

// canvas panics when a font-family resolves to no system font.
func readSVG(r io.Reader) (c *canvas.Canvas, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if recErr, ok := rec.(error); ok {
				err = recErr
				return
			}
			err = fmt.Errorf("%v", rec)
		}
	}()
	return canvas.ParseSVG(r)
}

func (CanvasConverter) Convert(ctx context.Context, svgPath, pdfPath string, page PageSize) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	svgData, err := os.Open(svgPath)
	if err != nil {
		return fmt.Errorf("failed to read SVG file: %w", err)
	}
	defer svgData.Close()

	src, err := readSVG(svgData)
	if err != nil {
		return fmt.Errorf("failed to parse SVG: %w", err)
	}
	if src.W <= 0 || src.H <= 0 {
		return fmt.Errorf("SVG %s has no size", svgPath)
	}

	w, h := page.MM()
	c := canvas.New(w, h)
	src.RenderViewTo(c, fitView(src.W, src.H, w, h))

	if err := renderers.Write(pdfPath, c); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// RsvgConverter shells out to rsvg-convert from librsvg.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
type RsvgConverter struct {
	Binary string
}

func rsvgArgs(svgPath, pdfPath string, page PageSize) []string {
	dpi := strconv.FormatFloat(page.DPI, 'f', -1, 64)
	return []string{
		"--format", "pdf",
		"--dpi-x", dpi,
		"--dpi-y", dpi,
		"--width", strconv.FormatFloat(page.WidthPx, 'f', 0, 64),
		"--height", strconv.FormatFloat(page.HeightPx, 'f', 0, 64),
		"--keep-aspect-ratio",
		"--output", pdfPath,
		svgPath,
	}
}

func (r RsvgConverter) Convert(ctx context.Context, svgPath, pdfPath string, page PageSize) error {
	bin := r.Binary
	if bin == "" {
		bin = "rsvg-convert"
	}
	if _, err := exec.LookPath(bin); err != nil {
		return fmt.Errorf("%s not found: %w", bin, err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, rsvgArgs(svgPath, pdfPath, page)...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rsvg-convert failed: %w: %s", err, stderr.String())
	}
	return nil
}
