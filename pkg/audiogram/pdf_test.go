package audiogram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Page sizes go through mm in canvas, allow rounding.
const ptTolerance = 0.5

var a4Page = NewDefaultTextPageOptions().Page

// pdfInfo returns the page count and the size in points of page.
func pdfInfo(t *testing.T, path string, page int) (int, float64, float64) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	count, err := GetPageCount(f)
	if err != nil {
		t.Fatalf("GetPageCount failed: %v", err)
	}
	w, h, err := GetPdfSizeByPage(f, page)
	if err != nil {
		t.Fatalf("GetPdfSizeByPage failed: %v", err)
	}
	return count, w, h
}

func writeTestPage(t *testing.T, page PageSize, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := writeBlankPage(page, path); err != nil {
		t.Fatalf("writeBlankPage failed: %v", err)
	}
	return path
}

func expectPage(t *testing.T, path string, page int, expectedCount int, w, h float64) {
	t.Helper()
	count, gotW, gotH := pdfInfo(t, path, page)
	if count != expectedCount {
		t.Errorf("%s has %d pages, expected %d", filepath.Base(path), count, expectedCount)
	}
	if math.Abs(gotW-w) > ptTolerance || math.Abs(gotH-h) > ptTolerance {
		t.Errorf("page %d of %s is %v x %v pt, expected %v x %v", page, filepath.Base(path), gotW, gotH, w, h)
	}
}

func TestOverlayDescription(t *testing.T) {
	tests := []struct {
		x, y     float64
		expected string
	}{
		{x: 12.5, y: -10, expected: "pos: tl, off:12.5 10.0, scale:1 abs, rotation:0"},
		{x: 40, y: 42, expected: "pos: tl, off:40.0 -42.0, scale:1 abs, rotation:0"},
	}

	for _, tt := range tests {
		if got := overlayDescription(tt.x, tt.y); got != tt.expected {
			t.Errorf("overlayDescription(%v, %v) = %q, expected %q", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestTextStampDescription(t *testing.T) {
	opts := NewDefaultTextPageOptions()
	desc := textStampDescription(opts)

	for _, part := range []string{"font:Helvetica", "points:12", "pos:tl", "off:40.0 -29.9", "fillcolor:#000000"} {
		if !strings.Contains(desc, part) {
			t.Errorf("description %q does not contain %q", desc, part)
		}
	}
}

func TestAppendPdfsNeedsInput(t *testing.T) {
	if err := AppendPdfs(nil, "out.pdf"); err == nil {
		t.Error("expected an error when there is nothing to merge")
	}
}

func TestWriteTextPageNeedsLines(t *testing.T) {
	if err := WriteTextPage(nil, "out.pdf", NewDefaultTextPageOptions()); err == nil {
		t.Error("expected an error when there is no text")
	}
}

func TestWriteTextPage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "text.pdf")
	lines := []string{"This is line 1", "This is line 2", "This is line 3"}
	if err := WriteTextPage(lines, out, NewDefaultTextPageOptions()); err != nil {
		t.Fatalf("WriteTextPage failed: %v", err)
	}
	expectPage(t, out, 1, 1, a4Page.WidthPx, a4Page.HeightPx)
}

func TestOverlayPdf(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "text.pdf")
	if err := WriteTextPage([]string{"Patient"}, base, NewDefaultTextPageOptions()); err != nil {
		t.Fatalf("WriteTextPage failed: %v", err)
	}
	chart := writeTestPage(t, LetterPage300DPI, "chart.pdf")

	out := filepath.Join(dir, "merged.pdf")
	if err := OverlayPdf(base, chart, out); err != nil {
		t.Fatalf("OverlayPdf failed: %v", err)
	}
	// the overlay never adds pages, the base page keeps its size
	expectPage(t, out, 1, 1, a4Page.WidthPx, a4Page.HeightPx)
}

func TestAppendPdfs(t *testing.T) {
	first := writeTestPage(t, a4Page, "a4.pdf")
	second := writeTestPage(t, LetterPage300DPI, "letter.pdf")

	out := filepath.Join(t.TempDir(), "all.pdf")
	if err := AppendPdfs([]string{first, second}, out); err != nil {
		t.Fatalf("AppendPdfs failed: %v", err)
	}
	expectPage(t, out, 1, 2, a4Page.WidthPx, a4Page.HeightPx)
	expectPage(t, out, 2, 2, 612, 792)
}

func TestEmbedQRCodeToPdf(t *testing.T) {
	dir := t.TempDir()
	pdfFile := writeTestPage(t, LetterPage300DPI, "chart.pdf")
	qrFile := filepath.Join(dir, "qr.png")
	if err := GenerateQRCode("https://example.com/reports/1", qrFile, 50); err != nil {
		t.Fatalf("GenerateQRCode failed: %v", err)
	}

	before, err := os.Stat(pdfFile)
	if err != nil {
		t.Fatal(err)
	}
	if err := EmbedQRCodeToPdf(pdfFile, pdfFile, qrFile, []string{}); err != nil {
		t.Fatalf("EmbedQRCodeToPdf failed: %v", err)
	}
	after, err := os.Stat(pdfFile)
	if err != nil {
		t.Fatal(err)
	}
	if after.Size() <= before.Size() {
		t.Errorf("pdf did not grow after embedding the QR code: %d -> %d bytes", before.Size(), after.Size())
	}
	expectPage(t, pdfFile, 1, 1, 612, 792)
}

func TestGetPdfSizeByPageOutOfRange(t *testing.T) {
	path := writeTestPage(t, LetterPage300DPI, "chart.pdf")
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	for _, page := range []int{0, 2} {
		if _, _, err := GetPdfSizeByPage(f, page); err == nil {
			t.Errorf("expected an error for page %d", page)
		}
	}
}
