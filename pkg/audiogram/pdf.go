package audiogram

import (
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// 1 pt = 1/72 inch
const DPI = 72

// In pdfcpu, y is inverted: a positive offset from the top-left anchor moves up.
func overlayDescription(posX, posY float64) string {
	return fmt.Sprintf("pos: tl, off:%.1f %.1f, scale:1 abs, rotation:0", posX, posY*-1)
}

// OverlayPdf stamps the first page of overlayFile onto the first page of
// baseFile, the same way two single-page documents are merged into one page.
func OverlayPdf(baseFile, overlayFile, outFile string) error {
	return ApplyPdfToPdf(baseFile, outFile, []string{"1"}, overlayFile, 0, 0)
}

// Stamp a pdf page onto the selected pages of inFile at (posX, posY) from the top-left corner.
// An empty selection applies to all pages.
func ApplyPdfToPdf(inFile, outFile string, selectedPages []string, stampFile string, posX, posY float64) error {
	onTop := true
	if err := api.AddPDFWatermarksFile(inFile, outFile, selectedPages, onTop, stampFile, overlayDescription(posX, posY), nil); err != nil {
		return fmt.Errorf("failed to overlay %s: %w", stampFile, err)
	}
	return nil
}

// AppendPdfs writes all pages of inFiles, in order, into outFile.
func AppendPdfs(inFiles []string, outFile string) error {
	if len(inFiles) == 0 {
		return fmt.Errorf("no pdf to merge")
	}
	if err := api.MergeCreateFile(inFiles, outFile, false, nil); err != nil {
		return fmt.Errorf("failed to merge pdf files: %w", err)
	}
	return nil
}

// Apply qr code to the bottom right corner of a PDF file
// if array of selected pages is provided, will apply to those pages
// otherwise apply to all pages
func EmbedQRCodeToPdf(inFile, outFile, qrCodePath string, selectedPages []string) error {
	description := "pos: br, off: 0 0, scale: 1 abs, rotation: 0"
	err := api.AddImageWatermarksFile(inFile, outFile, selectedPages, true, qrCodePath, description, nil)
	if err != nil {
		return fmt.Errorf("failed to embed QR code in PDF: %w", err)
	}
	return nil
}

func GetPageCount(rs io.ReadSeeker) (int, error) {
	count, err := api.PageCount(rs, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return count, nil
}

// GetPdfSizeByPage returns the page size in points (1/72 inch). Page is 1-based.
func GetPdfSizeByPage(rs io.ReadSeeker, page int) (float64, float64, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}

	dims, err := api.PageDims(rs, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read page dimensions: %w", err)
	}
	if page < 1 || page > len(dims) {
		return 0, 0, fmt.Errorf("page %d out of range, pdf has %d pages", page, len(dims))
	}

	return dims[page-1].Width, dims[page-1].Height, nil
}
