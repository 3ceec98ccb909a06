package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeakMengs/audiogram/pkg/audiogram"
)

func main() {
	cfg := audiogram.NewDefaultConfig()
	pdfFilePath := filepath.Join(cfg.OutputDir, cfg.PDFName)
	if len(os.Args) > 1 {
		pdfFilePath = os.Args[1]
	}

	src, err := os.Open(pdfFilePath)
	if err != nil {
		panic(err)
	}
	defer src.Close()

	pageCount, err := audiogram.GetPageCount(src)
	if err != nil {
		panic(err)
	}
	if pageCount < 1 {
		panic("pdf has no pages")
	}
	width, height, err := audiogram.GetPdfSizeByPage(src, 1)
	if err != nil {
		panic(err)
	}
	fmt.Printf("PDF Page Count: %d\n", pageCount)
	fmt.Printf("Page Size: %.2f x %.2f pt\n", width, height)
}
