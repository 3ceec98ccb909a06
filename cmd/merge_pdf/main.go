package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/SeakMengs/audiogram/internal/config"
	"github.com/SeakMengs/audiogram/internal/env"
	"github.com/SeakMengs/audiogram/internal/util"
	"github.com/SeakMengs/audiogram/pkg/audiogram"
)

func init() {
	env.LoadEnv(".env")
}

// Converts an existing audiogram SVG to PDF and stamps it onto a text page.
func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.IsProduction())
	defer logger.Sync()

	agCfg := cfg.Audiogram()
	if err := agCfg.EnsureDirs(); err != nil {
		logger.Fatal(err)
	}

	converter, err := audiogram.NewConverter(cfg.Converter)
	if err != nil {
		logger.Fatal(err)
	}

	svgFile := filepath.Join(agCfg.OutputDir, agCfg.SVGName)
	chartPdf := filepath.Join(agCfg.OutputDir, agCfg.PDFName)
	textPdf := filepath.Join(agCfg.TmpDir, "text.pdf")
	mergedPdf := filepath.Join(agCfg.OutputDir, agCfg.MergedName)

	if err := converter.Convert(context.Background(), svgFile, chartPdf, agCfg.Page); err != nil {
		logger.Fatalf("Failed to convert %s: %v", svgFile, err)
	}

	lines := []string{"This is line 1", "This is line 2", "This is line 3"}
	if err := audiogram.WriteTextPage(lines, textPdf, audiogram.NewDefaultTextPageOptions()); err != nil {
		logger.Fatal(err)
	}

	if err := audiogram.OverlayPdf(textPdf, chartPdf, mergedPdf); err != nil {
		logger.Fatal(err)
	}

	fmt.Printf("Merged PDF written to %s\n", mergedPdf)
}
