package audiogram

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GeneratedReport struct {
	ID         string
	SVGPath    string
	PDFPath    string
	MergedPath string
	BundlePath string
}

// Files lists the produced output files, in generation order.
func (r GeneratedReport) Files() []string {
	var files []string
	for _, f := range []string{r.SVGPath, r.PDFPath, r.MergedPath, r.BundlePath} {
		if f != "" {
			files = append(files, f)
		}
	}
	return files
}

type Settings struct {
	// When not empty, a text page is generated and the chart is merged onto it
	TextLines []string
	TextPage  TextPageOptions
	// fmt pattern receiving the report ID, e.g. "https://example.com/reports/%s"
	QRURLPattern string
	QRSize       int
	Bundle       bool
}

func NewDefaultSettings() *Settings {
	return &Settings{
		TextPage: NewDefaultTextPageOptions(),
		QRSize:   50,
	}
}

type ReportGenerator struct {
	ID        string
	Cfg       Config
	Chart     *Chart
	Converter Converter
	Settings  Settings
	Logger    *zap.SugaredLogger
}

func NewReportGenerator(cfg Config, chart *Chart, converter Converter, settings Settings, logger *zap.SugaredLogger) *ReportGenerator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if converter == nil {
		converter = CanvasConverter{}
	}

	return &ReportGenerator{
		ID:        uuid.NewString(),
		Cfg:       cfg,
		Chart:     chart,
		Converter: converter,
		Settings:  settings,
		Logger:    logger,
	}
}

func (rg *ReportGenerator) OutputDir() (string, error) {
	if err := os.MkdirAll(rg.Cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return rg.Cfg.OutputDir, nil
}

func (rg *ReportGenerator) TempDir() (string, error) {
	tmpDir := filepath.Join(rg.Cfg.TmpDir, rg.ID)
	if err := os.MkdirAll(tmpDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create tmp directory: %w", err)
	}
	return tmpDir, nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err = io.Copy(destFile, sourceFile); err != nil {
		return err
	}
	return destFile.Close()
}

func (rg *ReportGenerator) Generate(ctx context.Context) (*GeneratedReport, error) {
	outputDir, err := rg.OutputDir()
	if err != nil {
		return nil, err
	}
	tmpDir, err := rg.TempDir()
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	report := &GeneratedReport{ID: rg.ID}
	log := rg.Logger.With("report", rg.ID)

	report.SVGPath = filepath.Join(outputDir, rg.Cfg.SVGName)
	if err := rg.Chart.WriteSVG(report.SVGPath); err != nil {
		return nil, err
	}
	log.Infof("SVG written to %s", report.SVGPath)

	report.PDFPath = filepath.Join(outputDir, rg.Cfg.PDFName)
	if err := rg.Converter.Convert(ctx, report.SVGPath, report.PDFPath, rg.Cfg.Page); err != nil {
		return nil, fmt.Errorf("failed to convert SVG to PDF: %w", err)
	}
	log.Infof("PDF written to %s", report.PDFPath)

	if len(rg.Settings.TextLines) > 0 {
		report.MergedPath, err = rg.mergeWithText(outputDir, tmpDir, report.PDFPath)
		if err != nil {
			return nil, err
		}
		log.Infof("Merged PDF written to %s", report.MergedPath)
	}

	if rg.Settings.QRURLPattern != "" {
		target := report.PDFPath
		if report.MergedPath != "" {
			target = report.MergedPath
		}
		if err := rg.embedQRCode(target, tmpDir); err != nil {
			return nil, err
		}
		log.Debugf("QR code embedded into %s", target)
	}

	if rg.Settings.Bundle {
		bundle := filepath.Join(outputDir, rg.Cfg.BundleName)
		if err := ZipFiles(report.Files(), bundle); err != nil {
			return nil, fmt.Errorf("failed to bundle report: %w", err)
		}
		report.BundlePath = bundle
		log.Infof("Bundle written to %s", bundle)
	}

	return report, nil
}

// The text page is the base, the audiogram is stamped on top of it.
func (rg *ReportGenerator) mergeWithText(outputDir, tmpDir, chartPdf string) (string, error) {
	textPdf := filepath.Join(tmpDir, "text.pdf")
	if err := WriteTextPage(rg.Settings.TextLines, textPdf, rg.Settings.TextPage); err != nil {
		return "", err
	}

	merged := filepath.Join(tmpDir, "merged.pdf")
	if err := OverlayPdf(textPdf, chartPdf, merged); err != nil {
		return "", err
	}

	// Use copy instead of os.Rename to avoid invalid cross-device link
	out := filepath.Join(outputDir, rg.Cfg.MergedName)
	if err := copyFile(merged, out); err != nil {
		return "", fmt.Errorf("failed to finalize merged pdf: %w", err)
	}
	return out, nil
}

func (rg *ReportGenerator) embedQRCode(pdfFile, tmpDir string) error {
	qrFile := filepath.Join(tmpDir, "qr.png")
	if err := GenerateQRCode(fmt.Sprintf(rg.Settings.QRURLPattern, rg.ID), qrFile, rg.Settings.QRSize); err != nil {
		return err
	}
	return EmbedQRCodeToPdf(pdfFile, pdfFile, qrFile, []string{})
}
