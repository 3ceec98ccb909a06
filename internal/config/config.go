package config

import (
	"strings"

	"github.com/SeakMengs/audiogram/internal/env"
	"github.com/SeakMengs/audiogram/pkg/audiogram"
)

type Config struct {
	ENV string
	// Directory where the output files are stored after processing
	OutputDir string
	// Directory where the temporary files are stored during processing
	TmpDir string

	SVGName    string
	PDFName    string
	MergedName string
	BundleName string
	Bundle     bool

	// "canvas" or "rsvg"
	Converter string
	// Optional TTF/OTF used for the chart labels, its family name replaces the default one
	FontPath string
	Page     PageConfig

	// fmt pattern receiving the report id, empty disables the QR code
	QRURLPattern string

	Minio MinioConfig
}

type PageConfig struct {
	WidthPx  float64
	HeightPx float64
	DPI      float64
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	BUCKET     string
	USE_SSL    bool
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

// Publishing is enabled only when an endpoint is configured.
func (m MinioConfig) Enabled() bool {
	return m.ENDPOINT != ""
}

// Audiogram converts the settings into the pipeline configuration.
func (c Config) Audiogram() audiogram.Config {
	return audiogram.Config{
		OutputDir:  c.OutputDir,
		TmpDir:     c.TmpDir,
		SVGName:    c.SVGName,
		PDFName:    c.PDFName,
		MergedName: c.MergedName,
		BundleName: c.BundleName,
		Page: audiogram.PageSize{
			WidthPx:  c.Page.WidthPx,
			HeightPx: c.Page.HeightPx,
			DPI:      c.Page.DPI,
		},
	}
}

func GetConfig() Config {
	defaults := audiogram.NewDefaultConfig()

	return Config{
		ENV:          env.GetString("ENV", "development"),
		OutputDir:    env.GetString("OUTPUT_DIR", defaults.OutputDir),
		TmpDir:       env.GetString("TMP_DIR", defaults.TmpDir),
		SVGName:      env.GetString("SVG_NAME", defaults.SVGName),
		PDFName:      env.GetString("PDF_NAME", defaults.PDFName),
		MergedName:   env.GetString("MERGED_PDF_NAME", defaults.MergedName),
		BundleName:   env.GetString("BUNDLE_NAME", defaults.BundleName),
		Bundle:       env.GetBool("BUNDLE", false),
		Converter:    env.GetString("CONVERTER", audiogram.ConverterCanvas),
		FontPath:     env.GetString("FONT_PATH", ""),
		QRURLPattern: env.GetString("QR_URL_PATTERN", ""),
		Page: PageConfig{
			WidthPx:  env.GetFloat("PAGE_WIDTH_PX", defaults.Page.WidthPx),
			HeightPx: env.GetFloat("PAGE_HEIGHT_PX", defaults.Page.HeightPx),
			DPI:      env.GetFloat("PAGE_DPI", defaults.Page.DPI),
		},
		Minio: MinioConfig{
			ENDPOINT:   env.GetString("MINIO_ENDPOINT", ""),
			ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
			BUCKET:     env.GetString("MINIO_BUCKET", "audiogram"),
			USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
		},
	}
}
