package audiogram

import (
	"fmt"
	"os"
)

type Config struct {
	// Directory where the output files are stored after processing
	OutputDir string
	// Directory where the temporary files are stored during processing, the file will be deleted after processing
	TmpDir string

	SVGName    string
	PDFName    string
	MergedName string
	BundleName string

	Page PageSize
}

func NewDefaultConfig() *Config {
	cfg := Config{
		OutputDir:  fmt.Sprintf("%s/audiogram/output", os.TempDir()),
		TmpDir:     fmt.Sprintf("%s/audiogram/tmp", os.TempDir()),
		SVGName:    "audiogram.svg",
		PDFName:    "output5.pdf",
		MergedName: "output4.pdf",
		BundleName: "audiogram.zip",
		Page:       LetterPage300DPI,
	}

	return &cfg
}

// EnsureDirs creates the output and tmp directories if they do not exist.
// 0755 mean owner can read, write and execute
func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := os.MkdirAll(c.TmpDir, 0755); err != nil {
		return fmt.Errorf("error creating tmp directory: %w", err)
	}
	return nil
}
