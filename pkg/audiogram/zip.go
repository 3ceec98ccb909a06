package audiogram

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
)

func addFileToZip(archive *zip.Writer, filePath, archivePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return nil // Skip directories
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = archivePath
	header.Method = zip.Deflate

	writer, err := archive.CreateHeader(header)
	if err != nil {
		return err
	}

	fileReader, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer fileReader.Close()

	_, err = io.Copy(writer, fileReader)
	return err
}

// ZipFiles bundles inFiles flat into zipFile, each under its base name.
func ZipFiles(inFiles []string, zipFile string) error {
	zipWriter, err := os.Create(zipFile)
	if err != nil {
		return err
	}
	defer zipWriter.Close()

	archive := zip.NewWriter(zipWriter)
	for _, filePath := range inFiles {
		if err := addFileToZip(archive, filePath, filepath.Base(filePath)); err != nil {
			archive.Close()
			return err
		}
	}

	return archive.Close()
}
