package audiogram

import (
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// FontFamilyName reads the family name of a .ttf or .otf file, the name SVG
// text must reference in font-family.
func FontFamilyName(fontPath string) (string, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	font, err := sfnt.Parse(fontBytes)
	if err != nil {
		return "", fmt.Errorf("parsing font: %w", err)
	}

	name, err := font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return "", fmt.Errorf("retrieving font name: %w", err)
	}

	return name, nil
}
