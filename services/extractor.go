package services

import (
	"os"
	"path/filepath"
	"strings"
)

// TextExtractor supplies raw text for a receipt document. Optical extraction
// from images and PDFs lives behind this boundary; an empty result signals
// that the caller should fall back to manual entry.
type TextExtractor interface {
	ExtractText(documentPath string) (string, error)
}

// FileTextExtractor reads plain .txt receipts from disk and returns empty
// text for every other extension, since no OCR engine is wired in.
type FileTextExtractor struct{}

func (FileTextExtractor) ExtractText(documentPath string) (string, error) {
	if strings.ToLower(filepath.Ext(documentPath)) != ".txt" {
		return "", nil
	}

	data, err := os.ReadFile(documentPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
