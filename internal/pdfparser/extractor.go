// Package pdfparser turns PDF statements into pages of raw table rows.
package pdfparser

import (
	"fmt"
	"os"
	"os/exec"
	"sync"

	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/models"
	"fjacquet/budged/internal/parsererror"
)

// TableExtractor defines the interface for extracting tables from PDF files.
// This interface allows for dependency injection and makes the statement parser
// testable by providing different implementations for production and testing.
type TableExtractor interface {
	// ExtractTables returns the tables found on each page of the PDF at path.
	ExtractTables(path string) ([]models.Page, error)
}

// PDFToTextExtractor implements TableExtractor using the pdftotext command.
// This is the production implementation that requires poppler-utils to be installed.
type PDFToTextExtractor struct {
	logger logging.Logger
	// run converts pdfPath to layout text in outPath. Replaced in tests.
	run func(pdfPath, outPath string) error
}

// NewPDFToTextExtractor creates a new PDFToTextExtractor instance.
func NewPDFToTextExtractor(logger logging.Logger) *PDFToTextExtractor {
	return &PDFToTextExtractor{
		logger: logging.OrDefault(logger),
		run:    runPDFToText,
	}
}

func runPDFToText(pdfPath, outPath string) error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return fmt.Errorf("pdftotext not found in PATH: %w", err)
	}
	cmd := exec.Command("pdftotext", "-layout", pdfPath, outPath) // #nosec G204 -- fixed binary, user-provided file path
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("error running pdftotext: %w: %s", err, string(out))
	}
	return nil
}

// ExtractTables extracts the layout text of the PDF and rebuilds its tables.
// The intermediate text file is removed before returning.
func (e *PDFToTextExtractor) ExtractTables(path string) ([]models.Page, error) {
	text, err := e.extractText(path)
	if err != nil {
		return nil, &parsererror.ParseError{
			Parser: "pdftotext",
			Field:  "text extraction",
			Value:  path,
			Err:    err,
		}
	}

	pages := PagesFromLayoutText(text)
	e.logger.Debug("Extracted PDF tables",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(pages)})
	return pages, nil
}

func (e *PDFToTextExtractor) extractText(path string) (string, error) {
	tempFile, err := os.CreateTemp("", "budged-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary text file: %w", err)
	}
	tempName := tempFile.Name()
	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temporary text file: %w", err)
	}
	defer func() {
		if err := os.Remove(tempName); err != nil && !os.IsNotExist(err) {
			e.logger.WithError(err).Warn("Failed to remove temporary file",
				logging.Field{Key: logging.FieldFile, Value: tempName})
		}
	}()

	if err := e.run(path, tempName); err != nil {
		return "", err
	}

	output, err := os.ReadFile(tempName) // #nosec G304 -- temp file created above
	if err != nil {
		return "", fmt.Errorf("error reading extracted text: %w", err)
	}
	return string(output), nil
}

// MockExtractor implements TableExtractor for testing purposes.
// It returns predefined pages instead of reading PDF files.
// It is safe for concurrent use.
type MockExtractor struct {
	Pages []models.Page
	Err   error
	Calls []string

	mu sync.Mutex
}

// NewMockExtractor creates a new MockExtractor with the given pages and error.
func NewMockExtractor(pages []models.Page, err error) *MockExtractor {
	return &MockExtractor{Pages: pages, Err: err}
}

// ExtractTables records the call and returns the predefined pages or error.
func (m *MockExtractor) ExtractTables(path string) ([]models.Page, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, path)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Pages, nil
}
