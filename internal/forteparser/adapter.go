package forteparser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/budged/internal/categories"
	"fjacquet/budged/internal/common"
	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/parsererror"
	"fjacquet/budged/internal/pdfparser"
	"fjacquet/budged/internal/validation"
)

var pdfMagic = []byte("%PDF-")

// Adapter converts ForteBank statements into CSV or XLSX exports.
type Adapter struct {
	parser    *Parser
	tables    *categories.Tables
	logger    logging.Logger
	delimiter rune
}

// NewAdapter creates a new adapter with dependency injection. Nil tables
// select the built-in category tables.
func NewAdapter(logger logging.Logger, extractor pdfparser.TableExtractor, tables *categories.Tables) *Adapter {
	logger = logging.OrDefault(logger)
	if tables == nil {
		tables = categories.Default()
	}
	return &Adapter{
		parser:    NewParser(logger, extractor),
		tables:    tables,
		logger:    logger,
		delimiter: common.DefaultDelimiter,
	}
}

// SetDelimiter sets the CSV delimiter.
func (a *Adapter) SetDelimiter(delimiter rune) {
	if delimiter != 0 {
		a.delimiter = delimiter
	}
}

// Parser returns the underlying statement parser.
func (a *Adapter) Parser() *Parser {
	return a.parser
}

// Convert writes the statement to outputFile, choosing CSV or XLSX from its extension.
func (a *Adapter) Convert(inputFile, outputFile string) error {
	if err := validation.IsValidOutputFormat(outputFile); err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(outputFile), ".xlsx") {
		return a.ConvertToXLSX(inputFile, outputFile)
	}
	return a.ConvertToCSV(inputFile, outputFile)
}

// ConvertToCSV parses inputFile and writes its transactions as CSV.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	stmt, err := a.parser.ParseFile(inputFile)
	if err != nil {
		return err
	}
	return common.WriteTransactionsToCSV(stmt.Transactions, a.tables, outputFile, a.delimiter, a.logger)
}

// ConvertToXLSX parses inputFile and writes its transactions as an Excel workbook.
func (a *Adapter) ConvertToXLSX(inputFile, outputFile string) error {
	stmt, err := a.parser.ParseFile(inputFile)
	if err != nil {
		return err
	}
	return common.WriteTransactionsToXLSX(stmt.Transactions, a.tables, outputFile, a.logger)
}

// ValidateFormat checks that file starts with the PDF signature.
func (a *Adapter) ValidateFormat(file string) (bool, error) {
	a.logger.Debug("Validating PDF format", logging.Field{Key: logging.FieldFile, Value: file})

	f, err := os.Open(file) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		if os.IsNotExist(err) {
			return false, &parsererror.NotFoundError{Path: file, Kind: "file"}
		}
		return false, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			a.logger.WithError(err).Warn("Failed to close input file",
				logging.Field{Key: logging.FieldFile, Value: file})
		}
	}()

	header := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return false, nil
	}
	return bytes.Equal(header, pdfMagic), nil
}
