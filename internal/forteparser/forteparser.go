package forteparser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/models"
	"fjacquet/budged/internal/parsererror"
	"fjacquet/budged/internal/pdfparser"
)

// ParserName identifies this parser in errors and logs.
const ParserName = "ForteBank PDF"

// Parser reads ForteBank card statements through a table extractor.
type Parser struct {
	extractor pdfparser.TableExtractor
	logger    logging.Logger
}

// NewParser creates a parser. A nil extractor selects pdftotext.
func NewParser(logger logging.Logger, extractor pdfparser.TableExtractor) *Parser {
	logger = logging.OrDefault(logger)
	if extractor == nil {
		extractor = pdfparser.NewPDFToTextExtractor(logger)
	}
	return &Parser{extractor: extractor, logger: logger}
}

// ParseFile parses every transaction row of the statement at path.
// A missing file is reported as *parsererror.NotFoundError.
func (p *Parser) ParseFile(path string) (models.Statement, error) {
	start := time.Now()
	stmt := models.NewStatement(filepath.Base(path))
	log := p.logger.WithFields(
		logging.Field{Key: logging.FieldStatementID, Value: stmt.ID.String()},
		logging.Field{Key: logging.FieldFile, Value: path},
	)
	log.Info("Parsing ForteBank statement")

	rows, skipped, err := p.collectRows(path, log)
	if err != nil {
		log.WithError(err).Error("Failed to parse statement")
		return models.Statement{}, err
	}

	for _, row := range rows {
		stmt.Transactions = append(stmt.Transactions, BuildRow(row))
	}
	stmt.SkippedRows = skipped

	log.Info("Parsed ForteBank statement",
		logging.Field{Key: logging.FieldCount, Value: stmt.Count()},
		logging.Field{Key: logging.FieldSkipped, Value: skipped},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
	return stmt, nil
}

// ExtractRawRows returns the classified rows as trimmed (date, amount,
// description, details) cells with the details already cleaned.
func (p *Parser) ExtractRawRows(path string) ([]models.RawRow, error) {
	log := p.logger.WithField(logging.FieldFile, path)
	rows, _, err := p.collectRows(path, log)
	return rows, err
}

func (p *Parser) collectRows(path string, log logging.Logger) ([]models.RawRow, int, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, &parsererror.NotFoundError{Path: path, Kind: "file"}
		}
		return nil, 0, fmt.Errorf("error checking statement file: %w", err)
	}
	if info.IsDir() {
		return nil, 0, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "PDF",
			Msg:            "path is a directory",
		}
	}

	pages, err := p.extractor.ExtractTables(path)
	if err != nil {
		var parseErr *parsererror.ParseError
		if errors.As(err, &parseErr) {
			return nil, 0, err
		}
		return nil, 0, &parsererror.ParseError{
			Parser: ParserName,
			Field:  "tables",
			Value:  path,
			Err:    err,
		}
	}

	var rows []models.RawRow
	skipped := 0
	for _, page := range pages {
		for _, table := range page.Tables {
			for _, row := range table {
				if !IsDataRow(row) {
					skipped++
					log.Debug("Skipping non-transaction row",
						logging.Field{Key: logging.FieldPage, Value: page.Number},
						logging.Field{Key: logging.FieldReason, Value: strings.Join(row, " | ")})
					continue
				}
				rows = append(rows, models.RawRow{
					strings.TrimSpace(row[0]),
					strings.TrimSpace(row[1]),
					strings.TrimSpace(row[2]),
					CleanDetails(row[3]),
				})
			}
		}
	}
	return rows, skipped, nil
}
