package common

import (
	"fmt"
	"path/filepath"

	"fjacquet/budged/internal/categories"
	"fjacquet/budged/internal/fileutils"
	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/models"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding exported transactions.
const SheetName = "Transactions"

// amountColumn is the zero-based index of the Amount header.
var amountColumn = headerIndex("Amount")

func headerIndex(name string) int {
	for i, h := range Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// WriteTransactionsToXLSX writes transactions to an Excel workbook with a bold
// header row. Amounts are stored as numbers so they can be summed in Excel.
func WriteTransactionsToXLSX(transactions []models.Transaction, tables *categories.Tables, xlsxFile string, logger logging.Logger) error {
	logger = logging.OrDefault(logger)
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to XLSX")
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: xlsxFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to XLSX file")

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(xlsxFile)); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}

	for col, header := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("error resolving header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return fmt.Errorf("error writing header %s: %w", header, err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, style); err != nil {
		return fmt.Errorf("error applying header style: %w", err)
	}

	for i, row := range ToRows(transactions, tables) {
		rowIdx := i + 2
		for col, value := range row.values() {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return fmt.Errorf("error resolving cell: %w", err)
			}
			var v interface{} = value
			if col == amountColumn {
				v = transactions[i].Amount.InexactFloat64()
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("error writing cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(xlsxFile); err != nil {
		logger.WithError(err).Error("Failed to save XLSX file")
		return fmt.Errorf("error saving XLSX file: %w", err)
	}

	logger.Info("Successfully wrote transactions to XLSX file",
		logging.Field{Key: logging.FieldFile, Value: xlsxFile})
	return nil
}
