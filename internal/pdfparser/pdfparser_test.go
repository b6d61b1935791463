package pdfparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/models"
	"fjacquet/budged/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLayout = `ForteBank JSC                         Card statement
Date         Sum                Description              Details
01.03.2026   -30000.00 KZT      Transfer                 Receiver: 440043******8791
02.03.2026   -4500.50 KZT       Purchase                 MAGNUM CASH&CARRY, JSC Halyk
                                                         Bank, MCC: 5411, APPLE PAY
03.03.2026   150000.00 KZT      Account replenishment
` + "\f" + `Date         Sum                Description              Details
04.03.2026   -1500.00 KZT       Purchase with bonuses    SMALL, MCC: 9999
Page 2 of 2
` + "\f"

func TestPagesFromLayoutText(t *testing.T) {
	pages := PagesFromLayoutText(sampleLayout)
	require.Len(t, pages, 2)
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, 2, pages[1].Number)

	first := pages[0].Tables[0]
	require.Len(t, first, 5)
	assert.Equal(t, models.RawRow{"ForteBank JSC", "Card statement"}, first[0])
	assert.Equal(t, models.RawRow{"Date", "Sum", "Description", "Details"}, first[1])
	assert.Equal(t, models.RawRow{"01.03.2026", "-30000.00 KZT", "Transfer", "Receiver: 440043******8791"}, first[2])
	assert.Equal(t, "MAGNUM CASH&CARRY, JSC Halyk\nBank, MCC: 5411, APPLE PAY", first[3][3])
	assert.Equal(t, models.RawRow{"03.03.2026", "150000.00 KZT", "Account replenishment", ""}, first[4])

	second := pages[1].Tables[0]
	require.Len(t, second, 3)
	assert.Equal(t, "Purchase with bonuses", second[1][2])
	assert.Equal(t, models.RawRow{"Page 2 of 2"}, second[2])
}

func TestPagesFromLayoutText_Empty(t *testing.T) {
	pages := PagesFromLayoutText("")
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0].Tables[0])
}

func TestSplitRow_FoldsExtraColumns(t *testing.T) {
	row := splitRow("05.03.2026  -10.00 KZT  Purchase  SHOP  MCC: 5411")
	assert.Equal(t, models.RawRow{"05.03.2026", "-10.00 KZT", "Purchase", "SHOP MCC: 5411"}, row)
}

func TestPDFToTextExtractor_ExtractTables(t *testing.T) {
	logger := logging.NewMockLogger()
	extractor := NewPDFToTextExtractor(logger)

	var tempPath string
	extractor.run = func(pdfPath, outPath string) error {
		tempPath = outPath
		assert.Equal(t, "statement.pdf", pdfPath)
		return os.WriteFile(outPath, []byte(sampleLayout), 0600)
	}

	pages, err := extractor.ExtractTables("statement.pdf")
	require.NoError(t, err)
	assert.Len(t, pages, 2)

	_, statErr := os.Stat(tempPath)
	assert.True(t, os.IsNotExist(statErr), "temporary text file should be removed")
}

func TestPDFToTextExtractor_Failure(t *testing.T) {
	extractor := NewPDFToTextExtractor(logging.NewMockLogger())
	extractor.run = func(pdfPath, outPath string) error {
		return errors.New("pdftotext not found in PATH")
	}

	_, err := extractor.ExtractTables(filepath.Join(t.TempDir(), "x.pdf"))
	require.Error(t, err)

	var parseErr *parsererror.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "pdftotext", parseErr.Parser)
	assert.Contains(t, err.Error(), "pdftotext not found")
}

func TestMockExtractor(t *testing.T) {
	pages := []models.Page{{Number: 1, Tables: []models.Table{{{"a"}}}}}
	mock := NewMockExtractor(pages, nil)

	got, err := mock.ExtractTables("a.pdf")
	require.NoError(t, err)
	assert.Equal(t, pages, got)
	assert.Equal(t, []string{"a.pdf"}, mock.Calls)

	mock.Err = errors.New("boom")
	_, err = mock.ExtractTables("b.pdf")
	assert.EqualError(t, err, "boom")
}
