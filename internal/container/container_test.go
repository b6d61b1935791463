package container

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/budged/internal/config"
	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/models"
	"fjacquet/budged/internal/parsererror"
	"fjacquet/budged/internal/pdfparser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Statements.Directory = "./statements"
	cfg.Report.Kind = "group"
	cfg.Report.Sort = "sum"
	cfg.Report.Style = "ascii"
	cfg.Batch.Concurrency = 2
	cfg.CSV.Delimiter = ";"
	return cfg
}

// isolate keeps stray categories.yaml files out of the search path.
func isolate(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
}

func TestNewContainer_NilConfig(t *testing.T) {
	c, err := NewContainer(nil)
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration cannot be nil")
}

func TestNewContainer_WiresDependencies(t *testing.T) {
	isolate(t)
	logger := logging.NewMockLogger()
	cfg := testConfig()

	c, err := NewContainer(cfg, WithLogger(logger))
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Same(t, cfg, c.GetConfig())
	assert.Same(t, logger, c.GetLogger())
	assert.NotNil(t, c.GetStore())
	assert.NotNil(t, c.GetParser())
	assert.Same(t, c.GetParser(), c.GetAdapter().Parser())
	assert.NotNil(t, c.GetGenerator())
	assert.Equal(t, 2, c.GetRunner().Concurrency())
	assert.Equal(t, "Grocery Stores, Supermarkets", c.GetTables().ResolveCategoryName("5411"))
	assert.True(t, logger.HasEntry("DEBUG", "Container initialized successfully"))
}

func TestNewContainer_WithExtractor(t *testing.T) {
	isolate(t)
	pages := []models.Page{{Number: 1, Tables: []models.Table{{
		{"05.03.2026", "-2000.00 KZT", "Purchase", "CINEMA, MCC: 7832"},
	}}}}
	c, err := NewContainer(testConfig(),
		WithLogger(logging.NewMockLogger()),
		WithExtractor(pdfparser.NewMockExtractor(pages, nil)))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "statement.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0600))

	stmt, err := c.GetParser().ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, stmt.Count())
	assert.Equal(t, "7832", stmt.Transactions[0].Details.MCC)
}

func TestNewContainer_CategoryOverrides(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mcc_codes:
  "5942": Book Stores
category_groups:
  - name: Leisure
    categories:
      - Book Stores
`), 0600))

	cfg := testConfig()
	cfg.Categories.File = path
	c, err := NewContainer(cfg, WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)
	assert.Equal(t, "Book Stores", c.GetTables().ResolveCategoryName("5942"))
	assert.Equal(t, "Leisure", c.GetTables().ResolveGroup("Book Stores"))
}

func TestNewContainer_MissingCategoryFile(t *testing.T) {
	isolate(t)
	cfg := testConfig()
	cfg.Categories.File = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewContainer(cfg, WithLogger(logging.NewMockLogger()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrNotFound))
}
