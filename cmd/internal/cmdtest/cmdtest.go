// Package cmdtest wires a test container into the root command.
package cmdtest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/budged/cmd/root"
	"fjacquet/budged/internal/config"
	"fjacquet/budged/internal/container"
	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/models"
	"fjacquet/budged/internal/pdfparser"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// StatementPages is a small statement with a purchase, a bonus purchase,
// a transfer and an income row behind a header row.
func StatementPages() []models.Page {
	return []models.Page{{Number: 1, Tables: []models.Table{{
		{"Date", "Sum", "Description", "Details"},
		{"02.03.2026", "-4500.50 KZT", "Purchase", "MAGNUM | MARKET, JSC Halyk Bank, MCC: 5411"},
		{"03.03.2026", "-30000.00 KZT", "Transfer", "Receiver: 440043******8791"},
		{"04.03.2026", "-1500.00 KZT", "Purchase with bonuses", "CINEMA, MCC: 7832"},
		{"05.03.2026", "100000.00 KZT", "Account replenishment", "Salary"},
	}}}}
}

// Setup installs a container backed by extractor as root.AppContainer and
// returns the configured statements directory. The working directory and
// HOME are moved to empty temporary directories for the duration of the test.
func Setup(t *testing.T, extractor pdfparser.TableExtractor) (string, *logging.MockLogger) {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Statements.Directory = dir
	cfg.Batch.Concurrency = 2
	cfg.CSV.Delimiter = ","

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Setenv("HOME", t.TempDir())

	logger := logging.NewMockLogger()
	c, err := container.NewContainer(cfg,
		container.WithLogger(logger),
		container.WithExtractor(extractor))
	require.NoError(t, err)

	original := root.AppContainer
	root.AppContainer = c
	t.Cleanup(func() {
		root.AppContainer = original
		_ = os.Chdir(wd)
	})
	return dir, logger
}

// WritePDF creates a file with a PDF header in dir.
func WritePDF(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n"), 0600))
	return path
}

// Run invokes the command's RunE and returns what it printed.
func Run(cmd *cobra.Command) (string, error) {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	defer cmd.SetOut(nil)
	err := cmd.RunE(cmd, nil)
	return buf.String(), err
}
