// Package batch parses several statements concurrently.
package batch

import (
	"context"
	"fmt"
	"time"

	"fjacquet/budged/internal/fileutils"
	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/models"
	"fjacquet/budged/internal/parsererror"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when a runner is created with a non-positive limit.
const DefaultConcurrency = 4

// StatementParser is the part of forteparser.Parser the runner depends on.
type StatementParser interface {
	ParseFile(path string) (models.Statement, error)
}

// Result is the outcome of parsing one file.
type Result struct {
	File      string
	Statement models.Statement
	Err       error
}

// Runner parses statement files with bounded parallelism.
type Runner struct {
	parser      StatementParser
	concurrency int
	logger      logging.Logger
}

// NewRunner creates a runner.
func NewRunner(parser StatementParser, concurrency int, logger logging.Logger) *Runner {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Runner{
		parser:      parser,
		concurrency: concurrency,
		logger:      logging.OrDefault(logger),
	}
}

// Concurrency returns the maximum number of files parsed at once.
func (r *Runner) Concurrency() int {
	return r.concurrency
}

// ParseAll parses every file and returns one Result per file in input order.
// A failing file is reported in its Result and does not stop the others.
// The returned error is non-nil only when ctx is cancelled.
func (r *Runner) ParseAll(ctx context.Context, files []string) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{File: file, Err: err}
				return err
			}
			stmt, err := r.parser.ParseFile(file)
			if err != nil {
				r.logger.WithError(err).Warn("Failed to parse statement",
					logging.Field{Key: logging.FieldFile, Value: file})
			}
			results[i] = Result{File: file, Statement: stmt, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch parsing interrupted: %w", err)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	r.logger.Info("Batch parsing completed",
		logging.Field{Key: logging.FieldCount, Value: len(files)},
		logging.Field{Key: "failed", Value: failed},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	return results, nil
}

// ListStatements returns the sorted paths of the PDF files directly inside dir.
func ListStatements(dir string) ([]string, error) {
	if !fileutils.DirectoryExists(dir) {
		if fileutils.FileExists(dir) {
			return nil, &parsererror.InvalidFormatError{
				FilePath:       dir,
				ExpectedFormat: "directory",
				Msg:            "path is not a directory",
			}
		}
		return nil, &parsererror.NotFoundError{Path: dir, Kind: "directory"}
	}

	files, err := fileutils.ListFilesWithExtension(dir, ".pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	return files, nil
}
