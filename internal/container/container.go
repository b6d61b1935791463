// Package container provides dependency injection for the budged application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/budged/internal/batch"
	"fjacquet/budged/internal/categories"
	"fjacquet/budged/internal/config"
	"fjacquet/budged/internal/forteparser"
	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/pdfparser"
	"fjacquet/budged/internal/report"
	"fjacquet/budged/internal/store"
)

// Option customizes a container before its dependencies are built.
type Option func(*options)

type options struct {
	logger    logging.Logger
	extractor pdfparser.TableExtractor
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithExtractor replaces the pdftotext extractor, typically with a
// pdfparser.MockExtractor in tests.
func WithExtractor(extractor pdfparser.TableExtractor) Option {
	return func(o *options) { o.extractor = extractor }
}

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: fields are private and only
// reachable through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     *store.CategoryStore
	tables    *categories.Tables
	parser    *forteparser.Parser
	adapter   *forteparser.Adapter
	generator *report.Generator
	runner    *batch.Runner
}

// NewContainer creates and wires all application dependencies.
// Category overrides are loaded from the configured file (or the first
// categories.yaml found in the search path) and merged over the built-in tables.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	categoryStore := store.NewCategoryStore(cfg.Categories.File, logger)
	tables, err := categoryStore.LoadTables(categories.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to load category tables: %w", err)
	}

	extractor := o.extractor
	if extractor == nil {
		extractor = pdfparser.NewPDFToTextExtractor(logger)
	}

	adapter := forteparser.NewAdapter(logger, extractor, tables)
	adapter.SetDelimiter(cfg.Delimiter())
	parser := adapter.Parser()

	runner := batch.NewRunner(parser, cfg.Batch.Concurrency, logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: "category_codes", Value: len(tables.Codes())},
		logging.Field{Key: "concurrency", Value: runner.Concurrency()})

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     categoryStore,
		tables:    tables,
		parser:    parser,
		adapter:   adapter,
		generator: report.NewGenerator(logger),
		runner:    runner,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the category store used to load overrides.
func (c *Container) GetStore() *store.CategoryStore {
	return c.store
}

// GetTables returns the effective category tables.
func (c *Container) GetTables() *categories.Tables {
	return c.tables
}

// GetParser returns the statement parser.
func (c *Container) GetParser() *forteparser.Parser {
	return c.parser
}

// GetAdapter returns the CSV/XLSX conversion adapter.
func (c *Container) GetAdapter() *forteparser.Adapter {
	return c.adapter
}

// GetGenerator returns the JSON and markdown document generator.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// GetRunner returns the batch runner.
func (c *Container) GetRunner() *batch.Runner {
	return c.runner
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
