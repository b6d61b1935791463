// Package store loads category table overrides from YAML files.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/budged/internal/categories"
	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up when no explicit file is configured.
const DefaultFileName = "categories.yaml"

// CategoryStore resolves and loads the category override file.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a new store. An empty file name disables explicit
// lookup; the default file is then used when found in a standard location.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logging.OrDefault(logger),
	}
}

// FindConfigFile looks for filename in the current directory, ./config and
// $HOME/.config/budged.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "budged", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadDocument reads the override document. An explicitly configured file
// that cannot be found is a *parsererror.NotFoundError; a missing default
// file yields (nil, nil).
func (s *CategoryStore) LoadDocument() (*categories.Document, error) {
	filename := s.CategoriesFile
	explicit := filename != ""
	if !explicit {
		filename = DefaultFileName
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		if explicit {
			return nil, &parsererror.NotFoundError{Path: filename, Kind: "file"}
		}
		s.logger.Debug("No category override file found", logging.Field{Key: logging.FieldFile, Value: filename})
		return nil, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-configured path
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var doc categories.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "YAML with mcc_codes and category_groups",
			Msg:            err.Error(),
		}
	}

	s.logger.Info("Loaded category overrides",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(doc.MCCCodes)})
	return &doc, nil
}

// LoadTables returns base merged with the override file, or base unchanged
// when there is none. Inconsistent overrides yield a *parsererror.ValidationError.
func (s *CategoryStore) LoadTables(base *categories.Tables) (*categories.Tables, error) {
	doc, err := s.LoadDocument()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return base, nil
	}

	tables, err := categories.Merge(base, doc.MCCCodes, doc.CategoryGroups)
	if err != nil {
		var vErr *parsererror.ValidationError
		if errors.As(err, &vErr) {
			vErr.FilePath = s.CategoriesFile
		}
		return nil, err
	}
	return tables, nil
}
