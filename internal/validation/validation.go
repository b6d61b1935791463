// Package validation checks user-supplied paths and output formats.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/budged/internal/parsererror"
)

// OutputFormats lists the export file extensions. An output file without an
// extension is written as CSV.
var OutputFormats = []string{".csv", ".xlsx"}

// IsValidPath checks that path exists and is a regular file or a directory.
// A missing path yields a *parsererror.NotFoundError.
func IsValidPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return &parsererror.NotFoundError{Path: path}
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}
	return nil
}

// IsValidOutputFormat checks that the extension of outputFile is a supported
// export format.
func IsValidOutputFormat(outputFile string) error {
	ext := strings.ToLower(filepath.Ext(outputFile))
	if ext == "" {
		return nil
	}
	for _, supported := range OutputFormats {
		if ext == supported {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q: use %s", ext, strings.Join(OutputFormats, " or "))
}
