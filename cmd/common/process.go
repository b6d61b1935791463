// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"

	"fjacquet/budged/internal/batch"
	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/parsererror"
	"fjacquet/budged/internal/validation"

	"github.com/spf13/cobra"
)

// Converter is the part of forteparser.Adapter used by the convert command.
type Converter interface {
	ValidateFormat(file string) (bool, error)
	Convert(inputFile, outputFile string) error
}

// ResolveInputs returns the statements a command should process: the single
// input file when given, otherwise every PDF in dir (or defaultDir when dir
// is empty). An empty directory is an error.
func ResolveInputs(input, dir, defaultDir string) ([]string, error) {
	if input != "" {
		if err := validation.IsValidPath(input); err != nil {
			return nil, err
		}
		return []string{input}, nil
	}

	if dir == "" {
		dir = defaultDir
	}
	files, err := batch.ListStatements(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", dir)
	}
	return files, nil
}

// ProcessFile converts a single statement, validating it first when asked.
func ProcessFile(conv Converter, inputFile, outputFile string, validate bool, log logging.Logger) error {
	if inputFile == "" || outputFile == "" {
		return fmt.Errorf("input and output files must be specified")
	}

	if validate {
		log.Info("Validating format...")
		valid, err := conv.ValidateFormat(inputFile)
		if err != nil {
			return fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return &parsererror.InvalidFormatError{
				FilePath:       inputFile,
				ExpectedFormat: "PDF",
				Msg:            "the file is not a PDF document",
			}
		}
		log.Info("Validation successful.")
	}

	if err := conv.Convert(inputFile, outputFile); err != nil {
		return fmt.Errorf("error converting statement: %w", err)
	}
	log.Info("Conversion completed successfully!",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})
	return nil
}

// FlagOrDefault returns value when the named flag was set on the command line
// and fallback otherwise. It lets configuration supply flag defaults.
func FlagOrDefault(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) || fallback == "" {
		return value
	}
	return fallback
}

// Context returns the command context, or a background context when the
// command runs outside Execute.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
