package common_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/budged/cmd/common"
	"fjacquet/budged/internal/logging"
	"fjacquet/budged/internal/parsererror"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockConverter implements common.Converter for testing
type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) ValidateFormat(file string) (bool, error) {
	args := m.Called(file)
	return args.Bool(0), args.Error(1)
}

func (m *MockConverter) Convert(inputFile, outputFile string) error {
	args := m.Called(inputFile, outputFile)
	return args.Error(0)
}

func TestProcessFile_WithValidation(t *testing.T) {
	conv := new(MockConverter)
	conv.On("ValidateFormat", "in.pdf").Return(true, nil)
	conv.On("Convert", "in.pdf", "out.csv").Return(nil)
	logger := logging.NewMockLogger()

	err := common.ProcessFile(conv, "in.pdf", "out.csv", true, logger)
	require.NoError(t, err)
	conv.AssertExpectations(t)
	assert.True(t, logger.HasEntry("INFO", "Validation successful."))
	assert.True(t, logger.HasEntry("INFO", "Conversion completed successfully!"))
}

func TestProcessFile_InvalidFormat(t *testing.T) {
	conv := new(MockConverter)
	conv.On("ValidateFormat", "in.pdf").Return(false, nil)

	err := common.ProcessFile(conv, "in.pdf", "out.csv", true, logging.NewMockLogger())
	var formatErr *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &formatErr))
	conv.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything)
}

func TestProcessFile_ValidationError(t *testing.T) {
	conv := new(MockConverter)
	conv.On("ValidateFormat", "in.pdf").Return(false, &parsererror.NotFoundError{Path: "in.pdf"})

	err := common.ProcessFile(conv, "in.pdf", "out.csv", true, logging.NewMockLogger())
	assert.True(t, errors.Is(err, parsererror.ErrNotFound))
}

func TestProcessFile_ConvertError(t *testing.T) {
	conv := new(MockConverter)
	conv.On("Convert", "in.pdf", "out.xlsx").Return(errors.New("disk full"))

	err := common.ProcessFile(conv, "in.pdf", "out.xlsx", false, logging.NewMockLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	conv.AssertNotCalled(t, "ValidateFormat", mock.Anything)
}

func TestProcessFile_MissingPaths(t *testing.T) {
	err := common.ProcessFile(new(MockConverter), "", "out.csv", false, logging.NewMockLogger())
	assert.EqualError(t, err, "input and output files must be specified")
}

func TestResolveInputs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	require.NoError(t, os.WriteFile(b, []byte("%PDF"), 0600))
	require.NoError(t, os.WriteFile(a, []byte("%PDF"), 0600))

	files, err := common.ResolveInputs(a, "ignored", "")
	require.NoError(t, err)
	assert.Equal(t, []string{a}, files)

	files, err = common.ResolveInputs("", dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)

	files, err = common.ResolveInputs("", "", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)
}

func TestResolveInputs_Errors(t *testing.T) {
	_, err := common.ResolveInputs(filepath.Join(t.TempDir(), "missing.pdf"), "", "")
	assert.True(t, errors.Is(err, parsererror.ErrNotFound))

	_, err = common.ResolveInputs("", filepath.Join(t.TempDir(), "missing"), "")
	assert.True(t, errors.Is(err, parsererror.ErrNotFound))

	empty := t.TempDir()
	_, err = common.ResolveInputs("", empty, "")
	assert.EqualError(t, err, "no PDF files found in "+empty)
}

func TestFlagOrDefault(t *testing.T) {
	var sortBy string
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&sortBy, "sort", "sum", "")

	assert.Equal(t, "name", common.FlagOrDefault(cmd, "sort", sortBy, "name"))
	assert.Equal(t, "sum", common.FlagOrDefault(cmd, "sort", sortBy, ""))

	require.NoError(t, cmd.Flags().Set("sort", "date"))
	assert.Equal(t, "date", common.FlagOrDefault(cmd, "sort", sortBy, "name"))
}

func TestContext(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	assert.NotNil(t, common.Context(cmd))
}
