package list

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"fjacquet/budged/cmd/internal/cmdtest"
	"fjacquet/budged/internal/parsererror"
	"fjacquet/budged/internal/pdfparser"
	"fjacquet/budged/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand_DefaultDirectory(t *testing.T) {
	dir, _ := cmdtest.Setup(t, pdfparser.NewMockExtractor(nil, nil))
	cmdtest.WritePDF(t, dir, "march.pdf")
	cmdtest.WritePDF(t, dir, "february.pdf")

	out, err := cmdtest.Run(Cmd)
	require.NoError(t, err)

	var list report.StatementList
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, 2, list.Count)
	assert.Equal(t, "february.pdf", list.Files[0].Name)
	assert.Equal(t, "march.pdf", list.Files[1].Name)
	assert.True(t, filepath.IsAbs(list.Directory))
}

func TestListCommand_MissingDirectory(t *testing.T) {
	cmdtest.Setup(t, pdfparser.NewMockExtractor(nil, nil))
	inputDir = filepath.Join(t.TempDir(), "missing")
	defer func() { inputDir = "" }()

	_, err := cmdtest.Run(Cmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrNotFound))
}
