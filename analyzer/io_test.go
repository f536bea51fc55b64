package analyzer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	data := "\ufeffQ1,Q2,,Q1\n" +
		"Great class!,,x,dup\n" +
		"\"Needs more, examples\",ok\n"
	tbl, err := ReadTable(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"Q1", "Q2", "Unnamed: 2", "Q1.1"}, tbl.Columns())
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"Great class!", "Needs more, examples"}, tbl.ColumnTexts(0))
	assert.Equal(t, []string{"ok"}, tbl.ColumnTexts(1))
	assert.Equal(t, []string{"x"}, tbl.ColumnTexts(2))
	assert.Equal(t, []string{"dup"}, tbl.ColumnTexts(3))
	assert.Nil(t, tbl.ColumnTexts(9))
	assert.Equal(t, [][]string{{"Great class!", "", "x", "dup"}}, tbl.Head(1))
	assert.Len(t, tbl.Head(10), 2)
}

func TestReadTableErrors(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrEmptyFile))

	_, err = ReadTable(strings.NewReader("a,b\n1,2,3\n"))
	assert.ErrorContains(t, err, "expected 2 fields")

	_, err = ReadTable(strings.NewReader("a,b\n\"unterminated,2\n"))
	assert.Error(t, err)
}

func TestReadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.csv")
	require.NoError(t, os.WriteFile(path, []byte("comment\nGreat class!\n"), 0o644))

	tbl, err := ReadTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Great class!"}, tbl.ColumnTexts(0))

	_, err = ReadTableFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
