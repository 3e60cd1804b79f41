package aoc

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n\n", nil},
		{"a\nb", []string{"a", "b"}},
		{"a\nb\n\n\n", []string{"a", "b"}},
		{"a\r\n\r\nb\r\n", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Lines([]byte(tt.in))); diff != "" {
			t.Errorf("Lines(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParagraphs(t *testing.T) {
	in := "7,4,9\n\n22 13\n 8  2\n  \n\n1 2\n"
	want := []Paragraph{
		{Start: 1, Lines: []string{"7,4,9"}},
		{Start: 3, Lines: []string{"22 13", " 8  2"}},
		{Start: 7, Lines: []string{"1 2"}},
	}
	if diff := cmp.Diff(want, Paragraphs([]byte(in))); diff != "" {
		t.Errorf("Paragraphs mismatch (-want +got):\n%s", diff)
	}
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day01-input")
	require.NoError(t, os.WriteFile(path, []byte("199\n200\n"), 0o644))

	b, err := ReadInput(path)
	require.NoError(t, err)
	assert.Equal(t, "199\n200\n", string(b))

	_, err = ReadInput(filepath.Join(dir, "missing"))
	var ioe *IOError
	require.ErrorAs(t, err, &ioe)
	assert.Equal(t, filepath.Join(dir, "missing"), ioe.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestBlank(t *testing.T) {
	assert.True(t, blank(nil))
	assert.True(t, blank([]byte(" \r\n\t\n")))
	assert.False(t, blank([]byte("\n1\n")))
}
