package aoc

import (
	"bytes"
	"os"
	"strings"
)

// ReadInput reads the whole puzzle input at path. The file is closed
// before ReadInput returns.
func ReadInput(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return b, nil
}

// Lines splits input into lines, accepting both \n and \r\n endings.
// Trailing blank lines are dropped.
func Lines(input []byte) []string {
	s := strings.ReplaceAll(string(input), "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Paragraph is a run of non-blank lines. Start is the 1-based line
// number of its first line in the input.
type Paragraph struct {
	Start int
	Lines []string
}

// Paragraphs splits input into blank-line separated paragraphs.
func Paragraphs(input []byte) []Paragraph {
	var out []Paragraph
	var cur *Paragraph
	for i, line := range Lines(input) {
		if strings.TrimSpace(line) == "" {
			cur = nil
			continue
		}
		if cur == nil {
			out = append(out, Paragraph{Start: i + 1})
			cur = &out[len(out)-1]
		}
		cur.Lines = append(cur.Lines, line)
	}
	return out
}

func blank(input []byte) bool {
	return len(bytes.TrimSpace(input)) == 0
}
