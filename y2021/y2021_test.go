package y2021

import (
	"fmt"
	"go/format"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2021"
)

func newYear(t *testing.T) *aoc.Year {
	t.Helper()
	y, err := New()
	require.NoError(t, err)
	return y
}

// solve runs one part of day d on input.
func solve(t *testing.T, d int, part, input string) (any, error) {
	t.Helper()
	res, err := newYear(t).Solve(d, aoc.RunOptions{Part: part, Input: []byte(input)})
	if err != nil {
		return nil, err
	}
	require.Len(t, res, 1)
	return res[0].Answer, nil
}

func TestDays(t *testing.T) {
	y := newYear(t)
	require.Len(t, y.Days(), 25)
	for _, d := range y.Days() {
		assert.NotEmpty(t, y.Title(d), "day %d", d)
		want := []string{"1", "2"}
		if d == 25 {
			want = []string{"1"}
		}
		assert.Equal(t, want, y.Parts(d), "day %d", d)
	}
}

func TestSamples(t *testing.T) {
	y := newYear(t)
	for _, d := range y.Days() {
		t.Run(fmt.Sprintf("day%02d", d), func(t *testing.T) {
			res, err := y.Solve(d, aoc.RunOptions{Sample: true})
			require.NoError(t, err)
			for _, r := range res {
				if r.NoSample {
					continue
				}
				assert.Equal(t, r.Want, fmt.Sprint(r.Answer), "part %s", r.Part)
			}
		})
	}
}

func TestSamplesPresent(t *testing.T) {
	y := newYear(t)
	for _, d := range y.Days() {
		for _, p := range y.Parts(d) {
			_, want, ok := y.Sample(d, p)
			switch {
			case d == 24, d == 13 && p == "2":
				assert.False(t, ok, "day %d part %s", d, p)
			default:
				assert.True(t, ok, "day %d part %s", d, p)
				assert.NotEmpty(t, want, "day %d part %s", d, p)
			}
		}
	}
}

func TestSourcesEmbedded(t *testing.T) {
	names, err := fs.Glob(sources, "*")
	require.NoError(t, err)
	assert.Len(t, names, 25)
	assert.NotContains(t, names, "day_test.go")
}

// Samples live in doc comments, which gofmt rewrites. The sources must
// already be formatted, and formatting must not change any sample.
func TestSamplesSurviveGofmt(t *testing.T) {
	formatted := fstest.MapFS{}
	names, err := fs.Glob(sources, "*.go")
	require.NoError(t, err)
	for _, name := range names {
		src, err := fs.ReadFile(sources, name)
		require.NoError(t, err)
		out, err := format.Source(src)
		require.NoError(t, err, name)
		assert.Equal(t, string(src), string(out), "%s is not gofmt-clean", name)
		formatted[name] = &fstest.MapFile{Data: out}
	}
	got, err := aoc.NewYear(2021, formatted, &solver{}, titles)
	require.NoError(t, err)

	y := newYear(t)
	for _, d := range y.Days() {
		for _, p := range y.Parts(d) {
			in, want, ok := y.Sample(d, p)
			gotIn, gotWant, gotOK := got.Sample(d, p)
			assert.Equal(t, ok, gotOK, "day %d part %s", d, p)
			assert.Equal(t, want, gotWant, "day %d part %s", d, p)
			assert.Equal(t, in, gotIn, "day %d part %s", d, p)
		}
	}
}

func TestMalformed(t *testing.T) {
	tests := []struct {
		day   int
		name  string
		input string
		line  int // 0 if the error is not tied to a line
	}{
		{1, "not a number", "199\n2x0\n", 2},
		{2, "bad direction", "forward 5\nsideways 3\n", 2},
		{2, "no distance", "forward\n", 1},
		{3, "ragged", "00100\n1111\n", 2},
		{3, "not binary", "00120\n", 1},
		{4, "no boards", "7,4\n", 0},
		{4, "short board", "7,4,9\n\n1 2 3\n", 3},
		{5, "bad arrow", "0,9 => 5,9\n", 1},
		{5, "skewed diagonal", "0,9 -> 5,9\n1,1 -> 3,4\n", 2},
		{6, "timer too big", "3,4,9\n", 1},
		{6, "two lines", "3,4\n5\n", 0},
		{7, "not a number", "16,1,x\n", 1},
		{8, "too few patterns", "abc | def\n", 1},
		{9, "ragged", "21\n398\n", 2},
		{9, "not a digit", "219\n39x\n", 2},
		{10, "bad character", "[(])\n{x}\n", 2},
		{11, "not a digit", "5483\n27a5\n", 2},
		{12, "no dash", "start\n", 1},
		{12, "big caves connected", "start-A\nA-end\nA-B\n", 3},
		{12, "no end", "start-a\n", 0},
		{12, "end unreachable", "start-a\nb-end\n", 0},
		{13, "no folds", "6,10\n0,14\n", 0},
		{13, "bad axis", "6,10\n\nfold along z=3\n", 3},
		{13, "bad dot", "6,x\n\nfold along y=7\n", 1},
		{14, "bad rule", "NNCB\n\nCH - B\n", 3},
		{14, "short template", "N\n\nCH -> B\n", 1},
		{15, "not a digit", "116\n13x\n", 2},
		{16, "bad hex", "8A00G\n", 0},
		{16, "truncated", "8A00\n", 1},
		{17, "no y range", "target area: x=20..30\n", 1},
		{17, "target above", "target area: x=20..30, y=5..10\n", 1},
		{18, "unclosed", "[1,2]\n[1,2\n", 2},
		{18, "too deep", "[[[[[1,2],3],4],5],6]\n", 1},
		{19, "bad header", "--- scanner 0 ---\n1,2,3\n\nscanner 1\n4,5,6\n", 4},
		{19, "short beacon", "--- scanner 0 ---\n1,2\n", 2},
		{19, "no overlap", "--- scanner 0 ---\n1,2,3\n\n--- scanner 1 ---\n4,5,6\n", 0},
		{20, "short algorithm", "#.#\n\n#.\n", 1},
		{21, "one player", "Player 1 starting position: 4\n", 0},
		{21, "off the board", "Player 1 starting position: 4\nPlayer 2 starting position: 11\n", 2},
		{22, "no z range", "on x=1..2,y=1..2\n", 1},
		{22, "bad state", "toggle x=1..2,y=1..2,z=1..2\n", 1},
		{22, "empty cuboid", "on x=2..1,y=1..2,z=1..2\n", 1},
		{23, "bad amphipod", "#############\n#...........#\n###B#C#B#D###\n  #A#D#C#X#\n  #########\n", 4},
		{24, "too short", "inp w\n", 0},
		{25, "bad cell", "v.>\n.x.\n", 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("day%02d/%s", tt.day, tt.name), func(t *testing.T) {
			_, err := solve(t, tt.day, "1", tt.input)
			var pe *aoc.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line, "%v", err)
		})
	}
}

func TestEmptyInput(t *testing.T) {
	for _, d := range newYear(t).Days() {
		_, err := solve(t, d, "1", "\n\n")
		var pe *aoc.ParseError
		assert.ErrorAs(t, err, &pe, "day %d", d)
	}
}

func TestCRLF(t *testing.T) {
	got, err := solve(t, 1, "1", "199\r\n200\r\n208\r\n210\r\n200\r\n")
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}
