package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digitGrid(t *testing.T, lines ...string) Grid[int] {
	t.Helper()
	g, err := ParseGrid(lines, Digit)
	require.NoError(t, err)
	return g
}

func TestParseGrid(t *testing.T) {
	g := digitGrid(t, "123", "456")
	assert.Equal(t, Pt{3, 2}, g.Size())
	assert.Equal(t, 6, g.At(Pt{2, 1}))

	_, err := ParseGrid([]string{"123", "45"}, Digit)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)

	_, err = ParseGrid([]string{"123", "4x6"}, Digit)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "x", pe.Text)

	_, err = ParseGrid(nil, Digit)
	assert.ErrorAs(t, err, &pe)
}

func TestGridAccess(t *testing.T) {
	g := MakeGrid[int](3, 2)
	g.Set(Pt{2, 1}, 7)
	v, ok := g.AtOk(Pt{2, 1})
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	for _, p := range []Pt{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		_, ok := g.AtOk(p)
		assert.False(t, ok, "%v", p)
		assert.False(t, g.In(p), "%v", p)
	}
}

func TestGridTransform(t *testing.T) {
	g := digitGrid(t, "12", "34", "56")
	tiled := digitGrid(t, "12").Tile(2, 2, func(v, tx, ty int) int { return v + 10*(tx+2*ty) })
	if diff := cmp.Diff(Grid[int]{{1, 2, 11, 12}, {21, 22, 31, 32}}, tiled); diff != "" {
		t.Errorf("Tile mismatch (-want +got):\n%s", diff)
	}

	c := g.Clone()
	c.Set(Pt{0, 0}, 9)
	assert.Equal(t, 1, g.At(Pt{0, 0}))
	assert.Equal(t, "12\n34\n56", g.String())
}

func TestGridString(t *testing.T) {
	assert.Equal(t, ">.v\n#..", Grid[rune]{[]rune(">.v"), []rune("#..")}.String())
	assert.Equal(t, "ab", Grid[byte]{[]byte("ab")}.String())
	assert.Equal(t, "truefalse", Grid[bool]{{true, false}}.String())
	assert.Equal(t, "", Grid[int]{}.String())
}

func TestGridHash(t *testing.T) {
	g := digitGrid(t, "12", "34")
	c := g.Clone()
	assert.Equal(t, g.Hash(), c.Hash())
	c.Set(Pt{1, 1}, 5)
	assert.NotEqual(t, g.Hash(), c.Hash())

	r := Grid[rune]{{'>', '.'}}
	assert.Equal(t, r.Hash(), r.Clone().Hash())
}

func TestFloodFill(t *testing.T) {
	g := digitGrid(t,
		"0090",
		"0909",
		"9000",
	)
	n := FloodFill(g, Pt{0, 0}, func(v int) bool { return v == 0 }, 1)
	assert.Equal(t, 3, n)
	want := digitGrid(t,
		"1190",
		"1909",
		"9000",
	)
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("FloodFill mismatch (-want +got):\n%s", diff)
	}
	assert.Zero(t, FloodFill(g, Pt{2, 0}, func(v int) bool { return v == 0 }, 1))
	assert.Zero(t, FloodFill(g, Pt{5, 5}, func(v int) bool { return v == 0 }, 1))
}

func TestNeighbors(t *testing.T) {
	var all, immediate []Pt
	Pt{1, 1}.ForNeighbors(func(p Pt) bool {
		all = append(all, p)
		return true
	})
	Pt{1, 1}.ForImmediateNeighbors(func(p Pt) bool {
		immediate = append(immediate, p)
		return true
	})
	assert.Len(t, all, 8)
	assert.Equal(t, []Pt{{1, 0}, {0, 1}, {2, 1}, {1, 2}}, immediate)

	n := 0
	Pt{}.ForNeighbors(func(Pt) bool {
		n++
		return n < 3
	})
	assert.Equal(t, 3, n)
}

func TestSegment(t *testing.T) {
	var pts []Pt
	Segment{Pt{1, 1}, Pt{3, 3}}.Points(func(p Pt) { pts = append(pts, p) })
	assert.Equal(t, []Pt{{1, 1}, {2, 2}, {3, 3}}, pts)

	pts = nil
	Segment{Pt{0, 9}, Pt{0, 7}}.Points(func(p Pt) { pts = append(pts, p) })
	assert.Equal(t, []Pt{{0, 9}, {0, 8}, {0, 7}}, pts)

	assert.True(t, Segment{Pt{1, 1}, Pt{3, 3}}.Diagonal())
	assert.False(t, Segment{Pt{0, 9}, Pt{0, 7}}.Diagonal())
}

func TestPoints(t *testing.T) {
	assert.Equal(t, Pt{0, 4}, StandardizePt(Pt{-5, 9}, Pt{5, 5}))
	assert.Equal(t, Pt{2, 3}, StandardizePt(Pt{2, 3}, Pt{5, 5}))
	assert.Equal(t, Pt{0, -1}, Up.Delta())
	assert.Equal(t, Pt{2, 3}, Pt{1, 3}.Add(Right.Delta()))
	assert.Equal(t, "v", Down.String())

	a := Pt3[int]{1, 2, 3}
	b := Pt3[int]{-1, 0, 5}
	assert.Equal(t, Pt3[int]{2, 2, -2}, a.Sub(b))
	assert.Equal(t, a, a.Sub(b).Add(b))
	assert.Equal(t, 6, a.MDist(b))
}
