package y2021

import (
	aoc "github.com/maisem/aoc2021"
)

func seaFloorCell(r rune) (rune, error) {
	switch r {
	case '>', 'v', '.':
		return r, nil
	}
	return 0, aoc.ParseErrorf(string(r), "want >, v or .")
}

// herdStep moves every cucumber of the herd facing dir one cell forward
// if that cell, wrapping around the edges, is empty. All of the herd
// looks before any of it moves.
func herdStep(g aoc.Grid[rune], herd rune, dir aoc.Direction) aoc.Grid[rune] {
	size := g.Size()
	out := g.Clone()
	g.ForEach(func(p aoc.Pt, v rune) {
		if v != herd {
			return
		}
		n := aoc.StandardizePt(p.Add(dir.Delta()), size)
		if g.At(n) == '.' {
			out.Set(n, herd)
			out.Set(p, '.')
		}
	})
	return out
}

/*
want=58

	v...>>.vv>
	.vv>>.vv..
	>>.>v>...v
	>>v>>.>.v.
	v>v.vv.v..
	>.>>..v...
	.vv..>.>v.
	v.v..>>v.v
	....v..v.>
*/
func (s solver) D25p1() (any, error) {
	g, err := aoc.ParseGrid(s.Lines(), seaFloorCell)
	if err != nil {
		return nil, err
	}
	h := g.Hash()
	for step := 1; ; step++ {
		g = herdStep(herdStep(g, '>', aoc.Right), 'v', aoc.Down)
		next := g.Hash()
		if next == h {
			return step, nil
		}
		h = next
	}
}
