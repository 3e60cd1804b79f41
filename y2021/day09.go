package y2021

import (
	"slices"

	aoc "github.com/maisem/aoc2021"
)

func (s solver) heightmap() (aoc.Grid[int], error) {
	return aoc.ParseGrid(s.Lines(), aoc.Digit)
}

func lowPoints(g aoc.Grid[int]) []aoc.Pt {
	var low []aoc.Pt
	g.ForEach(func(p aoc.Pt, h int) {
		isLow := true
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if nh, ok := g.AtOk(n); ok && nh <= h {
				isLow = false
				return false
			}
			return true
		})
		if isLow {
			low = append(low, p)
		}
	})
	return low
}

/*
want=15

	2199943210
	3987894921
	9856789892
	8767896789
	9899965678
*/
func (s solver) D9p1() (any, error) {
	g, err := s.heightmap()
	if err != nil {
		return nil, err
	}
	risk := 0
	for _, p := range lowPoints(g) {
		risk += g.At(p) + 1
	}
	return risk, nil
}

// want=1134
func (s solver) D9p2() (any, error) {
	g, err := s.heightmap()
	if err != nil {
		return nil, err
	}
	// Every basin drains to exactly one low point and is bounded by 9s.
	var sizes []int
	work := g.Clone()
	for _, p := range lowPoints(g) {
		sizes = append(sizes, aoc.FloodFill(work, p, func(h int) bool { return h < 9 }, 9))
	}
	if len(sizes) < 3 {
		return nil, aoc.ParseErrorf("", "found %d basins, want at least 3", len(sizes))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return sizes[0] * sizes[1] * sizes[2], nil
}
