package y2021

import (
	aoc "github.com/maisem/aoc2021"
)

func (s solver) riskMap() (aoc.Grid[int], error) {
	return aoc.ParseGrid(s.Lines(), aoc.Digit)
}

// tileRisk expands g n times in both directions. Each tile step right
// or down adds 1 to the risk, wrapping from 9 back to 1.
func tileRisk(g aoc.Grid[int], n int) aoc.Grid[int] {
	return g.Tile(n, n, func(v, tx, ty int) int {
		return (v+tx+ty-1)%9 + 1
	})
}

// lowestRisk returns the least total risk of a path from the top left to
// the bottom right corner. The starting position is not entered, so
// its risk does not count.
func lowestRisk(g aoc.Grid[int]) (int, bool) {
	size := g.Size()
	end := aoc.Pt{X: size.X - 1, Y: size.Y - 1}
	return aoc.ShortestPath(aoc.Pt{},
		func(p aoc.Pt, yield func(aoc.Pt, int)) {
			p.ForImmediateNeighbors(func(n aoc.Pt) bool {
				if risk, ok := g.AtOk(n); ok {
					yield(n, risk)
				}
				return true
			})
		},
		func(p aoc.Pt) bool { return p == end },
	)
}

func (s solver) chiton(tiles int) (any, error) {
	g, err := s.riskMap()
	if err != nil {
		return nil, err
	}
	if tiles > 1 {
		g = tileRisk(g, tiles)
	}
	risk, ok := lowestRisk(g)
	if !ok {
		return nil, aoc.ParseErrorf("", "no path to the bottom right corner")
	}
	s.Debugf("map %v tiled %dx: risk %d", g.Size(), tiles, risk)
	return risk, nil
}

/*
want=40

	1163751742
	1381373672
	2136511328
	3694931569
	7463417111
	1319128137
	1359912421
	3125421639
	1293138521
	2311944581
*/
func (s solver) D15p1() (any, error) {
	return s.chiton(1)
}

// want=315
func (s solver) D15p2() (any, error) {
	return s.chiton(5)
}
