package y2021

import (
	aoc "github.com/maisem/aoc2021"
)

func (s solver) octopuses() (aoc.Grid[int], error) {
	return aoc.ParseGrid(s.Lines(), aoc.Digit)
}

// octopusStep advances g by one step in place and returns the number of
// octopuses that flashed.
func octopusStep(g aoc.Grid[int]) int {
	var q aoc.Queue[aoc.Pt]
	g.ForEach(func(p aoc.Pt, v int) {
		g.Set(p, v+1)
		if v+1 > 9 {
			q.Push(p)
		}
	})
	flashed := map[aoc.Pt]bool{}
	q.While(func(p aoc.Pt) bool {
		if flashed[p] {
			return true
		}
		flashed[p] = true
		p.ForNeighbors(func(n aoc.Pt) bool {
			v, ok := g.AtOk(n)
			if !ok {
				return true
			}
			g.Set(n, v+1)
			if v+1 > 9 && !flashed[n] {
				q.Push(n)
			}
			return true
		})
		return true
	})
	for p := range flashed {
		g.Set(p, 0)
	}
	return len(flashed)
}

/*
want=1656

	5483143223
	2745854711
	5264556173
	6141336146
	6357385478
	4167524645
	2176841721
	6882881134
	4846848554
	5283751526
*/
func (s solver) D11p1() (any, error) {
	g, err := s.octopuses()
	if err != nil {
		return nil, err
	}
	total := 0
	for range 100 {
		total += octopusStep(g)
	}
	return total, nil
}

// want=195
func (s solver) D11p2() (any, error) {
	g, err := s.octopuses()
	if err != nil {
		return nil, err
	}
	size := g.Size()
	for step := 1; ; step++ {
		if octopusStep(g) == size.X*size.Y {
			return step, nil
		}
	}
}
