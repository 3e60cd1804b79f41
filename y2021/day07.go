package y2021

import (
	"math"
	"slices"

	aoc "github.com/maisem/aoc2021"
)

func (s solver) crabs() ([]int, error) {
	lines := s.Lines()
	if len(lines) != 1 {
		return nil, aoc.ParseErrorf("", "want a single line of positions, got %d lines", len(lines))
	}
	pos, err := aoc.IntList(lines[0], ",")
	return pos, aoc.AtLine(err, 1)
}

// alignCrabs returns the least total fuel needed to move every crab to
// one position, where moving n steps costs cost(n).
func (s solver) alignCrabs(cost func(n int) int) (any, error) {
	crabs, err := s.crabs()
	if err != nil {
		return nil, err
	}
	best, bestPos := math.MaxInt, 0
	for p := slices.Min(crabs); p <= slices.Max(crabs); p++ {
		fuel := 0
		for _, c := range crabs {
			fuel += cost(aoc.AbsDiff(c, p))
		}
		if fuel < best {
			best, bestPos = fuel, p
		}
	}
	s.Debugf("aligning at %d", bestPos)
	return best, nil
}

/*
want=37

	16,1,2,0,4,2,7,1,2,14
*/
func (s solver) D7p1() (any, error) {
	return s.alignCrabs(func(n int) int { return n })
}

// want=168
func (s solver) D7p2() (any, error) {
	return s.alignCrabs(aoc.Triangle[int])
}
