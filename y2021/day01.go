package y2021

import (
	aoc "github.com/maisem/aoc2021"
)

func (s solver) depths() ([]int, error) {
	var depths []int
	err := s.ForLines(func(line string) error {
		if line == "" {
			return nil
		}
		d, err := aoc.Int(line)
		if err != nil {
			return err
		}
		depths = append(depths, d)
		return nil
	})
	return depths, err
}

// countIncreases counts how often the sum of a window of the given
// size is larger than the previous window's. Adjacent windows share all
// but one element, so only the outermost ones need comparing.
func countIncreases(depths []int, window int) int {
	n := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n
}

/*
want=7

	199
	200
	208
	210
	200
	207
	240
	269
	260
	263
*/
func (s solver) D1p1() (any, error) {
	depths, err := s.depths()
	if err != nil {
		return nil, err
	}
	return countIncreases(depths, 1), nil
}

// want=5
func (s solver) D1p2() (any, error) {
	depths, err := s.depths()
	if err != nil {
		return nil, err
	}
	return countIncreases(depths, 3), nil
}
