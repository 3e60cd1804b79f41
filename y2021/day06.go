package y2021

import (
	"fmt"

	aoc "github.com/maisem/aoc2021"
)

// school counts lanternfish by their timer value, 0 through 8.
type school [9]int

func (s solver) school() (school, error) {
	var sc school
	lines := s.Lines()
	if len(lines) != 1 {
		return sc, aoc.ParseErrorf("", "want a single line of timers, got %d lines", len(lines))
	}
	timers, err := aoc.IntList(lines[0], ",")
	if err != nil {
		return sc, aoc.AtLine(err, 1)
	}
	for _, t := range timers {
		if t < 0 || t >= len(sc) {
			return sc, &aoc.ParseError{Line: 1, Text: fmt.Sprint(t), Err: fmt.Errorf("timer out of range 0..8")}
		}
		sc[t]++
	}
	return sc, nil
}

func (sc school) after(days int) int {
	for range days {
		spawning := sc[0]
		copy(sc[:], sc[1:])
		sc[6] += spawning
		sc[8] = spawning
	}
	return aoc.Sum(sc[:]...)
}

/*
want=5934

	3,4,3,1,2
*/
func (s solver) D6p1() (any, error) {
	sc, err := s.school()
	if err != nil {
		return nil, err
	}
	return sc.after(80), nil
}

// want=26984457539
func (s solver) D6p2() (any, error) {
	sc, err := s.school()
	if err != nil {
		return nil, err
	}
	return sc.after(256), nil
}
