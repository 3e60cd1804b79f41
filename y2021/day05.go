package y2021

import (
	"strings"

	aoc "github.com/maisem/aoc2021"
)

func parsePt(s string) (aoc.Pt, error) {
	x, y, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return aoc.Pt{}, aoc.ParseErrorf(s, "want x,y")
	}
	xy, err := aoc.Ints(x, y)
	if err != nil {
		return aoc.Pt{}, err
	}
	return aoc.Pt{X: xy[0], Y: xy[1]}, nil
}

func (s solver) vents() ([]aoc.Segment, error) {
	var vents []aoc.Segment
	err := s.ForLines(func(line string) error {
		a, b, ok := strings.Cut(line, "->")
		if !ok {
			return aoc.ParseErrorf(line, "want x1,y1 -> x2,y2")
		}
		var seg aoc.Segment
		var err error
		if seg.A, err = parsePt(a); err != nil {
			return err
		}
		if seg.B, err = parsePt(b); err != nil {
			return err
		}
		if seg.Diagonal() && aoc.AbsDiff(seg.A.X, seg.B.X) != aoc.AbsDiff(seg.A.Y, seg.B.Y) {
			return aoc.ParseErrorf(line, "diagonal line is not at 45 degrees")
		}
		vents = append(vents, seg)
		return nil
	})
	return vents, err
}

// overlaps counts the points covered by at least two vent lines.
func (s solver) overlaps(diagonals bool) (int, error) {
	vents, err := s.vents()
	if err != nil {
		return 0, err
	}
	covered := map[aoc.Pt]int{}
	for _, v := range vents {
		if v.Diagonal() && !diagonals {
			s.Debugf("ignoring diagonal line %v", v)
			continue
		}
		v.Points(func(p aoc.Pt) { covered[p]++ })
	}
	n := 0
	for _, c := range covered {
		if c >= 2 {
			n++
		}
	}
	return n, nil
}

/*
want=5

	0,9 -> 5,9
	8,0 -> 0,8
	9,4 -> 3,4
	2,2 -> 2,1
	7,0 -> 7,4
	6,4 -> 2,0
	0,9 -> 2,9
	3,4 -> 1,4
	0,0 -> 8,8
	5,5 -> 8,2
*/
func (s solver) D5p1() (any, error) {
	return s.overlaps(false)
}

// want=12
func (s solver) D5p2() (any, error) {
	return s.overlaps(true)
}
