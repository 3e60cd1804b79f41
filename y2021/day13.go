package y2021

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2021"
)

type fold struct {
	alongX bool
	at     int
}

// apply reflects p across the fold line if it lies beyond it.
func (f fold) apply(p aoc.Pt) aoc.Pt {
	if f.alongX && p.X > f.at {
		p.X = 2*f.at - p.X
	} else if !f.alongX && p.Y > f.at {
		p.Y = 2*f.at - p.Y
	}
	return p
}

func (s solver) origami() (map[aoc.Pt]bool, []fold, error) {
	paras := s.Paragraphs()
	if len(paras) != 2 {
		return nil, nil, aoc.ParseErrorf("", "want dots and fold instructions separated by a blank line")
	}
	dots := map[aoc.Pt]bool{}
	for i, line := range paras[0].Lines {
		p, err := parsePt(line)
		if err != nil {
			return nil, nil, aoc.AtLine(err, paras[0].Start+i)
		}
		dots[p] = true
	}
	var folds []fold
	for i, line := range paras[1].Lines {
		ln := paras[1].Start + i
		axis, at, ok := strings.Cut(strings.TrimPrefix(line, "fold along "), "=")
		if !ok || (axis != "x" && axis != "y") {
			return nil, nil, &aoc.ParseError{Line: ln, Text: line, Err: fmt.Errorf("want fold along x=N or y=N")}
		}
		n, err := aoc.Int(at)
		if err != nil {
			return nil, nil, aoc.AtLine(err, ln)
		}
		folds = append(folds, fold{alongX: axis == "x", at: n})
	}
	return dots, folds, nil
}

func foldDots(dots map[aoc.Pt]bool, f fold) map[aoc.Pt]bool {
	out := make(map[aoc.Pt]bool, len(dots))
	for p := range dots {
		out[f.apply(p)] = true
	}
	return out
}

// renderDots draws dots as '#' on a '.' background.
func renderDots(dots map[aoc.Pt]bool) string {
	var size aoc.Pt
	for p := range dots {
		size.X = max(size.X, p.X+1)
		size.Y = max(size.Y, p.Y+1)
	}
	g := aoc.MakeGrid[string](size.X, size.Y)
	g.ForEach(func(p aoc.Pt, _ string) {
		if dots[p] {
			g.Set(p, "#")
		} else {
			g.Set(p, ".")
		}
	})
	return g.String()
}

/*
want=17

	6,10
	0,14
	9,10
	0,3
	10,4
	4,11
	6,0
	6,12
	4,1
	0,13
	10,12
	3,4
	3,0
	8,4
	1,10
	2,14
	8,10
	9,0

	fold along y=7
	fold along x=5
*/
func (s solver) D13p1() (any, error) {
	dots, folds, err := s.origami()
	if err != nil {
		return nil, err
	}
	if len(folds) == 0 {
		return nil, aoc.ParseErrorf("", "no fold instructions")
	}
	return len(foldDots(dots, folds[0])), nil
}

// D13p2 returns the folded paper; the code has to be read off it.
func (s solver) D13p2() (any, error) {
	dots, folds, err := s.origami()
	if err != nil {
		return nil, err
	}
	for _, f := range folds {
		dots = foldDots(dots, f)
	}
	return "\n" + renderDots(dots), nil
}
