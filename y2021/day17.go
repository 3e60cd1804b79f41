package y2021

import (
	"fmt"
	"math"

	aoc "github.com/maisem/aoc2021"
)

type targetArea struct {
	x1, x2, y1, y2 int
}

func (s solver) targetArea() (targetArea, error) {
	lines := s.Lines()
	if len(lines) != 1 {
		return targetArea{}, aoc.ParseErrorf("", "want one line, got %d", len(lines))
	}
	var t targetArea
	if _, err := fmt.Sscanf(lines[0], "target area: x=%d..%d, y=%d..%d", &t.x1, &t.x2, &t.y1, &t.y2); err != nil {
		return targetArea{}, &aoc.ParseError{Line: 1, Text: lines[0], Err: err}
	}
	if t.x1 > t.x2 {
		t.x1, t.x2 = t.x2, t.x1
	}
	if t.y1 > t.y2 {
		t.y1, t.y2 = t.y2, t.y1
	}
	if t.x1 <= 0 || t.y2 >= 0 {
		return targetArea{}, &aoc.ParseError{Line: 1, Text: lines[0], Err: fmt.Errorf("target must lie right of and below the launcher")}
	}
	return t, nil
}

// minVX returns the smallest x velocity whose drift reaches x1 before
// drag stops the probe, the ceiling of the root of v(v+1)/2 = x1.
func (t targetArea) minVX() int {
	r, _, err := aoc.SolveQuad(1, 1, -2*t.x1)
	if err != nil {
		return 1 // unreachable for x1 > 0
	}
	return int(math.Ceil(r))
}

// hits reports whether launching at (vx, vy) ends up in the target and
// the highest y reached on the way.
func (t targetArea) hits(vx, vy int) (bool, int) {
	var p aoc.Pt
	top := 0
	for p.X <= t.x2 && p.Y >= t.y1 {
		if p.X >= t.x1 && p.Y <= t.y2 {
			return true, top
		}
		p.X += vx
		p.Y += vy
		top = max(top, p.Y)
		if vx > 0 {
			vx--
		}
		vy--
	}
	return false, top
}

// launches calls f for every initial velocity that hits the target. A
// probe fired up at vy comes back through y=0 at -vy-1, so any vy above
// -y1-1 overshoots.
func (t targetArea) launches(f func(vx, vy, top int)) {
	for vx := t.minVX(); vx <= t.x2; vx++ {
		for vy := t.y1; vy <= -t.y1-1; vy++ {
			if ok, top := t.hits(vx, vy); ok {
				f(vx, vy, top)
			}
		}
	}
}

/*
want=45

	target area: x=20..30, y=-10..-5
*/
func (s solver) D17p1() (any, error) {
	t, err := s.targetArea()
	if err != nil {
		return nil, err
	}
	best := math.MinInt
	t.launches(func(vx, vy, top int) {
		if top > best {
			s.Debugf("new best launch %d,%d reaching y=%d", vx, vy, top)
			best = top
		}
	})
	if best == math.MinInt {
		return nil, aoc.ParseErrorf("", "no launch velocity hits the target")
	}
	return best, nil
}

// want=112
func (s solver) D17p2() (any, error) {
	t, err := s.targetArea()
	if err != nil {
		return nil, err
	}
	n := 0
	t.launches(func(_, _, _ int) { n++ })
	return n, nil
}
