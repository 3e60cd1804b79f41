package aoc

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a rectangular grid indexed by Pt, row-major.
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// In reports whether p is within the grid.
func (g Grid[T]) In(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid parses lines into a grid, one cell per rune. All lines must
// have the same length.
func ParseGrid[T any](lines []string, cell func(rune) (T, error)) (Grid[T], error) {
	if len(lines) == 0 {
		return nil, ParseErrorf("", "empty grid")
	}
	g := make(Grid[T], 0, len(lines))
	for y, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, &ParseError{Line: y + 1, Text: line, Err: fmt.Errorf("row has width %d, want %d", len(line), len(lines[0]))}
		}
		row := make([]T, 0, len(line))
		for _, r := range line {
			v, err := cell(r)
			if err != nil {
				return nil, AtLine(err, y+1)
			}
			row = append(row, v)
		}
		g = append(g, row)
	}
	return g, nil
}

var hashers map[reflect.Type]any // of func(*Grid[T]) deephash.Sum

// Hash returns a hash of the grid's contents.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// Tile returns a grid of nx by ny copies of g. Cell values in the copy
// at column tx, row ty are mapped through f.
func (g Grid[T]) Tile(nx, ny int, f func(v T, tx, ty int) T) Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.X*nx, size.Y*ny)
	out.ForEach(func(p Pt, _ T) {
		v := g[p.Y%size.Y][p.X%size.X]
		out.Set(p, f(v, p.X/size.X, p.Y/size.Y))
	})
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(p Pt, v T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// String renders the grid one row per line. rune and byte cells are
// written as characters, anything else with fmt.
func (g Grid[T]) String() string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			switch c := any(v).(type) {
			case rune:
				sb.WriteRune(c)
			case byte:
				sb.WriteByte(c)
			default:
				fmt.Fprint(&sb, v)
			}
		}
	}
	return sb.String()
}

// FloodFill sets every cell reachable from start through orthogonal
// neighbors for which canFill reports true to fill. It returns the
// number of cells filled. fill must not satisfy canFill.
func FloodFill[T any](grid Grid[T], start Pt, canFill func(T) bool, fill T) int {
	v, ok := grid.AtOk(start)
	if !ok || !canFill(v) {
		return 0
	}
	grid.Set(start, fill)
	n := 1
	q := NewQueue(start)
	q.While(func(p Pt) bool {
		p.ForImmediateNeighbors(func(p2 Pt) (keepGoing bool) {
			if v, ok := grid.AtOk(p2); ok && canFill(v) {
				grid.Set(p2, fill)
				n++
				q.Push(p2)
			}
			return true
		})
		return true
	})
	return n
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Delta returns the unit step in direction d; Y grows downward.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Pt
}

// Points calls f for every point of s, from A to B. Only horizontal,
// vertical and 45° segments are walked exactly.
func (s Segment) Points(f func(Pt)) {
	p := s.A
	f(p)
	for p != s.B {
		p = p.Toward(s.B)
		f(p)
	}
}

// Diagonal reports whether s is neither horizontal nor vertical.
func (s Segment) Diagonal() bool {
	return s.A.X != s.B.X && s.A.Y != s.B.Y
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// StandardizePt wraps p into the rectangle [0, size).
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

func (p Pt3[T]) Add(q Pt3[T]) Pt3[T] {
	return Pt3[T]{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

func (p Pt3[T]) Sub(q Pt3[T]) Pt3[T] {
	return Pt3[T]{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// MDist returns the manhattan distance between a and b.
func (a Pt3[T]) MDist(b Pt3[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y) + AbsDiff(a.Z, b.Z)
}
