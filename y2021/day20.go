package y2021

import (
	"errors"
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2021"
)

type trenchImage struct {
	lit aoc.Grid[bool]
	// background is the state of every pixel outside lit. It can flip
	// between steps when the algorithm lights up empty neighborhoods.
	background bool
}

func (s solver) trenchMap() ([]bool, trenchImage, error) {
	paras := s.Paragraphs()
	if len(paras) != 2 {
		return nil, trenchImage{}, aoc.ParseErrorf("", "want the algorithm and the image separated by a blank line")
	}
	alg := strings.Join(paras[0].Lines, "")
	if len(alg) != 512 {
		return nil, trenchImage{}, &aoc.ParseError{Line: paras[0].Start, Err: fmt.Errorf("algorithm has %d pixels, want 512", len(alg))}
	}
	algorithm := make([]bool, 0, 512)
	for _, r := range alg {
		v, err := pixel(r)
		if err != nil {
			return nil, trenchImage{}, aoc.AtLine(err, paras[0].Start)
		}
		algorithm = append(algorithm, v)
	}
	g, err := aoc.ParseGrid(paras[1].Lines, pixel)
	if err != nil {
		var pe *aoc.ParseError
		if errors.As(err, &pe) && pe.Line > 0 {
			pe.Line += paras[1].Start - 1
		}
		return nil, trenchImage{}, err
	}
	return algorithm, trenchImage{lit: g}, nil
}

func pixel(r rune) (bool, error) {
	switch r {
	case '#':
		return true, nil
	case '.':
		return false, nil
	}
	return false, aoc.ParseErrorf(string(r), "want # or .")
}

func (im trenchImage) at(p aoc.Pt) bool {
	if v, ok := im.lit.AtOk(p); ok {
		return v
	}
	return im.background
}

// enhance returns the image one pixel larger on every side.
func (im trenchImage) enhance(algorithm []bool) trenchImage {
	size := im.lit.Size()
	out := aoc.MakeGrid[bool](size.X+2, size.Y+2)
	out.ForEach(func(p aoc.Pt, _ bool) {
		idx := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				idx <<= 1
				if im.at(aoc.Pt{X: p.X - 1 + dx, Y: p.Y - 1 + dy}) {
					idx |= 1
				}
			}
		}
		out.Set(p, algorithm[idx])
	})
	bg := algorithm[0]
	if im.background {
		bg = algorithm[511]
	}
	return trenchImage{lit: out, background: bg}
}

func (s solver) enhanceImage(steps int) (any, error) {
	algorithm, im, err := s.trenchMap()
	if err != nil {
		return nil, err
	}
	for range steps {
		im = im.enhance(algorithm)
	}
	if im.background {
		return nil, aoc.ParseErrorf("", "infinitely many pixels are lit after %d steps", steps)
	}
	n := 0
	im.lit.ForEach(func(_ aoc.Pt, v bool) {
		if v {
			n++
		}
	})
	return n, nil
}

/*
want=35

	..#.#..#####.#.#.#.###.##.....###.##.#..###.####..#####..#....#..#..##..###..######.###...####..#..#####..##..#.#####...##.#.#..#.##..#.#......#.###.######.###.####...#.##.##..#..#..#####.....#.#....###..#.##......#.....#..#..#..##..#...##.######.####.####.#.#...#.......#..#.#.#...####.##.#......#..#...##.#.##..#...##.#.##..###.#......#.#.......#.#.#.####.###.##...#.....####.#..#..#.##.#....##..#.####....##...##..#...#......#.#.......#.......##..####..#...#.#.#...##..#.#..###..#####........#..####......#..#

	#..#.
	#....
	##..#
	..#..
	..###
*/
func (s solver) D20p1() (any, error) {
	return s.enhanceImage(2)
}

// want=3351
func (s solver) D20p2() (any, error) {
	return s.enhanceImage(50)
}
