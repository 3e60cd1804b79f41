package y2021

import (
	"strings"

	aoc "github.com/maisem/aoc2021"
)

type subCommand struct {
	dir aoc.Direction
	n   int
}

func (s solver) course() ([]subCommand, error) {
	var cmds []subCommand
	err := s.ForLines(func(line string) error {
		word, num, ok := strings.Cut(line, " ")
		if !ok {
			return aoc.ParseErrorf(line, "want <direction> <distance>")
		}
		n, err := aoc.Int(num)
		if err != nil {
			return err
		}
		var d aoc.Direction
		switch word {
		case "forward":
			d = aoc.Right
		case "down":
			d = aoc.Down
		case "up":
			d = aoc.Up
		default:
			return aoc.ParseErrorf(line, "unknown direction %q", word)
		}
		cmds = append(cmds, subCommand{d, n})
		return nil
	})
	return cmds, err
}

/*
want=150

	forward 5
	down 5
	forward 8
	up 3
	down 8
	forward 2
*/
func (s solver) D2p1() (any, error) {
	cmds, err := s.course()
	if err != nil {
		return nil, err
	}
	var pos aoc.Pt // X is horizontal position, Y is depth
	for _, c := range cmds {
		d := c.dir.Delta()
		pos = pos.Add(aoc.Pt{X: d.X * c.n, Y: d.Y * c.n})
	}
	return pos.X * pos.Y, nil
}

// want=900
func (s solver) D2p2() (any, error) {
	cmds, err := s.course()
	if err != nil {
		return nil, err
	}
	var pos aoc.Pt
	aim := 0
	for _, c := range cmds {
		switch c.dir {
		case aoc.Right:
			pos.X += c.n
			pos.Y += aim * c.n
		default:
			aim += c.dir.Delta().Y * c.n
		}
	}
	return pos.X * pos.Y, nil
}
