package y2021

import (
	"strings"
	"unicode"

	aoc "github.com/maisem/aoc2021"
)

func (s solver) caves() (*aoc.Graph[string], error) {
	var g aoc.Graph[string]
	err := s.ForLines(func(line string) error {
		a, b, ok := strings.Cut(line, "-")
		if !ok || a == "" || b == "" {
			return aoc.ParseErrorf(line, "want cave-cave")
		}
		if bigCave(a) && bigCave(b) {
			// Paths could bounce between the two forever.
			return aoc.ParseErrorf(line, "two big caves are connected")
		}
		g.AddEdge(a, b, 1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, c := range []string{"start", "end"} {
		if !g.Nodes[c] {
			return nil, aoc.ParseErrorf("", "no %s cave", c)
		}
	}
	if !g.ReachableNodes("start")["end"] {
		return nil, aoc.ParseErrorf("", "end is not reachable from start")
	}
	return &g, nil
}

func bigCave(c string) bool {
	return unicode.IsUpper(rune(c[0]))
}

/*
want=10

	start-A
	start-b
	A-c
	A-b
	b-d
	A-end
	b-end
*/
func (s solver) D12p1() (any, error) {
	g, err := s.caves()
	if err != nil {
		return nil, err
	}
	return g.NumPathsWithRestriction("start", "end", func(c string, visited map[string]int) bool {
		return bigCave(c) || visited[c] == 0
	}), nil
}

// want=36
func (s solver) D12p2() (any, error) {
	g, err := s.caves()
	if err != nil {
		return nil, err
	}
	return g.NumPathsWithRestriction("start", "end", func(c string, visited map[string]int) bool {
		switch {
		case c == "start":
			return false
		case bigCave(c) || visited[c] == 0:
			return true
		}
		for k, n := range visited {
			if n > 1 && !bigCave(k) {
				return false
			}
		}
		return true
	}), nil
}
