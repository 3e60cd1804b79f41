package y2021

import (
	"fmt"
	"math"
	"strings"

	aoc "github.com/maisem/aoc2021"
)

type polymer struct {
	template string
	rules    map[[2]byte]byte
}

func (s solver) polymer() (polymer, error) {
	paras := s.Paragraphs()
	if len(paras) != 2 || len(paras[0].Lines) != 1 {
		return polymer{}, aoc.ParseErrorf("", "want a template line, a blank line and insertion rules")
	}
	pm := polymer{template: paras[0].Lines[0], rules: map[[2]byte]byte{}}
	if len(pm.template) < 2 {
		return polymer{}, &aoc.ParseError{Line: 1, Text: pm.template, Err: fmt.Errorf("template too short")}
	}
	for i, line := range paras[1].Lines {
		pair, ins, ok := strings.Cut(line, " -> ")
		if !ok || len(pair) != 2 || len(ins) != 1 {
			return polymer{}, &aoc.ParseError{Line: paras[1].Start + i, Text: line, Err: fmt.Errorf("want XY -> Z")}
		}
		pm.rules[[2]byte{pair[0], pair[1]}] = ins[0]
	}
	return pm, nil
}

// spread returns the difference between the most and least common
// element after steps insertion steps. Only pair counts are tracked;
// every element but the template's last is the first of exactly one
// pair.
func (pm polymer) spread(steps int) (int, map[byte]int) {
	pairs := map[[2]byte]int{}
	for i := 0; i+1 < len(pm.template); i++ {
		pairs[[2]byte{pm.template[i], pm.template[i+1]}]++
	}
	for range steps {
		next := make(map[[2]byte]int, len(pairs))
		for p, n := range pairs {
			if c, ok := pm.rules[p]; ok {
				next[[2]byte{p[0], c}] += n
				next[[2]byte{c, p[1]}] += n
			} else {
				next[p] += n
			}
		}
		pairs = next
	}
	counts := map[byte]int{pm.template[len(pm.template)-1]: 1}
	for p, n := range pairs {
		counts[p[0]] += n
	}
	most, least := 0, math.MaxInt
	for _, n := range counts {
		most = max(most, n)
		least = min(least, n)
	}
	return most - least, counts
}

func (s solver) polymerize(steps int) (any, error) {
	pm, err := s.polymer()
	if err != nil {
		return nil, err
	}
	d, counts := pm.spread(steps)
	s.Debugf("element counts after %d steps: %v", steps, counts)
	return d, nil
}

/*
want=1588

	NNCB

	CH -> B
	HH -> N
	CB -> H
	NH -> C
	HB -> C
	HC -> B
	HN -> C
	NN -> C
	BH -> H
	NC -> B
	NB -> B
	BN -> B
	BB -> N
	BC -> B
	CC -> N
	CN -> C
*/
func (s solver) D14p1() (any, error) {
	return s.polymerize(10)
}

// want=2188189693529
func (s solver) D14p2() (any, error) {
	return s.polymerize(40)
}
