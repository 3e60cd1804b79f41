package y2021

import (
	"fmt"
	"math/bits"
	"strings"

	aoc "github.com/maisem/aoc2021"
)

// segments is a set of lit wires, bit i for wire 'a'+i.
type segments uint8

func (s segments) count() int { return bits.OnesCount8(uint8(s)) }

func (s segments) contains(o segments) bool { return s&o == o }

func parseSegments(word string) (segments, error) {
	var s segments
	for _, r := range word {
		if r < 'a' || r > 'g' {
			return 0, aoc.ParseErrorf(word, "wire %q out of range a..g", r)
		}
		s |= 1 << (r - 'a')
	}
	return s, nil
}

type display struct {
	patterns [10]segments
	output   [4]segments
}

func (s solver) displays() ([]display, error) {
	var ds []display
	err := s.ForLines(func(line string) error {
		pats, out, ok := strings.Cut(line, "|")
		if !ok {
			return aoc.ParseErrorf(line, "missing |")
		}
		pf, of := strings.Fields(pats), strings.Fields(out)
		if len(pf) != 10 || len(of) != 4 {
			return aoc.ParseErrorf(line, "want 10 patterns and 4 output digits, got %d and %d", len(pf), len(of))
		}
		var d display
		for i, w := range pf {
			seg, err := parseSegments(w)
			if err != nil {
				return err
			}
			d.patterns[i] = seg
		}
		for i, w := range of {
			seg, err := parseSegments(w)
			if err != nil {
				return err
			}
			d.output[i] = seg
		}
		ds = append(ds, d)
		return nil
	})
	return ds, err
}

// decode works out which pattern shows which digit and returns the
// displayed four-digit value.
func (d display) decode() (int, error) {
	var digit [10]segments
	for _, p := range d.patterns {
		switch p.count() {
		case 2:
			digit[1] = p
		case 3:
			digit[7] = p
		case 4:
			digit[4] = p
		case 7:
			digit[8] = p
		}
	}
	if digit[1] == 0 || digit[4] == 0 || digit[7] == 0 || digit[8] == 0 {
		return 0, fmt.Errorf("patterns %v lack a unique digit", d.patterns)
	}
	for _, p := range d.patterns {
		if p.count() != 6 {
			continue
		}
		switch {
		case p.contains(digit[4]):
			digit[9] = p
		case p.contains(digit[1]):
			digit[0] = p
		default:
			digit[6] = p
		}
	}
	for _, p := range d.patterns {
		if p.count() != 5 {
			continue
		}
		switch {
		case p.contains(digit[1]):
			digit[3] = p
		case digit[6].contains(p):
			digit[5] = p
		default:
			digit[2] = p
		}
	}
	val := 0
	for _, o := range d.output {
		n := -1
		for i, p := range digit {
			if p == o {
				n = i
				break
			}
		}
		if n < 0 {
			return 0, fmt.Errorf("output %07b matches no digit", o)
		}
		val = val*10 + n
	}
	return val, nil
}

/*
want=26

	be cfbegad cbdgef fgaecd cgeb fdcge agebfd fecdb fabcd edb | fdgacbe cefdb cefbgd gcbe
	edbfga begcd cbg gc gcadebf fbgde acbgfd abcde gfcbed gfec | fcgedb cgb dgebacf gc
	fgaebd cg bdaec gdafb agbcfd gdcbef bgcad gfac gcb cdgabef | cg cg fdcagb cbg
	fbegcd cbd adcefb dageb afcb bc aefdc ecdab fgdeca fcdbega | efabcd cedba gadfec cb
	aecbfdg fbg gf bafeg dbefa fcge gcbea fcaegb dgceab fcbdga | gecf egdcabf bgf bfgea
	fgeab ca afcebg bdacfeg cfaedg gcfdb baec bfadeg bafgc acf | gebdcfa ecba ca fadegcb
	dbcfg fgd bdegcaf fgec aegbdf ecdfab fbedc dacgb gdcebf gf | cefg dcbef fcge gbcadfe
	bdfegc cbegaf gecbf dfcage bdacg ed bedf ced adcbefg gebcd | ed bcgafe cdgba cbgef
	egadfb cdbfeg cegd fecab cgb gbdefca cg fgcdab egfdb bfceg | gbdfcae bgc cg cgb
	gcafb gcf dcaebfg ecagb gf abcdeg gaef cafbge fdbac fegbdc | fgae cfgab fg bagce
*/
func (s solver) D8p1() (any, error) {
	ds, err := s.displays()
	if err != nil {
		return nil, err
	}
	n := 0
	for _, d := range ds {
		for _, o := range d.output {
			switch o.count() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return n, nil
}

// want=61229
func (s solver) D8p2() (any, error) {
	ds, err := s.displays()
	if err != nil {
		return nil, err
	}
	sum := 0
	for i, d := range ds {
		v, err := d.decode()
		if err != nil {
			return nil, &aoc.ParseError{Line: i + 1, Err: err}
		}
		sum += v
	}
	return sum, nil
}
