package y2021

import (
	"fmt"
	"slices"

	aoc "github.com/maisem/aoc2021"
)

// snailNum is a snailfish number flattened to its regular numbers in
// order, each with its nesting depth.
type snailNum []snailLeaf

type snailLeaf struct {
	val, depth int
}

// parseSnail parses a pair like [[1,2],3].
func parseSnail(s string) (snailNum, error) {
	var out snailNum
	pos, depth := 0, 0
	var elem func() error
	elem = func() error {
		if pos >= len(s) {
			return fmt.Errorf("unexpected end at column %d", pos+1)
		}
		if s[pos] != '[' {
			start := pos
			for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
				pos++
			}
			if start == pos {
				return fmt.Errorf("unexpected %q at column %d", s[pos], pos+1)
			}
			n, err := aoc.Int(s[start:pos])
			if err != nil {
				return err
			}
			out = append(out, snailLeaf{val: n, depth: depth})
			return nil
		}
		pos++
		depth++
		if depth > 4 {
			return fmt.Errorf("pair at column %d is nested too deeply", pos)
		}
		if err := elem(); err != nil {
			return err
		}
		if pos >= len(s) || s[pos] != ',' {
			return fmt.Errorf("want ',' at column %d", pos+1)
		}
		pos++
		if err := elem(); err != nil {
			return err
		}
		if pos >= len(s) || s[pos] != ']' {
			return fmt.Errorf("want ']' at column %d", pos+1)
		}
		pos++
		depth--
		return nil
	}
	if len(s) == 0 || s[0] != '[' {
		return nil, aoc.ParseErrorf(s, "not a pair")
	}
	if err := elem(); err != nil {
		return nil, &aoc.ParseError{Text: s, Err: err}
	}
	if pos != len(s) {
		return nil, aoc.ParseErrorf(s, "trailing input at column %d", pos+1)
	}
	return out, nil
}

func (n snailNum) add(m snailNum) snailNum {
	out := make(snailNum, 0, len(n)+len(m))
	for _, l := range slices.Concat(n, m) {
		out = append(out, snailLeaf{val: l.val, depth: l.depth + 1})
	}
	for out.explode() || out.split() {
	}
	return out
}

// explode explodes the leftmost pair nested inside four pairs. Sums
// never nest deeper than that, so the pair is two adjacent leaves.
func (n *snailNum) explode() bool {
	s := *n
	for i := 0; i+1 < len(s); i++ {
		if s[i].depth <= 4 {
			continue
		}
		if i > 0 {
			s[i-1].val += s[i].val
		}
		if i+2 < len(s) {
			s[i+2].val += s[i+1].val
		}
		s[i] = snailLeaf{val: 0, depth: s[i].depth - 1}
		*n = slices.Delete(s, i+1, i+2)
		return true
	}
	return false
}

// split splits the leftmost regular number of 10 or more.
func (n *snailNum) split() bool {
	s := *n
	for i, l := range s {
		if l.val < 10 {
			continue
		}
		left := snailLeaf{val: l.val / 2, depth: l.depth + 1}
		right := snailLeaf{val: (l.val + 1) / 2, depth: l.depth + 1}
		s[i] = left
		*n = slices.Insert(s, i+1, right)
		return true
	}
	return false
}

// magnitude folds the deepest pairs first; the leftmost leaf at the
// greatest depth always starts a pair of two leaves.
func (n snailNum) magnitude() int {
	s := slices.Clone(n)
	for len(s) > 1 {
		deepest := 0
		for i, l := range s {
			if l.depth > s[deepest].depth {
				deepest = i
			}
		}
		i := deepest
		s[i] = snailLeaf{val: 3*s[i].val + 2*s[i+1].val, depth: s[i].depth - 1}
		s = slices.Delete(s, i+1, i+2)
	}
	return s[0].val
}

func (s solver) homework() ([]snailNum, error) {
	var nums []snailNum
	err := s.ForLines(func(line string) error {
		n, err := parseSnail(line)
		if err != nil {
			return err
		}
		nums = append(nums, n)
		return nil
	})
	if err == nil && len(nums) == 0 {
		err = aoc.ParseErrorf("", "no snailfish numbers")
	}
	return nums, err
}

/*
want=4140

	[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]
	[[[5,[2,8]],4],[5,[[9,9],0]]]
	[6,[[[6,2],[5,6]],[[7,6],[4,7]]]]
	[[[6,[0,7]],[0,9]],[4,[9,[9,0]]]]
	[[[7,[6,4]],[3,[1,3]]],[[[5,5],1],9]]
	[[6,[[7,3],[3,2]]],[[[3,8],[5,7]],4]]
	[[[[5,4],[7,7]],8],[[8,3],8]]
	[[9,3],[[9,9],[6,[4,9]]]]
	[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]
	[[[[5,2],5],[8,[3,7]]],[[5,[7,5]],[4,4]]]
*/
func (s solver) D18p1() (any, error) {
	nums, err := s.homework()
	if err != nil {
		return nil, err
	}
	sum := nums[0]
	for _, n := range nums[1:] {
		sum = sum.add(n)
	}
	return sum.magnitude(), nil
}

// want=3993
func (s solver) D18p2() (any, error) {
	nums, err := s.homework()
	if err != nil {
		return nil, err
	}
	best := 0
	for i, a := range nums {
		for j, b := range nums {
			if i != j {
				best = max(best, a.add(b).magnitude())
			}
		}
	}
	return best, nil
}
