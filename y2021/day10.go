package y2021

import (
	"slices"

	aoc "github.com/maisem/aoc2021"
)

var (
	closerOf = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

	corruptScore = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	closeScore   = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
)

// checkChunks scans a line of chunks. It returns the first illegal
// closing character, or 0 and the closers needed to complete the line,
// innermost first.
func checkChunks(line string) (illegal rune, missing []rune, err error) {
	var open aoc.Stack[rune]
	for _, r := range line {
		if c, ok := closerOf[r]; ok {
			open.Push(c)
			continue
		}
		if _, ok := corruptScore[r]; !ok {
			return 0, nil, aoc.ParseErrorf(line, "unexpected character %q", r)
		}
		if want, ok := open.Pop(); !ok || want != r {
			return r, nil, nil
		}
	}
	open.While(func(c rune) bool {
		missing = append(missing, c)
		return true
	})
	return 0, missing, nil
}

/*
want=26397

	[({(<(())[]>[[{[]{<()<>>
	[(()[<>])]({[<{<<[]>>(
	{([(<{}[<>[]}>{[]{[(<()>
	(((({<>}<{<{<>}{[]{[]{}
	[[<[([]))<([[{}[[()]]]
	[{[{({}]{}}([{[{{{}}([]
	{<[[]]>}<{[{[{[]{()[[[]
	[<(<(<(<{}))><([]([]()
	<{([([[(<>()){}]>(<<{{
	<{([{{}}[<[[[<>{}]]]>[]]
*/
func (s solver) D10p1() (any, error) {
	score := 0
	err := s.ForLines(func(line string) error {
		illegal, _, err := checkChunks(line)
		score += corruptScore[illegal]
		return err
	})
	return score, err
}

// want=288957
func (s solver) D10p2() (any, error) {
	var scores []int
	err := s.ForLines(func(line string) error {
		illegal, missing, err := checkChunks(line)
		if err != nil || illegal != 0 || len(missing) == 0 {
			return err
		}
		score := 0
		for _, c := range missing {
			score = score*5 + closeScore[c]
		}
		scores = append(scores, score)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, aoc.ParseErrorf("", "no incomplete lines")
	}
	slices.Sort(scores)
	return scores[len(scores)/2], nil
}
