package y2021

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2021"
)

const bingoSize = 5

type bingoBoard struct {
	cells  aoc.Grid[int]
	marked aoc.Grid[bool]
	won    bool
}

// mark marks n on the board and reports whether the board now has a
// complete row or column.
func (b *bingoBoard) mark(n int) bool {
	hit := false
	b.cells.ForEach(func(p aoc.Pt, v int) {
		if v == n {
			b.marked.Set(p, true)
			hit = true
		}
	})
	if !hit {
		return false
	}
	for i := 0; i < bingoSize; i++ {
		row, col := true, true
		for j := 0; j < bingoSize; j++ {
			row = row && b.marked[i][j]
			col = col && b.marked[j][i]
		}
		if row || col {
			return true
		}
	}
	return false
}

func (b *bingoBoard) unmarkedSum() int {
	sum := 0
	b.cells.ForEach(func(p aoc.Pt, v int) {
		if !b.marked.At(p) {
			sum += v
		}
	})
	return sum
}

func (s solver) bingo() ([]int, []*bingoBoard, error) {
	paras := s.Paragraphs()
	if len(paras) < 2 {
		return nil, nil, aoc.ParseErrorf("", "want drawn numbers followed by at least one board")
	}
	if len(paras[0].Lines) != 1 {
		return nil, nil, &aoc.ParseError{Line: paras[0].Start + 1, Err: fmt.Errorf("drawn numbers must be on a single line")}
	}
	draws, err := aoc.IntList(paras[0].Lines[0], ",")
	if err != nil {
		return nil, nil, aoc.AtLine(err, paras[0].Start)
	}
	var boards []*bingoBoard
	for _, p := range paras[1:] {
		if len(p.Lines) != bingoSize {
			return nil, nil, &aoc.ParseError{Line: p.Start, Err: fmt.Errorf("board has %d rows, want %d", len(p.Lines), bingoSize)}
		}
		b := &bingoBoard{marked: aoc.MakeGrid[bool](bingoSize, bingoSize)}
		for i, line := range p.Lines {
			row, err := aoc.IntList(line, " ")
			if err != nil {
				return nil, nil, aoc.AtLine(err, p.Start+i)
			}
			if len(row) != bingoSize {
				return nil, nil, &aoc.ParseError{Line: p.Start + i, Text: strings.TrimSpace(line), Err: fmt.Errorf("row has %d numbers, want %d", len(row), bingoSize)}
			}
			b.cells = append(b.cells, row)
		}
		boards = append(boards, b)
	}
	return draws, boards, nil
}

// playBingo draws numbers until the first (or, if !first, the last)
// board wins and returns that board's score.
func playBingo(draws []int, boards []*bingoBoard, first bool) (int, error) {
	left := len(boards)
	for _, n := range draws {
		for _, b := range boards {
			if b.won || !b.mark(n) {
				continue
			}
			b.won = true
			left--
			if first || left == 0 {
				return b.unmarkedSum() * n, nil
			}
		}
	}
	return 0, aoc.ParseErrorf("", "ran out of numbers with %d of %d boards not winning", left, len(boards))
}

/*
want=4512

	7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

	22 13 17 11  0
	 8  2 23  4 24
	21  9 14 16  7
	 6 10  3 18  5
	 1 12 20 15 19

	 3 15  0  2 22
	 9 18 13 17  5
	19  8  7 25 23
	20 11 10 24  4
	14 21 16 12  6

	14 21 17 24  4
	10 16 15  9 19
	18  8 23 26 20
	22 11 13  6  5
	 2  0 12  3  7
*/
func (s solver) D4p1() (any, error) {
	draws, boards, err := s.bingo()
	if err != nil {
		return nil, err
	}
	return playBingo(draws, boards, true)
}

// want=1924
func (s solver) D4p2() (any, error) {
	draws, boards, err := s.bingo()
	if err != nil {
		return nil, err
	}
	return playBingo(draws, boards, false)
}
