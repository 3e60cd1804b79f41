package y2021

import (
	"fmt"

	aoc "github.com/maisem/aoc2021"
)

func (s solver) startingPositions() ([2]int, error) {
	var pos [2]int
	lines := s.Lines()
	if len(lines) != 2 {
		return pos, aoc.ParseErrorf("", "want 2 players, got %d lines", len(lines))
	}
	for i, line := range lines {
		var player int
		if _, err := fmt.Sscanf(line, "Player %d starting position: %d", &player, &pos[i]); err != nil {
			return pos, &aoc.ParseError{Line: i + 1, Text: line, Err: err}
		}
		if player != i+1 {
			return pos, &aoc.ParseError{Line: i + 1, Text: line, Err: fmt.Errorf("want player %d", i+1)}
		}
		if pos[i] < 1 || pos[i] > 10 {
			return pos, &aoc.ParseError{Line: i + 1, Text: line, Err: fmt.Errorf("position must be 1-10")}
		}
	}
	return pos, nil
}

// move advances pos, on the circular 1-10 track, by n spaces.
func move(pos, n int) int {
	return (pos-1+n)%10 + 1
}

/*
want=739785

	Player 1 starting position: 4
	Player 2 starting position: 8
*/
func (s solver) D21p1() (any, error) {
	pos, err := s.startingPositions()
	if err != nil {
		return nil, err
	}
	var score [2]int
	die, rolls := 0, 0
	roll := func() int {
		die = die%100 + 1
		rolls++
		return die
	}
	for turn := 0; ; turn ^= 1 {
		pos[turn] = move(pos[turn], roll()+roll()+roll())
		score[turn] += pos[turn]
		if score[turn] >= 1000 {
			s.Debugf("player %d wins %d to %d", turn+1, score[turn], score[turn^1])
			return score[turn^1] * rolls, nil
		}
	}
}

// diracRolls maps each total of three Dirac dice rolls to how many
// universes produce it.
var diracRolls = map[int]int{3: 1, 4: 3, 5: 6, 6: 7, 7: 6, 8: 3, 9: 1}

// diracGame is a game state from the view of the player about to move.
type diracGame struct {
	pos, other        int
	score, otherScore int
}

// wins returns in how many universes the player to move and the other
// player win from g.
func wins(g diracGame, memo map[diracGame][2]int) [2]int {
	if w, ok := memo[g]; ok {
		return w
	}
	var w [2]int
	for total, n := range diracRolls {
		pos := move(g.pos, total)
		score := g.score + pos
		if score >= 21 {
			w[0] += n
			continue
		}
		sub := wins(diracGame{pos: g.other, other: pos, score: g.otherScore, otherScore: score}, memo)
		w[0] += n * sub[1]
		w[1] += n * sub[0]
	}
	memo[g] = w
	return w
}

// want=444356092776315
func (s solver) D21p2() (any, error) {
	pos, err := s.startingPositions()
	if err != nil {
		return nil, err
	}
	w := wins(diracGame{pos: pos[0], other: pos[1]}, map[diracGame][2]int{})
	s.Debugf("player 1 wins in %d universes, player 2 in %d", w[0], w[1])
	return max(w[0], w[1]), nil
}
