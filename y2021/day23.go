package y2021

import (
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2021"
)

const hallwayLen = 11

// burrow is a burrow state: the hallway cells followed by the room
// cells, room by room from the top. '.' is an empty cell.
type burrow string

var amphipodEnergy = map[byte]int{'A': 1, 'B': 10, 'C': 100, 'D': 1000}

// roomDoor returns the hallway cell in front of room r.
func roomDoor(r int) int { return 2 + 2*r }

func (b burrow) depth() int { return (len(b) - hallwayLen) / 4 }

func (b burrow) room(r int) string {
	d := b.depth()
	return string(b[hallwayLen+r*d : hallwayLen+(r+1)*d])
}

// settled reports whether room r holds only the amphipods that belong
// there.
func (b burrow) settled(r int) bool {
	for _, c := range []byte(b.room(r)) {
		if c != '.' && c != byte('A'+r) {
			return false
		}
	}
	return true
}

func (b burrow) organized() bool {
	for r := range 4 {
		if b.room(r) != strings.Repeat(string(rune('A'+r)), b.depth()) {
			return false
		}
	}
	return true
}

// hallClear reports whether every hallway cell strictly between from
// and to, plus to itself, is empty.
func (b burrow) hallClear(from, to int) bool {
	step := 1
	if to < from {
		step = -1
	}
	for i := from + step; ; i += step {
		if b[i] != '.' {
			return false
		}
		if i == to {
			return true
		}
	}
}

func (b burrow) swap(i, j int) burrow {
	s := []byte(b)
	s[i], s[j] = s[j], s[i]
	return burrow(s)
}

// moves yields every legal move from b. Amphipods leave a room for a
// hallway cell that is not in front of a room, and go from the hallway
// straight into their own room once it holds no strangers.
func (b burrow) moves(yield func(burrow, int)) {
	d := b.depth()
	for h := range hallwayLen {
		a := b[h]
		if a == '.' {
			continue
		}
		r := int(a - 'A')
		if !b.settled(r) || !b.hallClear(h, roomDoor(r)) {
			continue
		}
		slot := strings.LastIndexByte(b.room(r), '.')
		if slot < 0 {
			continue
		}
		steps := aoc.AbsDiff(h, roomDoor(r)) + slot + 1
		yield(b.swap(h, hallwayLen+r*d+slot), steps*amphipodEnergy[a])
	}
	for r := range 4 {
		if b.settled(r) {
			continue
		}
		room := b.room(r)
		slot := strings.IndexFunc(room, func(c rune) bool { return c != '.' })
		a := room[slot]
		door := roomDoor(r)
		for h := range hallwayLen {
			if h == 2 || h == 4 || h == 6 || h == 8 {
				continue
			}
			if !b.hallClear(door, h) {
				continue
			}
			steps := slot + 1 + aoc.AbsDiff(h, door)
			yield(b.swap(h, hallwayLen+r*d+slot), steps*amphipodEnergy[a])
		}
	}
}

// parseBurrow reads the burrow diagram, inserting extra before the
// bottom row of each room.
func parseBurrow(lines []string, extra ...string) (burrow, error) {
	if len(lines) < 5 {
		return "", aoc.ParseErrorf("", "burrow diagram too short")
	}
	if len(lines[1]) < hallwayLen+2 {
		return "", &aoc.ParseError{Line: 2, Text: lines[1], Err: fmt.Errorf("hallway must be %d cells", hallwayLen)}
	}
	hall := lines[1][1 : 1+hallwayLen]
	if strings.Trim(hall, ".") != "" {
		return "", &aoc.ParseError{Line: 2, Text: lines[1], Err: fmt.Errorf("hallway must start empty")}
	}
	rows := lines[2 : len(lines)-1]
	var cells [][4]byte
	for i, row := range slices.Insert(slices.Clone(rows), 1, extra...) {
		var c [4]byte
		for r := range c {
			col := 3 + 2*r
			if col >= len(row) || amphipodEnergy[row[col]] == 0 {
				line := 0
				if i == 0 {
					line = 3
				} else if i > len(extra) {
					line = i + 3 - len(extra)
				}
				return "", &aoc.ParseError{Line: line, Text: row, Err: fmt.Errorf("want an amphipod in room %d", r+1)}
			}
			c[r] = row[col]
		}
		cells = append(cells, c)
	}
	rooms := make([][]byte, 4)
	for _, c := range cells {
		for r := range rooms {
			rooms[r] = append(rooms[r], c[r])
		}
	}
	counts := map[byte]int{}
	b := []byte(hall)
	for _, room := range rooms {
		b = append(b, room...)
		for _, c := range room {
			counts[c]++
		}
	}
	for a := range amphipodEnergy {
		if counts[a] != len(cells) {
			return "", aoc.ParseErrorf("", "%d amphipods of type %c, want %d", counts[a], a, len(cells))
		}
	}
	return burrow(b), nil
}

func organize(start burrow) (int, error) {
	cost, ok := aoc.ShortestPath(start, burrow.moves, burrow.organized)
	if !ok {
		return 0, aoc.ParseErrorf(string(start), "the amphipods cannot be organized")
	}
	return cost, nil
}

/*
want=12521

	#############
	#...........#
	###B#C#B#D###
	  #A#D#C#A#
	  #########
*/
func (s solver) D23p1() (any, error) {
	b, err := parseBurrow(s.Lines())
	if err != nil {
		return nil, err
	}
	return organize(b)
}

// D23p2 unfolds the diagram, revealing two more rows in every room.
//
// want=44169
func (s solver) D23p2() (any, error) {
	b, err := parseBurrow(s.Lines(), "  #D#C#B#A#", "  #D#B#A#C#")
	if err != nil {
		return nil, err
	}
	s.Debugf("unfolded burrow %s", b)
	return organize(b)
}
