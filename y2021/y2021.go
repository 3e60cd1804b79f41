// Package y2021 holds the Advent of Code 2021 solutions, one file per
// day. Each D{day}p{part} method carries its puzzle sample in its doc
// comment.
package y2021

import (
	"embed"

	aoc "github.com/maisem/aoc2021"
)

//go:embed day[0-9][0-9].go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}

var titles = map[int]string{
	1:  "Sonar Sweep",
	2:  "Dive!",
	3:  "Binary Diagnostic",
	4:  "Giant Squid",
	5:  "Hydrothermal Venture",
	6:  "Lanternfish",
	7:  "The Treachery of Whales",
	8:  "Seven Segment Search",
	9:  "Smoke Basin",
	10: "Syntax Scoring",
	11: "Dumbo Octopus",
	12: "Passage Pathing",
	13: "Transparent Origami",
	14: "Extended Polymerization",
	15: "Chiton",
	16: "Packet Decoder",
	17: "Trick Shot",
	18: "Snailfish",
	19: "Beacon Scanner",
	20: "Trench Map",
	21: "Dirac Dice",
	22: "Reactor Reboot",
	23: "Amphipod",
	24: "Arithmetic Logic Unit",
	25: "Sea Cucumber",
}

// New returns the 2021 solutions.
func New() (*aoc.Year, error) {
	return aoc.NewYear(2021, sources, &solver{}, titles)
}
