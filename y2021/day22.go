package y2021

import (
	"fmt"

	aoc "github.com/maisem/aoc2021"
)

// cuboid is an inclusive range of cubes.
type cuboid struct {
	lo, hi vec3
}

func (c cuboid) empty() bool {
	return c.lo.X > c.hi.X || c.lo.Y > c.hi.Y || c.lo.Z > c.hi.Z
}

func (c cuboid) volume() int {
	if c.empty() {
		return 0
	}
	return (c.hi.X - c.lo.X + 1) * (c.hi.Y - c.lo.Y + 1) * (c.hi.Z - c.lo.Z + 1)
}

func (c cuboid) intersect(d cuboid) cuboid {
	return cuboid{
		lo: vec3{X: max(c.lo.X, d.lo.X), Y: max(c.lo.Y, d.lo.Y), Z: max(c.lo.Z, d.lo.Z)},
		hi: vec3{X: min(c.hi.X, d.hi.X), Y: min(c.hi.Y, d.hi.Y), Z: min(c.hi.Z, d.hi.Z)},
	}
}

type rebootStep struct {
	on bool
	c  cuboid
}

func (s solver) rebootSteps() ([]rebootStep, error) {
	var steps []rebootStep
	err := s.ForLines(func(line string) error {
		var state string
		var c cuboid
		_, err := fmt.Sscanf(line, "%s x=%d..%d,y=%d..%d,z=%d..%d",
			&state, &c.lo.X, &c.hi.X, &c.lo.Y, &c.hi.Y, &c.lo.Z, &c.hi.Z)
		if err != nil {
			return aoc.ParseErrorf(line, "%v", err)
		}
		if state != "on" && state != "off" {
			return aoc.ParseErrorf(line, "want on or off")
		}
		if c.empty() {
			return aoc.ParseErrorf(line, "empty cuboid")
		}
		steps = append(steps, rebootStep{on: state == "on", c: c})
		return nil
	})
	return steps, err
}

// signedCuboid is a term of the inclusion-exclusion sum of lit cubes.
type signedCuboid struct {
	c    cuboid
	sign int
}

// reboot returns how many cubes are on after steps, considering only
// the cubes inside region if it is non-nil. Every step cancels its
// overlap with the terms so far and then adds itself if it turns cubes
// on.
func reboot(steps []rebootStep, region *cuboid) int {
	var terms []signedCuboid
	for _, st := range steps {
		c := st.c
		if region != nil {
			if c = c.intersect(*region); c.empty() {
				continue
			}
		}
		for _, t := range terms {
			if in := t.c.intersect(c); !in.empty() {
				terms = append(terms, signedCuboid{c: in, sign: -t.sign})
			}
		}
		if st.on {
			terms = append(terms, signedCuboid{c: c, sign: 1})
		}
	}
	lit := 0
	for _, t := range terms {
		lit += t.sign * t.c.volume()
	}
	return lit
}

/*
want=590784

	on x=-20..26,y=-36..17,z=-47..7
	on x=-20..33,y=-21..23,z=-26..28
	on x=-22..28,y=-29..23,z=-38..16
	on x=-46..7,y=-6..46,z=-50..-1
	on x=-49..1,y=-3..46,z=-24..28
	on x=2..47,y=-22..22,z=-23..27
	on x=-27..23,y=-28..26,z=-21..29
	on x=-39..5,y=-6..47,z=-3..44
	on x=-30..21,y=-8..43,z=-13..34
	on x=-22..26,y=-27..20,z=-29..19
	off x=-48..-32,y=26..41,z=-47..-37
	on x=-12..35,y=6..50,z=-50..-2
	off x=-48..-32,y=-32..-16,z=-15..-5
	on x=-18..26,y=-33..15,z=-7..46
	off x=-40..-22,y=-38..-28,z=23..41
	on x=-16..35,y=-41..10,z=-47..6
	off x=-32..-23,y=11..30,z=-14..3
	on x=-49..-5,y=-3..45,z=-29..18
	off x=18..30,y=-20..-8,z=-3..13
	on x=-41..9,y=-7..43,z=-33..15
	on x=-54112..-39298,y=-85059..-49293,z=-27449..7877
	on x=967..23432,y=45373..81175,z=27513..53682
*/
func (s solver) D22p1() (any, error) {
	steps, err := s.rebootSteps()
	if err != nil {
		return nil, err
	}
	return reboot(steps, &cuboid{lo: vec3{X: -50, Y: -50, Z: -50}, hi: vec3{X: 50, Y: 50, Z: 50}}), nil
}

/*
want=39

	on x=10..12,y=10..12,z=10..12
	on x=11..13,y=11..13,z=11..13
	off x=9..11,y=9..11,z=9..11
	on x=10..10,y=10..10,z=10..10
*/
func (s solver) D22p2() (any, error) {
	steps, err := s.rebootSteps()
	if err != nil {
		return nil, err
	}
	return reboot(steps, nil), nil
}
