package y2021

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2021"
)

type vec3 = aoc.Pt3[int]

// rotation is a 3x3 matrix of 0s and ±1s.
type rotation [3][3]int

func (r rotation) apply(p vec3) vec3 {
	v := [3]int{p.X, p.Y, p.Z}
	var o [3]int
	for i := range 3 {
		for j := range 3 {
			o[i] += r[i][j] * v[j]
		}
	}
	return vec3{X: o[0], Y: o[1], Z: o[2]}
}

func (r rotation) det() int {
	return r[0][0]*(r[1][1]*r[2][2]-r[1][2]*r[2][1]) -
		r[0][1]*(r[1][0]*r[2][2]-r[1][2]*r[2][0]) +
		r[0][2]*(r[1][0]*r[2][1]-r[1][1]*r[2][0])
}

// rotations holds the 24 orientations a scanner can face: the signed
// permutation matrices with determinant 1.
var rotations = func() []rotation {
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	var out []rotation
	for _, perm := range perms {
		for signs := range 8 {
			var r rotation
			for i, j := range perm {
				r[i][j] = 1
				if signs>>i&1 == 1 {
					r[i][j] = -1
				}
			}
			if r.det() == 1 {
				out = append(out, r)
			}
		}
	}
	return out
}()

// minOverlap is how many beacons two scanners must share to be aligned.
const minOverlap = 12

func (s solver) scanners() ([][]vec3, error) {
	var out [][]vec3
	for _, para := range s.Paragraphs() {
		head := para.Lines[0]
		if !strings.HasPrefix(head, "--- scanner ") {
			return nil, &aoc.ParseError{Line: para.Start, Text: head, Err: fmt.Errorf("want --- scanner N ---")}
		}
		var beacons []vec3
		for i, line := range para.Lines[1:] {
			var p vec3
			if _, err := fmt.Sscanf(line, "%d,%d,%d", &p.X, &p.Y, &p.Z); err != nil {
				return nil, &aoc.ParseError{Line: para.Start + 1 + i, Text: line, Err: err}
			}
			beacons = append(beacons, p)
		}
		out = append(out, beacons)
	}
	if len(out) == 0 {
		return nil, aoc.ParseErrorf("", "no scanners")
	}
	return out, nil
}

// align tries to place beacons, as seen by an unplaced scanner, among
// known, which are in scanner 0's frame. On success it returns the
// beacons in scanner 0's frame and the scanner's position.
func align(known, beacons []vec3) ([]vec3, vec3, bool) {
	for _, r := range rotations {
		rotated := make([]vec3, len(beacons))
		for i, b := range beacons {
			rotated[i] = r.apply(b)
		}
		offsets := map[vec3]int{}
		for _, k := range known {
			for _, b := range rotated {
				off := k.Sub(b)
				offsets[off]++
				if offsets[off] < minOverlap {
					continue
				}
				for i := range rotated {
					rotated[i] = rotated[i].Add(off)
				}
				return rotated, off, true
			}
		}
	}
	return nil, vec3{}, false
}

// locateScanners places every scanner relative to scanner 0. It returns
// the distinct beacons and the scanner positions.
func (s solver) locateScanners() (map[vec3]bool, []vec3, error) {
	scans, err := s.scanners()
	if err != nil {
		return nil, nil, err
	}
	placed := make([][]vec3, len(scans))
	pos := make([]vec3, len(scans))
	placed[0] = scans[0]

	q := aoc.NewQueue(0)
	q.While(func(ref int) bool {
		for i := range scans {
			if placed[i] != nil {
				continue
			}
			abs, at, ok := align(placed[ref], scans[i])
			if !ok {
				continue
			}
			s.Debugf("scanner %d is at %v, found via scanner %d", i, at, ref)
			placed[i], pos[i] = abs, at
			q.Push(i)
		}
		return true
	})

	beacons := map[vec3]bool{}
	for i, bs := range placed {
		if bs == nil {
			return nil, nil, aoc.ParseErrorf("", "scanner %d overlaps no other scanner", i)
		}
		for _, b := range bs {
			beacons[b] = true
		}
	}
	return beacons, pos, nil
}

/*
want=79

	--- scanner 0 ---
	404,-588,-901
	528,-643,409
	-838,591,734
	390,-675,-793
	-537,-823,-458
	-485,-357,347
	-345,-311,381
	-661,-816,-575
	-876,649,763
	-618,-824,-621
	553,345,-567
	474,580,667
	-447,-329,318
	-584,868,-557
	544,-627,-890
	564,392,-477
	455,729,728
	-892,524,684
	-689,845,-530
	423,-701,434
	7,-33,-71
	630,319,-379
	443,580,662
	-789,900,-551
	459,-707,401

	--- scanner 1 ---
	686,422,578
	605,423,415
	515,917,-361
	-336,658,858
	95,138,22
	-476,619,847
	-340,-569,-846
	567,-361,727
	-460,603,-452
	669,-402,600
	729,430,532
	-500,-761,534
	-322,571,750
	-466,-666,-811
	-429,-592,574
	-355,545,-477
	703,-491,-529
	-328,-685,520
	413,935,-424
	-391,539,-444
	586,-435,557
	-364,-763,-893
	807,-499,-711
	755,-354,-619
	553,889,-390

	--- scanner 2 ---
	649,640,665
	682,-795,504
	-784,533,-524
	-644,584,-595
	-588,-843,648
	-30,6,44
	-674,560,763
	500,723,-460
	609,671,-379
	-555,-800,653
	-675,-892,-343
	697,-426,-610
	578,704,681
	493,664,-388
	-671,-858,530
	-667,343,800
	571,-461,-707
	-138,-166,112
	-889,563,-600
	646,-828,498
	640,759,510
	-630,509,768
	-681,-892,-333
	673,-379,-804
	-742,-814,-386
	577,-820,562

	--- scanner 3 ---
	-589,542,597
	605,-692,669
	-500,565,-823
	-660,373,557
	-458,-679,-417
	-488,449,543
	-626,468,-788
	338,-750,-386
	528,-832,-391
	562,-778,733
	-938,-730,414
	543,643,-506
	-524,371,-870
	407,773,750
	-104,29,83
	378,-903,-323
	-778,-728,485
	426,699,580
	-438,-605,-362
	-469,-447,-387
	509,732,623
	647,635,-688
	-868,-804,481
	614,-800,639
	595,780,-596

	--- scanner 4 ---
	727,592,562
	-293,-554,779
	441,611,-461
	-714,465,-776
	-743,427,-804
	-660,-479,-426
	832,-632,460
	927,-485,-438
	408,393,-506
	466,436,-512
	110,16,151
	-258,-428,682
	-393,719,612
	-211,-452,876
	808,-476,-593
	-575,615,604
	-485,667,467
	-680,325,-822
	-627,-443,-432
	872,-547,-609
	833,512,582
	807,604,487
	839,-516,451
	891,-625,532
	-652,-548,-490
	30,-46,-14
*/
func (s solver) D19p1() (any, error) {
	beacons, _, err := s.locateScanners()
	if err != nil {
		return nil, err
	}
	return len(beacons), nil
}

// want=3621
func (s solver) D19p2() (any, error) {
	_, pos, err := s.locateScanners()
	if err != nil {
		return nil, err
	}
	best := 0
	for _, a := range pos {
		for _, b := range pos {
			best = max(best, a.MDist(b))
		}
	}
	return best, nil
}
