package y2021

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2021"
)

func TestPowerConsumptionTies(t *testing.T) {
	tests := []struct {
		report string
		want   int
	}{
		{"110\n011\n001\n", 3 * 4},
		// Bit 1 is tied, which counts as a 1 for gamma.
		{"10\n11\n10\n01\n", 3 * 0},
		{"101\n011\n", 7 * 0},
	}
	for _, tt := range tests {
		got, err := solve(t, 3, "1", tt.report)
		require.NoError(t, err, tt.report)
		assert.Equal(t, tt.want, got, "%q", tt.report)
	}
}

func TestLanternfish(t *testing.T) {
	sc := school{0, 1, 1, 2, 1}
	assert.Equal(t, 26, sc.after(18))
	assert.Equal(t, 5, sc.after(0))
}

func TestDecodeDisplay(t *testing.T) {
	got, err := solve(t, 8, "2", "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf\n")
	require.NoError(t, err)
	assert.Equal(t, 5353, got)
}

func TestOctopusStep(t *testing.T) {
	grid := func(lines ...string) aoc.Grid[int] {
		g, err := aoc.ParseGrid(lines, aoc.Digit)
		require.NoError(t, err)
		return g
	}
	g := grid(
		"11111",
		"19991",
		"19191",
		"19991",
		"11111",
	)
	assert.Equal(t, 9, octopusStep(g))
	if diff := cmp.Diff(grid("34543", "40004", "50005", "40004", "34543"), g); diff != "" {
		t.Errorf("step 1 mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, octopusStep(g))
	if diff := cmp.Diff(grid("45654", "51115", "61116", "51115", "45654"), g); diff != "" {
		t.Errorf("step 2 mismatch (-want +got):\n%s", diff)
	}
}

func TestPassagePathing(t *testing.T) {
	tests := []struct {
		input        string
		part1, part2 int
	}{
		{
			input: "dc-end\nHN-start\nstart-kj\ndc-start\ndc-HN\nLN-dc\nHN-end\nkj-sa\nkj-HN\nkj-dc\n",
			part1: 19,
			part2: 103,
		},
		{
			input: "fs-end\nhe-DX\nfs-he\nstart-DX\npj-DX\nend-zg\nzg-sl\nzg-pj\npj-he\nRW-he\nfs-DX\npj-RW\nzg-RW\nstart-pj\nhe-WI\nzg-he\npj-fs\nstart-RW\n",
			part1: 226,
			part2: 3509,
		},
	}
	for _, tt := range tests {
		got, err := solve(t, 12, "1", tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.part1, got)
		got, err = solve(t, 12, "2", tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.part2, got)
	}
}

func TestOrigamiCode(t *testing.T) {
	in, _, ok := newYear(t).Sample(13, "1")
	require.True(t, ok)
	got, err := solve(t, 13, "2", in)
	require.NoError(t, err)
	want := `
#####
#...#
#...#
#...#
#####`
	assert.Equal(t, want, got)
}

func TestPolymerCounts(t *testing.T) {
	in, _, ok := newYear(t).Sample(14, "1")
	require.True(t, ok)
	pm, err := solver{aoc.NewPuzzle([]byte(in))}.polymer()
	require.NoError(t, err)
	d, counts := pm.spread(10)
	assert.Equal(t, 1588, d)
	assert.Equal(t, map[byte]int{'B': 1749, 'C': 298, 'H': 161, 'N': 865}, counts)
}

func TestChitonTiles(t *testing.T) {
	g, err := aoc.ParseGrid([]string{"8"}, aoc.Digit)
	require.NoError(t, err)
	want := aoc.Grid[int]{
		{8, 9, 1, 2, 3},
		{9, 1, 2, 3, 4},
		{1, 2, 3, 4, 5},
		{2, 3, 4, 5, 6},
		{3, 4, 5, 6, 7},
	}
	if diff := cmp.Diff(want, tileRisk(g, 5)); diff != "" {
		t.Errorf("tileRisk mismatch (-want +got):\n%s", diff)
	}
}

func TestPacketDecoder(t *testing.T) {
	versions := map[string]int{
		"D2FE28":                         6,
		"8A004A801A8002F478":             16,
		"620080001611562C8802118E34":     12,
		"C0015000016115A2E0802F182340":   23,
		"A0016C880162017C3686B18A3D4780": 31,
	}
	for in, want := range versions {
		got, err := solve(t, 16, "1", in+"\n")
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	values := map[string]int{
		"D2FE28":                     2021,
		"C200B40A82":                 3,
		"04005AC33890":               54,
		"880086C3E88112":             7,
		"CE00C43D881120":             9,
		"D8005AC2A8F0":               1,
		"F600BC2D8F":                 0,
		"9C005AC2F8F0":               0,
		"9C0141080250320F1802104A08": 1,
	}
	for in, want := range values {
		got, err := solve(t, 16, "2", in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestTrickShot(t *testing.T) {
	ta := targetArea{x1: 20, x2: 30, y1: -10, y2: -5}
	assert.Equal(t, 6, ta.minVX())
	for _, v := range [][2]int{{7, 2}, {6, 3}, {9, 0}, {6, 9}} {
		ok, _ := ta.hits(v[0], v[1])
		assert.True(t, ok, "%v", v)
	}
	ok, _ := ta.hits(17, -4)
	assert.False(t, ok)
	_, top := ta.hits(6, 9)
	assert.Equal(t, 45, top)
}

func TestSnailfish(t *testing.T) {
	parse := func(s string) snailNum {
		n, err := parseSnail(s)
		require.NoError(t, err, s)
		return n
	}
	sum := parse("[[[[4,3],4],4],[7,[[8,4],9]]]").add(parse("[1,1]"))
	if diff := cmp.Diff(parse("[[[[0,7],4],[[7,8],[6,0]]],[8,1]]"), sum, cmp.AllowUnexported(snailLeaf{})); diff != "" {
		t.Errorf("add mismatch (-want +got):\n%s", diff)
	}

	magnitudes := map[string]int{
		"[[1,2],[[3,4],5]]":                                     143,
		"[[[[0,7],4],[[7,8],[6,0]]],[8,1]]":                     1384,
		"[[[[8,7],[7,7]],[[8,6],[7,7]]],[[[0,7],[6,6]],[8,7]]]": 3488,
	}
	for in, want := range magnitudes {
		assert.Equal(t, want, parse(in).magnitude(), in)
	}

	for _, bad := range []string{"", "1", "[1,2]]", "[1;2]", "[,2]"} {
		_, err := parseSnail(bad)
		var pe *aoc.ParseError
		assert.ErrorAs(t, err, &pe, "%q", bad)
	}
}

func TestRotations(t *testing.T) {
	require.Len(t, rotations, 24)
	seen := map[vec3]bool{}
	for _, r := range rotations {
		seen[r.apply(vec3{X: 1, Y: 2, Z: 3})] = true
	}
	assert.Len(t, seen, 24)
}

func TestDiracDice(t *testing.T) {
	assert.Equal(t, 10, move(7, 3))
	assert.Equal(t, 2, move(7, 5))
	assert.Equal(t, 4, move(4, 100))
}

func TestOrganizeBurrow(t *testing.T) {
	b, err := parseBurrow(strings.Split("#############\n#...........#\n###B#A#C#D###\n  #A#B#C#D#\n  #########", "\n"))
	require.NoError(t, err)
	assert.Equal(t, burrow("...........BAABCCDD"), b)
	cost, err := organize(b)
	require.NoError(t, err)
	assert.Equal(t, 46, cost)

	done := burrow("...........AABBCCDD")
	assert.True(t, done.organized())
	cost, err = organize(done)
	require.NoError(t, err)
	assert.Zero(t, cost)
}

func TestSeaCucumberHerd(t *testing.T) {
	g := aoc.Grid[rune]{[]rune("...>>>>>...")}
	g = herdStep(g, '>', aoc.Right)
	assert.Equal(t, "...>>>>.>..", g.String())
	g = herdStep(g, '>', aoc.Right)
	assert.Equal(t, "...>>>.>.>.", g.String())

	wrap := aoc.Grid[rune]{[]rune(".>"), []rune(".v")}
	wrap = herdStep(wrap, '>', aoc.Right)
	assert.Equal(t, ">.\n.v", wrap.String())
	wrap = herdStep(wrap, 'v', aoc.Down)
	assert.Equal(t, ">v\n..", wrap.String())
}

// monadProgram builds a model number checker from per-block div z,
// add x and add y parameters.
func monadProgram(blocks ...[3]int) string {
	format := strings.ReplaceAll(strings.Join(monadTemplate, "\n"), "%", "%d") + "\n"
	var sb strings.Builder
	for _, b := range blocks {
		fmt.Fprintf(&sb, format, b[0], b[1], b[2])
	}
	return sb.String()
}

func testMonad() string {
	var blocks [][3]int
	for range monadDigits / 2 {
		blocks = append(blocks, [3]int{1, 12, 4}, [3]int{26, -6, 7})
	}
	return monadProgram(blocks...)
}

func TestModelNumber(t *testing.T) {
	prog := testMonad()
	got, err := solve(t, 24, "1", prog)
	require.NoError(t, err)
	assert.Equal(t, "97979797979797", got)
	got, err = solve(t, 24, "2", prog)
	require.NoError(t, err)
	assert.Equal(t, "31313131313131", got)

	lines := strings.Split(prog, "\n")
	lines[4] = "div z 3"
	_, err = solve(t, 24, "1", strings.Join(lines, "\n"))
	var pe *aoc.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 5, pe.Line)

	lines = strings.Split(prog, "\n")
	lines[19] = "mul x 1"
	_, err = solve(t, 24, "1", strings.Join(lines, "\n"))
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 20, pe.Line)
}

func TestALU(t *testing.T) {
	var prog []aluInstr
	for _, line := range []string{"inp z", "inp x", "mul z 3", "eql z x"} {
		in, err := parseALU(line)
		require.NoError(t, err, line)
		prog = append(prog, in)
	}
	reg, err := runALU(prog, []int{3, 9})
	require.NoError(t, err)
	assert.Equal(t, 1, reg[3])
	reg, err = runALU(prog, []int{3, 8})
	require.NoError(t, err)
	assert.Equal(t, 0, reg[3])

	_, err = runALU(prog, []int{3})
	assert.ErrorContains(t, err, "out of input")

	for _, bad := range []string{"jmp x 1", "add q 1", "add x", "inp"} {
		_, err := parseALU(bad)
		assert.Error(t, err, bad)
	}
}
