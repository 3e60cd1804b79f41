package y2021

import (
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2021"
)

// aluInstr is one ALU instruction. b is a register if bReg is set and a
// literal otherwise; inp has no b.
type aluInstr struct {
	op   string
	a    int
	b    int
	bReg bool
}

func aluRegister(s string) (int, bool) {
	if len(s) == 1 && s[0] >= 'w' && s[0] <= 'z' {
		return int(s[0] - 'w'), true
	}
	return 0, false
}

func parseALU(line string) (aluInstr, error) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return aluInstr{}, aoc.ParseErrorf(line, "empty instruction")
	}
	in := aluInstr{op: f[0]}
	switch in.op {
	case "inp":
		if len(f) != 2 {
			return aluInstr{}, aoc.ParseErrorf(line, "inp takes one operand")
		}
	case "add", "mul", "div", "mod", "eql":
		if len(f) != 3 {
			return aluInstr{}, aoc.ParseErrorf(line, "%s takes two operands", in.op)
		}
		if r, ok := aluRegister(f[2]); ok {
			in.b, in.bReg = r, true
		} else {
			n, err := aoc.Int(f[2])
			if err != nil {
				return aluInstr{}, err
			}
			in.b = n
		}
	default:
		return aluInstr{}, aoc.ParseErrorf(line, "unknown instruction %q", in.op)
	}
	r, ok := aluRegister(f[1])
	if !ok {
		return aluInstr{}, aoc.ParseErrorf(line, "bad register %q", f[1])
	}
	in.a = r
	return in, nil
}

// runALU runs prog, reading input from digits, and returns the
// registers w, x, y and z.
func runALU(prog []aluInstr, digits []int) ([4]int, error) {
	var reg [4]int
	for i, in := range prog {
		b := in.b
		if in.bReg {
			b = reg[in.b]
		}
		switch in.op {
		case "inp":
			if len(digits) == 0 {
				return reg, fmt.Errorf("instruction %d: out of input", i+1)
			}
			reg[in.a], digits = digits[0], digits[1:]
		case "add":
			reg[in.a] += b
		case "mul":
			reg[in.a] *= b
		case "div":
			if b == 0 {
				return reg, fmt.Errorf("instruction %d: division by zero", i+1)
			}
			reg[in.a] /= b
		case "mod":
			if reg[in.a] < 0 || b <= 0 {
				return reg, fmt.Errorf("instruction %d: mod %d by %d", i+1, reg[in.a], b)
			}
			reg[in.a] %= b
		case "eql":
			if reg[in.a] == b {
				reg[in.a] = 1
			} else {
				reg[in.a] = 0
			}
		}
	}
	return reg, nil
}

const (
	monadDigits    = 14
	monadBlockSize = 18
)

// monadBlock holds the parameters that differ between the 14 per-digit
// blocks of the model number checker. A block with pop set divides z
// by 26.
type monadBlock struct {
	pop        bool
	xAdd, yAdd int
}

// monadTemplate is a block with its parameters replaced by %.
var monadTemplate = []string{
	"inp w", "mul x 0", "add x z", "mod x 26", "div z %", "add x %",
	"eql x w", "eql x 0", "mul y 0", "add y 25", "mul y x", "add y 1",
	"mul z y", "mul y 0", "add y w", "add y %", "mul y x", "add z y",
}

type monad struct {
	prog   []aluInstr
	blocks []monadBlock
}

func (s solver) monad() (*monad, error) {
	lines := s.Lines()
	if len(lines) != monadDigits*monadBlockSize {
		return nil, aoc.ParseErrorf("", "got %d instructions, want %d", len(lines), monadDigits*monadBlockSize)
	}
	m := &monad{}
	for i, line := range lines {
		in, err := parseALU(line)
		if err != nil {
			return nil, aoc.AtLine(err, i+1)
		}
		m.prog = append(m.prog, in)
	}
	for blk := range monadDigits {
		var params []int
		for j, want := range monadTemplate {
			ln := blk*monadBlockSize + j
			line := strings.Join(strings.Fields(lines[ln]), " ")
			prefix, isParam := strings.CutSuffix(want, "%")
			if !isParam {
				if line != want {
					return nil, &aoc.ParseError{Line: ln + 1, Text: lines[ln], Err: fmt.Errorf("want %q", want)}
				}
				continue
			}
			v, ok := strings.CutPrefix(line, prefix)
			n, err := strconv.Atoi(v)
			if !ok || err != nil {
				return nil, &aoc.ParseError{Line: ln + 1, Text: lines[ln], Err: fmt.Errorf("want %q followed by a number", prefix)}
			}
			params = append(params, n)
		}
		if params[0] != 1 && params[0] != 26 {
			return nil, &aoc.ParseError{Line: blk*monadBlockSize + 5, Text: lines[blk*monadBlockSize+4], Err: fmt.Errorf("want div z 1 or div z 26")}
		}
		m.blocks = append(m.blocks, monadBlock{pop: params[0] == 26, xAdd: params[1], yAdd: params[2]})
	}
	return m, nil
}

// modelNumber finds the largest or smallest accepted model number. z
// works as a base-26 stack: a block that does not pop pushes its digit
// plus yAdd, and a popping block only avoids pushing again when its
// digit equals the popped value plus its xAdd. Every popping block must
// take that branch for z to end at 0, which pairs the digits up.
func (m *monad) modelNumber(largest bool) ([]int, error) {
	digits := make([]int, monadDigits)
	var pushed aoc.Stack[int]
	for j, b := range m.blocks {
		if !b.pop {
			pushed.Push(j)
			continue
		}
		i, ok := pushed.Pop()
		if !ok {
			return nil, aoc.ParseErrorf("", "block %d pops an empty stack", j+1)
		}
		// digits[j] = digits[i] + diff
		diff := m.blocks[i].yAdd + b.xAdd
		if diff <= -9 || diff >= 9 {
			return nil, aoc.ParseErrorf("", "blocks %d and %d can never match", i+1, j+1)
		}
		if largest {
			digits[i] = min(9, 9-diff)
		} else {
			digits[i] = max(1, 1-diff)
		}
		digits[j] = digits[i] + diff
	}
	if pushed.Len() != 0 {
		return nil, aoc.ParseErrorf("", "%d blocks are never popped", pushed.Len())
	}
	return digits, nil
}

func (s solver) findModelNumber(largest bool) (any, error) {
	m, err := s.monad()
	if err != nil {
		return nil, err
	}
	digits, err := m.modelNumber(largest)
	if err != nil {
		return nil, err
	}
	reg, err := runALU(m.prog, digits)
	if err != nil {
		return nil, err
	}
	if reg[3] != 0 {
		return nil, fmt.Errorf("model number %v rejected: z=%d", digits, reg[3])
	}
	var sb strings.Builder
	for _, d := range digits {
		sb.WriteByte(byte('0' + d))
	}
	s.Debugf("model number %s accepted", sb.String())
	return sb.String(), nil
}

// D24p1 has no sample: the puzzle input is a program.
func (s solver) D24p1() (any, error) {
	return s.findModelNumber(true)
}

func (s solver) D24p2() (any, error) {
	return s.findModelNumber(false)
}
