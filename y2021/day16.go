package y2021

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2021"
)

// packet is a decoded BITS packet.
type packet struct {
	version int
	typeID  int
	value   int // literal value; only set for type 4
	subs    []*packet
}

const literalType = 4

// bitReader reads big-endian bit fields from a byte slice.
type bitReader struct {
	b   []byte
	pos int // in bits
}

func (r *bitReader) read(n int) (int, error) {
	if r.pos+n > len(r.b)*8 {
		return 0, fmt.Errorf("truncated packet at bit %d", r.pos)
	}
	v := 0
	for range n {
		bit := r.b[r.pos/8] >> (7 - r.pos%8) & 1
		v = v<<1 | int(bit)
		r.pos++
	}
	return v, nil
}

func (r *bitReader) packet() (*packet, error) {
	var p packet
	var err error
	if p.version, err = r.read(3); err != nil {
		return nil, err
	}
	if p.typeID, err = r.read(3); err != nil {
		return nil, err
	}
	if p.typeID == literalType {
		for {
			group, err := r.read(5)
			if err != nil {
				return nil, err
			}
			p.value = p.value<<4 | group&0xf
			if group&0x10 == 0 {
				return &p, nil
			}
		}
	}
	lengthType, err := r.read(1)
	if err != nil {
		return nil, err
	}
	if lengthType == 0 {
		n, err := r.read(15)
		if err != nil {
			return nil, err
		}
		end := r.pos + n
		for r.pos < end {
			sub, err := r.packet()
			if err != nil {
				return nil, err
			}
			p.subs = append(p.subs, sub)
		}
		if r.pos != end {
			return nil, fmt.Errorf("sub-packets overrun their length by %d bits", r.pos-end)
		}
	} else {
		n, err := r.read(11)
		if err != nil {
			return nil, err
		}
		for range n {
			sub, err := r.packet()
			if err != nil {
				return nil, err
			}
			p.subs = append(p.subs, sub)
		}
	}
	return &p, nil
}

func decodePacket(line string) (*packet, error) {
	b, err := hex.DecodeString(strings.TrimSpace(line))
	if err != nil {
		return nil, aoc.ParseErrorf(line, "invalid hex: %v", err)
	}
	r := &bitReader{b: b}
	p, err := r.packet()
	if err != nil {
		return nil, &aoc.ParseError{Line: 1, Err: err}
	}
	return p, nil
}

func (s solver) transmission() (*packet, error) {
	lines := s.Lines()
	if len(lines) != 1 {
		return nil, aoc.ParseErrorf("", "want a single line of hex, got %d lines", len(lines))
	}
	return decodePacket(lines[0])
}

func (p *packet) versionSum() int {
	sum := p.version
	for _, sub := range p.subs {
		sum += sub.versionSum()
	}
	return sum
}

func (p *packet) eval() (int, error) {
	if p.typeID == literalType {
		return p.value, nil
	}
	vals := make([]int, len(p.subs))
	for i, sub := range p.subs {
		v, err := sub.eval()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	switch p.typeID {
	case 0:
		return aoc.Sum(vals...), nil
	case 1:
		prod := 1
		for _, v := range vals {
			prod *= v
		}
		return prod, nil
	case 2, 3:
		if len(vals) == 0 {
			return 0, fmt.Errorf("type %d packet has no sub-packets", p.typeID)
		}
		if p.typeID == 2 {
			return slices.Min(vals), nil
		}
		return slices.Max(vals), nil
	case 5, 6, 7:
		if len(vals) != 2 {
			return 0, fmt.Errorf("comparison packet has %d sub-packets, want 2", len(vals))
		}
		var ok bool
		switch p.typeID {
		case 5:
			ok = vals[0] > vals[1]
		case 6:
			ok = vals[0] < vals[1]
		case 7:
			ok = vals[0] == vals[1]
		}
		if ok {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("unknown packet type %d", p.typeID)
}

/*
want=16

	8A004A801A8002F478
*/
func (s solver) D16p1() (any, error) {
	p, err := s.transmission()
	if err != nil {
		return nil, err
	}
	return p.versionSum(), nil
}

/*
want=1

	9C0141080250320F1802104A08
*/
func (s solver) D16p2() (any, error) {
	p, err := s.transmission()
	if err != nil {
		return nil, err
	}
	v, err := p.eval()
	if err != nil {
		return nil, &aoc.ParseError{Line: 1, Err: err}
	}
	return v, nil
}
