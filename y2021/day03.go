package y2021

import (
	aoc "github.com/maisem/aoc2021"
)

// diagnostic parses the report: lines of 0s and 1s, all the same width.
func (s solver) diagnostic() ([]string, error) {
	var report []string
	err := s.ForLines(func(line string) error {
		if len(report) > 0 && len(line) != len(report[0]) {
			return aoc.ParseErrorf(line, "width %d differs from first line's %d", len(line), len(report[0]))
		}
		if _, err := aoc.ParseBinary(line); err != nil {
			return err
		}
		report = append(report, line)
		return nil
	})
	return report, err
}

// onesAt counts the numbers with a 1 at bit column i.
func onesAt(report []string, i int) int {
	n := 0
	for _, l := range report {
		if l[i] == '1' {
			n++
		}
	}
	return n
}

/*
want=198

	00100
	11110
	10110
	10111
	10101
	01111
	00111
	11100
	10000
	11001
	00010
	01010
*/
func (s solver) D3p1() (any, error) {
	report, err := s.diagnostic()
	if err != nil {
		return nil, err
	}
	var gamma, epsilon int
	for i := range report[0] {
		ones := onesAt(report, i)
		zeros := len(report) - ones
		if ones == zeros {
			s.Logger().Warnf("bit %d has as many 0s as 1s, counting it as 1", i)
		}
		gamma <<= 1
		epsilon <<= 1
		if ones >= zeros {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	s.Debugf("gamma=%d epsilon=%d", gamma, epsilon)
	return gamma * epsilon, nil
}

// rating narrows report down bit by bit, keeping the numbers whose bit
// is the most common one (or the least common one if !mostCommon),
// until a single number remains. Ties keep 1s for the most common
// criteria and 0s for the least common.
func rating(report []string, mostCommon bool) (int64, error) {
	cands := report
	for i := 0; len(cands) > 1 && i < len(report[0]); i++ {
		ones := onesAt(cands, i)
		keep := byte('0')
		if (ones*2 >= len(cands)) == mostCommon {
			keep = '1'
		}
		var next []string
		for _, c := range cands {
			if c[i] == keep {
				next = append(next, c)
			}
		}
		cands = next
	}
	if len(cands) != 1 {
		return 0, aoc.ParseErrorf("", "%d numbers match the bit criteria, want 1", len(cands))
	}
	return aoc.ParseBinary(cands[0])
}

// want=230
func (s solver) D3p2() (any, error) {
	report, err := s.diagnostic()
	if err != nil {
		return nil, err
	}
	oxygen, err := rating(report, true)
	if err != nil {
		return nil, err
	}
	co2, err := rating(report, false)
	if err != nil {
		return nil, err
	}
	s.Debugf("oxygen=%d co2=%d", oxygen, co2)
	return oxygen * co2, nil
}
