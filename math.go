package aoc

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digit returns the digit value of the rune.
func Digit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, ParseErrorf(string(r), "not a digit")
	}
	return int(r - '0'), nil
}

// SolveQuad returns the roots of the quadratic equation ax^2 + bx + c = 0.
func SolveQuad[T Number](a, b, c T) (float64, float64, error) {
	d := float64(b*b - 4*a*c)
	if d < 0 {
		return 0, 0, errors.New("no real roots")
	}
	d = math.Sqrt(d)
	a2 := float64(2 * a)
	return (-float64(b) + d) / a2, (-float64(b) - d) / a2, nil
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Triangle returns 1 + 2 + ... + n.
func Triangle[T constraints.Integer](n T) T {
	return n * (n + 1) / 2
}

// ParseBinary parses a binary string.
func ParseBinary(in string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimPrefix(in, "0b"), 2, 64)
	if err != nil {
		return 0, ParseErrorf(in, "not a binary number")
	}
	return v, nil
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string, ignoring surrounding space.
func Int(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, ParseErrorf(s, "not an integer")
	}
	return v, nil
}

// Ints returns the int values of the strings.
func Ints(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := Int(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// IntList parses a sep-separated list of integers such as "3,4,3,1,2".
// Empty fields are skipped, so runs of spaces are fine when sep is " ".
func IntList(s, sep string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, sep) {
		if strings.TrimSpace(f) == "" {
			continue
		}
		n, err := Int(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, ParseErrorf(s, "no numbers")
	}
	return out, nil
}
