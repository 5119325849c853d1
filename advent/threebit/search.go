package threebit

import (
	"errors"
	"fmt"
)

// MaxQuineLen is the longest program whose quine search fits in a uint64
// register: one octal digit of A per tape value, and 8^22 > 2^64.
const MaxQuineLen = 21

// ErrProgramTooLong is returned by NewSearcher for programs longer than
// MaxQuineLen.
var ErrProgramTooLong = errors.New("program too long for a 64-bit register A")

// octal is a fixed-width base-8 number. Index 0 holds the least
// significant digit.
type octal []uint8

func maxOctal(n int) octal {
	o := make(octal, n)
	for i := range o {
		o[i] = 7
	}
	return o
}

func (o octal) get(pos int) uint8 { return o[pos] }

func (o octal) set(pos int, d uint8) { o[pos] = d }

func (o octal) value() uint64 {
	var v uint64
	for i := len(o) - 1; i >= 0; i-- {
		v = v<<3 | uint64(o[i])
	}
	return v
}

// A Searcher looks for the smallest value of register A that makes a
// program print itself.
//
// The search only works for quine-shaped programs: ones that loop, print
// one value per iteration derived from the low bits of A, and shift A right
// by three bits each time round, so that output i depends mostly on octal
// digits i and above of A. Digits are fixed from the most significant end;
// for each position the smallest digit that keeps the tail of the output
// matching is tried first, which makes the first complete match the
// minimum. For programs of other shapes the search may find nothing, and a
// program that can loop forever without printing will hang it.
type Searcher struct {
	prog Program
	runs int
}

// NewSearcher returns a Searcher for prog.
func NewSearcher(prog Program) (*Searcher, error) {
	switch {
	case len(prog) == 0:
		return nil, ErrEmptyProgram
	case len(prog) > MaxQuineLen:
		return nil, fmt.Errorf("%w (%d values, max %d)", ErrProgramTooLong, len(prog), MaxQuineLen)
	}
	return &Searcher{prog: prog}, nil
}

// Runs returns the number of interpreter runs performed so far.
func (s *Searcher) Runs() int { return s.runs }

// Find returns the smallest A (with B = C = 0) for which the program's
// output equals the program. It returns ok=false if the search is
// exhausted.
func (s *Searcher) Find() (a uint64, ok bool) {
	scaffold := maxOctal(len(s.prog))
	return s.search(scaffold, 0)
}

func (s *Searcher) search(scaffold octal, depth int) (uint64, bool) {
	n := len(s.prog)
	if depth == n {
		a := scaffold.value()
		return a, s.reproduces(a)
	}
	pos := n - depth - 1
	saved := scaffold.get(pos)
	for x := uint8(0); x < 8; x++ {
		scaffold.set(pos, x)
		if s.tailMatches(scaffold.value(), pos) != depth+1 {
			continue
		}
		if a, ok := s.search(scaffold, depth+1); ok {
			return a, true
		}
	}
	scaffold.set(pos, saved)
	return 0, false
}

// tailMatches runs the program with register A set to a and counts the
// outputs at index pos and later that equal the tape value at the same
// index. Comparison stops at the end of the shorter of the two sequences.
func (s *Searcher) tailMatches(a uint64, pos int) int {
	s.runs++
	var i, count int
	for v := range New(s.prog, Registers{A: a}).Outputs() {
		if i >= len(s.prog) {
			break
		}
		if i >= pos && v == s.prog[i] {
			count++
		}
		i++
	}
	return count
}

// reproduces reports whether the program prints exactly itself when run
// with register A set to a.
func (s *Searcher) reproduces(a uint64) bool {
	s.runs++
	i := 0
	for v := range New(s.prog, Registers{A: a}).Outputs() {
		if i >= len(s.prog) || v != s.prog[i] {
			return false
		}
		i++
	}
	return i == len(s.prog)
}

// Quine returns the smallest A that makes prog print itself. It returns
// false if there is none or if prog cannot be searched.
func Quine(prog Program) (uint64, bool) {
	s, err := NewSearcher(prog)
	if err != nil {
		return 0, false
	}
	return s.Find()
}
