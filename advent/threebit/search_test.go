package threebit

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOctal(t *testing.T) {
	o := maxOctal(4)
	require.Equal(t, uint64(0o7777), o.value())
	o.set(3, 1)
	o.set(0, 0)
	require.Equal(t, uint64(0o1770), o.value())
	require.Equal(t, uint8(1), o.get(3))
	require.Equal(t, uint8(7), o.get(1))

	require.Equal(t, uint64(1<<63-1), maxOctal(MaxQuineLen).value())
}

func TestQuineExample(t *testing.T) {
	prog := Program{0, 3, 5, 4, 3, 0}
	s, err := NewSearcher(prog)
	require.NoError(t, err)
	a, ok := s.Find()
	require.True(t, ok)
	require.Equal(t, uint64(117440), a)
	require.Equal(t, []uint8(prog), Run(prog, Registers{A: a}))
	require.Positive(t, s.Runs())
}

func TestQuineMinimal(t *testing.T) {
	prog := Program{0, 3, 5, 4, 3, 0}
	a, ok := Quine(prog)
	require.True(t, ok)
	for smaller := uint64(0); smaller < a; smaller++ {
		if slices.Equal(Run(prog, Registers{A: smaller}), []uint8(prog)) {
			t.Fatalf("A=%d also reproduces the program; search returned %d", smaller, a)
		}
	}
}

// TestQuineBruteForce checks the search against an exhaustive scan of every
// A with at most len(prog) octal digits on short programs that print one
// octal digit of A per loop iteration.
func TestQuineBruteForce(t *testing.T) {
	for _, prog := range []Program{
		{0, 3, 5, 4, 3, 0},
		// Prints digits 0..k-1 of a k-digit A, so the trailing 0 can never
		// be printed.
		{5, 4, 0, 3, 3, 0},
	} {
		got, gotOK := Quine(prog)
		var want uint64
		wantOK := false
		limit := uint64(1) << (3 * uint(len(prog)))
		for a := uint64(0); a < limit; a++ {
			if slices.Equal(Run(prog, Registers{A: a}), []uint8(prog)) {
				want, wantOK = a, true
				break
			}
		}
		require.Equal(t, wantOK, gotOK, "program %s", prog)
		if wantOK {
			require.Equal(t, want, got, "program %s", prog)
			require.Equal(t, []uint8(prog), Run(prog, Registers{A: got}))
		}
	}
}

func TestQuineSingleValue(t *testing.T) {
	s, err := NewSearcher(Program{0})
	require.NoError(t, err)
	_, ok := s.Find()
	require.False(t, ok)
	// One digit position, eight candidates, no recursion.
	require.Equal(t, 8, s.Runs())
}

func TestQuineNoSolution(t *testing.T) {
	// Prints a single value, never two.
	_, ok := Quine(Program{5, 4})
	require.False(t, ok)
}

func TestNewSearcherErrors(t *testing.T) {
	_, err := NewSearcher(nil)
	require.True(t, errors.Is(err, ErrEmptyProgram))

	_, err = NewSearcher(make(Program, MaxQuineLen+1))
	require.True(t, errors.Is(err, ErrProgramTooLong))

	_, err = NewSearcher(make(Program, MaxQuineLen))
	require.NoError(t, err)

	_, ok := Quine(nil)
	require.False(t, ok)
}

func BenchmarkQuine(b *testing.B) {
	prog := Program{0, 3, 5, 4, 3, 0}
	for i := 0; i < b.N; i++ {
		Quine(prog)
	}
}
