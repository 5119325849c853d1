package threebit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a machine description:
//
//	Register A: 729
//	Register B: 0
//	Register C: 0
//
//	Program: 0,1,5,4,3,0
//
// The "Register" prefix is optional.
func Parse(r io.Reader) (Registers, Program, error) {
	var regs Registers
	scanner := bufio.NewScanner(r)
	lineNum := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNum++
		return scanner.Text(), true
	}

	for _, reg := range []struct {
		name string
		dst  *uint64
	}{
		{"A", &regs.A},
		{"B", &regs.B},
		{"C", &regs.C},
	} {
		line, ok := next()
		if !ok {
			return regs, nil, eofError(scanner, "register "+reg.name)
		}
		label, val, err := splitLabel(line)
		if err != nil {
			return regs, nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		fields := strings.Fields(label)
		if len(fields) == 0 || fields[len(fields)-1] != reg.name {
			return regs, nil, fmt.Errorf("line %d: expected register %s, got %q", lineNum, reg.name, label)
		}
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return regs, nil, fmt.Errorf("line %d: register %s: %w", lineNum, reg.name, err)
		}
		*reg.dst = n
	}

	line, ok := next()
	if !ok {
		return regs, nil, eofError(scanner, "blank line")
	}
	if strings.TrimSpace(line) != "" {
		return regs, nil, fmt.Errorf("line %d: expected blank line, got %q", lineNum, line)
	}

	line, ok = next()
	if !ok {
		return regs, nil, eofError(scanner, "program")
	}
	label, val, err := splitLabel(line)
	if err != nil {
		return regs, nil, fmt.Errorf("line %d: %w", lineNum, err)
	}
	if label != "Program" {
		return regs, nil, fmt.Errorf("line %d: expected Program, got %q", lineNum, label)
	}
	prog, err := ParseProgram(val)
	if err != nil {
		return regs, nil, fmt.Errorf("line %d: %w", lineNum, err)
	}
	return regs, prog, nil
}

func splitLabel(line string) (label, val string, err error) {
	label, val, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", fmt.Errorf("missing ':' in %q", line)
	}
	return strings.TrimSpace(label), strings.TrimSpace(val), nil
}

func eofError(scanner *bufio.Scanner, want string) error {
	if err := scanner.Err(); err != nil {
		return err
	}
	return fmt.Errorf("unexpected EOF looking for %s", want)
}

// ErrEmptyProgram is returned for a program with no values.
var ErrEmptyProgram = errors.New("empty program")

// ParseProgram parses a comma-separated list of 3-bit values.
func ParseProgram(s string) (Program, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyProgram
	}
	parts := strings.Split(s, ",")
	prog := make(Program, len(parts))
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("program value %d: %w", i, err)
		}
		if n > 7 {
			return nil, fmt.Errorf("program value %d: %d is not a 3-bit value", i, n)
		}
		prog[i] = uint8(n)
	}
	return prog, nil
}
