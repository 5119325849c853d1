// Package threebit implements the 3-bit computer from Advent of Code 2024
// day 17: an interpreter for its eight-instruction machine and a search for
// the register A value that makes a program print itself.
package threebit

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// A Program is a read-only tape of 3-bit values: alternating opcodes and
// operands.
type Program []uint8

func (p Program) String() string { return FormatOutput(p) }

// Registers is the machine's register file.
type Registers struct {
	A, B, C uint64
}

// Opcode is a 3-bit instruction code.
type Opcode uint8

const (
	OpADV Opcode = iota // A = A >> combo
	OpBXL               // B = B ^ literal
	OpBST               // B = combo % 8
	OpJNZ               // if A != 0 { pc = literal }
	OpBXC               // B = B ^ C
	OpOUT               // emit combo % 8
	OpBDV               // B = A >> combo
	OpCDV               // C = A >> combo
)

var opNames = [...]string{"adv", "bxl", "bst", "jnz", "bxc", "out", "bdv", "cdv"}

func (op Opcode) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// usesCombo reports whether op decodes its operand as a combo operand.
func (op Opcode) usesCombo() bool {
	switch op {
	case OpADV, OpBST, OpOUT, OpBDV, OpCDV:
		return true
	}
	return false
}

// An ExecError describes a program the interpreter cannot execute. The
// interpreter panics with an *ExecError rather than returning it.
type ExecError struct {
	PC      int
	Opcode  uint8
	Operand uint8
	Reason  string
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("execute: %s (pc=%d opcode=%d operand=%d)", e.Reason, e.PC, e.Opcode, e.Operand)
}

// A Machine executes one Program against one register state.
type Machine struct {
	Registers

	prog  Program
	pc    int
	steps int
}

// New returns a Machine positioned at the start of prog.
// The registers are copied.
func New(prog Program, regs Registers) *Machine {
	return &Machine{Registers: regs, prog: prog}
}

// PC returns the instruction pointer.
func (m *Machine) PC() int { return m.pc }

// Steps returns the number of instructions executed so far.
func (m *Machine) Steps() int { return m.steps }

// Halted reports whether the instruction pointer has run off the tape.
func (m *Machine) Halted() bool {
	return m.pc < 0 || m.pc+1 >= len(m.prog)
}

// Step executes a single instruction. If the instruction was out, emitted is
// true and out holds the value. Step returns ok=false, and does nothing, if
// the machine has halted.
func (m *Machine) Step() (out uint8, emitted, ok bool) {
	if m.Halted() {
		return 0, false, false
	}
	code, arg := m.prog[m.pc], m.prog[m.pc+1]
	if code > 7 || arg > 7 {
		panic(&ExecError{PC: m.pc, Opcode: code, Operand: arg, Reason: "value outside 0-7"})
	}
	op := Opcode(code)
	var v uint64
	if op.usesCombo() {
		v = m.combo(arg).Value(&m.Registers)
	}
	m.steps++
	next := m.pc + 2
	switch op {
	case OpADV:
		m.A = shr(m.A, v)
	case OpBXL:
		m.B ^= uint64(arg)
	case OpBST:
		m.B = v % 8
	case OpJNZ:
		if m.A != 0 {
			next = int(arg)
		}
	case OpBXC:
		m.B ^= m.C
	case OpOUT:
		out, emitted = uint8(v%8), true
	case OpBDV:
		m.B = shr(m.A, v)
	case OpCDV:
		m.C = shr(m.A, v)
	}
	m.pc = next
	return out, emitted, true
}

func (m *Machine) combo(arg uint8) Operand {
	defer func() {
		if r := recover(); r != nil {
			panic(&ExecError{PC: m.pc, Opcode: m.prog[m.pc], Operand: arg, Reason: fmt.Sprint(r)})
		}
	}()
	return Combo(arg)
}

// shr divides a by 2^k. Shifts of 64 or more saturate to 0.
func shr(a, k uint64) uint64 {
	if k >= 64 {
		return 0
	}
	return a >> k
}

// Outputs returns an iterator over the values the machine emits from its
// current state onward. Iteration advances the machine; stopping early
// leaves it paused after the last yielded output.
func (m *Machine) Outputs() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for {
			out, emitted, ok := m.Step()
			if !ok {
				return
			}
			if emitted && !yield(out) {
				return
			}
		}
	}
}

// Run executes prog from regs until it halts and returns everything it
// printed.
func Run(prog Program, regs Registers) []uint8 {
	var outs []uint8
	for v := range New(prog, regs).Outputs() {
		outs = append(outs, v)
	}
	return outs
}

// FormatOutput renders vs as comma-separated decimal values.
func FormatOutput(vs []uint8) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
