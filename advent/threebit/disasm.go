package threebit

import (
	"fmt"
	"strconv"
	"strings"
)

// An Instruction is an opcode together with its raw operand.
type Instruction struct {
	Op      Opcode
	Operand uint8
}

// String renders the instruction in assembly form. Combo operands are
// shown decoded (registers by name); an undecodable combo operand is shown
// with a leading '?'.
func (in Instruction) String() string {
	if in.Op == OpBXC {
		return in.Op.String()
	}
	if !in.Op.usesCombo() {
		return in.Op.String() + " " + strconv.Itoa(int(in.Operand))
	}
	if in.Operand > 6 {
		return in.Op.String() + " ?" + strconv.Itoa(int(in.Operand))
	}
	return in.Op.String() + " " + Combo(in.Operand).String()
}

// Decode splits prog into instructions starting at offset 0. A trailing
// unpaired value is dropped since the machine halts before reading it.
func Decode(prog Program) []Instruction {
	insns := make([]Instruction, 0, len(prog)/2)
	for i := 0; i+1 < len(prog); i += 2 {
		insns = append(insns, Instruction{Op: Opcode(prog[i]), Operand: prog[i+1]})
	}
	return insns
}

// Disassemble returns a listing of prog, one instruction per line, each
// prefixed with its tape offset.
func Disassemble(prog Program) string {
	var b strings.Builder
	for i, in := range Decode(prog) {
		fmt.Fprintf(&b, "%2d  %s\n", 2*i, in)
	}
	return b.String()
}
