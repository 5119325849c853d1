package threebit

import "strconv"

// An Operand is a decoded combo operand: either a Literal or a
// RegisterOperand.
type Operand interface {
	Value(*Registers) uint64
	String() string
}

// Literal is a combo operand in 0-3 that stands for itself.
type Literal uint64

func (l Literal) Value(*Registers) uint64 { return uint64(l) }
func (l Literal) String() string          { return strconv.FormatUint(uint64(l), 10) }

// RegisterOperand is a combo operand (4-6) that reads a register.
type RegisterOperand uint8

const (
	RegA RegisterOperand = iota
	RegB
	RegC
)

func (r RegisterOperand) Value(regs *Registers) uint64 {
	switch r {
	case RegA:
		return regs.A
	case RegB:
		return regs.B
	case RegC:
		return regs.C
	}
	panic("bad register selector " + strconv.Itoa(int(r)))
}

func (r RegisterOperand) String() string {
	switch r {
	case RegA:
		return "A"
	case RegB:
		return "B"
	case RegC:
		return "C"
	}
	return "R" + strconv.Itoa(int(r))
}

// Combo decodes a combo operand. It panics for 7 and above, which no valid
// program uses in a combo position.
func Combo(op uint8) Operand {
	switch {
	case op <= 3:
		return Literal(op)
	case op <= 6:
		return RegisterOperand(op - 4)
	}
	panic("invalid combo operand " + strconv.Itoa(int(op)))
}
