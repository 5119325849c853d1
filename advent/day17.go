package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cespare/advent/advent/threebit"
	"github.com/kr/pretty"
)

func init() {
	register("17a", day17a)
	register("17b", day17b)
	register("17trace", day17trace)
	register("17repl", day17repl)
}

func day17a(args []string) {
	regs, prog := readDay17(args)
	out, err := runProgram(prog, regs)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(threebit.FormatOutput(out))
	if *verbose {
		stat("outputs", len(out))
	}
}

func day17b(args []string) {
	_, prog := readDay17(args)
	s, err := threebit.NewSearcher(prog)
	if err != nil {
		log.Fatalf("parse: %s", err)
	}
	a, err := findQuine(s)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(a)
	if *verbose {
		stat("interpreter runs", s.Runs())
	}
}

func readDay17(args []string) (threebit.Registers, threebit.Program) {
	r := openInput(inputPath(17, args))
	defer r.Close()
	regs, prog, err := threebit.Parse(r)
	if err != nil {
		log.Fatalf("parse: %s", err)
	}
	return regs, prog
}

var errNoQuine = errors.New("search: no self-reproducing value for register A")

// runProgram runs prog to completion. A program the interpreter cannot
// execute is reported as an error.
func runProgram(prog threebit.Program, regs threebit.Registers) (out []uint8, err error) {
	defer recoverExec(&err)
	return threebit.Run(prog, regs), nil
}

func findQuine(s *threebit.Searcher) (a uint64, err error) {
	defer recoverExec(&err)
	a, ok := s.Find()
	if !ok {
		return 0, errNoQuine
	}
	return a, nil
}

// recoverExec turns an interpreter panic into an error. Other panics are
// passed through.
func recoverExec(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(*threebit.ExecError)
	if !ok {
		panic(r)
	}
	*err = e
}

func day17trace(args []string) {
	regs, prog := readDay17(args)
	if err := trace(os.Stdout, prog, regs); err != nil {
		log.Fatal(err)
	}
}

// trace single-steps prog, printing each instruction along with the
// registers after it executes, then the output and final machine state.
func trace(w io.Writer, prog threebit.Program, regs threebit.Registers) (err error) {
	defer recoverExec(&err)
	m := threebit.New(prog, regs)
	var outs []uint8
	for !m.Halted() {
		pc := m.PC()
		insn := threebit.Instruction{Op: threebit.Opcode(prog[pc]), Operand: prog[pc+1]}
		v, emitted, _ := m.Step()
		fmt.Fprintf(w, "%3d  %-6s A=%-20d B=%-20d C=%d", pc, insn, m.A, m.B, m.C)
		if emitted {
			outs = append(outs, v)
			fmt.Fprintf(w, "  out %d", v)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "output: %s\n", threebit.FormatOutput(outs))
	pretty.Fprintf(w, "final: %# v (%d steps)\n", m.Registers, m.Steps())
	return nil
}
