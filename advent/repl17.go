package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/advent/advent/threebit"
	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

const replHelp = `commands:
  a|b|c N      set a register
  prog LIST    load a comma-separated program
  load PATH    load registers and program from a puzzle input
  regs         show the registers
  dis          disassemble the program
  run          run the program and print its output
  solve        find the smallest A that makes the program print itself
  help         show this message
  quit         exit
`

// replSession is the state of a 17repl session.
type replSession struct {
	regs threebit.Registers
	prog threebit.Program
}

var errQuit = errors.New("quit")

// exec evaluates a single REPL command, writing any results to w. It
// returns errQuit when the session should end.
func (s *replSession) exec(w io.Writer, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "a", "b", "c", "A", "B", "C":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s N", cmd)
		}
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		switch strings.ToUpper(cmd) {
		case "A":
			s.regs.A = n
		case "B":
			s.regs.B = n
		case "C":
			s.regs.C = n
		}
	case "prog":
		prog, err := threebit.ParseProgram(strings.Join(args, ""))
		if err != nil {
			return err
		}
		s.prog = prog
	case "load":
		if len(args) != 1 {
			return errors.New("usage: load PATH")
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		regs, prog, err := threebit.Parse(f)
		if err != nil {
			return fmt.Errorf("parse: %s", err)
		}
		s.regs, s.prog = regs, prog
		fmt.Fprintf(w, "loaded %d values\n", len(prog))
	case "regs":
		pretty.Fprintf(w, "%# v\n", s.regs)
	case "dis":
		fmt.Fprint(w, threebit.Disassemble(s.prog))
	case "run":
		out, err := runProgram(s.prog, s.regs)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, threebit.FormatOutput(out))
	case "solve":
		searcher, err := threebit.NewSearcher(s.prog)
		if err != nil {
			return err
		}
		a, err := findQuine(searcher)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d (octal %o, %s interpreter runs)\n", a, a, humanize.Comma(int64(searcher.Runs())))
	case "help", "?":
		fmt.Fprint(w, replHelp)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func day17repl(args []string) {
	var s replSession
	if len(args) > 0 {
		if err := s.exec(os.Stdout, "load "+args[0]); err != nil {
			log.Fatal(err)
		}
	}
	home, _ := os.UserHomeDir()
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "17> ",
		HistoryFile: filepath.Join(home, ".advent17_history"),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return
		default:
			log.Println("Readline error:", err)
			continue
		}
		if err := s.exec(l.Stdout(), line); err != nil {
			if err == errQuit {
				return
			}
			fmt.Fprintln(l.Stderr(), "error:", err)
		}
	}
}
