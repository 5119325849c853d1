package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cespare/advent/advent/threebit"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("testdata/advent.ini", true)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := cfg.Get("inputs", "17")
	if want := "testdata/day17/example_2.txt"; !ok || got != want {
		t.Errorf("inputs.17: got %q (ok=%t); want %q", got, ok, want)
	}

	missing := filepath.Join(t.TempDir(), "advent.ini")
	if _, err := loadConfig(missing, false); err != nil {
		t.Errorf("missing default config: got error %v", err)
	}
	if _, err := loadConfig(missing, true); err == nil {
		t.Error("missing explicit config: expected error")
	}
}

func TestInputPath(t *testing.T) {
	orig := config
	defer func() { config = orig }()

	cfg, err := loadConfig("testdata/advent.ini", true)
	if err != nil {
		t.Fatal(err)
	}
	config = cfg
	for _, tt := range []struct {
		day  int
		args []string
		want string
	}{
		{17, []string{"x.txt"}, "x.txt"},
		{17, nil, "testdata/day17/example_2.txt"},
		{18, nil, ""},
	} {
		if got := inputPath(tt.day, tt.args); got != tt.want {
			t.Errorf("inputPath(%d, %q): got %q; want %q", tt.day, tt.args, got, tt.want)
		}
	}
}

func TestREPL(t *testing.T) {
	var s replSession
	var buf bytes.Buffer
	for _, tt := range []struct {
		cmd  string
		want string
	}{
		{"a 729", ""},
		{"prog 0,1,5,4,3,0", ""},
		{"run", "4,6,3,5,6,3,5,2,1,0\n"},
		{"dis", " 0  adv 1\n 2  out A\n 4  jnz 0\n"},
		{"prog 0, 3, 5, 4, 3, 0", ""},
		{"solve", "117440 (octal 345300, "},
		{"B 5", ""},
		{"regs", "threebit.Registers{"},
		{"load testdata/day17/example_1.txt", "loaded 6 values\n"},
		{"", ""},
	} {
		buf.Reset()
		if err := s.exec(&buf, tt.cmd); err != nil {
			t.Fatalf("%q: %s", tt.cmd, err)
		}
		if !strings.HasPrefix(buf.String(), tt.want) {
			t.Errorf("%q: got %q; want prefix %q", tt.cmd, buf.String(), tt.want)
		}
	}
	if want := (threebit.Registers{A: 729}); s.regs != want {
		t.Errorf("after load: got %+v; want %+v", s.regs, want)
	}
}

func TestREPLErrors(t *testing.T) {
	var s replSession
	for _, cmd := range []string{
		"a",
		"a x",
		"prog 9",
		"load",
		"load testdata/nonexistent.txt",
		"solve",
		"frobnicate",
	} {
		if err := s.exec(&bytes.Buffer{}, cmd); err == nil {
			t.Errorf("%q: expected error", cmd)
		}
	}
	if err := s.exec(&bytes.Buffer{}, "quit"); err != errQuit {
		t.Errorf("quit: got %v; want errQuit", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(bad, []byte("Register A: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := s.exec(&bytes.Buffer{}, "load "+bad)
	if err == nil || !strings.HasPrefix(err.Error(), "parse: ") {
		t.Errorf("load of bad input: got %v; want parse error", err)
	}

	s.prog = threebit.Program{5, 7}
	err = s.exec(&bytes.Buffer{}, "run")
	if err == nil || !strings.HasPrefix(err.Error(), "execute: ") {
		t.Errorf("run of bad program: got %v; want execute error", err)
	}
}
