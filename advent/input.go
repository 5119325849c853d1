package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/vaughan0/go-ini"
)

const defaultConfigFile = "advent.ini"

// config is loaded from -config. A config file looks like:
//
//	[inputs]
//	17 = inputs/day_17/task.txt
var config ini.File

// loadConfig reads the ini file at path. A missing file is only an error
// if the user asked for it explicitly.
func loadConfig(path string, explicit bool) (ini.File, error) {
	f, err := ini.LoadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return make(ini.File), nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	return f, nil
}

// inputPath picks the input file for a day: the first argument if given,
// else the [inputs] entry in the config. An empty result means stdin.
func inputPath(day int, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if path, ok := config.Get("inputs", strconv.Itoa(day)); ok {
		return path
	}
	return ""
}

// openInput opens the puzzle input at path, or stdin if path is empty.
// Failing to open the input ends the run.
func openInput(path string) io.ReadCloser {
	if path == "" {
		return io.NopCloser(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	return f
}
