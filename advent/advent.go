package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
)

var (
	configFile  = flag.String("config", defaultConfigFile, "ini file mapping days to input files")
	verbose     = flag.Bool("v", false, "print run statistics to stderr")
	profileFile = flag.String("profile", "", "write an fgprof profile of the solution to this file")
)

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	fn, ok := solutions[name]
	if !ok {
		log.Fatalf("unknown solution %q", name)
	}
	cfg, err := loadConfig(*configFile, isFlagSet("config"))
	if err != nil {
		log.Fatal(err)
	}
	config = cfg

	if *profileFile != "" {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Fatal(err)
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Println("Error writing profile:", err)
			}
			if err := f.Close(); err != nil {
				log.Println("Error writing profile:", err)
			}
		}()
	}

	start := time.Now()
	fn(flag.Args()[1:])
	if *verbose {
		stat("elapsed", time.Since(start).Round(time.Microsecond).String())
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [args...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// stat prints a -v statistic to stderr.
func stat(name string, v any) {
	if n, ok := v.(int); ok {
		v = humanize.Comma(int64(n))
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", name, v)
}

var solutions = make(map[string]func([]string))

func register(name string, fn func([]string)) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

// splitName splits a solution name like "17trace" into its day number and
// suffix.
func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
