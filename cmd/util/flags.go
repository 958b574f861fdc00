package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime"
	"strings"
)

var (
	FlagCpu = runtime.NumCPU()

	FlagVerbose = false

	FlagAlign = false

	FlagMasses = ""
)

func init() {
	log.SetFlags(0)
}

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"cpu": {
		set: func() {
			flag.IntVar(&FlagCpu, "cpu", FlagCpu,
				"The max number of CPUs to use.")
		},
		init: func() {
			runtime.GOMAXPROCS(FlagCpu)
		},
	},
	"verbose": {
		set: func() {
			flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
				"When set, progress and debugging messages are shown.")
		},
	},
	"align": {
		set: func() {
			flag.BoolVar(&FlagAlign, "align", FlagAlign,
				"When set, models are optimally superposed before their\n"+
					"RMSD is computed. Otherwise the coordinates are assumed\n"+
					"to be in a common frame already.")
		},
	},
	"masses": {
		set: func() {
			flag.StringVar(&FlagMasses, "masses", FlagMasses,
				"A file with one weight per atom, used for superposition\n"+
					"and RMSD. By default every atom has the same weight.")
		},
	},
}

func FlagUse(names ...string) {
	for _, name := range names {
		commonFlags[name].use = true
	}
}

// Usage just calls `flag.Usage`. It's included here to avoid
// an extra import to `flag` just to call Usage.
func Usage() {
	flag.Usage()
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// NArg just calls `flag.NArg`. It's included here to avoid
// an extra import to `flag` just to call NArg.
func NArg() int {
	return flag.NArg()
}

// Verbosef prints to stderr only when -verbose is set.
func Verbosef(format string, v ...interface{}) {
	if FlagVerbose {
		fmt.Fprintf(os.Stderr, format, v...)
	}
}

// Masses reads the weights named by -masses, or returns nil if the flag is
// not set.
func Masses() []float64 {
	if FlagMasses == "" {
		return nil
	}
	return ScoresRead(FlagMasses)
}

func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}
