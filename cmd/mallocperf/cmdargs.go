package main

import "flag"
import "io"

type cmdArgs struct {
	fs       *flag.FlagSet
	help     bool
	Routines int
	Repeat   int
	Sizes    string
	Chunk    int64
	Heap     string
	Seed     int64
	Log      string
}

func newCmdArgs(output io.Writer) (ca *cmdArgs) {
	ca = &cmdArgs{
		fs: flag.NewFlagSet("mallocperf", flag.ContinueOnError),
	}
	ca.fs.SetOutput(output)
	ca.fs.BoolVar(&ca.help, "help", false, "Shows usage")
	ca.fs.IntVar(&ca.Routines, "routines", 8,
		"Number of worker goroutines, each with its own cache")
	ca.fs.IntVar(&ca.Repeat, "repeat", 1000000,
		"Allocations issued per worker")
	ca.fs.StringVar(&ca.Sizes, "sizes", "16,96,512,4096,40000",
		"Comma separated allocation sizes to draw from")
	ca.fs.Int64Var(&ca.Chunk, "chunksize", 32768,
		"Heap growth unit for small allocations")
	ca.fs.StringVar(&ca.Heap, "heap", "mmap",
		"Heap extender backend, mmap or go")
	ca.fs.Int64Var(&ca.Seed, "seed", 0,
		"Random seed, 0 seeds from the clock")
	ca.fs.StringVar(&ca.Log, "log", "info", "Log level")
	return ca
}

func (ca *cmdArgs) parse(args []string) error {
	if err := ca.fs.Parse(args); err != nil {
		return err
	}
	if ca.help {
		ca.fs.Usage()
	}
	return nil
}
