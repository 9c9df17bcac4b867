// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ezrec/a32asm/asm"
)

type options struct {
	file          string
	config        string
	output        string
	strict        bool
	stride        uint32
	registerLimit int
	symbols       bool
	verbose       bool
}

// configure builds the dialect from the config file and command line.
func configure(opts *options, flags *pflag.FlagSet) (cfg asm.Config, err error) {
	cfg = asm.DefaultConfig()

	if len(opts.config) != 0 {
		cfg, err = asm.LoadConfig(opts.config)
		if err != nil {
			err = fmt.Errorf("%v: %w", opts.config, err)
			return
		}
	}

	if flags.Changed("stride") {
		cfg.Stride = opts.stride
	}
	if flags.Changed("register-limit") {
		cfg.RegisterLimit = opts.registerLimit
	}
	if opts.strict {
		cfg.Policy = asm.POLICY_ABORT
	}

	err = cfg.Validate()
	return
}

// printSymbols renders the label table.
func printSymbols(prog *asm.Program) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stderr)
	tw.AppendHeader(table.Row{"Label", "Address"})
	for _, sym := range prog.Symbols() {
		tw.AppendRow(table.Row{sym.Name, fmt.Sprintf("%#x", sym.Addr)})
	}
	tw.Render()
}

// run assembles opts.file, writing the listing to stdout.
func run(opts *options, cfg asm.Config, stdout io.Writer) (err error) {
	inf, err := os.Open(opts.file)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{
		Config:  cfg,
		Verbose: opts.verbose,
	}

	prog, err := assembler.Parse(inf)
	if prog != nil {
		werr := prog.WriteListing(stdout)
		if err == nil {
			err = werr
		}
	}
	if err != nil {
		err = fmt.Errorf("%v: %w", opts.file, err)
		return
	}

	if skipped := prog.Err(); skipped != nil {
		logrus.Warnf("%v: %v", opts.file, skipped)
	}

	if opts.symbols {
		printSymbols(prog)
	}

	if len(opts.output) != 0 {
		err = os.WriteFile(opts.output, prog.Binary(), 0o644)
	}

	return
}

// newFlags defines the command line on a new flag set.
func newFlags(opts *options) (flags *pflag.FlagSet) {
	flags = pflag.NewFlagSet("a32asm", pflag.ExitOnError)
	flags.StringVarP(&opts.file, "file", "f", "", "assembly file to assemble")
	flags.StringVarP(&opts.config, "config", "c", "", "TOML dialect configuration")
	flags.StringVarP(&opts.output, "output", "o", "", "write a memory image, one word per line address")
	flags.BoolVar(&opts.strict, "strict", false, "abort on the first bad instruction")
	flags.Uint32Var(&opts.stride, "stride", asm.INSTRUCTION_STRIDE, "address step between instructions")
	flags.IntVar(&opts.registerLimit, "register-limit", 15, "highest register id")
	flags.BoolVar(&opts.symbols, "symbols", false, "print the label table to stderr")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")
	return
}

func main() {
	opts := &options{}

	flags := newFlags(opts)
	_ = flags.Parse(os.Args[1:])

	if len(opts.file) == 0 && flags.NArg() == 1 {
		opts.file = flags.Arg(0)
	} else if flags.NArg() != 0 {
		logrus.Fatalf("%v: Unknown arguments: %v", os.Args[0], flags.Args())
	}

	if len(opts.file) == 0 {
		logrus.Fatalf("%v: no input file, use -f FILE", os.Args[0])
	}

	if opts.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := configure(opts, flags)
	if err != nil {
		logrus.Fatal(err)
	}

	err = run(opts, cfg, os.Stdout)
	if err != nil {
		logrus.Fatal(err)
	}
}
