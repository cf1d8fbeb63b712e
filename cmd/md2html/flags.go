package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config      string
	verbose     bool
	createDirs  bool
	noNormalize bool
	help        bool
	version     bool
}

// parseFlags parses flags and returns the remaining positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress and timing")
	fs.BoolVar(&f.createDirs, "create-dirs", false, "create missing output directories")
	fs.BoolVar(&f.noNormalize, "no-normalize", false, "keep \\r characters instead of treating them as line breaks")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")

	// Errors and usage are reported by runMain.
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
