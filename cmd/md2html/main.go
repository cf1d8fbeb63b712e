package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain runs the CLI and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		printShortUsage(env.Stderr)
		return ExitGeneral
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "go-md2html %s\n", Version)
		return ExitSuccess
	}

	undo := setMaxProcs(flags.verbose, env.Stderr)
	defer undo()

	warnUnknownEnvVars(env.Stderr, env.Environ())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		reportError(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setMaxProcs configures GOMAXPROCS, logging the decision only in verbose mode.
// Errors are ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool, w io.Writer) func() {
	logger := func(string, ...interface{}) {}
	if verbose {
		logger = func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	undo, _ := maxprocs.Set(maxprocs.Logger(logger))
	return undo
}
