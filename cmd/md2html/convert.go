package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// ErrUsage reports missing positional arguments.
var ErrUsage = errors.New("expected <input> and <output> arguments")

// runConvert checks the arguments, resolves configuration and converts one
// input file.
func runConvert(ctx context.Context, positionalArgs []string, flags *cliFlags, env *Environment) error {
	if len(positionalArgs) < 2 {
		return ErrUsage
	}
	inputPath, outputPath := positionalArgs[0], positionalArgs[1]
	if !fileutil.FileExists(inputPath) {
		return &md2html.MissingInputError{Path: inputPath}
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	opts := []md2html.Option{
		md2html.WithLineEndingNormalization(cfg.Input.NormalizeLineEndings),
		md2html.WithCreateDirs(cfg.Output.CreateDirs),
		md2html.WithFileMode(cfg.Mode()),
	}
	if flags.verbose {
		opts = append(opts, md2html.WithLogger(env.Stderr))
	}

	err = md2html.NewConverter(opts...).ConvertFile(ctx, inputPath, outputPath)
	if errors.Is(err, md2html.ErrWriteOutput) && errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	}
	return err
}

// resolveConfig builds the effective config.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveConfig(flags *cliFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)

	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				var searched []string
				if !fileutil.IsFilePath(name) {
					searched = config.SearchPaths(name)
				}
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	return cfg, nil
}

// mergeFlags applies CLI flags over the config. Boolean flags only override
// when set.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.createDirs {
		cfg.Output.CreateDirs = true
	}
	if flags.noNormalize {
		cfg.Input.NormalizeLineEndings = false
	}
}

// reportError prints err to w. Usage errors print the usage line instead,
// and a missing input prints "Missing <path>".
func reportError(w io.Writer, err error) {
	if errors.Is(err, ErrUsage) {
		printShortUsage(w)
		return
	}
	fmt.Fprintln(w, err)
}
