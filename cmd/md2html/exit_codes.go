package main

import (
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// Exit codes for md2html CLI.
// Usage errors and a missing input file both exit 1, matching the documented
// contract; custom codes stay below 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Usage, missing input, or unexpected error
	ExitConfig  = 2 // Config file not found or invalid
	ExitIO      = 3 // Reading input or writing output failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Checked preconditions (exit 1)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, md2html.ErrMissingInput) ||
		errors.Is(err, md2html.ErrEmptyPath) {
		return ExitGeneral
	}

	// Config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidFileMode) {
		return ExitConfig
	}

	// I/O errors (exit 3)
	if errors.Is(err, md2html.ErrReadInput) ||
		errors.Is(err, md2html.ErrWriteOutput) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
