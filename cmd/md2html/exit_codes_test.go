package main

// Notes:
// - exitCodeFor: we test every sentinel error from md2html and config
//   packages, plus wrapped errors to verify errors.Is() chain works correctly.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Checked preconditions (exit 1)
		{"usage", ErrUsage, ExitGeneral},
		{"missing input sentinel", md2html.ErrMissingInput, ExitGeneral},
		{"missing input typed", &md2html.MissingInputError{Path: "a.md"}, ExitGeneral},
		{"empty path", md2html.ErrEmptyPath, ExitGeneral},

		// Config errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitConfig},
		{"config parse", config.ErrConfigParse, ExitConfig},
		{"empty config name", config.ErrEmptyConfigName, ExitConfig},
		{"invalid file mode", config.ErrInvalidFileMode, ExitConfig},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitConfig},

		// I/O errors (exit 3)
		{"read input", md2html.ErrReadInput, ExitIO},
		{"write output", md2html.ErrWriteOutput, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"write output wrapping not exist", fmt.Errorf("%w: %w", md2html.ErrWriteOutput, os.ErrNotExist), ExitIO},

		// General errors (exit 1)
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	for _, code := range []int{ExitConfig, ExitIO} {
		if code <= ExitGeneral || code >= 126 {
			t.Errorf("custom exit code %d should be in (1, 126)", code)
		}
	}
}
