package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		args           []string
		wantFlags      cliFlags
		wantPositional []string
		wantErr        bool
	}{
		{
			name:           "positional only",
			args:           []string{"in.md", "out.html"},
			wantPositional: []string{"in.md", "out.html"},
		},
		{
			name:           "short flags",
			args:           []string{"-v", "-c", "work", "in.md", "out.html"},
			wantFlags:      cliFlags{verbose: true, config: "work"},
			wantPositional: []string{"in.md", "out.html"},
		},
		{
			name:           "long flags interspersed",
			args:           []string{"in.md", "--create-dirs", "out.html", "--no-normalize"},
			wantFlags:      cliFlags{createDirs: true, noNormalize: true},
			wantPositional: []string{"in.md", "out.html"},
		},
		{
			name:           "double dash ends flags",
			args:           []string{"--", "-weird.md", "out.html"},
			wantPositional: []string{"-weird.md", "out.html"},
		},
		{
			name:      "help",
			args:      []string{"-h"},
			wantFlags: cliFlags{help: true},
		},
		{
			name:      "version",
			args:      []string{"--version"},
			wantFlags: cliFlags{version: true},
		},
		{
			name:    "unknown flag",
			args:    []string{"--nope"},
			wantErr: true,
		},
		{
			name:    "missing flag value",
			args:    []string{"--config"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, positional, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if *f != tt.wantFlags {
				t.Errorf("flags = %+v, want %+v", *f, tt.wantFlags)
			}
			if diff := cmp.Diff(tt.wantPositional, positional, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("positional mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
