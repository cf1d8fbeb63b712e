package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		vars           map[string]string
		wantConfigPath string
		wantCreateDirs *bool
	}{
		{
			name: "nothing set",
		},
		{
			name:           "config path",
			vars:           map[string]string{"MD2HTML_CONFIG": "/etc/md2html.yaml"},
			wantConfigPath: "/etc/md2html.yaml",
		},
		{
			name:           "create dirs true",
			vars:           map[string]string{"MD2HTML_CREATE_DIRS": "1"},
			wantCreateDirs: boolPtr(true),
		},
		{
			name:           "create dirs false",
			vars:           map[string]string{"MD2HTML_CREATE_DIRS": "false"},
			wantCreateDirs: boolPtr(false),
		},
		{
			name: "create dirs unparsable is ignored",
			vars: map[string]string{"MD2HTML_CREATE_DIRS": "sometimes"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := loadEnvConfig(func(k string) string { return tt.vars[k] })
			if got.ConfigPath != tt.wantConfigPath {
				t.Errorf("ConfigPath = %q, want %q", got.ConfigPath, tt.wantConfigPath)
			}
			switch {
			case tt.wantCreateDirs == nil && got.CreateDirs != nil:
				t.Errorf("CreateDirs = %v, want nil", *got.CreateDirs)
			case tt.wantCreateDirs != nil && got.CreateDirs == nil:
				t.Errorf("CreateDirs = nil, want %v", *tt.wantCreateDirs)
			case tt.wantCreateDirs != nil && *got.CreateDirs != *tt.wantCreateDirs:
				t.Errorf("CreateDirs = %v, want %v", *got.CreateDirs, *tt.wantCreateDirs)
			}
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	applyEnvConfig(&envConfig{}, cfg)
	if cfg.Output.CreateDirs {
		t.Error("unset env var should not change CreateDirs")
	}

	applyEnvConfig(&envConfig{CreateDirs: boolPtr(true)}, cfg)
	if !cfg.Output.CreateDirs {
		t.Error("CreateDirs = false, want true")
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"HOME=/home/u",
		"MD2HTML_CONFIG=x.yaml",
		"MD2HTML_CREATE_DIR=1",
		"MD2HTML_VERBOSE=1",
	})

	out := buf.String()
	if strings.Contains(out, "MD2HTML_CONFIG") {
		t.Errorf("known variable reported: %q", out)
	}
	if strings.Contains(out, "HOME") {
		t.Errorf("unrelated variable reported: %q", out)
	}
	for _, name := range []string{"MD2HTML_CREATE_DIR", "MD2HTML_VERBOSE"} {
		if !strings.Contains(out, "unknown environment variable "+name) {
			t.Errorf("missing warning for %s in %q", name, out)
		}
	}
}

func boolPtr(b bool) *bool { return &b }
