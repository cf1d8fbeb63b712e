package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidFileMode = errors.New("invalid file mode")
)

// DefaultFileMode is the permission set of written HTML files.
const DefaultFileMode = fileutil.DefaultFileMode

// appDir is the directory name under the user config directory.
const appDir = "go-md2html"

// Config holds all configuration for a conversion.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// InputConfig defines how source files are read.
type InputConfig struct {
	NormalizeLineEndings bool `yaml:"normalizeLineEndings"` // Treat \r\n and \r as line breaks (default: true)
}

// OutputConfig defines how HTML files are written.
type OutputConfig struct {
	CreateDirs bool   `yaml:"createDirs"` // Create missing parent directories
	FileMode   string `yaml:"fileMode"`   // Octal permissions, e.g. "0644"
}

// Validate checks values that YAML decoding cannot.
func (c *Config) Validate() error {
	if _, err := ParseFileMode(c.Output.FileMode); err != nil {
		return fmt.Errorf("output.fileMode: %w", err)
	}
	return nil
}

// Mode returns the output file mode, falling back to DefaultFileMode when
// the configured value is empty or invalid.
func (c *Config) Mode() fs.FileMode {
	mode, err := ParseFileMode(c.Output.FileMode)
	if err != nil {
		return DefaultFileMode
	}
	return mode
}

// ParseFileMode parses an octal permission string such as "0644" or "644".
// An empty string yields DefaultFileMode.
func ParseFileMode(s string) (fs.FileMode, error) {
	if s == "" {
		return DefaultFileMode, nil
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0o"), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an octal number", ErrInvalidFileMode, s)
	}
	if v > 0o777 {
		return 0, fmt.Errorf("%w: %q exceeds 0777", ErrInvalidFileMode, s)
	}
	return fs.FileMode(v), nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{NormalizeLineEndings: true},
		Output: OutputConfig{CreateDirs: false, FileMode: "0644"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// current directory first, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
