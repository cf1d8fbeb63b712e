package md2html

import (
	"io"
	"io/fs"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// DefaultFileMode is the permission set of written HTML files.
const DefaultFileMode = fileutil.DefaultFileMode

// converterConfig holds options applied by Option functions.
type converterConfig struct {
	normalizeLineEndings bool
	createDirs           bool
	fileMode             fs.FileMode
	logger               io.Writer
}

// Option configures a Converter.
type Option func(*Converter)

// WithLineEndingNormalization controls whether "\r\n" and lone "\r" are
// treated as line breaks. Enabled by default.
func WithLineEndingNormalization(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.normalizeLineEndings = enabled
	}
}

// WithCreateDirs makes ConvertFile create missing parent directories of the
// output path.
func WithCreateDirs(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.createDirs = enabled
	}
}

// WithFileMode sets the permissions of files written by ConvertFile.
// Only the permission bits are kept.
func WithFileMode(mode fs.FileMode) Option {
	return func(c *Converter) {
		c.cfg.fileMode = mode.Perm()
	}
}

// WithLogger enables progress messages written to w. A nil writer disables
// logging.
func WithLogger(w io.Writer) Option {
	return func(c *Converter) {
		c.cfg.logger = w
	}
}
