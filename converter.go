package md2html

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Converter turns Markdown text into HTML fragment lines.
// A Converter holds only options; it is safe for concurrent use.
type Converter struct {
	cfg converterConfig
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithCreateDirs, WithFileMode).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			normalizeLineEndings: true,
			fileMode:             DefaultFileMode,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Transform converts Markdown lines into HTML fragment lines.
// It is a pure function: identical input always gives identical output.
func Transform(lines []string) []string {
	return pipeline.Transform(lines)
}

// Convert converts Markdown content to HTML. Output lines are joined with
// "\n" and carry no document envelope or trailing newline.
func (c *Converter) Convert(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lines := pipeline.SplitLines(markdown, c.cfg.normalizeLineEndings)
	return pipeline.JoinLines(pipeline.Transform(lines)), nil
}

// ConvertFile reads inputPath, converts it and writes the result to
// outputPath, creating or replacing it. When inputPath is not a regular file
// it returns a *MissingInputError and writes nothing.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) error {
	if inputPath == "" || outputPath == "" {
		return ErrEmptyPath
	}
	if !fileutil.FileExists(inputPath) {
		return &MissingInputError{Path: inputPath}
	}

	start := time.Now()

	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	html, err := c.Convert(ctx, string(content))
	if err != nil {
		return err
	}

	if err := fileutil.WriteFile(outputPath, []byte(html), c.cfg.fileMode, c.cfg.createDirs); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, outputPath, err)
	}

	c.logf("Converted %s -> %s (%v)\n", inputPath, outputPath, time.Since(start).Round(time.Millisecond))
	return nil
}

// logf writes a progress message when a logger is configured.
func (c *Converter) logf(format string, args ...any) {
	if c.cfg.logger == nil {
		return
	}
	fmt.Fprintf(c.cfg.logger, format, args...)
}
