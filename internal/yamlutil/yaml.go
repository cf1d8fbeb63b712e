// Package yamlutil wraps YAML parsing to isolate the external dependency.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (1MB).
const MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// UnmarshalStrict decodes data into v, rejecting unknown fields.
// Fields of v absent from data keep their current values, so callers can
// pass a struct pre-filled with defaults.
func UnmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
