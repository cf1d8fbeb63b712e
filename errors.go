package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyPath    = errors.New("path cannot be empty")
	ErrMissingInput = errors.New("input file not found")
	ErrReadInput    = errors.New("failed to read input file")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// MissingInputError reports an input path that does not name a regular file.
// Its message is "Missing <path>"; errors.Is matches ErrMissingInput.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return "Missing " + e.Path
}

// Is reports whether target is ErrMissingInput.
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}
