// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one of the searched paths lives in the user
// config directory, creating the file there.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("use --create-dirs, or check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
