package pipeline

import (
	"regexp"
	"strings"
)

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// SplitLines splits content into lines on "\n".
// When normalize is true, "\r\n" and lone "\r" are treated as line breaks too.
func SplitLines(content string, normalize bool) []string {
	if normalize {
		content = normalizeLineEndings(content)
	}
	return strings.Split(content, "\n")
}

// JoinLines joins output fragments with "\n". No trailing newline is added.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
