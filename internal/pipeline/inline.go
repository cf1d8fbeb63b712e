package pipeline

import (
	"crypto/md5" // #nosec G501 -- digest is output content, not a security control
	"encoding/hex"
	"regexp"
	"strings"
)

// Inline patterns, applied in declaration order. All use non-greedy spans so
// that several constructs on one line are matched independently.
var (
	// Hash directive [[text]]
	hashPattern = regexp.MustCompile(`\[\[(.*?)\]\]`)

	// Strip directive ((text))
	stripPattern = regexp.MustCompile(`\(\((.*?)\)\)`)

	// Bold **text**
	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

	// Emphasis __text__
	emphasisPattern = regexp.MustCompile(`__(.*?)__`)
)

// ProcessInline applies the inline constructs to a single content string.
// Bracket directives are resolved before bold and emphasis, so a digest or a
// stripped span is never reinterpreted as markup delimiters of its own.
func ProcessInline(text string) string {
	text = replaceSpans(hashPattern, text, md5Hex)
	text = replaceSpans(stripPattern, text, stripLetterC)
	text = boldPattern.ReplaceAllString(text, "<b>${1}</b>")
	text = emphasisPattern.ReplaceAllString(text, "<em>${1}</em>")
	return text
}

// replaceSpans replaces every match of re with fn applied to its first
// capture group.
func replaceSpans(re *regexp.Regexp, text string, fn func(inner string) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		b.WriteString(fn(text[m[2]:m[3]]))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// md5Hex returns the lowercase hexadecimal MD5 digest of s.
func md5Hex(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401
	return hex.EncodeToString(sum[:])
}

// stripLetterC removes every 'c' and 'C' from s.
func stripLetterC(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'c' || r == 'C' {
			return -1
		}
		return r
	}, s)
}
