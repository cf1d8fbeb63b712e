package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Block-level line patterns. Content is captured after the marker and the
// run of spaces that follows it.
var (
	// Heading: 1 to 6 '#' then spaces. Seven '#' never match.
	headingPattern = regexp.MustCompile(`^(#{1,6}) +(.*)$`)

	// Unordered list item: "- item"
	unorderedItemPattern = regexp.MustCompile(`^- +(.*)$`)

	// Ordered list item: "* item"
	orderedItemPattern = regexp.MustCompile(`^\* +(.*)$`)
)

// blockState is the kind of block currently open.
type blockState int

const (
	stateNone blockState = iota
	stateParagraph
	stateUnorderedList
	stateOrderedList
)

// lineTransformer holds the block state for a single Transform call.
// At most one block is open at a time.
type lineTransformer struct {
	state     blockState
	paragraph []string
	out       []string
}

// Transform converts Markdown lines into HTML fragment lines.
// Each call starts from a fresh state, so the result depends only on lines.
func Transform(lines []string) []string {
	t := &lineTransformer{out: make([]string, 0, len(lines)+2)}
	for _, line := range lines {
		t.consume(line)
	}
	t.closeAll()
	return t.out
}

// consume classifies a single line. The first matching rule wins.
func (t *lineTransformer) consume(line string) {
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		t.closeAll()
		level := strconv.Itoa(len(m[1]))
		t.emit("<h" + level + ">" + ProcessInline(m[2]) + "</h" + level + ">")
		return
	}

	if m := unorderedItemPattern.FindStringSubmatch(line); m != nil {
		t.listItem(stateUnorderedList, m[1])
		return
	}

	if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
		t.listItem(stateOrderedList, m[1])
		return
	}

	if strings.TrimSpace(line) == "" {
		t.closeAll()
		return
	}

	if t.state != stateParagraph {
		t.closeAll()
		t.state = stateParagraph
	}
	t.paragraph = append(t.paragraph, line)
}

// listItem emits an <li>, opening the list of the given kind if needed.
// A list of the other kind, or a paragraph, is closed first.
func (t *lineTransformer) listItem(kind blockState, content string) {
	if t.state != kind {
		t.closeAll()
		t.emit("<" + listTag(kind) + ">")
		t.state = kind
	}
	t.emit("<li>" + ProcessInline(content) + "</li>")
}

// closeAll flushes a pending paragraph, then closes an open list.
func (t *lineTransformer) closeAll() {
	t.flushParagraph()
	t.closeList()
}

// flushParagraph emits the buffered paragraph lines separated by <br/>
// markers and clears the buffer.
func (t *lineTransformer) flushParagraph() {
	if t.state != stateParagraph {
		return
	}
	t.emit("<p>")
	for i, line := range t.paragraph {
		if i > 0 {
			t.emit("<br/>")
		}
		t.emit(ProcessInline(line))
	}
	t.emit("</p>")
	t.paragraph = t.paragraph[:0]
	t.state = stateNone
}

// closeList emits the closing tag of an open list.
func (t *lineTransformer) closeList() {
	if t.state != stateUnorderedList && t.state != stateOrderedList {
		return
	}
	t.emit("</" + listTag(t.state) + ">")
	t.state = stateNone
}

func (t *lineTransformer) emit(line string) {
	t.out = append(t.out, line)
}

// listTag maps a list state to its element name.
func listTag(kind blockState) string {
	if kind == stateOrderedList {
		return "ol"
	}
	return "ul"
}
