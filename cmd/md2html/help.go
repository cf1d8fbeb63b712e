package main

import (
	"fmt"
	"io"
)

// printShortUsage prints the one-line usage reported on argument errors.
func printShortUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html README.md README.html")
}

// printUsage prints the full help message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] <input> <output>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file to HTML fragments.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Markdown file to read")
	fmt.Fprintln(w, "  output    HTML file to write (created or overwritten)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --create-dirs         Create missing output directories")
	fmt.Fprintln(w, "      --no-normalize        Keep \\r characters as-is")
	fmt.Fprintln(w, "  -v, --verbose             Show progress and timing")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG            Config file (when --config is not set)")
	fmt.Fprintln(w, "  MD2HTML_CREATE_DIRS       Create missing output directories (true/false)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Syntax:")
	fmt.Fprintln(w, "  # .. ######   headings        - item      unordered list")
	fmt.Fprintln(w, "  * item        ordered list    text        paragraph, <br/> per line")
	fmt.Fprintln(w, "  **b** __e__   bold, emphasis  [[t]] ((t)) MD5 of t, t without c/C")
}
