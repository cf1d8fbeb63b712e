// Package md2html converts a small Markdown dialect to HTML fragments.
//
// # Quick Start
//
//	conv := md2html.NewConverter()
//	html, err := conv.Convert(ctx, "# Hello\n\nWorld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// html == "<h1>Hello</h1>\n<p>\nWorld\n</p>"
//
// Or convert a file in place of another:
//
//	err := conv.ConvertFile(ctx, "README.md", "README.html")
//
// # Supported Syntax
//
// Block constructs, one per line:
//
//	# Heading ... ###### Heading   <h1> ... <h6>
//	- item                         <ul><li>item</li></ul>
//	* item                         <ol><li>item</li></ol>
//	text lines                     <p> with <br/> between lines
//
// Inline constructs, applied in this order:
//
//	[[text]]   lowercase hex MD5 digest of text
//	((text))   text with every 'c' and 'C' removed
//	**text**   <b>text</b>
//	__text__   <em>text</em>
//
// Output is one HTML fragment per line, joined by "\n", with no
// <html>/<body> envelope and no escaping of '<', '>' or '&'.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2html.NewConverter(
//	    md2html.WithCreateDirs(true),
//	    md2html.WithFileMode(0o600),
//	    md2html.WithLogger(os.Stderr),
//	)
package md2html
