// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// The pipeline has three stages, all pure functions of their input:
//   - Preprocessing: line-ending normalization and line splitting
//   - Block transformation: a line-oriented state machine that emits
//     headings, unordered lists, ordered lists and paragraphs
//   - Inline processing: hash directives [[...]], strip directives ((...)),
//     bold **...** and emphasis __...__
//
// Output is a sequence of HTML fragment lines with no document envelope.
// Reading and writing files is handled by the root md2html package.
package pipeline
