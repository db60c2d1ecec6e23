// Package dialect implements the pseudo-XML-in-Markdown document dialect:
// single-pass structure extraction (tags, headers, horizontal rules, fenced
// code blocks), nesting resolution, conversion to standard Markdown, folding
// range derivation, and depth-based re-indentation.
//
// All operations are pure functions over in-memory text. Malformed input
// never fails a call; unbalanced tags, broken attributes, and unterminated
// fences degrade to best-effort output.
package dialect
