// Package markdown provides the file-centric workflows around the dialect
// core: loading documents with front matter from a filesystem, converting
// dialect text into standard Markdown, rendering preview HTML through
// goldmark, and deriving anchored outlines.
package markdown
