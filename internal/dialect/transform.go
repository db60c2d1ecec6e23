package dialect

import (
	"sort"
	"strings"

	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

const maxHeaderLevel = 6

// Transform converts dialect text into standard Markdown. Code blocks pass
// through verbatim, lines led by a closing tag become blank lines, lines led
// by an opening or self-closing tag become headers at a depth-derived level,
// and inline tag noise is stripped from ordinary lines without touching
// inline code.
func Transform(text string) string {
	lines := splitLines(text)
	structure := Extract(text)
	depths := resolveTagDepths(structure)

	out := make([]string, 0, len(lines))
	var open *fenceState

	for lineNo, line := range lines {
		char, length, isFence := fenceMarker(line)
		if open != nil {
			out = append(out, line)
			if isFence && open.closedBy(char, length) {
				open = nil
			}
			continue
		}
		if isFence {
			out = append(out, line)
			open = &fenceState{char: char, length: length}
			continue
		}
		masked, segments := MaskInlineCode(line)
		tokens := scanLine(masked)
		if lead, ok := leadingTag(tokens); ok {
			if lead.kind == tokenClose {
				// The section ends here; a blank line reads cleaner
				// than a stray closing marker.
				out = append(out, "")
				continue
			}
			header, trailing := renderTagHeader(lead, masked, segments, depths[lineNo])
			out = append(out, header, "")
			if trailing != "" {
				out = append(out, trailing)
			}
			continue
		}
		stripped := UnmaskInlineCode(stripTags(tokens), segments)
		if strings.TrimSpace(stripped) == "" && strings.TrimSpace(line) != "" {
			// The line held nothing but tag noise; dropping it beats
			// leaving stray whitespace behind.
			continue
		}
		out = append(out, stripped)
	}
	return strings.Join(out, "\n")
}

// leadingTag returns the line's first tag token when nothing but whitespace
// precedes it. Lines led by a tag are structural; lines where tags appear
// mid-content are not.
func leadingTag(tokens []token) (token, bool) {
	for _, tok := range tokens {
		if tok.isTag() {
			return tok, true
		}
		if strings.TrimSpace(tok.text) != "" {
			return token{}, false
		}
	}
	return token{}, false
}

// renderTagHeader turns the line's leading tag into a Markdown header.
// Level is depth+2 capped at 6, reserving level 1 for the document's own
// title. Underscores in tag and attribute names are escaped so Markdown does
// not read them as emphasis. Content trailing the tag survives as a separate
// line under the header.
func renderTagHeader(lead token, masked string, segments []string, depth int) (string, string) {
	level := depth + 2
	if level > maxHeaderLevel {
		level = maxHeaderLevel
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("#", level))
	b.WriteByte(' ')
	b.WriteString(escapeUnderscores(lead.name))
	if len(lead.attributes) > 0 {
		b.WriteString(" (")
		for i, attr := range lead.attributes {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(escapeUnderscores(attr.Name))
			b.WriteString(`="`)
			b.WriteString(attr.Value)
			b.WriteString(`"`)
		}
		b.WriteString(")")
	}
	trailing := ""
	if lead.end < len(masked) {
		rest := stripTags(scanLine(masked[lead.end:]))
		trailing = strings.TrimSpace(UnmaskInlineCode(rest, segments))
	}
	return b.String(), trailing
}

// stripTags keeps the text between tag tokens and discards the tags.
func stripTags(tokens []token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.kind == tokenText {
			b.WriteString(tok.text)
		}
	}
	return b.String()
}

func escapeUnderscores(s string) string {
	return strings.ReplaceAll(s, "_", `\_`)
}

// TOC lists the outline of the converted document: synthesised headers for
// opening and self-closing tags at their depth-derived level, merged with
// native Markdown headers, in line order.
func TOC(structure *interfaces.Structure) []interfaces.TOCEntry {
	depths := resolveTagDepths(structure)
	entries := make([]interfaces.TOCEntry, 0, len(structure.Headers)+len(structure.Tags))
	for _, tag := range structure.Tags {
		if tag.Kind == interfaces.TagClosing {
			continue
		}
		depth, ok := depths[tag.Line]
		if !ok {
			continue
		}
		level := depth + 2
		if level > maxHeaderLevel {
			level = maxHeaderLevel
		}
		entries = append(entries, interfaces.TOCEntry{
			Level: level,
			Line:  tag.Line,
			Text:  tag.Name,
		})
		// One synthesised entry per line, matching the transform output.
		delete(depths, tag.Line)
	}
	for _, header := range structure.Headers {
		entries = append(entries, interfaces.TOCEntry{
			Level: header.Level,
			Line:  header.Line,
			Text:  header.Text,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Line < entries[j].Line
	})
	return entries
}
