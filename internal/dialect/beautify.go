package dialect

import "strings"

// DefaultIndentUnit is the two-space unit applied per nesting level.
const DefaultIndentUnit = "  "

// Beautify re-indents the document by tag nesting depth with a single-pass
// state machine, independent of the structure extractor. Fenced code blocks
// are preserved byte for byte, headers lose all indentation, blank lines
// stay blank, and every other line is trimmed and re-indented at the current
// depth. Beautify(Beautify(x)) == Beautify(x).
func Beautify(text, indentUnit string) string {
	if indentUnit == "" {
		indentUnit = DefaultIndentUnit
	}
	lines := splitLines(text)
	out := make([]string, 0, len(lines))
	depth := 0
	var open *fenceState

	for _, line := range lines {
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
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out = append(out, "")
			continue
		}
		if _, _, ok := parseHeader(trimmed); ok {
			out = append(out, trimmed)
			continue
		}
		switch soleTagKind(trimmed) {
		case tokenClose:
			if depth > 0 {
				depth--
			}
			out = append(out, indentFor(depth, indentUnit)+trimmed)
		case tokenOpen:
			out = append(out, indentFor(depth, indentUnit)+trimmed)
			depth++
		default:
			// Self-closing tags and ordinary content sit at the current
			// depth without changing it.
			out = append(out, indentFor(depth, indentUnit)+trimmed)
		}
	}
	return strings.Join(out, "\n")
}

// soleTagKind reports the tag kind when the trimmed line consists of exactly
// one tag and nothing else; otherwise tokenText.
func soleTagKind(trimmed string) tokenKind {
	masked, _ := MaskInlineCode(trimmed)
	tokens := scanLine(masked)
	if len(tokens) == 1 && tokens[0].isTag() {
		return tokens[0].kind
	}
	return tokenText
}

func indentFor(depth int, unit string) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(unit, depth)
}
