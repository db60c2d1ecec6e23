package dialect

import "github.com/goliatone/go-tagdown/pkg/interfaces"

// Extract runs the single forward pass over the full document text and
// returns every tag, header, horizontal rule, and fence line it finds. Lines
// inside a fenced code block are never classified; their content passes the
// extractor untouched. Each call returns a fresh aggregate; nothing is
// shared between calls.
func Extract(text string) *interfaces.Structure {
	lines := splitLines(text)
	structure := &interfaces.Structure{LineCount: len(lines)}
	var open *fenceState

	for lineNo, line := range lines {
		char, length, isFence := fenceMarker(line)
		if open != nil {
			if isFence && open.closedBy(char, length) {
				structure.Fences = append(structure.Fences, interfaces.Fence{
					Line:   lineNo,
					Char:   char,
					Length: length,
				})
				open = nil
			}
			continue
		}
		if isFence {
			structure.Fences = append(structure.Fences, interfaces.Fence{
				Line:   lineNo,
				Char:   char,
				Length: length,
			})
			open = &fenceState{char: char, length: length}
			continue
		}
		if isHorizontalRule(line) {
			structure.HorizontalRules = append(structure.HorizontalRules, lineNo)
			continue
		}
		if level, text, ok := parseHeader(line); ok {
			structure.Headers = append(structure.Headers, interfaces.Header{
				Level: level,
				Line:  lineNo,
				Text:  text,
			})
			continue
		}
		masked, _ := MaskInlineCode(line)
		indent := lineIndent(line)
		for _, tok := range scanLine(masked) {
			if !tok.isTag() {
				continue
			}
			structure.Tags = append(structure.Tags, interfaces.Tag{
				Name:        tok.name,
				Line:        lineNo,
				Indent:      indent,
				Kind:        tok.tagKind(),
				Attributes:  tok.attributes,
				StartOffset: tok.start,
				EndOffset:   tok.end,
			})
		}
	}
	return structure
}
