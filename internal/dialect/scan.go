package dialect

import "github.com/goliatone/go-tagdown/pkg/interfaces"

// scanLine tokenizes one line (already masked for inline code) into a stream
// of text and tag tokens. Anything that fails to parse as a tag stays text,
// so an unmatched `<` never corrupts the line.
func scanLine(line string) []token {
	var tokens []token
	textStart := 0
	i := 0
	for i < len(line) {
		if line[i] != '<' {
			i++
			continue
		}
		tag, next, ok := scanTag(line, i)
		if !ok {
			i++
			continue
		}
		if i > textStart {
			tokens = append(tokens, token{
				kind:  tokenText,
				text:  line[textStart:i],
				start: textStart,
				end:   i,
			})
		}
		tokens = append(tokens, tag)
		i = next
		textStart = next
	}
	if textStart < len(line) {
		tokens = append(tokens, token{
			kind:  tokenText,
			text:  line[textStart:],
			start: textStart,
			end:   len(line),
		})
	}
	return tokens
}

// scanTag parses a tag starting at the `<` on line[start]. It returns the
// parsed token plus the offset just past the closing `>`.
func scanTag(line string, start int) (token, int, bool) {
	i := start + 1
	if i < len(line) && line[i] == '/' {
		return scanClosingTag(line, start)
	}
	name, i, ok := scanName(line, i)
	if !ok {
		return token{}, 0, false
	}
	var attrs []interfaces.Attribute
	for i < len(line) {
		i = skipSpaces(line, i)
		if i >= len(line) {
			return token{}, 0, false
		}
		switch {
		case line[i] == '>':
			return token{
				kind:       tokenOpen,
				name:       name,
				attributes: attrs,
				start:      start,
				end:        i + 1,
			}, i + 1, true
		case line[i] == '/' && i+1 < len(line) && line[i+1] == '>':
			return token{
				kind:       tokenSelfClosing,
				name:       name,
				attributes: attrs,
				start:      start,
				end:        i + 2,
			}, i + 2, true
		default:
			attr, next, ok := scanAttribute(line, i)
			if ok {
				attrs = setAttribute(attrs, attr)
				i = next
				continue
			}
			// Malformed token inside the tag: drop it and resync at the
			// next boundary instead of failing the whole tag.
			i = skipAttributeJunk(line, i)
		}
	}
	return token{}, 0, false
}

func scanClosingTag(line string, start int) (token, int, bool) {
	i := start + 2
	name, i, ok := scanName(line, i)
	if !ok {
		return token{}, 0, false
	}
	i = skipSpaces(line, i)
	if i >= len(line) || line[i] != '>' {
		return token{}, 0, false
	}
	return token{
		kind:  tokenClose,
		name:  name,
		start: start,
		end:   i + 1,
	}, i + 1, true
}

// scanAttribute parses `name`, `name=bare`, `name="quoted"`, or
// `name='quoted'`, with optional whitespace around the `=`. A bare value
// ends at whitespace or `>`.
func scanAttribute(line string, start int) (interfaces.Attribute, int, bool) {
	name, i, ok := scanName(line, start)
	if !ok {
		return interfaces.Attribute{}, 0, false
	}
	j := skipSpaces(line, i)
	if j >= len(line) || line[j] != '=' {
		// A name without `=` is not an attribute; drop the token.
		return interfaces.Attribute{}, 0, false
	}
	j = skipSpaces(line, j+1)
	if j >= len(line) {
		return interfaces.Attribute{}, 0, false
	}
	if line[j] == '"' || line[j] == '\'' {
		quote := line[j]
		end := j + 1
		for end < len(line) && line[end] != quote {
			end++
		}
		if end >= len(line) {
			// Unterminated quote: the attribute is dropped.
			return interfaces.Attribute{}, 0, false
		}
		return interfaces.Attribute{Name: name, Value: line[j+1 : end]}, end + 1, true
	}
	end := j
	for end < len(line) && line[end] != '>' && !isSpace(line[end]) {
		end++
	}
	if end == j {
		return interfaces.Attribute{}, 0, false
	}
	value := line[j:end]
	// A bare value directly against a self-close marker, e.g. `k=v/>`,
	// keeps the `/` out of the value.
	if len(value) > 1 && value[len(value)-1] == '/' && end < len(line) && line[end] == '>' {
		value = value[:len(value)-1]
		end--
	}
	return interfaces.Attribute{Name: name, Value: value}, end, true
}

// setAttribute appends attr, or overwrites the value in place when the name
// was already recorded, keeping insertion order stable.
func setAttribute(attrs []interfaces.Attribute, attr interfaces.Attribute) []interfaces.Attribute {
	for i := range attrs {
		if attrs[i].Name == attr.Name {
			attrs[i].Value = attr.Value
			return attrs
		}
	}
	return append(attrs, attr)
}

// scanName matches a tag or attribute name: a letter or underscore followed
// by letters, digits, underscores, or hyphens.
func scanName(line string, start int) (string, int, bool) {
	if start >= len(line) || !isNameStart(line[start]) {
		return "", 0, false
	}
	i := start + 1
	for i < len(line) && isNameChar(line[i]) {
		i++
	}
	return line[start:i], i, true
}

func skipAttributeJunk(line string, start int) int {
	i := start
	for i < len(line) && line[i] != '>' && line[i] != '/' && !isSpace(line[i]) {
		i++
	}
	if i == start {
		i++
	}
	return i
}

func skipSpaces(line string, start int) int {
	i := start
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c == '-' || (c >= '0' && c <= '9')
}
