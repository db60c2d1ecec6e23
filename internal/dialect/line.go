package dialect

import (
	"regexp"
	"strings"
)

var (
	fenceLine  = regexp.MustCompile("^\\s*(`{3,}|~{3,})")
	rulerLine  = regexp.MustCompile(`^\s*(?:-(?:\s*-){2,}|\*(?:\s*\*){2,}|_(?:\s*_){2,})\s*$`)
	headerLine = regexp.MustCompile(`^\s*(#{1,6})\s+(.*)$`)
)

// fenceState tracks the currently open fenced code block. A fence only
// closes the block when it repeats the opening character with at least the
// opening run length; a mismatched fence leaves the block open.
type fenceState struct {
	char   byte
	length int
}

func (f fenceState) closedBy(char byte, length int) bool {
	return char == f.char && length >= f.length
}

// fenceMarker reports whether line is a fence line (optional leading
// whitespace, three or more backticks or tildes, optional info string) and
// returns the fence character and run length.
func fenceMarker(line string) (byte, int, bool) {
	m := fenceLine.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	return m[1][0], len(m[1]), true
}

// isHorizontalRule matches three or more repetitions of one character from
// {-, *, _}, optionally separated by whitespace. Mixed characters never
// match; runs of two never match.
func isHorizontalRule(line string) bool {
	return rulerLine.MatchString(line)
}

// parseHeader matches an ATX header of level 1..6 and returns the level and
// the header text with trailing whitespace trimmed.
func parseHeader(line string) (int, string, bool) {
	m := headerLine.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), strings.TrimRight(m[2], " \t"), true
}

// lineIndent counts leading whitespace bytes.
func lineIndent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// splitLines normalizes line endings by splitting on \n and trimming a
// trailing \r from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
