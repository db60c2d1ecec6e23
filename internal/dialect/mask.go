package dialect

import (
	"regexp"
	"strconv"
	"strings"
)

// placeholderDelim never appears in legal document text, so a placeholder
// token cannot collide with real content.
const placeholderDelim = "\x00"

var (
	// The double-backtick pattern is lazy so a span may carry single
	// backticks in its content.
	doubleBacktickSpan = regexp.MustCompile("``.+?``")
	singleBacktickSpan = regexp.MustCompile("`[^`]*`")
)

func placeholder(index int) string {
	return placeholderDelim + strconv.Itoa(index) + placeholderDelim
}

// MaskInlineCode replaces inline code spans in a single line with opaque
// placeholder tokens so tag scanning cannot match inside code content.
// Double-backtick spans are masked before single-backtick spans so the longer
// delimiter is never mis-split by the shorter pattern. Code spans do not
// cross lines in this dialect, so masking is strictly per line.
func MaskInlineCode(line string) (string, []string) {
	var segments []string
	mask := func(match string) string {
		segments = append(segments, match)
		return placeholder(len(segments) - 1)
	}
	masked := doubleBacktickSpan.ReplaceAllStringFunc(line, mask)
	masked = singleBacktickSpan.ReplaceAllStringFunc(masked, mask)
	return masked, segments
}

// UnmaskInlineCode restores segments masked by MaskInlineCode. For any line
// that does not contain the placeholder control byte,
// UnmaskInlineCode(MaskInlineCode(line)) == line.
func UnmaskInlineCode(line string, segments []string) string {
	for i := len(segments) - 1; i >= 0; i-- {
		line = strings.Replace(line, placeholder(i), segments[i], 1)
	}
	return line
}
