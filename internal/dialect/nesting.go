package dialect

import (
	"sort"

	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

type stackEntry struct {
	name string
	line int
}

// resolveTagDepths walks the tag list in document order with a stack and a
// depth counter. A horizontal rule falling strictly between the top-of-stack
// line (or 0 when the stack is empty) and the current tag's line ends every
// open section: the stack clears and depth resets to 0.
//
// A closing tag pops the nearest entry with a matching name, which is not
// necessarily the top when names interleave, and decrements depth by exactly
// one clamped at zero. That keeps depth an approximation for pathologically
// interleaved tag soup rather than a true structural recomputation. A close
// with no matching open leaves both the stack and the counter untouched.
//
// The result maps each line to the depth recorded at its first opening or
// self-closing tag.
func resolveTagDepths(structure *interfaces.Structure) map[int]int {
	depths := make(map[int]int)
	var stack []stackEntry
	depth := 0

	for _, tag := range structure.Tags {
		top := 0
		if len(stack) > 0 {
			top = stack[len(stack)-1].line
		}
		if ruleBetween(structure.HorizontalRules, top, tag.Line) {
			stack = stack[:0]
			depth = 0
		}
		switch tag.Kind {
		case interfaces.TagOpening:
			if _, seen := depths[tag.Line]; !seen {
				depths[tag.Line] = depth
			}
			stack = append(stack, stackEntry{name: tag.Name, line: tag.Line})
			depth++
		case interfaces.TagClosing:
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name != tag.Name {
					continue
				}
				stack = append(stack[:i], stack[i+1:]...)
				if depth > 0 {
					depth--
				}
				break
			}
		case interfaces.TagSelfClosing:
			if _, seen := depths[tag.Line]; !seen {
				depths[tag.Line] = depth
			}
		}
	}
	return depths
}

func ruleBetween(rules []int, after, before int) bool {
	for _, rule := range rules {
		if rule > after && rule < before {
			return true
		}
	}
	return false
}

// tagFoldRanges pairs opening and closing tags by nearest-name matching,
// ignoring horizontal rule resets. Only pairs spanning more than one line
// fold.
func tagFoldRanges(structure *interfaces.Structure) []interfaces.FoldRange {
	var ranges []interfaces.FoldRange
	var stack []stackEntry

	for _, tag := range structure.Tags {
		switch tag.Kind {
		case interfaces.TagOpening:
			stack = append(stack, stackEntry{name: tag.Name, line: tag.Line})
		case interfaces.TagClosing:
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name != tag.Name {
					continue
				}
				if tag.Line > stack[i].line {
					ranges = append(ranges, interfaces.FoldRange{
						Start: stack[i].line,
						End:   tag.Line,
						Kind:  interfaces.FoldTag,
					})
				}
				stack = append(stack[:i], stack[i+1:]...)
				break
			}
		}
	}
	return ranges
}

// headerFoldRanges resolves headers into contiguous outline sections. A
// header closes every stacked section of equal or deeper level; sections
// still open after the last header close against the document's final line.
func headerFoldRanges(structure *interfaces.Structure) []interfaces.FoldRange {
	type headerEntry struct {
		level int
		line  int
	}
	var ranges []interfaces.FoldRange
	var stack []headerEntry

	for _, header := range structure.Headers {
		for len(stack) > 0 && stack[len(stack)-1].level >= header.Level {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if header.Line-1 > top.line {
				ranges = append(ranges, interfaces.FoldRange{
					Start: top.line,
					End:   header.Line - 1,
					Kind:  interfaces.FoldHeader,
				})
			}
		}
		stack = append(stack, headerEntry{level: header.Level, line: header.Line})
	}
	last := structure.LineCount - 1
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if last > top.line {
			ranges = append(ranges, interfaces.FoldRange{
				Start: top.line,
				End:   last,
				Kind:  interfaces.FoldHeader,
			})
		}
	}
	return ranges
}

// codeFoldRanges pairs consecutive recorded fences. Extract only records a
// fence that actually toggles block state under the strict matching rule,
// so consecutive entries are an open/close pair; a trailing unpaired fence
// is an unterminated block and folds nothing.
func codeFoldRanges(structure *interfaces.Structure) []interfaces.FoldRange {
	var ranges []interfaces.FoldRange
	openLine := -1
	for _, fence := range structure.Fences {
		if openLine < 0 {
			openLine = fence.Line
			continue
		}
		if fence.Line > openLine {
			ranges = append(ranges, interfaces.FoldRange{
				Start: openLine,
				End:   fence.Line,
				Kind:  interfaces.FoldCodeBlock,
			})
		}
		openLine = -1
	}
	return ranges
}

// FoldRanges unions tag, header outline, and fenced code block ranges,
// ordered by start line.
func FoldRanges(structure *interfaces.Structure) []interfaces.FoldRange {
	ranges := tagFoldRanges(structure)
	ranges = append(ranges, headerFoldRanges(structure)...)
	ranges = append(ranges, codeFoldRanges(structure)...)
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Start != ranges[j].Start {
			return ranges[i].Start < ranges[j].Start
		}
		return ranges[i].End < ranges[j].End
	})
	return ranges
}
