package markdown

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-tagdown/internal/dialect"
	"github.com/goliatone/go-tagdown/pkg/interfaces"
)

// deriveTOC builds the anchored outline from an extracted structure. Entries
// come from the dialect package in line order; anchors are slugified header
// texts, with duplicates suffixed the way renderers de-duplicate heading ids.
func deriveTOC(structure *interfaces.Structure) []interfaces.TOCEntry {
	entries := dialect.TOC(structure)
	seen := make(map[string]int, len(entries))
	for i := range entries {
		anchor := slugify(entries[i].Text)
		if n, ok := seen[anchor]; ok {
			seen[anchor] = n + 1
			anchor = fmt.Sprintf("%s-%d", anchor, n)
		} else {
			seen[anchor] = 1
		}
		entries[i].Anchor = anchor
	}
	return entries
}

func slugify(text string) string {
	normalized, err := slug.Normalize(text)
	if err != nil || normalized == "" {
		return fallbackSlug(text)
	}
	return normalized
}

func fallbackSlug(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "section"
	}
	return b.String()
}
