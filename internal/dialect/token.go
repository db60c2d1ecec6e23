package dialect

import "github.com/goliatone/go-tagdown/pkg/interfaces"

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenOpen
	tokenClose
	tokenSelfClosing
)

// token is one element of the typed stream a line scan produces. Tag tokens
// carry the name and ordered attributes; text tokens carry the raw span
// between tags. Offsets index into the scanned (masked) line.
type token struct {
	kind       tokenKind
	name       string
	attributes []interfaces.Attribute
	text       string
	start      int
	end        int
}

func (t token) isTag() bool {
	return t.kind != tokenText
}

func (t token) tagKind() interfaces.TagKind {
	switch t.kind {
	case tokenClose:
		return interfaces.TagClosing
	case tokenSelfClosing:
		return interfaces.TagSelfClosing
	default:
		return interfaces.TagOpening
	}
}
