package interfaces

// TagKind identifies how a tag occurrence participates in document structure.
type TagKind int

const (
	// TagOpening marks a `<name ...>` occurrence that opens a section.
	TagOpening TagKind = iota
	// TagClosing marks a `</name>` occurrence that ends a section.
	TagClosing
	// TagSelfClosing marks a `<name ... />` occurrence with no body.
	TagSelfClosing
)

// String renders the kind label used in structural dumps and logs.
func (k TagKind) String() string {
	switch k {
	case TagOpening:
		return "opening"
	case TagClosing:
		return "closing"
	case TagSelfClosing:
		return "self-closing"
	default:
		return "unknown"
	}
}

// Attribute is a single `name="value"` pair carried by a tag. Attribute order
// follows insertion order in the source; a duplicate name overwrites the
// earlier value in place without changing its position.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Tag records one tag occurrence found during structure extraction. Identity
// is positional (line plus byte offsets); occurrences are never mutated after
// extraction and are discarded when the text is re-parsed.
type Tag struct {
	Name        string      `json:"name"`
	Line        int         `json:"line"`
	Indent      int         `json:"indent"`
	Kind        TagKind     `json:"kind"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	StartOffset int         `json:"start_offset"`
	EndOffset   int         `json:"end_offset"`
}

// Attribute returns the value recorded for name and whether it was present.
func (t Tag) Attribute(name string) (string, bool) {
	for _, attr := range t.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Header records one Markdown ATX header found outside code blocks.
type Header struct {
	Level int    `json:"level"`
	Line  int    `json:"line"`
	Text  string `json:"text"`
}

// Fence records a fence line (3+ backticks or tildes) so fold derivation can
// pair blocks using the strict same-character, at-least-same-length rule.
type Fence struct {
	Line   int  `json:"line"`
	Char   byte `json:"char"`
	Length int  `json:"length"`
}

// Structure is the aggregate a single extraction pass produces. It is owned
// by the caller of the parse, immutable once returned, and safe to share
// between the transformer and folding derivations.
type Structure struct {
	Tags            []Tag    `json:"tags"`
	Headers         []Header `json:"headers"`
	HorizontalRules []int    `json:"horizontal_rules"`
	Fences          []Fence  `json:"fences"`
	// LineCount is the number of physical lines in the parsed text; header
	// outline ranges close against the final line.
	LineCount int `json:"line_count"`
}

// FoldKind labels the origin of a folding range.
type FoldKind int

const (
	// FoldTag spans a matched opening/closing tag pair.
	FoldTag FoldKind = iota
	// FoldHeader spans a header outline section.
	FoldHeader
	// FoldCodeBlock spans a fenced code block.
	FoldCodeBlock
)

// String renders the fold kind label.
func (k FoldKind) String() string {
	switch k {
	case FoldTag:
		return "tag"
	case FoldHeader:
		return "header"
	case FoldCodeBlock:
		return "code"
	default:
		return "unknown"
	}
}

// FoldRange is an inclusive (start, end) line pair an editor can collapse.
// End is always strictly greater than Start; zero-span ranges are not
// emitted.
type FoldRange struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Kind  FoldKind `json:"kind"`
}

// TOCEntry is one outline entry derived from the converted document: native
// Markdown headers plus headers synthesised from opening and self-closing
// tags.
type TOCEntry struct {
	Level  int    `json:"level"`
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// DialectService exposes the structural operations editor integrations
// consume. Every method is a pure function over the supplied text; calls do
// not share state and are safe to interleave.
type DialectService interface {
	// Structure runs the single-pass extractor over the full document text.
	Structure(text string) *Structure
	// ToMarkdown converts the dialect text into standard Markdown.
	ToMarkdown(text string) string
	// FoldingRanges returns the union of tag, header outline, and fenced
	// code block ranges.
	FoldingRanges(text string) []FoldRange
	// Beautify re-indents the document by tag nesting depth. Running the
	// result through Beautify again yields the same text.
	Beautify(text string) string
}
