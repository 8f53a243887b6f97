package markdown

type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockQuote
	BlockCode
)

type InlineKind int

const (
	InlineText InlineKind = iota
	InlineBold
	InlineItalic
	InlineStrike
	InlineCode
	InlineLink
	InlineBreak
)

// Inline is one span within a paragraph, heading or blockquote. Text holds
// the span content (the label for links); URL is set for links only.
type Inline struct {
	Kind InlineKind
	Text string
	URL  string
}

// Block is one block-level element. Level and ID are set for headings,
// Lang and Code for fenced code blocks, Inlines for everything else.
type Block struct {
	Kind    BlockKind
	Level   int
	ID      string
	Lang    string
	Code    string
	Inlines []Inline
}

// Heading describes one heading in source order, for building a table of
// contents. ID is the anchor the rendered heading carries.
type Heading struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
}

// Document is the result of one Parse call.
type Document struct {
	Blocks   []Block
	Headings []Heading
}
