package ir

// TriviaKind classifies a line by what it contributes to the comparison.
type TriviaKind string

const (
	TriviaBlank   TriviaKind = "blank"
	TriviaComment TriviaKind = "comment"
	TriviaContent TriviaKind = "content"
	TriviaUnknown TriviaKind = "unknown"
)

// LineEnding is the literal terminator bytes preserved for a physical line.
type LineEnding string

const (
	EndingNone  LineEnding = ""
	EndingLF    LineEnding = "\n"
	EndingCRLF  LineEnding = "\r\n"
)

// Parts is the tokenization of a Content line's raw text: a head token and
// its ordered arguments, as produced by a dialect's parse_parts.
type Parts struct {
	Head string
	Args []string
}

// NodeID is a stable, monotonically assigned identifier for a node in a
// Document's arena. Identifiers are never reused within a Document.
type NodeID uint64

// NodeKind discriminates the two node variants the IR supports.
type NodeKind string

const (
	KindLine   NodeKind = "line"
	KindBlock  NodeKind = "block"
)

// Line is a single physical line: raw text without its terminator, the
// terminator bytes that followed it in the source, its position, its
// optional tokenization, and its trivia classification.
type Line struct {
	Raw     string
	Ending  LineEnding
	Span    Span
	Parts   *Parts
	Trivia  TriviaKind
}

// Block is a header line, an ordered run of child nodes, and an optional
// footer line. The generic parser never produces footers; dialects that
// recognize closing tokens (Junos' "}") may populate it.
type Block struct {
	Header   Line
	Children []NodeID
	Footer   *Line
	Kind     string // optional kind label, e.g. "unknown" for unrecognized structure
}

// Node is a tagged variant: exactly one of Line or Block is non-nil.
type Node struct {
	ID    NodeID
	Kind  NodeKind
	Line  *Line
	Block *Block
}
