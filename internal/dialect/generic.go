package dialect

import (
	"strings"

	"github.com/netform-dev/netform/internal/ir"
)

// Generic is the dialect with no vendor knowledge: whitespace-split
// tokenization, "#"/"!"/"//" comment prefixes, and no key hints.
type Generic struct{}

// NewGeneric constructs the Generic dialect.
func NewGeneric() *Generic { return &Generic{} }

func (Generic) Name() string { return "generic" }

func (Generic) DialectHint() ir.DialectHint { return ir.DialectGeneric }

func (Generic) ClassifyTrivia(raw string) ir.TriviaKind {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ir.TriviaBlank
	}
	if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") ||
		strings.HasPrefix(trimmed, "//") {
		return ir.TriviaComment
	}
	return ir.TriviaContent
}

func (Generic) ParseParts(raw string) (ir.Parts, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ir.Parts{}, false
	}
	return ir.Parts{Head: fields[0], Args: fields[1:]}, true
}

func (Generic) KeyHint(string, ir.Parts, ir.TriviaKind) (string, bool) {
	return "", false
}
