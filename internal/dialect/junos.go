package dialect

import (
	"strings"

	"github.com/netform-dev/netform/internal/ir"
)

// junosTopLevelSections are section names whose bare headers get a key
// hint identifying them directly.
var junosTopLevelSections = map[string]bool{
	"interfaces":        true,
	"protocols":         true,
	"routing-instances": true,
	"policy-options":    true,
}

// Junos implements the Junos-style vendor dialect: "#", "/*", and lines
// beginning with "*" or "*/" are comments; "{", "}", ";" are emitted as
// standalone tokens; key hints cover top-level section headers and
// "set <section> <name> ..." lines.
type Junos struct{}

// NewJunos constructs the Junos-style dialect.
func NewJunos() *Junos { return &Junos{} }

func (Junos) Name() string { return "junos" }

func (Junos) DialectHint() ir.DialectHint { return ir.Named("junos") }

func (Junos) ClassifyTrivia(raw string) ir.TriviaKind {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ir.TriviaBlank
	}
	if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "*/") {
		return ir.TriviaComment
	}
	return ir.TriviaContent
}

func (Junos) ParseParts(raw string) (ir.Parts, bool) {
	tokens := tokenizeQuoted(raw, "{};")
	if len(tokens) == 0 {
		return ir.Parts{}, false
	}
	return ir.Parts{Head: tokens[0], Args: tokens[1:]}, true
}

func (Junos) KeyHint(_ string, p ir.Parts, trivia ir.TriviaKind) (string, bool) {
	if trivia != ir.TriviaContent {
		return "", false
	}
	if p.Head == "set" && len(p.Args) >= 2 {
		return "set:" + p.Args[0] + ":" + p.Args[1], true
	}
	if junosTopLevelSections[p.Head] {
		return p.Head, true
	}
	return "", false
}
