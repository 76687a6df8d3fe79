// Package dialect provides the pluggable vendor-syntax capability set the
// parser uses to classify trivia, tokenize content lines, and extract
// stable identity hints, grounded on opnDossier's polymorphism-via-
// capability-set idiom rather than subclassing.
package dialect

import "github.com/netform-dev/netform/internal/ir"

// Dialect is the capability set a vendor syntax supplies. Every dialect
// implements KeyHint; one with no stable identifier scheme (Generic)
// always returns ("", false) from it. ParseParts
// returns ir.Parts directly so that dialect.Dialect implementations satisfy
// ir.DialectFace structurally, without internal/ir importing this package.
type Dialect interface {
	// Name identifies the dialect for DialectHint metadata and for
	// selection via the CLI --dialect flag.
	Name() string
	// DialectHint returns the ir.DialectHint this dialect stamps onto
	// Document metadata.
	DialectHint() ir.DialectHint
	// ClassifyTrivia classifies a physical line (without its terminator).
	ClassifyTrivia(raw string) ir.TriviaKind
	// ParseParts tokenizes a Content line into a head token and ordered
	// arguments. ok is false when the line has no tokens (e.g. empty
	// after a dialect-specific prefix strip).
	ParseParts(raw string) (parts ir.Parts, ok bool)
	// KeyHint returns a stable, dialect-specific identifier for a Content
	// line — e.g. "interface:Ethernet1" — used to stabilize identity
	// keys across cosmetic header differences. ok is false when this
	// dialect has no hint for the given line.
	KeyHint(raw string, parts ir.Parts, trivia ir.TriviaKind) (hint string, ok bool)
}

// ByName resolves a dialect by its CLI/fixture name. Unknown names resolve
// to Generic; callers that must reject unknown names should validate
// against Names() first (see validateFlags in cmd/config-diff).
func ByName(name string) Dialect {
	switch name {
	case "eos", "iosxe":
		return NewEOS()
	case "junos":
		return NewJunos()
	default:
		return NewGeneric()
	}
}

// Names lists the dialect names the CLI/fixture format accepts.
func Names() []string {
	return []string{"generic", "eos", "iosxe", "junos"}
}
