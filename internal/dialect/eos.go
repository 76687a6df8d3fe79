package dialect

import (
	"strings"

	"github.com/netform-dev/netform/internal/ir"
)

// EOS implements the EOS/IOS-style vendor dialect: "!"/"#" comments,
// quote-aware whitespace tokenization, and key hints for the common
// stanza headers (interface, vlan, vrf, router, route-map,
// ip access-list, ip prefix-list, line).
type EOS struct{}

// NewEOS constructs the EOS/IOS-style dialect.
func NewEOS() *EOS { return &EOS{} }

func (EOS) Name() string { return "eos" }

func (EOS) DialectHint() ir.DialectHint { return ir.Named("eos") }

func (EOS) ClassifyTrivia(raw string) ir.TriviaKind {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ir.TriviaBlank
	}
	if strings.HasPrefix(trimmed, "!") || strings.HasPrefix(trimmed, "#") {
		return ir.TriviaComment
	}
	return ir.TriviaContent
}

func (EOS) ParseParts(raw string) (ir.Parts, bool) {
	tokens := tokenizeQuoted(raw, "")
	if len(tokens) == 0 {
		return ir.Parts{}, false
	}
	return ir.Parts{Head: tokens[0], Args: tokens[1:]}, true
}

func (EOS) KeyHint(_ string, p ir.Parts, trivia ir.TriviaKind) (string, bool) {
	if trivia != ir.TriviaContent {
		return "", false
	}
	args := p.Args
	switch p.Head {
	case "interface":
		if len(args) >= 1 {
			return "interface:" + args[0], true
		}
	case "vlan":
		if len(args) >= 1 {
			return "vlan:" + args[0], true
		}
	case "vrf":
		if len(args) >= 1 {
			return "vrf:" + args[0], true
		}
	case "router":
		if len(args) >= 1 {
			hint := "router:" + args[0]
			if len(args) >= 2 {
				hint += ":" + args[1]
			}
			return hint, true
		}
	case "route-map":
		if len(args) >= 2 {
			hint := "route-map:" + args[0] + ":" + args[1]
			if len(args) >= 3 {
				hint += ":" + args[2]
			}
			return hint, true
		}
	case "ip":
		return eosIPKeyHint(args)
	case "line":
		if len(args) >= 2 {
			hint := "line:" + args[0] + ":" + args[1]
			if len(args) >= 3 {
				hint += ":" + args[2]
			}
			return hint, true
		}
	}
	return "", false
}

func eosIPKeyHint(args []string) (string, bool) {
	if len(args) < 2 {
		return "", false
	}
	switch args[0] {
	case "access-list":
		// ip access-list <kind> <name>
		if len(args) >= 3 {
			return "ip-access-list:" + args[1] + ":" + args[2], true
		}
	case "prefix-list":
		// ip prefix-list <name>
		return "ip-prefix-list:" + args[1], true
	}
	return "", false
}
