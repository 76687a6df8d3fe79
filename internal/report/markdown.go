// Package report renders a Diff into the Markdown report contract (spec
// §6) and, for interactive terminals, an optionally styled rendering of
// the same content.
package report

import (
	"fmt"
	"strings"

	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/netform-dev/netform/internal/diffengine"
	"github.com/netform-dev/netform/internal/findings"
	"github.com/netform-dev/netform/internal/pool"
)

// hexKey renders a 64-bit key as 16 lowercase hex digits, matching the
// Diff JSON key rendering convention so the two output formats agree.
func hexKey(k uint64) string {
	return fmt.Sprintf("0x%016x", k)
}

func keyOrUnknown(k *uint64) string {
	if k == nil {
		return "<unknown>"
	}
	return hexKey(*k)
}

// Markdown renders the `# Config Diff Report` document for one comparison.
func Markdown(leftLabel, rightLabel string, edits []diffengine.Edit, stats diffengine.Stats, finds []findings.Finding) string {
	var out string
	pool.WithStringBuilder(func(sb *strings.Builder) {
		md := markdown.NewMarkdown(sb)

		md.H1("Config Diff Report")
		md.BulletList(
			fmt.Sprintf("Left: `%s`", leftLabel),
			fmt.Sprintf("Right: `%s`", rightLabel),
		)

		md.H2("Stats")
		md.PlainText(strings.TrimRight(renderStatsTable(statsTableRows(stats)), "\n")).LF()

		md.H2("Edits")
		if len(edits) == 0 {
			md.PlainText("No changes detected.").LF()
		} else {
			lines := make([]string, len(edits))
			for i, e := range edits {
				lines[i] = editSummary(e)
			}
			md.OrderedList(lines...)
		}

		if len(finds) > 0 {
			md.H2("Findings")
			lines := make([]string, len(finds))
			for i, f := range finds {
				lines[i] = fmt.Sprintf("%s%s [%s]: %s", findingEmoji(f.Level), capitalize(string(f.Level)), f.Code, f.Message)
			}
			md.BulletList(lines...)
		}

		if err := md.Build(); err != nil {
			out = "# Config Diff Report\n\nError generating report.\n"
			return
		}
		out = sb.String()
	})
	return out
}

func editSummary(e diffengine.Edit) string {
	switch e.Kind {
	case diffengine.EditInsert:
		return fmt.Sprintf("Insert %d line(s) at key %s", len(e.Lines), keyOrUnknown(e.AtKey))
	case diffengine.EditDelete:
		return fmt.Sprintf("Delete %d line(s) at key %s", len(e.Lines), keyOrUnknown(e.AtKey))
	case diffengine.EditReplace:
		return fmt.Sprintf(
			"Replace %d line(s) at key %s with %d line(s) at key %s",
			len(e.OldLines), keyOrUnknown(e.OldAtKey),
			len(e.NewLines), keyOrUnknown(e.NewAtKey),
		)
	default:
		return "Unknown edit"
	}
}

// findingEmoji returns the goldmark-emoji shortcode prefix for a finding's
// level, so a glamour- or GitHub-rendered report marks a Warning visually
// instead of relying on the reader to parse the level word.
func findingEmoji(level findings.Level) string {
	switch level {
	case findings.LevelWarning:
		return ":warning: "
	default:
		return ""
	}
}

var titleCaser = cases.Title(language.Und) //nolint:gochecknoglobals // stateless, safe for concurrent use

// capitalize title-cases a finding level ("warning" -> "Warning") for the
// Findings bullet list.
func capitalize(s string) string {
	return titleCaser.String(s)
}
