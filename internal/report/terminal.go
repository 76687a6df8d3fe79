package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/netform-dev/netform/internal/diffengine"
)

// terminalStyles groups the lipgloss styles the summary banner applies to
// each edit kind's count, one named style per kind so a reader's eye goes
// straight to deletes.
type terminalStyles struct {
	insert  lipgloss.Style
	delete  lipgloss.Style
	replace lipgloss.Style
	label   lipgloss.Style
}

func newTerminalStyles() terminalStyles {
	return terminalStyles{
		insert:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		delete:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		replace: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		label:   lipgloss.NewStyle().Bold(true),
	}
}

// useStyles reports whether the current terminal should receive ANSI
// styling, honoring NO_COLOR and refusing to style a dumb terminal.
func useStyles() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// Terminal renders a Markdown report for an interactive terminal: a
// lipgloss-styled one-line change-count banner ahead of the
// glamour-rendered Markdown body. It falls back to the raw Markdown
// unchanged when glamour fails, since the Markdown contract itself must
// never be altered by a rendering error.
func Terminal(rawMarkdown string, stats diffengine.Stats) string {
	banner := summaryBanner(stats)

	rendered, err := glamour.Render(rawMarkdown, terminalTheme())
	if err != nil {
		return banner + rawMarkdown
	}
	return banner + rendered
}

func summaryBanner(stats diffengine.Stats) string {
	if stats.InsertCount == 0 && stats.DeleteCount == 0 && stats.ReplaceCount == 0 {
		return ""
	}

	styles := newTerminalStyles()
	apply := func(style lipgloss.Style, s string) string {
		if !useStyles() {
			return s
		}
		return style.Render(s)
	}

	var counts []string
	if stats.InsertCount > 0 {
		counts = append(counts, apply(styles.insert, fmt.Sprintf("+%d insert(s)", stats.InsertCount)))
	}
	if stats.DeleteCount > 0 {
		counts = append(counts, apply(styles.delete, fmt.Sprintf("-%d delete(s)", stats.DeleteCount)))
	}
	if stats.ReplaceCount > 0 {
		counts = append(counts, apply(styles.replace, fmt.Sprintf("~%d replace(s)", stats.ReplaceCount)))
	}

	return apply(styles.label, "Config Diff:") + " " + strings.Join(counts, ", ") + "\n\n"
}

// IsInteractive reports whether stdout is attached to a terminal, the
// signal the CLI uses to decide whether to style its Markdown output.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func terminalTheme() string {
	if theme := os.Getenv("NETFORM_THEME"); theme != "" {
		return theme
	}
	if colorTerm := os.Getenv("COLORTERM"); colorTerm == "truecolor" {
		if t := os.Getenv("TERM"); strings.Contains(t, "256") {
			return "dark"
		}
	}
	return "auto"
}
