// Package compare projects an ir.Document into a flat ComparisonView:
// normalized, identity-keyed lines suitable for the two-tier diff engine.
package compare

import (
	"strings"

	"github.com/netform-dev/netform/internal/ir"
)

// NormalizationStep is one step of a normalization pipeline, applied in
// order to a line's raw text. A step may drop the line entirely.
type NormalizationStep string

const (
	StepIgnoreComments              NormalizationStep = "ignore_comments"
	StepIgnoreBlankLines            NormalizationStep = "ignore_blank_lines"
	StepTrimTrailingWhitespace      NormalizationStep = "trim_trailing_whitespace"
	StepNormalizeLeadingWhitespace  NormalizationStep = "normalize_leading_whitespace"
	StepCollapseInternalWhitespace  NormalizationStep = "collapse_internal_whitespace"
)

// applyStep runs one normalization step against a line's current text and
// trivia classification. ok is false when the step drops the line.
func applyStep(step NormalizationStep, text string, trivia ir.TriviaKind) (result string, ok bool) {
	switch step {
	case StepIgnoreComments:
		if trivia == ir.TriviaComment {
			return "", false
		}
		return text, true
	case StepIgnoreBlankLines:
		if strings.TrimSpace(text) == "" {
			return "", false
		}
		return text, true
	case StepTrimTrailingWhitespace:
		return strings.TrimRight(text, " \t\r\n\f\v"), true
	case StepNormalizeLeadingWhitespace:
		return normalizeLeadingWhitespace(text), true
	case StepCollapseInternalWhitespace:
		fields := strings.Fields(text)
		return strings.Join(fields, " "), true
	default:
		return text, true
	}
}

// normalizeLeadingWhitespace replaces a leading mix of spaces/tabs with an
// equivalent number of plain spaces, using the indent rule (space=1,
// tab=4) shared with the parser.
func normalizeLeadingWhitespace(s string) string {
	width := 0
	i := 0
loop:
	for i < len(s) {
		switch s[i] {
		case ' ':
			width++
			i++
		case '\t':
			width += 4
			i++
		default:
			break loop
		}
	}
	return strings.Repeat(" ", width) + s[i:]
}

// Normalize applies a normalization pipeline in order to raw text. ok is
// false if any step drops the line.
func Normalize(steps []NormalizationStep, raw string, trivia ir.TriviaKind) (result string, ok bool) {
	text := raw
	for _, step := range steps {
		var stepOK bool
		text, stepOK = applyStep(step, text, trivia)
		if !stepOK {
			return "", false
		}
	}
	return text, true
}
