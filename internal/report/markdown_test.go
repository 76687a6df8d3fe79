package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netform-dev/netform/internal/diffengine"
	"github.com/netform-dev/netform/internal/findings"
)

func TestMarkdown_NoChanges(t *testing.T) {
	out := Markdown("left.cfg", "right.cfg", nil, diffengine.Stats{}, nil)

	assert.True(t, strings.HasPrefix(out, "# Config Diff Report"))
	assert.Contains(t, out, "Left: `left.cfg`")
	assert.Contains(t, out, "Right: `right.cfg`")
	assert.Contains(t, out, "No changes detected.")
	assert.NotContains(t, out, "## Findings")
}

func TestMarkdown_ReplaceEditSummaryLine(t *testing.T) {
	oldAt := uint64(0xff)
	newAt := uint64(0x100)
	edit := diffengine.Edit{
		Kind:     diffengine.EditReplace,
		OldAtKey: &oldAt,
		NewAtKey: &newAt,
		OldLines: []diffengine.DiffLine{{Text: "old"}},
		NewLines: []diffengine.DiffLine{{Text: "new"}},
	}
	stats := diffengine.AggregateStats([]diffengine.Edit{edit})

	out := Markdown("a", "b", []diffengine.Edit{edit}, stats, nil)

	require.Contains(t, out, "Replace 1 line(s) at key 0x00000000000000ff with 1 line(s) at key 0x0000000000000100")
	assert.Contains(t, out, "| Replace | 1     | 1 -> 1 |")
}

func TestMarkdown_MissingAnchorRendersUnknown(t *testing.T) {
	edit := diffengine.Edit{
		Kind:  diffengine.EditInsert,
		Lines: []diffengine.DiffLine{{Text: "new"}},
	}
	out := Markdown("a", "b", []diffengine.Edit{edit}, diffengine.AggregateStats([]diffengine.Edit{edit}), nil)

	assert.Contains(t, out, "Insert 1 line(s) at key <unknown>")
}

func TestMarkdown_FindingsSection(t *testing.T) {
	finds := []findings.Finding{
		{Level: findings.LevelWarning, Code: findings.CodeDiffUnreliableRegion, Message: "unreliable region"},
	}
	out := Markdown("a", "b", nil, diffengine.Stats{}, finds)

	assert.Contains(t, out, "## Findings")
	assert.Contains(t, out, "Warning [diff_unreliable_region]: unreliable region")
}

