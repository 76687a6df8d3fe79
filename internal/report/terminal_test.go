package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netform-dev/netform/internal/diffengine"
)

func TestTerminal_RendersNonEmptyOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	out := Terminal("# Config Diff Report\n", diffengine.Stats{})
	assert.NotEmpty(t, out)
}

func TestSummaryBanner_NoChangesIsEmpty(t *testing.T) {
	assert.Empty(t, summaryBanner(diffengine.Stats{}))
}

func TestSummaryBanner_UnstyledListsEachNonZeroKind(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	banner := summaryBanner(diffengine.Stats{InsertCount: 2, DeleteCount: 1})

	assert.Contains(t, banner, "Config Diff:")
	assert.Contains(t, banner, "+2 insert(s)")
	assert.Contains(t, banner, "-1 delete(s)")
	assert.NotContains(t, banner, "replace(s)")
}

func TestUseStyles_RespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, useStyles())
}

func TestUseStyles_RespectsDumbTerm(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")
	assert.False(t, useStyles())
}
