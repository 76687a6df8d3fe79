package report

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/netform-dev/netform/internal/diffengine"
)

// TestRenderStatsTable_Golden pins the exact pipe-table byte layout the
// Stats section emits, so a future change to the padding math shows up as
// a diff against testdata/stats_table.golden instead of a silent drift in
// the Markdown contract.
func TestRenderStatsTable_Golden(t *testing.T) {
	stats := diffengine.Stats{
		InsertCount: 3, InsertedLines: 7,
		DeleteCount: 1, DeletedLines: 2,
		ReplaceCount: 2, ReplacedOldLines: 4, ReplacedNewLines: 5,
	}

	out := renderStatsTable(statsTableRows(stats))

	g := goldie.New(t, goldie.WithFixtureDir("testdata"))
	g.Assert(t, "stats_table", []byte(out))
}
