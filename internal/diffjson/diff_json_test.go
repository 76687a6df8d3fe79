package diffjson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netform-dev/netform/internal/compare"
	"github.com/netform-dev/netform/internal/diffengine"
	"github.com/netform-dev/netform/internal/findings"
)

func TestBuildDiff_HasChangesAndHexKeys(t *testing.T) {
	at := uint64(255)
	edit := diffengine.Edit{
		Kind:  diffengine.EditInsert,
		AtKey: &at,
		Lines: []diffengine.DiffLine{{ContentKey: 1, OccurrenceKey: 1, Text: "x"}},
	}

	doc := BuildDiff(
		[]compare.NormalizationStep{compare.StepIgnoreComments},
		compare.OrderPolicyConfig{Default: compare.PolicyOrdered},
		[]diffengine.Edit{edit},
		diffengine.AggregateStats([]diffengine.Edit{edit}),
		nil,
	)

	assert.True(t, doc.HasChanges)
	require.Len(t, doc.Edits, 1)
	assert.Equal(t, "Insert", doc.Edits[0].Type)
	require.NotNil(t, doc.Edits[0].AtKey)
	assert.Equal(t, "0x00000000000000ff", *doc.Edits[0].AtKey)

	raw, err := Marshal(doc)
	require.NoError(t, err)

	var roundtrip map[string]any
	require.NoError(t, json.Unmarshal(raw, &roundtrip))
	assert.Contains(t, roundtrip, "normalization_steps")
	assert.Contains(t, roundtrip, "order_policy")
	assert.Contains(t, roundtrip, "has_changes")
}

func TestBuildDiff_NoEdits_HasChangesFalse(t *testing.T) {
	doc := BuildDiff(nil, compare.OrderPolicyConfig{Default: compare.PolicyOrdered}, nil, diffengine.Stats{}, []findings.Finding{})
	assert.False(t, doc.HasChanges)
}
