package diffjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/netform-dev/netform/internal/compare"
	"github.com/netform-dev/netform/internal/diffengine"
)

func TestMarshalYAML_RoundTripsFieldNames(t *testing.T) {
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

	raw, err := MarshalYAML(doc)
	require.NoError(t, err)

	var roundtrip map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &roundtrip))
	assert.Contains(t, roundtrip, "normalization_steps")
	assert.Contains(t, roundtrip, "order_policy")
	assert.Contains(t, roundtrip, "has_changes")

	edits, ok := roundtrip["edits"].([]any)
	require.True(t, ok)
	require.Len(t, edits, 1)
	first, ok := edits[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Insert", first["type"])
	assert.Equal(t, "0x00000000000000ff", first["at_key"])
}
