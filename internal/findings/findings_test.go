package findings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netform-dev/netform/internal/compare"
	"github.com/netform-dev/netform/internal/ir"
)

func cmpLine(contentKey uint64, path compare.Path) compare.ComparisonLine {
	return compare.ComparisonLine{ContentKey: contentKey, Path: path}
}

func TestAmbiguousContentKeyFindings_RequiresBothSides(t *testing.T) {
	left := &compare.ComparisonView{Lines: []compare.ComparisonLine{
		cmpLine(1, compare.Path{0}),
		cmpLine(1, compare.Path{1}),
		cmpLine(1, compare.Path{2}),
	}}
	right := &compare.ComparisonView{Lines: []compare.ComparisonLine{
		cmpLine(1, compare.Path{0}),
		cmpLine(1, compare.Path{1}),
	}}

	out := ambiguousContentKeyFindings(left, right)
	require.Len(t, out, 1)
	assert.Equal(t, CodeAmbiguousKeyMatch, out[0].Code)
	assert.Equal(t, compare.Path{0}, out[0].Path)
}

func TestAmbiguousContentKeyFindings_OneSideOnlyProducesNothing(t *testing.T) {
	left := &compare.ComparisonView{Lines: []compare.ComparisonLine{
		cmpLine(1, compare.Path{0}),
		cmpLine(1, compare.Path{1}),
	}}
	right := &compare.ComparisonView{Lines: []compare.ComparisonLine{
		cmpLine(1, compare.Path{0}),
	}}

	out := ambiguousContentKeyFindings(left, right)
	assert.Empty(t, out)
}

func TestFallbackFindings_OnePerFlush(t *testing.T) {
	contexts := []compare.Path{{0}, {2}}
	out := fallbackFindings(contexts)
	require.Len(t, out, 2)
	for _, f := range out {
		assert.Equal(t, CodeDiffUnreliableRegion, f.Code)
	}
}

func TestDerive_SortsByMessageThenPath(t *testing.T) {
	leftDoc := ir.NewDocument()
	rightDoc := ir.NewDocument()
	left := &compare.ComparisonView{}
	right := &compare.ComparisonView{}

	out := Derive(leftDoc, rightDoc, left, right, []compare.Path{{1}, {0}})
	require.Len(t, out, 2)
	assert.True(t, out[0].Path.Less(out[1].Path))
}
