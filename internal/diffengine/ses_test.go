package diffengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyOps(a, b []rune, ops []Op) []rune {
	var out []rune
	for _, op := range ops {
		switch op.Type {
		case OpEqual:
			out = append(out, a[op.AIndex])
		case OpInsert:
			out = append(out, b[op.BIndex])
		case OpDelete:
			// deletion contributes nothing to the reconstructed b
		}
	}
	return out
}

func TestMyers_ReconstructsB(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
	}{
		{"identical", "abcdef", "abcdef"},
		{"empty a", "", "abc"},
		{"empty b", "abc", ""},
		{"both empty", "", ""},
		{"classic", "ABCABBA", "CBABAC"},
		{"prefix insert", "bcdef", "abcdef"},
		{"suffix delete", "abcdefg", "abcdef"},
		{"full replace", "xxxx", "yyyy"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := []rune(tc.a)
			b := []rune(tc.b)
			ops := Myers(len(a), len(b), func(ai, bi int) bool { return a[ai] == b[bi] })
			got := string(applyOps(a, b, ops))
			assert.Equal(t, tc.b, got)
		})
	}
}

func TestMyers_EqualOpsCoverMatchingPositions(t *testing.T) {
	a := []rune("kitten")
	b := []rune("sitting")
	ops := Myers(len(a), len(b), func(ai, bi int) bool { return a[ai] == b[bi] })

	var aIdx, bIdx int
	for _, op := range ops {
		switch op.Type {
		case OpEqual:
			require.Equal(t, aIdx, op.AIndex)
			require.Equal(t, bIdx, op.BIndex)
			require.Equal(t, a[op.AIndex], b[op.BIndex])
			aIdx++
			bIdx++
		case OpDelete:
			require.Equal(t, aIdx, op.AIndex)
			aIdx++
		case OpInsert:
			require.Equal(t, bIdx, op.BIndex)
			bIdx++
		}
	}
	assert.Equal(t, len(a), aIdx)
	assert.Equal(t, len(b), bIdx)
}
