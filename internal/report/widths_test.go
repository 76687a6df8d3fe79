package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth_WideRunesCountDouble(t *testing.T) {
	assert.Equal(t, 6, DisplayWidth("ab"+"ＡＢ"))
}

func TestDisplayWidth_NarrowASCIIOneColumnPerRune(t *testing.T) {
	assert.Equal(t, 5, DisplayWidth("hello"))
}

func TestTruncate_ShortensWithEllipsis(t *testing.T) {
	out := Truncate("hello world", 8)
	assert.LessOrEqual(t, DisplayWidth(out), 8)
	assert.True(t, strings.HasSuffix(out, "..."))
}

func TestTruncate_LeavesShortStringUnchanged(t *testing.T) {
	assert.Equal(t, "hi", Truncate("hi", 8))
}

func TestTruncate_WideRunesCountedWhenCutting(t *testing.T) {
	out := Truncate("ＡＢＣＤＥ", 4)
	assert.LessOrEqual(t, DisplayWidth(out), 4)
	assert.True(t, strings.HasSuffix(out, "..."))
}
