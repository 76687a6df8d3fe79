package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "text", Output: &buf})
	require.NoError(t, err)

	l.Info("hello", "key", "value")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "not-a-level", Output: &bytes.Buffer{}})
	assert.Error(t, err)
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	l.Debug("structured")
	assert.Contains(t, buf.String(), `"msg":"structured"`)
}
