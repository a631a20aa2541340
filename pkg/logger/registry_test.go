package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGetReturnsSameInstance(t *testing.T) {
	reg := NewRegistry(&bytes.Buffer{})

	first := reg.Get("engine")
	second := reg.Get("engine")

	require.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestRegistryGetPrefixesByName(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(&buf)

	reg.Get("dispatcher").Log("ready on port %d", 8081)

	assert.True(t, strings.Contains(buf.String(), "[dispatcher] ready on port 8081"))
}

func TestRegistrySetOverrides(t *testing.T) {
	var defaultBuf, fileBuf bytes.Buffer
	reg := NewRegistry(&defaultBuf)

	reg.Set("orders", NewLogger(&fileBuf, "[orders]"))
	reg.Get("orders").Log("order %d paid", 7)

	assert.Empty(t, defaultBuf.String())
	assert.True(t, strings.Contains(fileBuf.String(), "order 7 paid"))
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry(&bytes.Buffer{})
	reg.Get("a")
	reg.Get("b")

	assert.ElementsMatch(t, []string{"a", "b"}, reg.Names())
}
