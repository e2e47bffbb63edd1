package headers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	// Test: Valid single header keeps the leading space of the value
	name, value, err := ParseLine("Host: localhost:3000")
	require.NoError(t, err)
	assert.Equal(t, "Host", name)
	assert.Equal(t, " localhost:3000", value)

	// Test: Only the first colon splits
	name, value, err = ParseLine("Referer:http://example.com:8080/x")
	require.NoError(t, err)
	assert.Equal(t, "Referer", name)
	assert.Equal(t, "http://example.com:8080/x", value)

	// Test: No space at all
	name, value, err = ParseLine("Accept:*/*")
	require.NoError(t, err)
	assert.Equal(t, "Accept", name)
	assert.Equal(t, "*/*", value)

	// Test: Empty value
	name, value, err = ParseLine("X-Empty:")
	require.NoError(t, err)
	assert.Equal(t, "X-Empty", name)
	assert.Equal(t, "", value)

	// Invalid no colon
	_, _, err = ParseLine("Host localhost 3000")
	require.ErrorIs(t, err, ErrMalformedLine)

	// Invalid empty name
	_, _, err = ParseLine(": value")
	require.ErrorIs(t, err, ErrMalformedLine)

	// Invalid spacing header
	_, _, err = ParseLine("Host : localhost")
	require.ErrorIs(t, err, ErrMalformedLine)

	// Invalid character in header key
	_, _, err = ParseLine("H©st: localhost:42069")
	require.ErrorIs(t, err, ErrMalformedLine)
}

func TestHeadersCaseSensitiveLastWriteWins(t *testing.T) {
	h := NewHeaders()
	h.Set("Host", "a")
	h.Set("host", "b")
	h.Set("Host", "c")

	assert.Equal(t, "c", h.Get("Host"))
	assert.Equal(t, "b", h.Get("host"))
	assert.Len(t, h, 2)

	h.Del("host")
	assert.False(t, h.Has("host"))
	assert.True(t, h.Has("Host"))
}

func TestHeadersNamesSorted(t *testing.T) {
	h := NewHeaders()
	h.Set("X-B", "2")
	h.Set("Content-Type", "text/html")
	h.Set("X-A", "1")

	assert.Equal(t, []string{"Content-Type", "X-A", "X-B"}, h.Names())
}

func TestHeadersClone(t *testing.T) {
	h := NewHeaders()
	h.Set("A", "1")
	c := h.Clone()
	c.Set("A", "2")

	assert.Equal(t, "1", h.Get("A"))
	assert.Equal(t, "2", c.Get("A"))
}
