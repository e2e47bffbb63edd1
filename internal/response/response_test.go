package response

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhdewitt/http-router/internal/headers"
)

func TestStatusText(t *testing.T) {
	cases := map[string]string{
		"200": "OK",
		"404": "Not Found",
		"500": "Internal Server Error",
		"400": "Bad Request",
		"201": "Bad Request",
		"505": "Bad Request",
		"":    "Bad Request",
	}
	for code, want := range cases {
		assert.Equal(t, want, StatusText(code), code)
	}
}

func TestNewDefaults(t *testing.T) {
	r := New("404", nil, "Not Found")
	assert.Equal(t, "HTTP/1.1", r.Version)
	assert.Equal(t, "404", r.StatusCode)
	assert.Equal(t, "Not Found", r.StatusText)
	assert.Equal(t, headers.Headers{"Content-Type": "text/html"}, r.Headers)

	h := headers.NewHeaders()
	h.Set("Content-Type", "application/json")
	r = New("200", h, "{}")
	assert.Equal(t, "OK", r.StatusText)
	assert.Equal(t, "application/json", r.Headers.Get("Content-Type"))
}

func TestBytesNotFound(t *testing.T) {
	got := string(New("404", nil, "Not Found").Bytes())
	assert.Equal(t, "HTTP/1.1 404 Not Found\r\nContent-Type:text/html\r\nContent-Length: 9\r\n\r\nNot Found", got)
}

func TestBytesEmptyBody(t *testing.T) {
	got := string(New("200", nil, "").Bytes())
	assert.Equal(t, "HTTP/1.1 200 OK\r\nContent-Type:text/html\r\nContent-Length: 0\r\n\r\n", got)
}

func TestBytesComputesContentLength(t *testing.T) {
	h := headers.NewHeaders()
	h.Set("Content-Type", "text/plain")
	h.Set("content-length", "999")
	body := "héllo"
	got := string(New("200", h, body).Bytes())

	assert.NotContains(t, got, "999")
	assert.Contains(t, got, "Content-Length: 6\r\n")
}

func TestBytesRoundTrip(t *testing.T) {
	h := headers.NewHeaders()
	h.Set("Content-Type", "text/css")
	h.Set("X-Trace", "abc")
	want := New("500", h, "body\r\nwith lines")

	head, body, ok := strings.Cut(string(want.Bytes()), "\r\n\r\n")
	require.True(t, ok)
	lines := strings.Split(head, "\r\n")

	status := strings.SplitN(lines[0], " ", 3)
	require.Len(t, status, 3)
	assert.Equal(t, want.Version, status[0])
	assert.Equal(t, want.StatusCode, status[1])
	assert.Equal(t, want.StatusText, status[2])

	got := headers.NewHeaders()
	for _, line := range lines[1:] {
		name, value, err := headers.ParseLine(line)
		require.NoError(t, err)
		got.Set(name, value)
	}
	assert.Equal(t, " 16", got.Get("Content-Length"))
	assert.Equal(t, "text/css", got.Get("Content-Type"))
	assert.Equal(t, "abc", got.Get("X-Trace"))
	assert.Equal(t, want.Body, body)
}

func TestWriterWritesOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	r := New("200", nil, "ok")

	n, err := w.WriteResponse(r)
	require.NoError(t, err)
	assert.Equal(t, len(r.Bytes()), n)
	assert.True(t, w.Done())

	_, err = w.WriteResponse(r)
	require.ErrorIs(t, err, ErrAlreadyWritten)
	assert.Equal(t, string(r.Bytes()), buf.String())
}
