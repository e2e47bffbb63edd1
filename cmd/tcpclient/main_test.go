package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(ch <-chan string) []string {
	var lines []string
	for l := range ch {
		lines = append(lines, l)
	}
	return lines
}

func TestGetLinesChannel(t *testing.T) {
	lines := collect(getLinesChannel(strings.NewReader("GET / HTTP/1.1\r\nHost: localhost:3000\r\n\r\ntail")))
	assert.Equal(t, []string{"GET / HTTP/1.1", "Host: localhost:3000", "", "tail"}, lines)
}

func TestBuildRequest(t *testing.T) {
	raw := buildRequest(getLinesChannel(strings.NewReader("GET /greeting HTTP/1.1\nHost: x\n")))
	assert.Equal(t, "GET /greeting HTTP/1.1\r\nHost: x\r\n\r\n", raw)

	raw = buildRequest(getLinesChannel(strings.NewReader("POST /echo HTTP/1.1\n\nhi\n")))
	assert.Equal(t, "POST /echo HTTP/1.1\r\n\r\nhi\r\n", raw)
}
