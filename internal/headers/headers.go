package headers

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const validFieldNameChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&'*+-.^_`|~"

var ErrMalformedLine = errors.New("malformed header line")

// Headers maps a header name to its value. Names are case-sensitive and a
// later Set for the same name replaces the earlier value.
type Headers map[string]string

func NewHeaders() Headers {
	return map[string]string{}
}

// ParseLine splits a single header line on its first colon. The value is
// returned exactly as transmitted, including any leading whitespace.
func ParseLine(line string) (name, value string, err error) {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", fmt.Errorf("%w (no colon): %q", ErrMalformedLine, line)
	}
	if len(name) == 0 {
		return "", "", fmt.Errorf("%w (empty field-name): %q", ErrMalformedLine, line)
	}

	for _, r := range name {
		if !strings.ContainsRune(validFieldNameChars, r) {
			return "", "", fmt.Errorf("%w (invalid character in field-name): %q", ErrMalformedLine, line)
		}
	}

	return name, value, nil
}

func (h Headers) Set(key, value string) {
	h[key] = value
}

func (h Headers) Get(key string) (value string) {
	return h[key]
}

func (h Headers) Has(key string) bool {
	_, ok := h[key]
	return ok
}

func (h Headers) Del(key string) {
	delete(h, key)
}

// Names returns the header names in sorted order.
func (h Headers) Names() []string {
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (h Headers) Clone() Headers {
	c := make(Headers, len(h))
	for k, v := range h {
		c[k] = v
	}
	return c
}
