package response

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/nhdewitt/http-router/internal/headers"
)

const (
	crlf           = "\r\n"
	defaultVersion = "HTTP/1.1"
)

type Response struct {
	Version    string
	StatusCode string
	StatusText string
	Headers    headers.Headers
	Body       string
}

// New builds a response for statusCode. Nil or empty h is replaced by a
// single Content-Type: text/html header.
func New(statusCode string, h headers.Headers, body string) *Response {
	if len(h) == 0 {
		h = GetDefaultHeaders()
	}
	return &Response{
		Version:    defaultVersion,
		StatusCode: statusCode,
		StatusText: StatusText(statusCode),
		Headers:    h,
		Body:       body,
	}
}

func OK(contentType, body string) *Response {
	h := headers.NewHeaders()
	h.Set("Content-Type", contentType)
	return New(StatusOK, h, body)
}

func GetDefaultHeaders() headers.Headers {
	h := headers.NewHeaders()
	h.Set("Content-Type", "text/html")
	return h
}

// Bytes renders the response in wire form. Content-Length is always taken
// from the body, so any caller-supplied value is dropped.
func (r *Response) Bytes() []byte {
	var b bytes.Buffer
	b.WriteString(r.Version + " " + r.StatusCode + " " + r.StatusText + crlf)

	for _, name := range r.Headers.Names() {
		if isContentLength(name) {
			continue
		}
		b.WriteString(name + ":" + r.Headers.Get(name) + crlf)
	}
	b.WriteString("Content-Length: " + strconv.Itoa(len(r.Body)) + crlf)
	b.WriteString(crlf)
	b.WriteString(r.Body)

	return b.Bytes()
}

func isContentLength(name string) bool {
	return strings.EqualFold(name, "Content-Length")
}
