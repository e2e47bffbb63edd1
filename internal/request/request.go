package request

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nhdewitt/http-router/internal/headers"
)

var (
	ErrMalformedEncoding    = errors.New("request is not valid UTF-8")
	ErrMalformedRequestLine = errors.New("malformed request line")
	ErrMalformedHeaderLine  = headers.ErrMalformedLine
)

type Method int

const (
	MethodUnsupported Method = iota
	MethodGet
	MethodPost
)

func ParseMethod(s string) Method {
	switch s {
	case "GET":
		return MethodGet
	case "POST":
		return MethodPost
	default:
		return MethodUnsupported
	}
}

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	default:
		return "UNSUPPORTED"
	}
}

type Version int

const (
	Version11 Version = iota
	VersionUnsupported
)

func ParseVersion(s string) Version {
	if s == "HTTP/1.1" {
		return Version11
	}
	return VersionUnsupported
}

func (v Version) String() string {
	if v == Version11 {
		return "HTTP/1.1"
	}
	return "UNSUPPORTED"
}

// Resource is the request target exactly as transmitted. No decoding or
// query splitting is done.
type Resource struct {
	path string
}

func NewResource(path string) Resource {
	return Resource{path: path}
}

func (r Resource) Path() string {
	return r.path
}

type Request struct {
	Method   Method
	Version  Version
	Resource Resource
	Headers  headers.Headers
	Body     string
}

// Parse turns a fully read message into a Request.
//
// Parsing is lenient: unknown methods and versions normalize to their
// Unsupported values, and a message with no request line yields an
// Unsupported request with an empty path. Only undecodable bytes, a short
// request line, or an invalid header name are errors.
func Parse(raw []byte) (*Request, error) {
	if !utf8.Valid(raw) {
		return nil, ErrMalformedEncoding
	}

	r := &Request{
		Method:   MethodUnsupported,
		Version:  Version11,
		Resource: NewResource(""),
		Headers:  headers.NewHeaders(),
	}

	text := string(raw)
	var bodyParts []string
	first := true
	for text != "" {
		line, rest, _ := strings.Cut(text, "\n")
		line = strings.TrimSuffix(line, "\r")
		text = rest

		if line == "" {
			if first {
				continue
			}
			// End of head: everything left is body.
			if text != "" {
				bodyParts = append(bodyParts, text)
			}
			break
		}

		if first {
			first = false
			if strings.Contains(line, "HTTP") {
				if err := r.parseRequestLine(line); err != nil {
					return nil, err
				}
				continue
			}
		}

		if strings.Contains(line, ":") {
			name, value, err := headers.ParseLine(line)
			if err != nil {
				return nil, fmt.Errorf("error parsing data: %w", err)
			}
			r.Headers.Set(name, value)
			continue
		}

		bodyParts = append(bodyParts, line)
	}

	r.Body = strings.Join(bodyParts, "\n")
	return r, nil
}

func (r *Request) parseRequestLine(line string) error {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedRequestLine, line)
	}

	r.Method = ParseMethod(parts[0])
	r.Resource = NewResource(parts[1])
	r.Version = ParseVersion(parts[2])
	return nil
}
