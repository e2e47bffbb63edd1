package request

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
)

const bufferSize = 512

var ErrRequestTooLarge = errors.New("request exceeds size limit")

// ReadRaw reads one whole message from reader. It stops once the head has
// been terminated by a blank line and any body announced by Content-Length
// has arrived, or when the peer closes its side. A limit of zero or less
// means unbounded.
func ReadRaw(reader io.Reader, limit int) ([]byte, error) {
	buf := make([]byte, bufferSize)
	readToIndex := 0

	for {
		if readToIndex == len(buf) {
			if limit > 0 && readToIndex >= limit {
				return nil, ErrRequestTooLarge
			}
			tmpBuf := make([]byte, len(buf)*2)
			copy(tmpBuf, buf[:readToIndex])
			buf = tmpBuf
		}

		n, err := reader.Read(buf[readToIndex:])
		if n > 0 {
			readToIndex += n
			if limit > 0 && readToIndex > limit {
				return nil, ErrRequestTooLarge
			}
			if complete(buf[:readToIndex]) {
				return buf[:readToIndex], nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				if readToIndex == 0 {
					return nil, io.EOF
				}
				return buf[:readToIndex], nil
			}
			return nil, err
		}
	}
}

// complete reports whether data holds a terminated head plus the number of
// body bytes its Content-Length header declares.
func complete(data []byte) bool {
	end, sepLen := headEnd(data)
	if end == -1 {
		return false
	}
	want := contentLength(data[:end])
	return len(data)-(end+sepLen) >= want
}

func headEnd(data []byte) (int, int) {
	crlf := bytes.Index(data, []byte("\r\n\r\n"))
	lf := bytes.Index(data, []byte("\n\n"))
	switch {
	case crlf == -1 && lf == -1:
		return -1, 0
	case lf == -1 || (crlf != -1 && crlf < lf):
		return crlf, 4
	default:
		return lf, 2
	}
}

func contentLength(head []byte) int {
	for _, line := range strings.Split(string(head), "\n") {
		name, value, ok := strings.Cut(strings.TrimSuffix(line, "\r"), ":")
		if !ok || !strings.EqualFold(name, "Content-Length") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return 0
		}
		return n
	}
	return 0
}
