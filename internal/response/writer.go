package response

import (
	"errors"
	"io"
)

var ErrAlreadyWritten = errors.New("response already written")

type writerState int

const (
	StateWritingResponse writerState = iota
	StateDone
)

// Writer sends a single Response to the underlying connection.
type Writer struct {
	writer io.Writer
	state  writerState
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  StateWritingResponse,
	}
}

func (w *Writer) WriteResponse(r *Response) (int, error) {
	if w.state != StateWritingResponse {
		return 0, ErrAlreadyWritten
	}

	w.state = StateDone
	return w.writer.Write(r.Bytes())
}

func (w *Writer) Done() bool {
	return w.state == StateDone
}
