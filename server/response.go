package server

import (
	"io"
	"io/fs"
	"strconv"
)

var nlcf = []byte{0x0d, 0x0a}

// Response pairs a status with the name of the file served as its body.
// The file is only read when the response is written.
type Response struct {
	Status StatusCode
	Body   string
}

func NewResponse(status StatusCode, body string) Response {
	return Response{Status: status, Body: body}
}

func OK(body string) Response {
	return NewResponse(StatusOK, body)
}

func NotFound(body string) Response {
	return NewResponse(StatusNotFound, body)
}

func InternalServerError(body string) Response {
	return NewResponse(StatusInternalServerError, body)
}

// WriteResponse resolves resp.Body against fsys and writes the framed
// response to w in one write, flushing w afterwards if it supports it.
// Nothing is written when the body cannot be read.
func WriteResponse(w io.Writer, fsys fs.FS, resp Response) error {
	body, err := fs.ReadFile(fsys, resp.Body)
	if err != nil {
		return &IOError{Op: "read body", Err: err}
	}

	if _, err := w.Write(frame(resp.Status, body)); err != nil {
		return &IOError{Op: "write response", Err: err}
	}
	if flusher, ok := w.(interface{ Flush() error }); ok {
		if err := flusher.Flush(); err != nil {
			return &IOError{Op: "write response", Err: err}
		}
	}
	return nil
}

func frame(status StatusCode, body []byte) []byte {
	buf := make([]byte, 0, 64+len(body))
	buf = append(buf, status.StatusLine()...)
	buf = append(buf, nlcf...)
	buf = append(buf, "Content-Length: "...)
	buf = strconv.AppendInt(buf, int64(len(body)), 10)
	buf = append(buf, nlcf...)
	buf = append(buf, nlcf...)
	return append(buf, body...)
}
