package server

import (
	"bufio"
	"io"
	"strings"
)

// MaxRequestLineBytes bounds how much of the stream ReadRequest consumes
// looking for the end of the request line.
const MaxRequestLineBytes = 8 * 1024

type Request struct {
	Method Method
	Path   string
}

// ParseRequestLine extracts the method and path from "GET /path HTTP/1.1".
// Anything after the path is ignored.
func ParseRequestLine(line string) (Request, error) {
	if strings.TrimSpace(line) == "" {
		return Request{}, ErrInvalidRequestLine
	}

	fields := strings.Fields(line)
	// Unreachable after the blank check; ErrMissingMethod stays part of the error set.
	if len(fields) < 1 {
		return Request{}, ErrMissingMethod
	}
	method, err := ParseMethod(fields[0])
	if err != nil {
		return Request{}, err
	}

	// A path that is not rooted at "/" counts as no path at all.
	if len(fields) < 2 || !strings.HasPrefix(fields[1], "/") {
		return Request{}, ErrMissingPath
	}

	return Request{Method: method, Path: fields[1]}, nil
}

// ReadRequest reads a single LF terminated line from r and parses it. A
// stream that ends before the newline is an *IOError, not a parse error.
func ReadRequest(r io.Reader) (Request, error) {
	reader := bufio.NewReader(io.LimitReader(r, MaxRequestLineBytes))
	line, err := reader.ReadString('\n')
	if err != nil {
		return Request{}, &IOError{Op: "read request line", Err: err}
	}
	return ParseRequestLine(line)
}
