package server

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		method Method
		path   string
	}{
		{"get root", "GET / HTTP/1.1\r\n", MethodGet, "/"},
		{"post with query", "POST /api/users?action=create HTTP/1.1\r\n", MethodPost, "/api/users?action=create"},
		{"mixed case", "dElEtE /item/99 HTTP/1.1\r\n", MethodDelete, "/item/99"},
		{"lower case put", "put /items HTTP/1.1\n", MethodPut, "/items"},
		{"no version", "GET /\r\n", MethodGet, "/"},
		{"extra tokens", "GET /a HTTP/1.1 trailing junk\r\n", MethodGet, "/a"},
		{"runs of whitespace", "  GET \t /tabbed   HTTP/1.1  \r\n", MethodGet, "/tabbed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequestLine(tt.line)
			if err != nil {
				t.Fatalf("ParseRequestLine(%q) error: %v", tt.line, err)
			}
			if req.Method != tt.method || req.Path != tt.path {
				t.Errorf("Got (%s, %s), want (%s, %s)", req.Method, req.Path, tt.method, tt.path)
			}
		})
	}
}

func TestParseRequestLineErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"empty", "", ErrInvalidRequestLine},
		{"whitespace only", " \t\r\n", ErrInvalidRequestLine},
		{"unrecognized method", "CUSTOM /path HTTP/1.1\r\n", ErrUnrecognizedMethod},
		{"version in method position", "  HTTP/1.1\r\n", ErrUnrecognizedMethod},
		{"path missing", "GET HTTP/1.1\r\n", ErrMissingPath},
		{"method only", "GET\r\n", ErrMissingPath},
		{"path not rooted", "GET index.html HTTP/1.1\r\n", ErrMissingPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequestLine(tt.line)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseRequestLine(%q) = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}

func TestReadRequest(t *testing.T) {
	req, err := ReadRequest(strings.NewReader("GET /test HTTP/1.1\r\nHost: localhost\r\n\r\n"))
	if err != nil {
		t.Fatalf("ReadRequest: %v", err)
	}
	if req != (Request{Method: MethodGet, Path: "/test"}) {
		t.Errorf("Got %+v", req)
	}
}

func TestReadRequestIOErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty stream", ""},
		{"no newline", "GET / HTTP/1.1"},
		{"line too long", "GET /" + strings.Repeat("a", MaxRequestLineBytes) + " HTTP/1.1\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRequest(strings.NewReader(tt.input))
			var ioErr *IOError
			if !errors.As(err, &ioErr) {
				t.Fatalf("Got %v, want *IOError", err)
			}
			if !errors.Is(err, io.EOF) {
				t.Errorf("Got %v, want it to wrap io.EOF", err)
			}
		})
	}
}

func TestReadRequestParseErrorIsNotIOError(t *testing.T) {
	_, err := ReadRequest(strings.NewReader("BREW /pot HTTP/1.1\r\n"))
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		t.Fatalf("Got *IOError %v, want a parse error", err)
	}
	if !errors.Is(err, ErrUnrecognizedMethod) {
		t.Errorf("Got %v, want %v", err, ErrUnrecognizedMethod)
	}
}
