package server

import (
	"net/http"
	"strconv"
	"strings"
)

const proto = "HTTP/1.1"

type StatusCode int

const (
	StatusOK                  StatusCode = http.StatusOK
	StatusBadRequest          StatusCode = http.StatusBadRequest
	StatusNotFound            StatusCode = http.StatusNotFound
	StatusMethodNotAllowed    StatusCode = http.StatusMethodNotAllowed
	StatusInternalServerError StatusCode = http.StatusInternalServerError
)

// Reason returns the upper-cased reason phrase for c, e.g. "NOT FOUND".
// Codes without a registered phrase render as "Undocumented".
func (c StatusCode) Reason() string {
	text := http.StatusText(int(c))
	if text == "" {
		return "Undocumented"
	}
	return strings.ToUpper(text)
}

// StatusLine returns "HTTP/1.1 <code> <reason>" without the line terminator.
func (c StatusCode) StatusLine() string {
	return proto + " " + strconv.Itoa(int(c)) + " " + c.Reason()
}
