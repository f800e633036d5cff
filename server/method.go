package server

import (
	"fmt"
	"net/http"
	"strings"
)

type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

// ParseMethod matches tok case-insensitively against the supported methods.
func ParseMethod(tok string) (Method, error) {
	switch m := Method(strings.ToUpper(tok)); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnrecognizedMethod, tok)
}
