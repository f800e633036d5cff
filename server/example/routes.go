package main

import (
	"errors"

	"github.com/kianooshaz/static-responder/server"
)

func handleRequest(req server.Request) (server.Response, error) {
	if req.Method == server.MethodGet && req.Path == "/" {
		return server.OK("hello.html"), nil
	}
	return server.NotFound("404.html"), nil
}

// handleParseError answers requests without a usable path with the 404 page
// and anything else malformed with a 400.
func handleParseError(err error) (server.Response, error) {
	if errors.Is(err, server.ErrMissingPath) {
		return server.NotFound("404.html"), nil
	}
	return server.NewResponse(server.StatusBadRequest, "400.html"), nil
}
