package server

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"runtime/debug"
)

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	log := s.logger().With("remote", conn.RemoteAddr().String())
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic serving connection", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	resp, err := s.respond(conn, log)
	if err != nil {
		log.Error("http error", "err", err)
		return
	}

	if err := WriteResponse(conn, s.files(), resp); err != nil {
		log.Error("write response error", "status", int(resp.Status), "body", resp.Body, "err", err)
		return
	}
	log.Debug("response sent", "status", int(resp.Status), "body", resp.Body)
}

// respond reads the request line from r and works out what to send back.
// An error means no response should be written at all.
func (s *Server) respond(r io.Reader, log *slog.Logger) (Response, error) {
	req, err := ReadRequest(r)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) || s.OnParseError == nil {
			return Response{}, err
		}
		log.Warn("malformed request line", "err", err)
		return s.OnParseError(err)
	}

	log = log.With("method", string(req.Method), "path", req.Path)
	return s.serveRequest(req, log), nil
}

// serveRequest runs the handler, answering with the internal error response
// when it fails or panics.
func (s *Server) serveRequest(req Request, log *slog.Logger) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("handler panic", "panic", r, "stack", string(debug.Stack()))
			resp = s.internalError()
		}
	}()

	resp, err := s.Handler.ServeRequest(req)
	if err != nil {
		log.Warn("handler error", "err", err)
		return s.internalError()
	}
	return resp
}
