package server

import (
	"context"
	"io/fs"
	"log/slog"
	"net"
	"os"
)

type Server struct {
	Addr    string
	Handler Handler

	// Files resolves response bodies. Defaults to the working directory.
	Files fs.FS

	// InternalError is sent when Handler fails or panics. The zero value
	// means InternalServerError("500.html").
	InternalError Response

	// OnParseError, if set, turns a malformed request line into a response.
	// Otherwise the connection is logged and closed.
	OnParseError ParseErrorHandler

	Logger *slog.Logger
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l and handles each one in its own goroutine
// until Accept fails or ctx is cancelled. Serve takes ownership of l.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	if s.Handler == nil {
		panic("server started without a handler")
	}
	defer l.Close()

	stop := context.AfterFunc(ctx, func() { l.Close() })
	defer stop()

	s.logger().Info("serving", "addr", l.Addr().String())
	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ErrServerClosed
			}
			return err
		}

		go s.handleConnection(conn)
	}
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *Server) files() fs.FS {
	if s.Files == nil {
		return os.DirFS(".")
	}
	return s.Files
}

func (s *Server) internalError() Response {
	if s.InternalError == (Response{}) {
		return InternalServerError("500.html")
	}
	return s.InternalError
}
