package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/kianooshaz/static-responder/server"
)

var (
	addr     = flag.String("addr", "127.0.0.1:7878", "address to listen on")
	root     = flag.String("root", "www", "directory the response bodies are read from")
	logLevel = flag.String("log-level", "info", "debug, info, warn or error")
	noColor  = flag.Bool("no-color", false, "disable colored output")
)

func main() {
	flag.Parse()
	if *noColor {
		color.NoColor = true
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		color.Red("invalid -log-level %q: %s", *logLevel, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.Server{
		Addr:          *addr,
		Handler:       server.HandlerFunc(handleRequest),
		Files:         os.DirFS(*root),
		InternalError: server.InternalServerError("500.html"),
		OnParseError:  handleParseError,
		Logger:        logger,
	}

	color.New(color.FgGreen, color.Bold).Printf("Starting web server: http://%s\n", *addr)
	if err := s.ListenAndServe(ctx); err != nil && !errors.Is(err, server.ErrServerClosed) {
		color.Red("server stopped: %s", err)
		os.Exit(1)
	}
	logger.Info("shut down")
}
