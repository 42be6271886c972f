package main

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
)

type cli struct {
	LogLevel string `help:"Log level (${enum})." default:"warn" enum:"debug,info,warn,error" name:"log-level"`

	Render renderCmd `cmd:"" help:"Render a statement file."`
}

// output is the destination of rendered statements.
type output struct {
	w io.Writer
}

func run(stdout, stderr io.Writer, exit func(code int), args ...string) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("sqlseg"),
		kong.Description("Render composed SQL statements."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, c.LogLevel)
	return ktx.Run(logger, &output{w: stdout})
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
