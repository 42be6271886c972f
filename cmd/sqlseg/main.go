// Command sqlseg renders SQL statements composed in YAML statement files.
//
//	sqlseg render --dialect postgres select.yaml
//	sqlseg render --inline --format yaml select.yaml
package main

import (
	"log/slog"
	"os"
)

func main() {
	err := run(os.Stdout, os.Stderr, os.Exit, os.Args[1:]...)
	if err != nil {
		slog.Error("sqlseg failed", slog.Any("error", err))
		os.Exit(1)
	}
}
