package main

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/qjebbs/go-sqlseg/dialect"
	"github.com/qjebbs/go-sqlseg/internal/statement"
)

type renderCmd struct {
	File    string `arg:"" help:"Statement file." type:"existingfile"`
	Dialect string `help:"Dialect, overrides the one of the file." short:"d"`
	Inline  bool   `help:"Inline escaped values instead of binding them." short:"i"`
	Format  string `help:"Output format (${enum})." default:"text" enum:"text,yaml" short:"f"`
}

type rendered struct {
	Query string `yaml:"query"`
	Args  []any  `yaml:"args,omitempty"`
}

// defaultDialect is used when neither the flag nor the file names one.
const defaultDialect = "mysql"

func (c *renderCmd) Run(logger *slog.Logger, out *output) error {
	f, err := statement.Load(c.File)
	if err != nil {
		return err
	}
	name := c.Dialect
	if name == "" {
		name = f.Dialect
	}
	if name == "" {
		name = defaultDialect
	}
	d, err := dialect.ByName(name)
	if err != nil {
		return err
	}
	s, err := f.Segment(d.QuoteIdent)
	if err != nil {
		return err
	}
	logger.Debug("statement loaded",
		slog.String("file", c.File),
		slog.String("dialect", name),
		slog.Int("fragments", s.Len()),
		slog.Any("segment", s),
	)

	var r rendered
	if c.Inline {
		r.Query = dialect.Render(d, s)
	} else {
		r.Query, r.Args, err = s.Build(d)
		if err != nil {
			return fmt.Errorf("build %s: %w", c.File, err)
		}
	}
	logger.Info("statement rendered", slog.Int("args", len(r.Args)), slog.Bool("inline", c.Inline))
	return c.write(out, r)
}

func (c *renderCmd) write(out *output, r rendered) error {
	if c.Format == "yaml" {
		b, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = out.w.Write(b)
		return err
	}
	if _, err := fmt.Fprintln(out.w, r.Query); err != nil {
		return err
	}
	for _, a := range r.Args {
		if _, err := fmt.Fprintf(out.w, "%v\n", a); err != nil {
			return err
		}
	}
	return nil
}
