// Package statement loads SQL segments from YAML statement files.
//
// A statement file names a dialect and lists the parts of the statement:
//
//	dialect: sqlite
//	statement:
//	  - SELECT * FROM
//	  - ident: [my_db, employees]
//	  - WHERE id =
//	  - value: 1
//	  - AND name IN (
//	  - values: [a, b]
//	  - )
//
// A plain string is raw SQL text, quote it if it starts with a YAML
// indicator like "*". The other parts are single-key maps:
// ident (string or list of strings), value (scalar), values (list of
// scalars), list (list of parts) and sql (list of parts, nested).
package statement

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/qjebbs/go-sqlseg"
	"github.com/qjebbs/go-sqlseg/internal/util"
)

// ErrInvalidPart is returned for statement parts that cannot be converted.
var ErrInvalidPart = errors.New("invalid statement part")

// File is a decoded statement file.
type File struct {
	// Dialect is the dialect name declared by the file, may be empty.
	Dialect string `yaml:"dialect"`
	// Statement holds the undecoded parts.
	Statement []any `yaml:"statement"`
}

// Load reads and decodes the statement file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return f, nil
}

// Decode decodes a statement file from YAML.
func Decode(data []byte) (*File, error) {
	f := new(File)
	if err := yaml.UnmarshalWithOptions(data, f, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("decode statement: %w", err)
	}
	return f, nil
}

// Segment composes the statement. Identifiers are quoted with quote, or
// with backticks if quote is nil.
func (f *File) Segment(quote func(part string) string) (sqlseg.Segment, error) {
	c := converter{quote: quote}
	parts, err := c.parts(f.Statement, "statement")
	if err != nil {
		return sqlseg.Segment{}, err
	}
	return sqlseg.SQL(parts...), nil
}

type converter struct {
	quote func(part string) string
}

func (c converter) parts(raw []any, path string) ([]any, error) {
	parts := make([]any, 0, len(raw))
	for i, r := range raw {
		p, err := c.part(r, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}

func (c converter) part(raw any, path string) (any, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case map[string]any:
		if len(v) != 1 {
			return nil, fmt.Errorf("%w: %s: want exactly one key, got %d", ErrInvalidPart, path, len(v))
		}
		for key, arg := range v {
			return c.keyed(key, arg, path+"."+key)
		}
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s: key %v is not a string", ErrInvalidPart, path, k)
			}
			m[key] = e
		}
		return c.part(m, path)
	}
	return nil, fmt.Errorf("%w: %s: unexpected %T, quote raw SQL text or use a value part", ErrInvalidPart, path, raw)
}

func (c converter) keyed(key string, arg any, path string) (any, error) {
	switch key {
	case "ident":
		names, err := identParts(arg, path)
		if err != nil {
			return nil, err
		}
		if c.quote == nil {
			return sqlseg.Ident(names...).Literal(), nil
		}
		return sqlseg.Ident(names...).Quote(c.quote), nil
	case "value":
		switch arg.(type) {
		case []any, map[string]any, map[any]any:
			return nil, fmt.Errorf("%w: %s: want a scalar, use values for lists", ErrInvalidPart, path)
		}
		return sqlseg.V(util.Normalize(arg)), nil
	case "values":
		list, ok := arg.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s: want a list, got %T", ErrInvalidPart, path, arg)
		}
		return sqlseg.V(util.Map(list, util.Normalize)), nil
	case "list", "sql":
		list, ok := arg.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s: want a list, got %T", ErrInvalidPart, path, arg)
		}
		parts, err := c.parts(list, path)
		if err != nil {
			return nil, err
		}
		if key == "list" {
			return sqlseg.List(parts), nil
		}
		return sqlseg.SQL(parts...), nil
	}
	return nil, fmt.Errorf("%w: %s: unknown part %q", ErrInvalidPart, path, key)
}

func identParts(arg any, path string) ([]string, error) {
	switch v := arg.(type) {
	case string:
		return []string{v}, nil
	case []any:
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: %s: empty identifier", ErrInvalidPart, path)
		}
		names := make([]string, len(v))
		for i, e := range v {
			name, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d]: want a string, got %T", ErrInvalidPart, path, i, e)
			}
			names[i] = name
		}
		return names, nil
	}
	return nil, fmt.Errorf("%w: %s: want a string or a list of strings, got %T", ErrInvalidPart, path, arg)
}
