package statement

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/qjebbs/go-sqlseg"
)

func parse(t *testing.T, data string, quote func(string) string) (*File, sqlseg.Segment) {
	t.Helper()
	f, err := Decode([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	s, err := f.Segment(quote)
	if err != nil {
		t.Fatal(err)
	}
	return f, s
}

func TestSegment(t *testing.T) {
	f, s := parse(t, `
dialect: sqlite
statement:
  - SELECT * FROM
  - ident: [my_db, employees]
  - WHERE id =
  - value: 1
  - AND name IN (
  - values: [a, b]
  - )
`, nil)
	if f.Dialect != "sqlite" {
		t.Errorf("got dialect %q, want %q", f.Dialect, "sqlite")
	}
	wantQuery := "SELECT * FROM `my_db`.`employees` WHERE id = ? AND name IN ( ?, ? )"
	if got := s.String(); got != wantQuery {
		t.Errorf("got query %q, want %q", got, wantQuery)
	}
	wantArgs := []any{int64(1), "a", "b"}
	if got := s.Parameters(); !reflect.DeepEqual(got, wantArgs) {
		t.Errorf("got args %#v, want %#v", got, wantArgs)
	}
}

func TestSegmentNested(t *testing.T) {
	f, s := parse(t, `
statement:
  - SELECT
  - list:
      - ident: id
      - sql:
          - LOWER(
          - ident: name
          - )
  - FROM t
  - sql: []
  - WHERE ok =
  - value: true
`, nil)
	if f.Dialect != "" {
		t.Errorf("got dialect %q, want empty", f.Dialect)
	}
	wantQuery := "SELECT `id`, LOWER( `name` ) FROM t WHERE ok = ?"
	if got := s.String(); got != wantQuery {
		t.Errorf("got query %q, want %q", got, wantQuery)
	}
	if got := s.Parameters(); !reflect.DeepEqual(got, []any{true}) {
		t.Errorf("got args %#v, want [true]", got)
	}
}

func TestSegmentQuote(t *testing.T) {
	quote := func(part string) string { return "[" + part + "]" }
	_, s := parse(t, "statement: [SELECT, {ident: [t, id]}, FROM t]", quote)
	if got, want := s.String(), "SELECT [t].[id] FROM t"; got != want {
		t.Errorf("got query %q, want %q", got, want)
	}
}

func TestSegmentErrors(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{"number as text", "statement: [SELECT, 1]"},
		{"unknown part", "statement: [{column: id}]"},
		{"two keys", "statement: [{value: 1, ident: x}]"},
		{"list value", "statement: [{value: [1, 2]}]"},
		{"scalar values", "statement: [{values: 1}]"},
		{"empty ident", "statement: [{ident: []}]"},
		{"non string ident", "statement: [{ident: [1]}]"},
		{"nested", "statement: [{sql: [{list: [{ident: {a: b}}]}]}]"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Decode([]byte(tc.yaml))
			if err != nil {
				t.Fatal(err)
			}
			_, err = f.Segment(nil)
			if !errors.Is(err, ErrInvalidPart) {
				t.Fatalf("got error %v, want %v", err, ErrInvalidPart)
			}
		})
	}
}

func TestDecodeUnknownField(t *testing.T) {
	_, err := Decode([]byte("dialect: mysql\nstatment: [SELECT 1]\n"))
	if err == nil {
		t.Fatal("want error for unknown field")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "select.yaml")
	err := os.WriteFile(path, []byte("dialect: mysql\nstatement: [SELECT 1]\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Dialect != "mysql" {
		t.Errorf("got dialect %q, want %q", f.Dialect, "mysql")
	}
	s, err := f.Segment(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.String(); got != "SELECT 1" {
		t.Errorf("got query %q, want %q", got, "SELECT 1")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("want error for missing file")
	}
}
