package dialect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qjebbs/go-sqlf/v4/dialect"
	"github.com/qjebbs/go-sqlseg"
)

// ErrUnknownDialect is returned by ByName for unsupported names.
var ErrUnknownDialect = errors.New("unknown dialect")

// Dialect extends dialect.Dialect with quoting and escaping rules.
type Dialect interface {
	dialect.Dialect

	// QuoteIdent quotes a single identifier part, e.g. a table name.
	QuoteIdent(part string) string

	// EscapeValue renders v as an SQL literal, it's a sqlseg.EscapeFunc.
	//
	// For example,
	//   MySQL{}.EscapeValue("O'Brien")       // 'O\'Brien'
	//   PostgreSQL{}.EscapeValue("O'Brien")  // 'O''Brien'
	//
	// It panics if v is a driver.Valuer that fails, or a NaN or infinite
	// float.
	EscapeValue(v any) string
}

// Ident returns the identifier of parts, quoted for the dialect d.
//
//	Ident(PostgreSQL{}, "public", "users")  // "public"."users"
func Ident(d Dialect, parts ...string) sqlseg.Literal {
	return sqlseg.Ident(parts...).Quote(d.QuoteIdent)
}

// Render renders s with values escaped for the dialect d.
func Render(d Dialect, s sqlseg.Segment) string {
	return s.Render(d.EscapeValue)
}

// ByName returns the dialect of name, case-insensitive.
func ByName(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "mysql", "mariadb":
		return MySQL{}, nil
	case "postgres", "postgresql", "pg":
		return PostgreSQL{}, nil
	case "sqlite", "sqlite3":
		return SQLite{}, nil
	case "sqlserver", "mssql":
		return SQLServer{}, nil
	case "oracle":
		return Oracle{}, nil
	case "ansi", "ansisql":
		return AnsiSQL{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
}

// Upgrade attempts to upgrade a sqlf/dialect.Dialect to a sqlseg/dialect.Dialect.
func Upgrade(d dialect.Dialect) (Dialect, bool) {
	if dialect, ok := d.(Dialect); ok {
		return dialect, true
	}
	switch v := d.(type) {
	case dialect.PostgreSQL:
		return PostgreSQL{
			PostgreSQL: v,
		}, true
	case dialect.SQLite:
		return SQLite{
			SQLite: v,
		}, true
	case dialect.Oracle:
		return Oracle{
			Oracle: v,
		}, true
	case dialect.SQLServer:
		return SQLServer{
			SQLServer: v,
		}, true
	case dialect.AnsiSQL:
		return AnsiSQL{
			AnsiSQL: v,
		}, true
	case dialect.MySQL:
		return MySQL{
			MySQL: v,
		}, true
	}
	return nil, false
}
