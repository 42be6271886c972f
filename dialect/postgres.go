package dialect

import (
	"encoding/hex"

	"github.com/lib/pq"
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = PostgreSQL{}

// PostgreSQL is the PostgreSQL dialect.
type PostgreSQL struct {
	dialect.PostgreSQL
}

var postgresEscaper = escaper{
	quoteString: pq.QuoteLiteral,
	quoteBytes: func(b []byte) string {
		return `'\x` + hex.EncodeToString(b) + `'::bytea`
	},
	trueText:   "TRUE",
	falseText:  "FALSE",
	timeLayout: "2006-01-02 15:04:05.999999Z07:00",
}

// QuoteIdent quotes the identifier part with double quotes.
func (PostgreSQL) QuoteIdent(part string) string {
	return pq.QuoteIdentifier(part)
}

// EscapeValue renders v as a PostgreSQL literal.
func (PostgreSQL) EscapeValue(v any) string {
	return postgresEscaper.escape(v)
}
