package dialect

import (
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = SQLite{}

// SQLite is the SQLite dialect.
type SQLite struct {
	dialect.SQLite
}

var sqliteEscaper = escaper{
	quoteString: quoteSingle,
	quoteBytes:  quoteHexBlob,
	trueText:    "1",
	falseText:   "0",
	timeLayout:  "2006-01-02 15:04:05.999999999-07:00",
}

// QuoteIdent quotes the identifier part with double quotes.
func (SQLite) QuoteIdent(part string) string {
	return quoteDouble(part)
}

// EscapeValue renders v as a SQLite literal.
func (SQLite) EscapeValue(v any) string {
	return sqliteEscaper.escape(v)
}
