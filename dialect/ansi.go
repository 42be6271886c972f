package dialect

import (
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = AnsiSQL{}

// AnsiSQL is the ANSI SQL dialect.
type AnsiSQL struct {
	dialect.AnsiSQL
}

var ansiEscaper = escaper{
	quoteString: quoteSingle,
	quoteBytes:  quoteHexBlob,
	trueText:    "TRUE",
	falseText:   "FALSE",
	timeLayout:  "2006-01-02 15:04:05.999999",
}

// QuoteIdent quotes the identifier part with double quotes.
func (AnsiSQL) QuoteIdent(part string) string {
	return quoteDouble(part)
}

// EscapeValue renders v as an ANSI SQL literal.
func (AnsiSQL) EscapeValue(v any) string {
	return ansiEscaper.escape(v)
}
