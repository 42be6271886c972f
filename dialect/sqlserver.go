package dialect

import (
	"encoding/hex"
	"strings"

	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = SQLServer{}

// SQLServer is the Microsoft SQL Server dialect.
type SQLServer struct {
	dialect.SQLServer
}

var sqlserverEscaper = escaper{
	quoteString: func(s string) string {
		return "N" + quoteSingle(s)
	},
	quoteBytes: func(b []byte) string {
		return "0x" + strings.ToUpper(hex.EncodeToString(b))
	},
	trueText:   "1",
	falseText:  "0",
	timeLayout: "2006-01-02 15:04:05.9999999",
}

// QuoteIdent quotes the identifier part with square brackets.
func (SQLServer) QuoteIdent(part string) string {
	return "[" + strings.ReplaceAll(part, "]", "]]") + "]"
}

// EscapeValue renders v as a SQL Server literal.
func (SQLServer) EscapeValue(v any) string {
	return sqlserverEscaper.escape(v)
}
