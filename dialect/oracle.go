package dialect

import (
	"encoding/hex"
	"strings"

	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = Oracle{}

// Oracle is the Oracle dialect.
type Oracle struct {
	dialect.Oracle
}

var oracleEscaper = escaper{
	quoteString: quoteSingle,
	quoteBytes: func(b []byte) string {
		return "HEXTORAW('" + strings.ToUpper(hex.EncodeToString(b)) + "')"
	},
	trueText:   "1",
	falseText:  "0",
	timeLayout: "2006-01-02 15:04:05.999999",
}

// QuoteIdent quotes the identifier part with double quotes.
func (Oracle) QuoteIdent(part string) string {
	return quoteDouble(part)
}

// EscapeValue renders v as an Oracle literal.
func (Oracle) EscapeValue(v any) string {
	return oracleEscaper.escape(v)
}
