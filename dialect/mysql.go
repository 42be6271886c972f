package dialect

import (
	"strings"

	"github.com/qjebbs/go-sqlf/v4/dialect"
	"github.com/qjebbs/go-sqlseg"
)

var _ Dialect = MySQL{}

// MySQL is the MySQL dialect.
type MySQL struct {
	dialect.MySQL
}

// mysqlReplacer escapes strings the way the sqlstring package of node-mysql does.
var mysqlReplacer = strings.NewReplacer(
	"\x00", `\0`,
	"\b", `\b`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
	"\x1a", `\Z`,
	`"`, `\"`,
	`'`, `\'`,
	`\`, `\\`,
)

var mysqlEscaper = escaper{
	quoteString: func(s string) string {
		return "'" + mysqlReplacer.Replace(s) + "'"
	},
	quoteBytes: quoteHexBlob,
	trueText:   "true",
	falseText:  "false",
	timeLayout: "2006-01-02 15:04:05.999999",
}

// QuoteIdent quotes the identifier part with backticks.
func (MySQL) QuoteIdent(part string) string {
	return sqlseg.QuoteBacktick(part)
}

// EscapeValue renders v as a MySQL literal.
func (MySQL) EscapeValue(v any) string {
	return mysqlEscaper.escape(v)
}
