package sqlseg

import (
	"strings"
)

var _ Part = Identifier{}

// Identifier is a qualified name, one part per level, e.g. database,
// table and column. It is appended to a Segment as a Literal quoted
// MySQL-style:
//
//	Ident("my_db", "my`table")  // `my_db`.`my``table`
type Identifier struct {
	parts []string
}

// Ident returns a new Identifier of the parts.
func Ident(parts ...string) Identifier {
	return Identifier{parts: append([]string(nil), parts...)}
}

// Dot returns a new Identifier qualified further by part, e.g.:
//
//	Ident("t").Dot("id")  // `t`.`id`
func (i Identifier) Dot(part string) Identifier {
	parts := make([]string, 0, len(i.parts)+1)
	parts = append(parts, i.parts...)
	parts = append(parts, part)
	return Identifier{parts: parts}
}

// Parts returns the name parts of the identifier.
func (i Identifier) Parts() []string {
	return append([]string(nil), i.parts...)
}

// Literal returns the backtick-quoted form of the identifier.
// It panics if the identifier has no parts.
func (i Identifier) Literal() Literal {
	return i.Quote(QuoteBacktick)
}

// Quote returns the identifier as a Literal, quoting each part with quote
// and joining them with dots. It panics if the identifier has no parts.
func (i Identifier) Quote(quote func(part string) string) Literal {
	if len(i.parts) == 0 {
		panic("sqlseg: identifier has no parts")
	}
	quoted := make([]string, len(i.parts))
	for n, p := range i.parts {
		quoted[n] = quote(p)
	}
	return Literal{text: strings.Join(quoted, ".")}
}

// String implements fmt.Stringer.
func (i Identifier) String() string {
	return i.Literal().text
}

func (i Identifier) appendTo(b *builder) {
	b.appendPrimitive(i.Literal())
}

// QuoteBacktick wraps part in backticks, doubling the backticks inside.
func QuoteBacktick(part string) string {
	return "`" + strings.ReplaceAll(part, "`", "``") + "`"
}
