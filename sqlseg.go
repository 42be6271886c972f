// Package sqlseg sqlseg is a composable SQL segment builder. It provides,
//   - Free-form composition of SQL text, identifiers and bound values.
//   - Nesting of partial statements with automatic whitespace handling.
//   - Rendering to a parameterized query, or to an escaped statement.
//
// Values are never interpolated into the text of a segment, which keeps
// the composed statement safe from injection:
//
//	s := sqlseg.SQL("SELECT * FROM", sqlseg.Ident("users"), "WHERE id =", sqlseg.V(1))
//	s.String()      // SELECT * FROM `users` WHERE id = ?
//	s.Parameters()  // [1]
package sqlseg

import (
	"fmt"

	"github.com/qjebbs/go-sqlseg/internal/util"
)

// Part is anything that can be appended to a Segment: Literal, Value,
// Identifier, Segment, List, Table and PrefixedList.
type Part interface {
	appendTo(b *builder)
}

// Fragment is an element of a Segment, either a Literal or a Value.
type Fragment interface {
	Part
	isFragment()
}

// EscapeFunc renders a bound value as escaped SQL text, e.g.
// dialect.MySQL{}.EscapeValue. Its output is inserted verbatim.
type EscapeFunc func(v any) string

// SQL builds a Segment from parts, appending them from left to right.
//
// A part can be a string (raw SQL text), Literal, Value, Identifier,
// Segment, List, or a slice of any of these, which is appended as a
// comma-separated list:
//
//	SQL(
//		"SELECT", []Identifier{Ident("id"), Ident("name")},
//		"FROM", Ident("users"),
//		"WHERE id =", V(1),
//	)
//	// SELECT `id`, `name` FROM `users` WHERE id = ?
//
// It panics on any other type of part.
func SQL(parts ...any) Segment {
	return Segment{}.Append(parts...)
}

// partOf resolves raw inputs to a Part.
func partOf(x any) Part {
	switch x := x.(type) {
	case string:
		return Literal{text: x}
	case Part:
		return x
	case []any:
		return List(x)
	case []string:
		return listOf(x)
	case []Part:
		return listOf(x)
	case []Segment:
		return listOf(x)
	case []Identifier:
		return listOf(x)
	case []Literal:
		return listOf(x)
	case []Value:
		return listOf(x)
	case []Fragment:
		return listOf(x)
	case nil:
		panic("sqlseg: nil part, use V(nil) for a NULL value")
	default:
		panic(fmt.Sprintf("sqlseg: unsupported part of type %T, wrap values with V()", x))
	}
}

func listOf[T any](s []T) List {
	return util.Map(s, func(e T) any { return e })
}
