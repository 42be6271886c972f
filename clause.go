package sqlseg

// Join joins the non-blank parts with sep, e.g.:
//
//	Join("AND", SQL("a =", V(1)), SQL(), SQL("b =", V(2)))  // a = ? AND b = ?
//
// Unlike lists, sep is spaced like any other text.
func Join(sep string, parts ...any) Segment {
	b := newBuilder(Segment{})
	joined := 0
	for _, p := range parts {
		s := SQL(p)
		if s.isBlank() {
			continue
		}
		if joined > 0 {
			b.appendPrimitive(Literal{text: sep})
		}
		s.appendTo(b)
		joined++
	}
	return b.segment()
}

// Prefix returns s prefixed with clause, or the empty segment if s is
// empty, e.g.:
//
//	Prefix("WHERE", Join("AND", conditions...))
func Prefix(clause string, s Segment) Segment {
	if s.IsEmpty() {
		return Segment{}
	}
	return SQL(clause, s)
}

// PrefixedList represents a SQL clause that consists of multiple parts
// prefixed with a clause keyword, e.g., WHERE, HAVING, GROUP BY, ORDER BY.
// It builds nothing when it has no elements.
//
// A PrefixedList is appended by value, so appending elements returns a
// new list and leaves the receiver untouched.
type PrefixedList struct {
	prefix    string
	separator string
	elements  []any
}

var _ Part = PrefixedList{}

// NewPrefixedList creates a new PrefixedList, e.g.:
//
//	where := NewPrefixedList("WHERE", "AND")
//	where = where.Append(SQL("a =", V(1)))
func NewPrefixedList(clause, separator string) PrefixedList {
	return PrefixedList{
		prefix:    clause,
		separator: separator,
	}
}

// Append returns a new list with the elements added.
func (l PrefixedList) Append(elements ...any) PrefixedList {
	merged := make([]any, 0, len(l.elements)+len(elements))
	merged = append(merged, l.elements...)
	merged = append(merged, elements...)
	return PrefixedList{
		prefix:    l.prefix,
		separator: l.separator,
		elements:  merged,
	}
}

// Empty returns whether there is no element.
func (l PrefixedList) Empty() bool {
	return len(l.elements) == 0
}

// Segment returns the clause as a segment.
func (l PrefixedList) Segment() Segment {
	return Prefix(l.prefix, Join(l.separator, l.elements...))
}

func (l PrefixedList) appendTo(b *builder) {
	l.Segment().appendTo(b)
}
