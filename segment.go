package sqlseg

import (
	"log/slog"
	"strings"
)

var (
	_ Part           = Segment{}
	_ slog.LogValuer = Segment{}
)

// Segment is an immutable sequence of Literal and Value fragments.
// No two adjacent fragments are Literals.
//
// The zero value is the empty segment. Every method that changes a segment
// returns a new one, so segments can be shared and reused freely, also
// across goroutines.
type Segment struct {
	fragments []Fragment
	params    []any
}

// Append returns a new Segment with parts appended, see SQL for the
// accepted parts.
func (s Segment) Append(parts ...any) Segment {
	if len(parts) == 0 {
		return s
	}
	b := newBuilder(s)
	for _, p := range parts {
		partOf(p).appendTo(b)
	}
	return b.segment()
}

// Fragments returns the fragments of the segment.
func (s Segment) Fragments() []Fragment {
	return append([]Fragment(nil), s.fragments...)
}

// Parameters returns the payloads of the Value fragments in order.
// The nth placeholder of s.String() binds the nth parameter.
func (s Segment) Parameters() []any {
	return append([]any(nil), s.params...)
}

// Len returns the number of fragments.
func (s Segment) Len() int {
	return len(s.fragments)
}

// IsEmpty reports whether the segment has no fragments.
func (s Segment) IsEmpty() bool {
	return len(s.fragments) == 0
}

// Equal reports whether s and other have equal fragments.
func (s Segment) Equal(other Segment) bool {
	if len(s.fragments) != len(other.fragments) {
		return false
	}
	for i, f := range s.fragments {
		switch f := f.(type) {
		case Literal:
			o, ok := other.fragments[i].(Literal)
			if !ok || o.text != f.text {
				return false
			}
		case Value:
			o, ok := other.fragments[i].(Value)
			if !ok || !f.Equal(o) {
				return false
			}
		}
	}
	return true
}

// Render renders the segment. Values are rendered with escape, or as "?"
// placeholders if escape is nil.
func (s Segment) Render(escape EscapeFunc) string {
	var sb strings.Builder
	for _, f := range s.fragments {
		switch f := f.(type) {
		case Literal:
			sb.WriteString(f.text)
		case Value:
			if escape == nil {
				sb.WriteByte('?')
				continue
			}
			sb.WriteString(escape(f.payload))
		}
	}
	return sb.String()
}

// String renders the segment with "?" placeholders.
func (s Segment) String() string {
	return s.Render(nil)
}

// Query returns the placeholder query and its parameters, ready for
// database/sql, e.g.:
//
//	db.QueryContext(ctx, s.Query())
func (s Segment) Query() (string, []any) {
	return s.String(), s.Parameters()
}

// LogValue implements slog.LogValuer.
func (s Segment) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("query", s.String()),
		slog.Any("args", s.params),
	)
}

// isBlank reports whether s renders to nothing, i.e. it has no values and
// all its literals are empty.
func (s Segment) isBlank() bool {
	for _, f := range s.fragments {
		if l, ok := f.(Literal); !ok || l.text != "" {
			return false
		}
	}
	return true
}

// appendTo appends the fragments of s. Only the first one needs spacing
// against b, the others are already spaced against each other.
func (s Segment) appendTo(b *builder) {
	if len(s.fragments) == 0 {
		return
	}
	b.appendPrimitive(s.fragments[0])
	b.fragments = append(b.fragments, s.fragments[1:]...)
}
