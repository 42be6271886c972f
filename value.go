package sqlseg

import (
	"fmt"
	"reflect"
)

var (
	_ Part = Value{}
	_ Part = List(nil)
)

// Value marks a payload as a bound parameter. It is never interpolated
// into the SQL text: it renders as a placeholder, or through an
// EscapeFunc when the caller asks for an inlined statement.
type Value struct {
	payload any
}

// Payload returns the wrapped value.
func (v Value) Payload() any {
	return v.payload
}

// Equal reports whether v and other wrap deeply equal payloads.
func (v Value) Equal(other Value) bool {
	return reflect.DeepEqual(v.payload, other.payload)
}

// String implements fmt.Stringer, mostly for debugging.
func (v Value) String() string {
	return fmt.Sprintf("$(%v)", v.payload)
}

func (v Value) appendTo(b *builder) {
	b.appendPrimitive(v)
}

func (Value) isFragment() {}

// List is a sequence of parts appended as a comma-separated list, e.g.:
//
//	SQL("WHERE id IN (", List{V(1), V(2)}, ")")  // WHERE id IN ( ?, ? )
//
// Elements may be anything accepted by SQL.
type List []any

func (l List) appendTo(b *builder) {
	for i, e := range l {
		if i > 0 {
			b.appendSeparator(listSeparator)
		}
		partOf(e).appendTo(b)
	}
}

// V returns a Value of x, or, when x is a slice or an array, a List of
// Values of its elements. Literal and Segment elements are kept as they
// are, as are elements that already are Values, so raw SQL can be mixed
// into a value list:
//
//	V(42)                            // Value
//	V([]any{1, L("DEFAULT"), 3})     // List{Value, Literal, Value}
//
// A []byte is a single payload, not a list.
func V(x any) Part {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if _, ok := x.([]byte); ok {
			break
		}
		list := make(List, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			e := rv.Index(i).Interface()
			switch e := e.(type) {
			case Literal, Segment, Value:
				list = append(list, e)
			default:
				list = append(list, Value{payload: e})
			}
		}
		return list
	}
	return Value{payload: x}
}
