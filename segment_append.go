package sqlseg

// listSeparator is inserted between list elements as is.
var listSeparator = Literal{text: ", "}

// builder accumulates fragments for a new Segment. It owns its slice,
// which is never shared with the Segment it was created from.
type builder struct {
	fragments []Fragment
}

func newBuilder(s Segment) *builder {
	fragments := make([]Fragment, len(s.fragments), len(s.fragments)+4)
	copy(fragments, s.fragments)
	return &builder{fragments: fragments}
}

// appendPrimitive appends a fragment, keeping a space between a value and
// its neighboring text, and merging adjacent literals.
func (b *builder) appendPrimitive(f Fragment) {
	n := len(b.fragments)
	if n == 0 {
		b.fragments = append(b.fragments, f)
		return
	}
	latest, latestIsLiteral := b.fragments[n-1].(Literal)
	next, nextIsLiteral := f.(Literal)
	switch {
	case latestIsLiteral && nextIsLiteral:
		b.fragments[n-1] = latest.MergeWith(next)
	case latestIsLiteral:
		b.fragments[n-1] = latest.EnsureTrailingSpace()
		b.fragments = append(b.fragments, f)
	case nextIsLiteral:
		b.fragments = append(b.fragments, next.EnsureLeadingSpace())
	default:
		b.fragments = append(b.fragments, f)
	}
}

// appendSeparator appends l without any whitespace handling.
func (b *builder) appendSeparator(l Literal) {
	n := len(b.fragments)
	if n > 0 {
		if latest, ok := b.fragments[n-1].(Literal); ok {
			b.fragments[n-1] = Literal{text: latest.text + l.text}
			return
		}
	}
	b.fragments = append(b.fragments, l)
}

func (b *builder) segment() Segment {
	if len(b.fragments) == 0 {
		return Segment{}
	}
	var params []any
	for _, f := range b.fragments {
		if v, ok := f.(Value); ok {
			params = append(params, v.payload)
		}
	}
	return Segment{
		fragments: b.fragments,
		params:    params,
	}
}
