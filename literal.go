package sqlseg

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var _ Part = Literal{}

// Literal is a piece of raw SQL text. It is rendered verbatim, so it must
// never carry user input.
type Literal struct {
	text string
}

// L returns a new Literal of the text.
func L(text string) Literal {
	return Literal{text: text}
}

// Text returns the text of the literal.
func (l Literal) Text() string {
	return l.text
}

// String implements fmt.Stringer.
func (l Literal) String() string {
	return l.text
}

// EnsureTrailingSpace returns l if its text ends with a space,
// otherwise a new Literal with a single space appended.
func (l Literal) EnsureTrailingSpace() Literal {
	if strings.HasSuffix(l.text, " ") {
		return l
	}
	return Literal{text: l.text + " "}
}

// EnsureLeadingSpace returns l if its text begins with a space,
// otherwise a new Literal with a single space prepended.
func (l Literal) EnsureLeadingSpace() Literal {
	if strings.HasPrefix(l.text, " ") {
		return l
	}
	return Literal{text: " " + l.text}
}

// MergeWith concatenates l and other, separated by exactly one space
// unless l ends or other begins with whitespace.
//
//	L("SELECT").MergeWith(L("*"))   // "SELECT *"
//	L("SELECT ").MergeWith(L("*"))  // "SELECT *"
func (l Literal) MergeWith(other Literal) Literal {
	if endsWithSpace(l.text) || startsWithSpace(other.text) {
		return Literal{text: l.text + other.text}
	}
	return Literal{text: l.text + " " + other.text}
}

func (l Literal) appendTo(b *builder) {
	b.appendPrimitive(l)
}

func (Literal) isFragment() {}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r != utf8.RuneError && unicode.IsSpace(r)
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsSpace(r)
}
