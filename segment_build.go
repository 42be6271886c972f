package sqlseg

import (
	"context"
	"fmt"
	"strings"

	"github.com/qjebbs/go-sqlf/v4"
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ sqlf.Builder = Segment{}

// BuildTo implements sqlf.Builder. Values are bound to the context, so
// they get the bind style of its dialect, e.g. $1 for PostgreSQL:
//
//	s := SQL("id =", V(1))
//	sqlf.F("SELECT * FROM foo WHERE ?", s)
func (s Segment) BuildTo(ctx sqlf.Context) (query string, err error) {
	var sb strings.Builder
	for _, f := range s.fragments {
		switch f := f.(type) {
		case Literal:
			sb.WriteString(f.text)
		case Value:
			bindVar, err := sqlf.F("?", f.payload).BuildTo(ctx)
			if err != nil {
				return "", fmt.Errorf("bind value %v: %w", f.payload, err)
			}
			sb.WriteString(bindVar)
		}
	}
	return sb.String(), nil
}

// Build builds the segment with the bind style of the dialect d.
func (s Segment) Build(d dialect.Dialect) (query string, args []any, err error) {
	ctx := sqlf.NewContext(context.Background(), d)
	return sqlf.F("?", s).Build(ctx)
}
