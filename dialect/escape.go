package dialect

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// escaper renders Go values as SQL literals, with the dialect specific
// parts plugged in.
type escaper struct {
	quoteString func(s string) string
	quoteBytes  func(b []byte) string
	trueText    string
	falseText   string
	timeLayout  string
}

func (e escaper) escape(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case string:
		return e.quoteString(v)
	case []byte:
		if v == nil {
			return "NULL"
		}
		return e.quoteBytes(v)
	case bool:
		return e.boolean(v)
	case time.Time:
		return e.quoteString(v.Format(e.timeLayout))
	case driver.Valuer:
		return e.valuer(v)
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return "NULL"
			}
			// String may have a pointer receiver, e.g. *big.Int.
			if !isScalar(rv.Elem().Kind()) {
				return e.quoteString(v.String())
			}
		}
	}
	return e.reflected(reflect.ValueOf(v))
}

func (e escaper) valuer(v driver.Valuer) string {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "NULL"
	}
	value, err := v.Value()
	if err != nil {
		panic(fmt.Sprintf("dialect: value of %T: %v", v, err))
	}
	return e.escape(value)
}

func (e escaper) boolean(b bool) string {
	if b {
		return e.trueText
	}
	return e.falseText
}

func (e escaper) reflected(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Bool:
		return e.boolean(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.String:
		return e.quoteString(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "NULL"
		}
		return e.escape(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			if rv.IsNil() {
				return "NULL"
			}
			return e.quoteBytes(rv.Bytes())
		}
		elems := make([]string, rv.Len())
		for i := range elems {
			elems[i] = e.escape(rv.Index(i).Interface())
		}
		return strings.Join(elems, ", ")
	}
	return e.quoteString(fmt.Sprint(rv.Interface()))
}

// formatFloat panics on NaN and infinities, which have no portable SQL
// literal.
func formatFloat(f float64, bitSize int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("dialect: float value %v has no SQL literal", f))
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func quoteSingle(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteDouble(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func quoteHexBlob(b []byte) string {
	return "X'" + hex.EncodeToString(b) + "'"
}
