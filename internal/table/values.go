package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// normalize folds the numeric kinds into float64 and dereferences the pointer kinds
// the models use for nullable fields.
func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case *string:
		if x == nil {
			return nil
		}
		return *x
	case *int:
		if x == nil {
			return nil
		}
		return float64(*x)
	case *float64:
		if x == nil {
			return nil
		}
		return *x
	case *bool:
		if x == nil {
			return nil
		}
		return *x
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	default:
		return v
	}
}

// Stringify renders a field value the way the search filter sees it.
// It returns false for nil values, which never match.
func Stringify(v any) (string, bool) {
	switch x := normalize(v).(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case float64:
		return formatNumber(x), true
	case time.Time:
		return x.Format(time.RFC3339), true
	case []string:
		return strings.Join(x, ","), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return fmt.Sprint(x), true
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'e', -1, 64)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

// identical mirrors a strict equality check: same kind and same value.
func identical(a, b any) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case string:
		y, ok := b.(string)
		return ok && x == y
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	default:
		return false
	}
}

// greater reports a > b with loose coercion: two strings compare lexically,
// anything else compares numerically, and NaN is never greater.
func greater(a, b any) bool {
	as, aStr := primitive(a)
	bs, bStr := primitive(b)
	if aStr && bStr {
		return as.(string) > bs.(string)
	}
	return toNumber(as) > toNumber(bs)
}

// primitive reduces a value to a string, float64 or bool. The second result is
// true when the primitive is a string.
func primitive(v any) (any, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64, bool:
		return x, false
	case time.Time:
		return float64(x.UnixMilli()), false
	default:
		s, _ := Stringify(x)
		return s, true
	}
}

func toNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// Compare orders two raw field values for the given direction.
// Nil values sort last regardless of direction.
func Compare(a, b any, dir Direction) int {
	a, b = normalize(a), normalize(b)
	if identical(a, b) {
		return 0
	}
	if a == nil {
		return 1
	}
	if b == nil {
		return -1
	}
	result := -1
	if greater(a, b) {
		result = 1
	}
	if dir == Desc {
		return -result
	}
	return result
}
