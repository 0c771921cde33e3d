// Package audit builds the human-readable change descriptions stored in the
// per-entity log tables.
package audit

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NoChanges is recorded when an update leaves every tracked field untouched.
const NoChanges = "No changes."

// Field names a tracked attribute of T and how to read it.
type Field[T any] struct {
	Name string
	Get  func(T) any
}

// Describe compares before and after field by field and returns
// "<field>: changed from <old> to <new>" entries joined with ", ".
func Describe[T any](before, after T, fields []Field[T]) string {
	var diffs []string
	for _, f := range fields {
		was, now := format(f.Get(before)), format(f.Get(after))
		if was != now {
			diffs = append(diffs, fmt.Sprintf("%s: changed from %s to %s", f.Name, was, now))
		}
	}
	if len(diffs) == 0 {
		return NoChanges
	}
	return strings.Join(diffs, ", ")
}

func format(v any) string {
	switch x := v.(type) {
	case nil:
		return "none"
	case string:
		if x == "" {
			return "none"
		}
		return x
	case *string:
		if x == nil || *x == "" {
			return "none"
		}
		return *x
	case decimal.Decimal:
		return x.StringFixed(2)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
