package types

import (
	"strconv"
	"strings"
	"time"
)

// Convert translates a single card value from one property type to
// another. It is the single authority for cross-type coercion and runs
// eagerly over every card at the moment a property's declared type
// changes, never lazily.
//
// Nil values pass through unchanged regardless of the target type. A
// value that cannot be represented in the target type converts to nil
// (or to an empty set for multiselect); this loss is silent and
// deterministic.
func Convert(value any, fromType, toType string) any {
	if value == nil {
		return nil
	}

	switch toType {
	case TypeNumber:
		return toNumber(value)
	case TypeText:
		return Stringify(value)
	case TypeSelect:
		if s, ok := value.(string); ok {
			return s
		}
		return nil
	case TypeMultiSelect:
		if set, ok := toStringSlice(value); ok {
			return set
		}
		if s, ok := value.(string); ok {
			return []string{s}
		}
		return []string{}
	case TypeCheckbox:
		return toBool(value)
	case TypeDate:
		return toDate(value)
	default:
		return nil
	}
}

// Stringify returns the display string form of a card value. Numbers
// render without a trailing fractional part when integral, so 5 becomes
// "5" rather than "5.000000".
func Stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = Stringify(e)
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// toNumber coerces a value to a float64, or nil when the coercion does
// not produce a valid number.
func toNumber(value any) any {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case bool:
		if v {
			return float64(1)
		}
		return float64(0)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		return n
	default:
		return nil
	}
}

// toBool coerces a value to its truthiness. Non-empty strings and
// non-zero numbers are true; sets are true regardless of length.
func toBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		return true
	}
}

// toDate keeps a string value only when it starts with a valid
// YYYY-MM-DD calendar date; anything else converts to nil.
func toDate(value any) any {
	s, ok := value.(string)
	if !ok || len(s) < 10 {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s[:10]); err != nil {
		return nil
	}
	return s
}

// toStringSlice normalizes a stored multiselect value, which arrives as
// []string in memory but as []any after a JSON round trip.
func toStringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
