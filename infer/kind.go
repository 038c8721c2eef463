// Package infer: the Kind enumeration and per-kind scalar parsers.
// Each parser answers (converted, ok) for a single scalar; composition
// and recursion live in infer.go.
package infer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date form accepted by the Date kind:
// a complete ISO-8601 date with no time component.
const DateLayout = "2006-01-02"

// Kind identifies one of the five semantic types a value can be
// inferred as. The declaration order is the inference priority.
type Kind int

const (
	// Int accepts integers, rounds other numerics, and parses
	// fully-consumed integer literals from text.
	Int Kind = iota

	// Float accepts any numeric and parses fully-consumed float
	// literals from text.
	Float

	// Bool accepts booleans, coerces numerics via "rounded value ≠ 0",
	// and parses trimmed "true"/"false" text.
	Bool

	// Date accepts time.Time values and complete ISO-8601 calendar
	// dates in text form.
	Date

	// String is the terminal kind: text passes through, anything else
	// is stringified. Its parser never fails.
	String
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	switch k {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	case Date:
		return "Date"
	case String:
		return "String"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// kinds is the fixed priority order tried by Infer.
var kinds = [...]Kind{Int, Float, Bool, Date, String}

// parseScalar dispatches to the parser for kind k.
func parseScalar(v any, k Kind) (any, bool) {
	switch k {
	case Int:
		return parseInt(v)
	case Float:
		return parseFloat(v)
	case Bool:
		return parseBool(v)
	case Date:
		return parseDate(v)
	case String:
		return parseString(v)
	default:
		return nil, false
	}
}

// parseInt passes integers through, rounds other numerics, and accepts
// text only when the ENTIRE string is an integer literal.
func parseInt(v any) (any, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		return int(x), true
	case float32:
		return int(math.Round(float64(x))), true
	case float64:
		return int(math.Round(x)), true
	case string:
		i, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return nil, false
		}
		return int(i), true
	default:
		return nil, false
	}
}

// parseFloat passes numerics through and accepts text only on full
// literal consumption.
func parseFloat(v any) (any, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	default:
		return nil, false
	}
}

// parseBool passes booleans through, coerces numerics via
// "rounded value ≠ 0", and accepts only trimmed "true"/"false" text.
func parseBool(v any) (any, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		switch strings.TrimSpace(x) {
		case "true":
			return true, true
		case "false":
			return false, true
		default:
			return nil, false
		}
	default:
		if f, ok := parseFloat(v); ok {
			return math.Round(f.(float64)) != 0, true
		}
		return nil, false
	}
}

// parseDate passes time.Time through and accepts text only when it is
// a complete ISO-8601 calendar date. time.Parse rejects both partial
// matches and trailing garbage, which is exactly the contract here.
func parseDate(v any) (any, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		d, err := time.Parse(DateLayout, x)
		if err != nil {
			return nil, false
		}
		return d, true
	default:
		return nil, false
	}
}

// parseString is the terminal parser: it always succeeds.
// time.Time stringifies in DateLayout so that a Date survives a
// round-trip through its canonical text form.
func parseString(v any) (any, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case time.Time:
		return x.Format(DateLayout), true
	default:
		return fmt.Sprint(x), true
	}
}
