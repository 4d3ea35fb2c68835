package table

import (
	"strconv"
	"strings"
)

// Kind identifies the underlying representation of a cell value.
type Kind int

// Cell value kinds.
const (
	// KindMissing marks an absent value (empty cell, NA, null, NaN).
	KindMissing Kind = iota
	// KindInt is a 64-bit integer value.
	KindInt
	// KindFloat is a 64-bit floating-point value.
	KindFloat
	// KindBool is a boolean value.
	KindBool
	// KindString is a text value.
	KindString
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a single tagged cell value. Missing-value markers are normalized
// into KindMissing at load time so checks reason about one uniform "absent"
// concept instead of re-deriving it per check.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// Missing returns the missing-value marker.
func Missing() Value { return Value{kind: KindMissing} }

// Int returns an integer cell value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating-point cell value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Bool returns a boolean cell value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// String returns a text cell value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Kind returns the value's kind tag.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the value is the missing marker.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Int64 returns the integer payload. Only meaningful for KindInt.
func (v Value) Int64() int64 { return v.i }

// Bool returns the boolean payload. Only meaningful for KindBool.
func (v Value) Bool() bool { return v.b }

// AsFloat returns the value as a float64 and true when the value is numeric
// (KindInt or KindFloat).
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Text returns the canonical text form of the value. The missing marker
// renders as an empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// missingMarkers are the cell spellings normalized to the missing marker,
// compared case-insensitively after trimming.
var missingMarkers = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"null": true,
	"nan":  true,
	"none": true,
}

// ParseValue converts a raw CSV cell into a typed Value. Inference order:
// missing marker, integer, float, boolean, then text.
func ParseValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if missingMarkers[strings.ToLower(trimmed)] {
		return Missing()
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Float(f)
	}
	switch trimmed {
	case "true", "True", "TRUE":
		return Bool(true)
	case "false", "False", "FALSE":
		return Bool(false)
	}
	return String(trimmed)
}
