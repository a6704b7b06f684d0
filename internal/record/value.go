// Package record defines the schema-less issue record shared by every
// dashboard: a set of named fields, each holding a number or a string.
package record

import (
	"encoding/json"
	"strconv"
)

// Kind identifies which side of a Value is populated.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a field value: either a number or a string.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Parse builds a Value from command-line text: anything that parses as a
// float becomes a number, the rest stays a string.
func Parse(s string) Value {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(f)
	}
	return String(s)
}

func (v Value) Kind() Kind { return v.kind }

// Num returns the numeric payload and whether v is a number.
func (v Value) Num() (float64, bool) { return v.num, v.kind == KindNumber }

// Str returns the string payload and whether v is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Text renders v for display and substring search.
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	default:
		return ""
	}
}

// Equal reports membership equality. Values of different kinds are compared
// by their display text so "404" matches 404.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return v.Text() == o.Text()
	}
	if v.kind == KindNumber {
		return v.num == o.num
	}
	return v.str == o.str
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindString:
		return json.Marshal(v.str)
	default:
		return []byte("null"), nil
	}
}

// MarshalYAML emits the underlying number or string.
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case KindNumber:
		return v.num, nil
	case KindString:
		return v.str, nil
	default:
		return nil, nil
	}
}
