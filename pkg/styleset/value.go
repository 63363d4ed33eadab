package styleset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ValueKind identifies which variant a Value holds
type ValueKind uint8

const (
	KindNone ValueKind = iota
	KindString
	KindNumber
	// KindRaw holds any other non-null JSON literal (booleans, arrays) verbatim.
	KindRaw
)

// Value is a single style property value: a string such as "16px" or
// "#ff0000", or a number. The zero Value means the property is absent.
type Value struct {
	kind ValueKind
	str  string // string payload, number literal, or raw JSON
	num  float64
}

// String returns a string Value
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric Value. NaN and infinities are not representable
// in a style document and yield the zero Value.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

func rawValue(literal []byte) Value {
	return Value{kind: KindRaw, str: string(literal)}
}

func numberLiteral(literal string) Value {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f, str: literal}
}

func (v Value) Kind() ValueKind { return v.kind }

// IsZero reports whether the value is absent
func (v Value) IsZero() bool { return v.kind == KindNone }

// Str returns the string payload when v is a string
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Num returns the numeric payload when v is a number
func (v Value) Num() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text renders the value the way it would appear in a CSS declaration.
func (v Value) Text() string {
	switch v.kind {
	case KindString, KindRaw:
		return v.str
	case KindNumber:
		if v.str != "" {
			return v.str
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return ""
}

func (v Value) String() string {
	return v.Text()
}

// Equal compares kind and payload. Numbers compare by value, not literal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindNumber {
		return v.num == o.num
	}
	return v.str == o.str
}

// MarshalJSON implements json.Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return []byte(v.Text()), nil
	case KindRaw:
		return []byte(v.str), nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler. Objects are rejected; they
// belong to sub-groups, not properties.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*v = Value{}
		return nil
	}
	switch data[0] {
	case 'n':
		*v = Value{}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
	case '{':
		return fmt.Errorf("style value cannot be an object")
	case 't', 'f', '[':
		if !json.Valid(data) {
			return fmt.Errorf("invalid style value %s", data)
		}
		*v = rawValue(data)
	default:
		n := numberLiteral(string(data))
		if n.IsZero() {
			return fmt.Errorf("invalid style value %s", data)
		}
		*v = n
	}
	return nil
}

// MarshalYAML renders strings and numbers as YAML scalars.
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case KindString, KindRaw:
		return v.str, nil
	case KindNumber:
		return v.num, nil
	}
	return nil, nil
}
