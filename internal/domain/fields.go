package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// fieldState tracks what a JSON document said about a single field.
type fieldState uint8

const (
	fieldAbsent fieldState = iota
	fieldNull
	fieldSet
	fieldWrongType
)

var nullLiteral = []byte("null")

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), nullLiteral)
}

// String is a JSON string field that remembers whether it was provided.
// Decoding never fails: a value of the wrong JSON type is recorded and
// reported later by the field rules.
type String struct {
	Value string
	state fieldState
}

// StringOf returns a provided String field.
func StringOf(v string) String {
	return String{Value: v, state: fieldSet}
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *String) UnmarshalJSON(data []byte) error {
	*f = String{}
	if isNull(data) {
		f.state = fieldNull
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		f.Value = ""
		f.state = fieldWrongType
		return nil
	}
	f.state = fieldSet
	return nil
}

// Int is a JSON integer field that remembers whether it was provided.
// Integral numbers written with a fraction (5.0) are accepted; anything
// else, including 3.5 and numeric strings, is a type mismatch.
type Int struct {
	Value int
	state fieldState
}

// IntOf returns a provided Int field.
func IntOf(v int) Int {
	return Int{Value: v, state: fieldSet}
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Int) UnmarshalJSON(data []byte) error {
	*f = Int{}
	if isNull(data) {
		f.state = fieldNull
		return nil
	}
	v, ok := parseInteger(string(bytes.TrimSpace(data)))
	if !ok {
		f.state = fieldWrongType
		return nil
	}
	f.Value = v
	f.state = fieldSet
	return nil
}

// parseInteger accepts JSON number literals with an integral value that
// fits a 32-bit signed column.
func parseInteger(s string) (int, bool) {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return 0, false
	}
	if i, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int(i), true
	}
	fl, err := strconv.ParseFloat(s, 64)
	if err != nil || fl != math.Trunc(fl) || fl > math.MaxInt32 || fl < math.MinInt32 {
		return 0, false
	}
	return int(fl), true
}

// Bool is a JSON boolean field that remembers whether it was provided.
type Bool struct {
	Value bool
	state fieldState
}

// BoolOf returns a provided Bool field.
func BoolOf(v bool) Bool {
	return Bool{Value: v, state: fieldSet}
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Bool) UnmarshalJSON(data []byte) error {
	*f = Bool{}
	switch string(bytes.TrimSpace(data)) {
	case "null":
		f.state = fieldNull
	case "true":
		f.Value, f.state = true, fieldSet
	case "false":
		f.Value, f.state = false, fieldSet
	default:
		f.state = fieldWrongType
	}
	return nil
}

// DateField is a JSON ISO-8601 date field that remembers whether it was provided.
type DateField struct {
	Value Date
	state fieldState
}

// DateFieldOf returns a provided DateField.
func DateFieldOf(d Date) DateField {
	return DateField{Value: d, state: fieldSet}
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *DateField) UnmarshalJSON(data []byte) error {
	*f = DateField{}
	if isNull(data) {
		f.state = fieldNull
		return nil
	}
	if err := f.Value.UnmarshalJSON(data); err != nil {
		f.Value = Date{}
		f.state = fieldWrongType
		return nil
	}
	f.state = fieldSet
	return nil
}
