package model

import "encoding/json"

// FieldValue is the outcome of anchoring one form field: either a literal
// value assembled from adjacent recognized words, or an explicit miss.
// A miss is represented as its own state rather than an empty string so
// callers can tell "label found with no value to its right" apart from
// "label not found on the page". A FieldValue is never fabricated; the
// value is always a join of tokens that appear on the page.
type FieldValue struct {
	// Present reports whether the field's label was located and a value
	// assembled for it.
	Present bool

	// Value is the assembled value text. Empty when Present is false.
	Value string
}

// PresentValue creates a FieldValue holding an assembled value.
func PresentValue(v string) FieldValue {
	return FieldValue{Present: true, Value: v}
}

// MissingValue creates a FieldValue representing an anchoring miss.
func MissingValue() FieldValue {
	return FieldValue{}
}

// MarshalJSON encodes a present value as a JSON string and a miss as null.
func (f FieldValue) MarshalJSON() ([]byte, error) {
	if !f.Present {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON decodes null as a miss and a string as a present value.
func (f *FieldValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = FieldValue{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = FieldValue{Present: true, Value: s}
	return nil
}
