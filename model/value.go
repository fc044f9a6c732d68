package model

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Value is a submitted field value: either a single string or an ordered
// sequence of strings. The sequence case only arises when the same submission
// key appears more than once (Multi Select / Multi Choice controls).
//
// The promotion rule lives in Append and nowhere else:
// scalar -> two-element sequence -> append.
type Value struct {
	scalar string
	list   []string
	multi  bool
}

// Scalar wraps a single submitted string.
func Scalar(s string) Value {
	return Value{scalar: s}
}

// List wraps an ordered sequence of submitted strings.
func List(values ...string) Value {
	return Value{list: values, multi: true}
}

// Append returns v extended with one more submitted string, promoting a
// scalar to a two-element sequence on first repetition.
func (v Value) Append(s string) Value {
	if !v.multi {
		return Value{list: []string{v.scalar, s}, multi: true}
	}
	return Value{list: append(v.list, s), multi: true}
}

// Multi reports whether v holds a sequence rather than a single string.
func (v Value) Multi() bool {
	return v.multi
}

// String returns the scalar value. Zero for a sequence.
func (v Value) String() string {
	if v.multi {
		return ""
	}
	return v.scalar
}

// Strings returns the submitted values in order, for either case.
func (v Value) Strings() []string {
	if !v.multi {
		return []string{v.scalar}
	}
	values := make([]string, len(v.list))
	copy(values, v.list)
	return values
}

// MarshalJSON writes a plain string for the scalar case and an array for the
// sequence case, matching the stored response document shape.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.multi {
		return json.Marshal(v.list)
	}
	return json.Marshal(v.scalar)
}

// UnmarshalJSON accepts either a string or an array of strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Scalar(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.Wrap(err, "response value must be a string or an array of strings")
	}
	*v = List(list...)
	return nil
}
