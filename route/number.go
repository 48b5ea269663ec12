package route

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Number is an optional line number. The zero value is absent.
type Number struct {
	Value int
	Valid bool
}

// NumberOf returns a present line number.
func NumberOf(v int) Number { return Number{Value: v, Valid: true} }

// NoNumber is the absent line number.
var NoNumber = Number{}

// String renders the number, or "" when absent.
func (n Number) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.Itoa(n.Value)
}

// MarshalJSON encodes an absent number as null.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(n.Value)), nil
}

// UnmarshalJSON accepts null or an integer.
func (n *Number) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*n = Number{}
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = NumberOf(v)
	return nil
}
