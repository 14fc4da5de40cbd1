package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CoercibleNumber is a loosely typed numeric input. It accepts JSON numbers,
// numeric strings, booleans and null. Anything else decodes without error but
// is reported as invalid by Value.
type CoercibleNumber struct {
	value float64
	valid bool
	set   bool
}

// Number builds a valid CoercibleNumber, mostly for callers outside JSON
// decoding.
func Number(v float64) CoercibleNumber {
	return CoercibleNumber{value: v, valid: !math.IsNaN(v) && !math.IsInf(v, 0), set: true}
}

func (n *CoercibleNumber) UnmarshalJSON(data []byte) error {
	*n = CoercibleNumber{set: true}

	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		n.set = false
		return nil
	case bytes.Equal(data, []byte("true")):
		n.value, n.valid = 1, true
		return nil
	case bytes.Equal(data, []byte("false")):
		n.value, n.valid = 0, true
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		n.value, n.valid = parseNumeric(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.value, n.valid = f, true
	}
	return nil
}

func (n CoercibleNumber) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// Value returns the coerced number and whether it is a finite number.
func (n CoercibleNumber) Value() (float64, bool) {
	if !n.set || !n.valid {
		return 0, false
	}
	return n.value, true
}

// IsSet reports whether the field was present and non-null.
func (n CoercibleNumber) IsSet() bool {
	return n.set
}

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
