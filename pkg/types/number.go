package types

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Number is a sampling option. It decodes from any JSON number, integral or
// not, and from a string holding one, so 512, 512.0 and "512" are equal.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = bytes.TrimSpace(raw[1 : len(raw)-1])
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("not a number: %s", b)
	}
	*n = Number(v)
	return nil
}

// Float returns n as a float64.
func (n Number) Float() float64 { return float64(n) }

// Int returns n rounded to the nearest integer.
func (n Number) Int() int {
	f := float64(n)
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}

// Num returns a pointer to v as a Number, for building requests in code.
func Num(v float64) *Number {
	n := Number(v)
	return &n
}
