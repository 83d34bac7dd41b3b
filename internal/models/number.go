package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Number is a numeric value that keeps its stored representation across a
// JSON round trip: an exact integer renders as an integer, anything else as
// a float. DynamoDB numbers come back as a single numeric type, so without
// this a stored 550 would serialize as 550.0.
type Number float64

// MarshalJSON renders integral values without a fractional part.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return []byte(strconv.FormatInt(int64(f), 10)), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts any JSON number.
func (n *Number) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// ParseNumber converts a decimal attribute string, preferring the integer
// reading. Used when mapping directory attributes stored as strings.
func ParseNumber(s string) (Number, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Number(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(f), true
	}
	return 0, false
}
