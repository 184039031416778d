package models

import (
	"math"
	"strconv"
)

// Grade is a score on the 0-10 scale kept as hundredths so that two decimal
// places survive every round trip.
type Grade int64

// NewGrade rounds value to two decimal places.
func NewGrade(value float64) Grade {
	return Grade(math.Round(value * 100))
}

// Float64 returns the grade as a float.
func (g Grade) Float64() float64 {
	return float64(g) / 100
}

// String formats the grade with two decimals.
func (g Grade) String() string {
	return strconv.FormatFloat(g.Float64(), 'f', 2, 64)
}

// MarshalJSON renders the grade as a JSON number.
func (g Grade) MarshalJSON() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalJSON accepts a JSON number.
func (g *Grade) UnmarshalJSON(data []byte) error {
	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*g = NewGrade(value)
	return nil
}
