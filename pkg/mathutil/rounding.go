// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/parcel-projection/pkg/constants"
)

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(val float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(val*scale) / scale
}

// RoundHalfUp rounds to the nearest integer with ties going toward positive
// infinity, so -2.5 becomes -2 and 2.5 becomes 3. Published figures were
// always rounded this way.
func RoundHalfUp(val float64) float64 {
	return math.Floor(val + 0.5)
}

// CeilInt returns the ceiling of val as an int.
func CeilInt(val float64) int {
	return int(math.Ceil(val))
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// PercentToFraction converts a percentage such as 15 into 0.15.
func PercentToFraction(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}
