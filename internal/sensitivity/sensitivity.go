// Package sensitivity converts transducer sensitivity values between
// decibels and millivolts per pascal. The reference level is implicit in
// the formulas: 0 dB corresponds to 1 V/Pa, i.e. 1000 mV/Pa.
package sensitivity

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositive is returned when a linear sensitivity value has no
// logarithmic representation.
var ErrNonPositive = errors.New("sensitivity must be strictly positive")

// DBToMilliVoltsPerPascal converts a sensitivity in dB re 1 V/Pa to mV/Pa,
// rounded to 4 decimal places.
func DBToMilliVoltsPerPascal(db float64) float64 {
	mvp := math.Pow(10, db/20) * 1000
	return roundTo(mvp, 4)
}

// MilliVoltsPerPascalToDB converts a sensitivity in mV/Pa to dB re 1 V/Pa,
// rounded to 2 decimal places. Non-positive (or NaN) input is a domain
// error; the function never returns a non-finite value for valid input.
func MilliVoltsPerPascalToDB(mvp float64) (float64, error) {
	if !(mvp > 0) {
		return 0, fmt.Errorf("converting %g mV/Pa: %w", mvp, ErrNonPositive)
	}
	db := 20 * math.Log10(mvp/1000)
	return roundTo(db, 2), nil
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
