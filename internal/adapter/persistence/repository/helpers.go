package repository

import "strconv"

// Amounts are stored as strings to avoid float drift in the N attribute
// round-trip.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
