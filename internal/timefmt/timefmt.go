package timefmt

import "strconv"

// Precision is the number of significant digits used for elapsed times.
const Precision = 4

// Seconds formats a number of seconds with Precision significant digits and
// no unit, e.g. 1.235, 0.01234 or 1.235e+04. Trailing zeros are dropped.
func Seconds(sec float64) string {
	return strconv.FormatFloat(sec, 'g', Precision, 64)
}

// Elapsed formats a wall-clock duration in seconds like Seconds, with an "s"
// suffix. Negative durations read as zero.
func Elapsed(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	return Seconds(sec) + "s"
}
