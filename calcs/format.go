package calcs

import "strconv"

const DefaultPrecision = 15

// FormatNumber renders n with at most precision significant digits. The
// output parses back with strconv.ParseFloat, including NaN and ±Inf.
func FormatNumber(n float64, precision int) string {
	if n == 0 {
		// also -0
		return "0"
	}
	if precision <= 0 {
		precision = -1
	}
	return strconv.FormatFloat(n, 'g', precision, 64)
}
