package simplejson

import "strconv"

// Number holds a JSON number as its exact decimal source text. Keeping the
// literal instead of an eagerly parsed float64 means arbitrary-precision
// input survives a parse/serialize round trip; conversion to a machine type
// happens on demand.
type Number string

// String returns the literal text of the number.
func (n Number) String() string { return string(n) }

// Int64 returns the number as an int64. It fails if the literal has a
// fractional or exponent part, or does not fit.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Float64 returns the number as a float64, rounding if necessary.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}
