package common

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// MirrorIndex maps an arbitrary texel index onto [0, size) using mirrored-repeat addressing.
// Even tiles are copied as-is and odd tiles are reflected, so index -1 maps to 0 and index size maps to size-1.
//
// Parameters:
//   - i: the texel index, may be negative or past the edge
//   - size: the texture extent along this axis (must be positive)
//
// Returns:
//   - int: the addressed texel index in [0, size)
func MirrorIndex(i, size int) int {
	period := 2 * size
	m := i % period
	if m < 0 {
		m += period
	}
	if m >= size {
		return period - 1 - m
	}
	return m
}
