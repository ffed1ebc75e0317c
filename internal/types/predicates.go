package types

// Identical reports whether x and y have the same class. Class equality
// is the only compatibility test.
func Identical(x, y Meta) bool {
	return x.Class == y.Class
}

// IsNumeric reports whether c is one of the number classes.
func IsNumeric(c TypeClass) bool {
	switch c {
	case Integral, Real, Complex:
		return true
	}
	return false
}
