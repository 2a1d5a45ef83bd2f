package word

import "math"

// Float is the uniform 64-bit storage for single- and double-precision
// floating point values, as described by the word model. A
// single-precision value is stored NaN-boxed: its 32 significant bits
// occupy the low half, with the high half set to all ones so that any
// misguided interpretation as double-precision is guaranteed to yield
// a quiet NaN.
type Float uint64

// nanBox is the high-half pattern applied when boxing a single into a
// Float.
const nanBox = uint64(0xFFFF_FFFF_0000_0000)

// FloatZero is the zero value, representing +0.0 in either precision.
func FloatZero() Float {
	return Float(0)
}

// FromDouble lifts a double-precision value into Float (bitwise
// identity).
func FromDouble(d float64) Float {
	return Float(math.Float64bits(d))
}

// FromSingle lifts a single-precision value into Float, NaN-boxing it
// into the low 32 bits.
func FromSingle(s float32) Float {
	return Float(uint64(math.Float32bits(s)) | nanBox)
}

// ToDouble extracts the raw 64 bits of f as a double-precision value.
func ToDouble(f Float) float64 {
	return math.Float64frombits(uint64(f))
}

// ToSingle extracts the low 32 bits of f as a single-precision value.
// If f was not NaN-boxed (i.e. does not carry the expected high-half
// pattern), the result is whatever garbage those bits represent, per
// the word model's documented contract.
func ToSingle(f Float) float32 {
	return math.Float32frombits(uint32(f))
}

// IsBoxedSingle reports whether f carries the NaN-boxing high-half
// pattern expected of a legitimately single-precision value.
func IsBoxedSingle(f Float) bool {
	return uint64(f)&nanBox == nanBox
}

// FromRawSingle lifts a raw 32-bit bit pattern (as read from memory or
// an integer register) into a NaN-boxed Float, for FMV.W.X and
// float loads.
func FromRawSingle(bits uint32) Float {
	return Float(uint64(bits) | nanBox)
}

// FromRawDouble lifts a raw 64-bit bit pattern into a Float, for
// FMV.D.X and float loads.
func FromRawDouble(bits uint64) Float {
	return Float(bits)
}

// ToRawSingle extracts the low 32 raw bits of f, for FMV.X.W and float
// stores.
func ToRawSingle(f Float) uint32 {
	return uint32(f)
}

// ToRawDouble extracts the raw 64 bits of f, for FMV.X.D and float
// stores.
func ToRawDouble(f Float) uint64 {
	return uint64(f)
}
