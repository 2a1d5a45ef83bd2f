package word_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bassosimone/risc32/pkg/word"
)

func TestZeroRegisterRoundTrip(t *testing.T) {
	assert.Equal(t, uint32(0), word.Zero[uint32]())
	assert.Equal(t, uint64(0), word.Zero[uint64]())
}

func TestSignExtend32RoundTrip(t *testing.T) {
	tests := []int32{0, 1, -1, -4, 1<<31 - 1, -(1 << 31)}
	for _, x := range tests {
		got32 := word.SignExtend32[uint32](x)
		assert.Equal(t, x, word.TruncSigned32(got32))

		got64 := word.SignExtend32[uint64](x)
		assert.Equal(t, int64(x), word.AsSigned(got64))
	}
}

func TestFromUnsigned32SignExtends(t *testing.T) {
	// Per the spec, lifting an unsigned 32-bit value still sign-extends
	// because the storage interprets the high half as signed.
	v := word.FromUnsigned32[uint64](0xFFFF_FFFF)
	assert.Equal(t, uint64(0xFFFF_FFFF_FFFF_FFFF), v)
}

func TestShiftMask(t *testing.T) {
	assert.Equal(t, uint(31), word.ShiftMask[uint32](uint32(0xFFFFFFFF)))
	assert.Equal(t, uint(63), word.ShiftMask[uint64](uint64(0xFFFFFFFFFFFFFFFF)))
}

func TestFloatNaNBoxRoundTrip(t *testing.T) {
	finite := []float32{0, 1.5, -2.25, 3.14159}
	for _, s := range finite {
		boxed := word.FromSingle(s)
		assert.Equal(t, s, word.ToSingle(boxed))
		assert.True(t, word.IsBoxedSingle(boxed))
		d := word.ToDouble(boxed)
		assert.True(t, d != d, "expected quiet NaN when reinterpreting a boxed single as double")
	}

	d := 2.71828
	assert.Equal(t, d, word.ToDouble(word.FromDouble(d)))
}
