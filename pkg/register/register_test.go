package register_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bassosimone/risc32/pkg/register"
)

func TestZeroRegisterAlwaysZero(t *testing.T) {
	var f register.IntFile[uint32]
	r0 := register.ZeroInt()
	f.Write(r0, 0xdeadbeef)
	assert.Equal(t, uint32(0), f.Read(r0))
}

func TestIntFileReadWrite(t *testing.T) {
	var f register.IntFile[uint64]
	r5 := register.NewInt(5)
	f.Write(r5, 123)
	assert.Equal(t, uint64(123), f.Read(r5))
}

func TestCompressedSelectorOffset(t *testing.T) {
	assert.Equal(t, uint(8), register.NewCompressedInt(0).Num())
	assert.Equal(t, uint(15), register.NewCompressedInt(7).Num())
}

func TestOutOfRangeSelectorPanics(t *testing.T) {
	assert.Panics(t, func() { register.NewInt(32) })
	assert.Panics(t, func() { register.NewFloat(32) })
	assert.Panics(t, func() { register.NewCSR(4096) })
}

func TestUnsupportedCSR(t *testing.T) {
	var s register.CSRSpace[uint32]
	_, err := s.Read(register.NewCSR(0x123))
	assert.Error(t, err)
	csrErr, ok := err.(*register.CSRError)
	assert.True(t, ok)
	assert.Equal(t, register.CSRUnsupported, csrErr.Kind)
}

func TestMaterializedCSRRoundTrip(t *testing.T) {
	var s register.CSRSpace[uint64]
	assert.NoError(t, s.Write(register.NewCSR(register.AddrTVec), 0x8000_0100))
	v, err := s.Read(register.NewCSR(register.AddrTVec))
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x8000_0100), v)
}
