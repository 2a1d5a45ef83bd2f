package hart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bassosimone/risc32/pkg/bus"
	"github.com/bassosimone/risc32/pkg/hart"
	"github.com/bassosimone/risc32/pkg/register"
)

func newTestHart(t *testing.T) *hart.Hart[uint32] {
	t.Helper()
	ram := bus.NewRAM[uint32](make([]byte, 4096))
	return hart.New[uint32](ram, 0x8000_0000)
}

func TestZeroRegisterAlwaysReadsZero(t *testing.T) {
	h := newTestHart(t)
	h.WriteIntRegister(register.NewInt(0), 42)
	assert.Equal(t, uint32(0), h.ReadIntRegister(register.NewInt(0)))
}

func TestResetRestoresPCAndRecordsCause(t *testing.T) {
	h := newTestHart(t)
	h.WritePC(0x1234)
	h.WriteIntRegister(register.NewInt(5), 99)
	h.Reset(hart.Reset)
	assert.Equal(t, uint32(0x8000_0000), h.ReadPC())
	assert.Equal(t, uint32(0), h.ReadIntRegister(register.NewInt(5)))
	cause, err := h.ReadCSR(register.NewCSR(register.AddrCause))
	require.NoError(t, err)
	assert.Equal(t, uint32(0), cause)
}

func TestExceptionRedirectsToTrapVectorBase(t *testing.T) {
	h := newTestHart(t)
	require.NoError(t, h.WriteCSR(register.NewCSR(register.AddrTVec), 0x9000_0003))
	h.Exception(hart.IllegalInstruction)
	assert.Equal(t, uint32(0x9000_0000), h.ReadPC())
	cause, err := h.ReadCSR(register.NewCSR(register.AddrCause))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), cause)
}

func TestFenceVirtualMemoryConfigTraps(t *testing.T) {
	h := newTestHart(t)
	require.NoError(t, h.WriteCSR(register.NewCSR(register.AddrTVec), 0))
	h.FenceVirtualMemoryConfig(register.NewInt(0), register.NewInt(0))
	cause, err := h.ReadCSR(register.NewCSR(register.AddrCause))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), cause)
}

func TestEnvironmentCallDeclines(t *testing.T) {
	h := newTestHart(t)
	assert.False(t, h.EnvironmentCall(h.ReadPC()))
	assert.False(t, h.EnvironmentBreak(h.ReadPC()))
}

func TestWithMemoryScopesBusAccess(t *testing.T) {
	h := newTestHart(t)
	err := h.WithMemory(func(b bus.Bus[uint32]) error {
		return b.WriteWord(0, 0xdeadbeef)
	})
	require.NoError(t, err)
	var got uint32
	err = h.WithMemory(func(b bus.Bus[uint32]) error {
		var e error
		got, e = b.ReadWord(0)
		return e
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), got)
}
