package bus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bassosimone/risc32/pkg/bus"
)

func TestRAMLittleEndianWordRoundTrip(t *testing.T) {
	ram := bus.NewRAM[uint32](make([]byte, 16))
	require.NoError(t, ram.WriteWord(4, 0xdeadbeef))
	v, err := ram.ReadWord(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), v)

	b0, _ := ram.ReadByte(4)
	assert.Equal(t, uint8(0xef), b0)
}

func TestRAMWrapsModuloLength(t *testing.T) {
	ram := bus.NewRAM[uint32](make([]byte, 4))
	require.NoError(t, ram.WriteByte(0, 0xAA))
	v, err := ram.ReadByte(4) // wraps to index 0
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAA), v)
}

func TestROMRejectsWrites(t *testing.T) {
	rom := bus.NewROM[uint32]([]byte{1, 2, 3, 4})
	err := rom.WriteByte(0, 0xFF)
	require.Error(t, err)
	fault, ok := err.(*bus.Fault)
	require.True(t, ok)
	assert.Equal(t, bus.AccessFault, fault.Kind)
}

func TestTransformerSubtractsBase(t *testing.T) {
	ram := bus.NewRAM[uint32](make([]byte, 16))
	require.NoError(t, ram.WriteWord(0, 0x11223344))
	transformed := bus.NewTransformer[uint32](ram, bus.SubtractBase[uint32](0x8000_0000))
	v, err := transformed.ReadWord(0x8000_0000)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x11223344), v)
}

func TestTransformerPropagatesCallbackFault(t *testing.T) {
	ram := bus.NewRAM[uint32](make([]byte, 16))
	transformed := bus.NewTransformer[uint32](ram, bus.SubtractBase[uint32](0x8000_0000))
	_, err := transformed.ReadByte(0x1000)
	require.Error(t, err)
	fault, ok := err.(*bus.Fault)
	require.True(t, ok)
	assert.Equal(t, bus.PageFault, fault.Kind)
}

func TestWidthConverterRejectsOutOfRange(t *testing.T) {
	ram := bus.NewRAM[uint32](make([]byte, 16))
	conv := bus.NewWidthConverter[uint64, uint32](ram)
	_, err := conv.ReadByte(uint64(0x1_0000_0000))
	require.Error(t, err)
	fault, ok := err.(*bus.Fault)
	require.True(t, ok)
	assert.Equal(t, bus.PageFault, fault.Kind)
}

func TestWidthConverterPassesThroughInRange(t *testing.T) {
	ram := bus.NewRAM[uint32](make([]byte, 16))
	require.NoError(t, ram.WriteByte(2, 0x42))
	conv := bus.NewWidthConverter[uint64, uint32](ram)
	v, err := conv.ReadByte(2)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)
}
