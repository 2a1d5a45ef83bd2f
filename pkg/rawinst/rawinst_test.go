package rawinst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bassosimone/risc32/pkg/rawinst"
)

func TestLengthClassification(t *testing.T) {
	tests := []struct {
		name string
		low  uint16
		want int
	}{
		{"16-bit C.NOP", 0x0001, 2},
		{"32-bit standard", 0b0000000_00000_00000_000_00000_0010011, 4},
		{"48-bit reserved", 0b011111, 6},
		{"64-bit reserved", 0b0111111, 8},
		{"80-bit reserved (n=0)", 0b0_000_1111111, 10},
		{"96-bit reserved (n=1)", 0b001_00000_1111111, 12},
		{"reserved ≥192-bit", 0b111_00000_1111111, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rawinst.Length(tt.low))
		})
	}
}

func TestADDIImmediateReconstruction(t *testing.T) {
	// ADDI x1, x0, 3
	r := rawinst.New(0x00300093)
	assert.Equal(t, uint32(0x13), r.Opcode7())
	assert.Equal(t, uint32(1), r.Rd())
	assert.Equal(t, uint32(0), r.Rs1())
	assert.Equal(t, int32(3), r.ImmI())
}

func TestADDINegativeImmediate(t *testing.T) {
	// ADDI x1, x0, -4
	r := rawinst.New(0xffc00093)
	assert.Equal(t, int32(-4), r.ImmI())
}

func TestAUIPCImmediate(t *testing.T) {
	// AUIPC x2, 0x00001
	r := rawinst.New(0x00001117)
	assert.Equal(t, uint32(0x17), r.Opcode7())
	assert.Equal(t, int32(0x1000), r.ImmU())
}

func TestJALImmediate(t *testing.T) {
	// JAL x1, +8
	r := rawinst.New(0x008000ef)
	assert.Equal(t, int32(8), r.ImmJ())
	assert.Equal(t, uint32(1), r.Rd())
}

func TestBEQImmediate(t *testing.T) {
	// BEQ x0, x0, +12
	r := rawinst.New(0x00000663)
	assert.Equal(t, int32(12), r.ImmB())
}
