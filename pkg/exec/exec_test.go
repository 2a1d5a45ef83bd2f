package exec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bassosimone/risc32/pkg/bus"
	"github.com/bassosimone/risc32/pkg/exec"
	"github.com/bassosimone/risc32/pkg/hart"
	"github.com/bassosimone/risc32/pkg/register"
)

func newTestHart(t *testing.T, words ...uint32) *hart.Hart[uint32] {
	t.Helper()
	ram := bus.NewRAM[uint32](make([]byte, 4096))
	h := hart.New[uint32](ram, 0x8000_0000)
	require.NoError(t, h.WithMemory(func(b bus.Bus[uint32]) error {
		for i, w := range words {
			if err := b.WriteWord(uint32(0x8000_0000+4*i), w); err != nil {
				return err
			}
		}
		return nil
	}))
	return h
}

func TestStepADDI(t *testing.T) {
	h := newTestHart(t, 0x00300093) // addi x1, x0, 3
	res := exec.Step(h)
	assert.Equal(t, exec.Running, res.Status)
	assert.Equal(t, uint32(3), h.ReadIntRegister(register.NewInt(1)))
	assert.Equal(t, uint32(0x8000_0004), h.ReadPC())
}

func TestStepADDINegative(t *testing.T) {
	h := newTestHart(t, 0xffc00093) // addi x1, x0, -4
	exec.Step(h)
	assert.Equal(t, uint32(0xFFFFFFFC), h.ReadIntRegister(register.NewInt(1)))
	assert.Equal(t, uint32(0x8000_0004), h.ReadPC())
}

func TestStepAUIPC(t *testing.T) {
	h := newTestHart(t, 0x00001117) // auipc x2, 0x00001
	exec.Step(h)
	assert.Equal(t, uint32(0x8000_1000), h.ReadIntRegister(register.NewInt(2)))
	assert.Equal(t, uint32(0x8000_0004), h.ReadPC())
}

func TestStepJAL(t *testing.T) {
	h := newTestHart(t, 0x008000ef) // jal x1, +8
	exec.Step(h)
	assert.Equal(t, uint32(0x8000_0004), h.ReadIntRegister(register.NewInt(1)))
	assert.Equal(t, uint32(0x8000_0008), h.ReadPC())
}

func TestStepBEQTaken(t *testing.T) {
	h := newTestHart(t, 0x00000663) // beq x0, x0, +12
	exec.Step(h)
	assert.Equal(t, uint32(0x8000_000C), h.ReadPC())
}

func TestStepDIVUByZero(t *testing.T) {
	h := newTestHart(t, 0x023150b3) // divu x1, x2, x3
	h.WriteIntRegister(register.NewInt(2), 7)
	h.WriteIntRegister(register.NewInt(3), 0)
	exec.Step(h)
	assert.Equal(t, uint32(0xFFFFFFFF), h.ReadIntRegister(register.NewInt(1)))
}

func TestStepCSRRWRoundTrips(t *testing.T) {
	h := newTestHart(t, 0x001110f3) // csrrw x1, 0x001, x2
	h.WriteIntRegister(register.NewInt(2), 0x1f)
	exec.Step(h)
	v, err := h.ReadCSR(register.NewCSR(register.AddrFFlags))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1f), v)
}

func TestStepInvalidOpcodeTraps(t *testing.T) {
	// An all-zero word's low two bits select the 2-byte compressed
	// form; quadrant 0 with a zero immediate has no valid C.ADDI4SPN
	// encoding, so it decodes to Invalid exactly like an unassigned
	// standard-form opcode would.
	h := newTestHart(t, 0x00000000)
	require.NoError(t, h.WriteCSR(register.NewCSR(register.AddrTVec), 0x9000_0000))
	res := exec.Step(h)
	assert.Equal(t, exec.Running, res.Status)
	assert.Equal(t, uint32(0x9000_0000), h.ReadPC())
}

func TestStepEcallEscalates(t *testing.T) {
	h := newTestHart(t, 0x00000073) // ecall
	res := exec.Step(h)
	assert.Equal(t, exec.EnvironmentCall, res.Status)
}

func TestStepEbreakEscalates(t *testing.T) {
	h := newTestHart(t, 0x00100073) // ebreak
	res := exec.Step(h)
	assert.Equal(t, exec.EnvironmentBreak, res.Status)
}

func TestStepLoadStoreRoundTrip(t *testing.T) {
	// sw x1, 0(x2); lw x3, 0(x2)
	h := newTestHart(t, 0x00112023, 0x00012183)
	h.WriteIntRegister(register.NewInt(1), 0xdeadbeef)
	h.WriteIntRegister(register.NewInt(2), 0x8000_0100)
	exec.Step(h)
	exec.Step(h)
	assert.Equal(t, uint32(0xdeadbeef), h.ReadIntRegister(register.NewInt(3)))
}

func TestStepCompressedNopAdvancesByTwo(t *testing.T) {
	h := newTestHart(t, 0x00000001) // c.nop in the low 16-bit half; the high half is not executed
	exec.Step(h)
	assert.Equal(t, uint32(0x8000_0002), h.ReadPC())
}
