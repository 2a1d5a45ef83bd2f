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

func newTestHart64(t *testing.T, words ...uint32) *hart.Hart[uint64] {
	t.Helper()
	ram := bus.NewRAM[uint64](make([]byte, 4096))
	h := hart.New[uint64](ram, 0x8000_0000)
	require.NoError(t, h.WithMemory(func(b bus.Bus[uint64]) error {
		for i, w := range words {
			if err := b.WriteWord(uint64(0x8000_0000+4*i), w); err != nil {
				return err
			}
		}
		return nil
	}))
	return h
}

// int64OnlyCases covers every FP kind that moves or converts a 64-bit
// integer register (fcvt.l.s/fcvt.lu.s/fcvt.s.l/fcvt.s.lu and their
// double-precision and fmv.x.d/fmv.d.x counterparts): each must trap
// IllegalInstruction on RV32 and execute normally on RV64. This is the
// regression coverage for the bug where the single-precision forms
// were missing from the gate and silently ran on RV32 instead.
var int64OnlyCases = []struct {
	name string
	word uint32
}{
	{"FcvtLS", 0xC02080D3},  // fcvt.l.s x1, f1
	{"FcvtLuS", 0xC03080D3}, // fcvt.lu.s x1, f1
	{"FcvtSL", 0xD02080D3},  // fcvt.s.l f1, x1
	{"FcvtSLu", 0xD03080D3}, // fcvt.s.lu f1, x1
	{"FcvtLD", 0xC22080D3},  // fcvt.l.d x1, f1
	{"FcvtLuD", 0xC23080D3}, // fcvt.lu.d x1, f1
	{"FcvtDL", 0xD22080D3},  // fcvt.d.l f1, x1
	{"FcvtDLu", 0xD23080D3}, // fcvt.d.lu f1, x1
	{"FmvXD", 0xE20080D3},   // fmv.x.d x1, f1
	{"FmvDX", 0xF20080D3},   // fmv.d.x f1, x1
}

func TestInt64OnlyFPTrapsOnRV32(t *testing.T) {
	for _, c := range int64OnlyCases {
		t.Run(c.name, func(t *testing.T) {
			h := newTestHart(t, c.word)
			require.NoError(t, h.WriteCSR(register.NewCSR(register.AddrTVec), 0x9000_0000))
			exec.Step(h)
			assert.Equal(t, uint32(0x9000_0000), h.ReadPC(), "expected a trap to the configured handler")
		})
	}
}

func TestInt64OnlyFPRunsOnRV64(t *testing.T) {
	for _, c := range int64OnlyCases {
		t.Run(c.name, func(t *testing.T) {
			h := newTestHart64(t, c.word)
			require.NoError(t, h.WriteCSR(register.NewCSR(register.AddrTVec), 0x9000_0000))
			res := exec.Step(h)
			assert.Equal(t, exec.Running, res.Status)
			assert.NotEqual(t, uint64(0x9000_0000), h.ReadPC(), "must not trap on RV64")
			assert.Equal(t, uint64(0x8000_0004), h.ReadPC())
		})
	}
}
