package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bassosimone/risc32/pkg/decode"
	"github.com/bassosimone/risc32/pkg/isa"
)

func TestDecodeADDI(t *testing.T) {
	d := decode.Decode(0x00300093, 0x1000, 32)
	assert.Equal(t, isa.Addi, d.Op.Kind)
	assert.Equal(t, uint(1), d.Op.Rd.Num())
	assert.Equal(t, int32(3), d.Op.Imm)
	assert.Equal(t, 4, d.Length)
}

func TestDecodeAUIPC(t *testing.T) {
	d := decode.Decode(0x00001117, 0, 32)
	assert.Equal(t, isa.Auipc, d.Op.Kind)
	assert.Equal(t, int32(0x1000), d.Op.Imm)
}

func TestDecodeJAL(t *testing.T) {
	d := decode.Decode(0x008000ef, 0, 32)
	assert.Equal(t, isa.Jal, d.Op.Kind)
	assert.Equal(t, int32(8), d.Op.Imm)
}

func TestDecodeBEQ(t *testing.T) {
	d := decode.Decode(0x00000663, 0, 32)
	assert.Equal(t, isa.Beq, d.Op.Kind)
	assert.Equal(t, int32(12), d.Op.Imm)
}

func TestDecodeAdd(t *testing.T) {
	// ADD x1, x2, x3
	d := decode.Decode(0x003100b3, 0, 32)
	assert.Equal(t, isa.Add, d.Op.Kind)
	assert.Equal(t, uint(1), d.Op.Rd.Num())
	assert.Equal(t, uint(2), d.Op.Rs1.Num())
	assert.Equal(t, uint(3), d.Op.Rs2.Num())
}

func TestDecodeDIVU(t *testing.T) {
	// DIVU x1, x2, x3
	d := decode.Decode(0x023150b3, 0, 32)
	assert.Equal(t, isa.Divu, d.Op.Kind)
}

func TestDecodeECALL(t *testing.T) {
	d := decode.Decode(0x00000073, 0, 32)
	assert.Equal(t, isa.Ecall, d.Op.Kind)
}

func TestDecodeEBREAK(t *testing.T) {
	d := decode.Decode(0x00100073, 0, 32)
	assert.Equal(t, isa.Ebreak, d.Op.Kind)
}

func TestDecodeCSRRW(t *testing.T) {
	// CSRRW x1, fflags(0x001), x2
	d := decode.Decode(0x001110f3, 0, 32)
	assert.Equal(t, isa.Csrrw, d.Op.Kind)
	assert.Equal(t, uint(0x001), d.Op.CSR.Num())
}

func TestDecodeCompressedADDI4SPN(t *testing.T) {
	// c.addi4spn x8, sp, 4
	d := decode.Decode(0x0040, 0, 32)
	assert.Equal(t, isa.CAddi4spn, d.Op.Kind)
	assert.Equal(t, 2, d.Length)
}

func TestDecodeCompressedNOP(t *testing.T) {
	d := decode.Decode(0x0001, 0, 32)
	assert.Equal(t, isa.CNop, d.Op.Kind)
}

func TestDecodeReservedLength(t *testing.T) {
	d := decode.Decode(0xffff, 0, 32)
	assert.Equal(t, isa.Invalid, d.Op.Kind)
	assert.Equal(t, 0, d.Length)
}

// TestDecodeQuadrant1JalAddiwAmbiguity pins the bug the maintainer
// caught: quadrant-1 funct3=001 is c.jal on RV32C and c.addiw on
// RV64C, and resolving it requires threading XLEN into the decoder
// rather than leaving it to the executor.
func TestDecodeQuadrant1JalAddiwAmbiguity(t *testing.T) {
	d32 := decode.Decode(0x2001, 0, 32)
	assert.Equal(t, isa.CJalC, d32.Op.Kind)

	d64 := decode.Decode(0x2001, 0, 64)
	assert.Equal(t, isa.CAddiw, d64.Op.Kind)
}

// TestDecodeCompressedTable exercises the remaining C-extension Kinds
// not already covered above, one encoding per quadrant/format, as a
// round-trip regression net against future decode changes. The RV64
// load/store forms c.ld, c.sd, c.ldsp and c.sdsp are not in the table.
func TestDecodeCompressedTable(t *testing.T) {
	cases := []struct {
		name string
		word uint32
		xlen uint
		want isa.Kind
	}{
		{"c.lw", 0x4004, 32, isa.CLw},
		{"c.sw", 0xC004, 32, isa.CSw},
		{"c.addi", 0x0085, 32, isa.CAddi},
		{"c.li", 0x4095, 32, isa.CLi},
		{"c.lui", 0x6089, 32, isa.CLui},
		{"c.addi16sp", 0x6105, 32, isa.CAddi16sp},
		{"c.srli", 0x8005, 32, isa.CSrli},
		{"c.srai", 0x8405, 32, isa.CSrai},
		{"c.andi", 0x880D, 32, isa.CAndi},
		{"c.sub", 0x8C05, 32, isa.CSub},
		{"c.xor", 0x8C25, 32, isa.CXor},
		{"c.or", 0x8C45, 32, isa.COr},
		{"c.and", 0x8C65, 32, isa.CAnd},
		{"c.subw", 0x9C05, 64, isa.CSubw},
		{"c.addw", 0x9C25, 64, isa.CAddw},
		{"c.j", 0xA001, 32, isa.CJ},
		{"c.beqz", 0xC001, 32, isa.CBeqz},
		{"c.bnez", 0xE001, 32, isa.CBnez},
		{"c.slli", 0x0086, 32, isa.CSlli},
		{"c.lwsp", 0x4082, 32, isa.CLwsp},
		{"c.swsp", 0xC006, 32, isa.CSwsp},
		{"c.jr", 0x8082, 32, isa.CJr},
		{"c.mv", 0x808A, 32, isa.CMv},
		{"c.ebreak", 0x9002, 32, isa.CEbreak},
		{"c.jalr", 0x9082, 32, isa.CJalr},
		{"c.add", 0x908A, 32, isa.CAdd},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := decode.Decode(c.word, 0, c.xlen)
			assert.Equal(t, c.want, d.Op.Kind)
			assert.Equal(t, 2, d.Length)
		})
	}
}
