package decode

import (
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/rawinst"
	"github.com/bassosimone/risc32/pkg/register"
	"github.com/bassosimone/risc32/pkg/word"
)

// DecodeCompressed decodes a 16-bit compressed instruction. xlen (32 or
// 64) resolves the one 16-bit bit pattern that RV32C and RV64C assign
// to different instructions: quadrant 1, funct3 0b001 is c.jal on
// RV32C and c.addiw on RV64C (RV32C has no c.addiw — it has no 64-bit
// words to extend — and RV64C has no c.jal — jal's own range covers
// what c.jal would save). Every other overloaded pattern in this
// decoder (c.flw/c.flwsp vs. c.ld/c.ldsp, and so on) instead decodes
// the wider RV64C form unconditionally and leaves the executor to gate
// on XLEN, the same way the standard OP-IMM-32/OP-32 families are
// handled; c.jal/c.addiw cannot use that approach because both forms
// are always valid 16-bit patterns with no trapping behavior to fall
// back on. The double-precision-only compressed float loads/stores
// (c.fld, c.fsd, c.fldsp, c.fsdsp) and their RV32 single-precision
// counterparts are not modeled and decode as Invalid.
func DecodeCompressed(low uint16, xlen uint) isa.Operation {
	r := rawinst.New(uint32(low))
	switch r.Opcode2() {
	case 0b00:
		return decodeCQuadrant0(r)
	case 0b01:
		return decodeCQuadrant1(r, xlen)
	case 0b10:
		return decodeCQuadrant2(r)
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
}

// cJumpImm reassembles the 11-bit sign-extended jump-target immediate
// shared by c.j and the RV32-only c.jal, per the CJ format's bit
// scramble.
func cJumpImm(r rawinst.Raw) int32 {
	t := r.CJTarget()
	v := (((t >> 10) & 1) << 11) | (((t >> 6) & 1) << 10) | (((t >> 8) & 1) << 9) |
		(((t >> 7) & 1) << 8) | (((t >> 4) & 1) << 7) | (((t >> 5) & 1) << 6) |
		(((t >> 0) & 1) << 5) | (((t >> 9) & 1) << 4) | (((t >> 1) & 0x7) << 1)
	return word.SignExtendBits(v, 12)
}

func decodeCQuadrant0(r rawinst.Raw) isa.Operation {
	rdq := register.NewCompressedInt(uint(r.CRs2q()))
	rs1q := register.NewCompressedInt(uint(r.CRs1q()))
	switch r.CFunct3() {
	case 0b000:
		iw := r.CIWImm()
		if iw == 0 {
			return isa.Operation{Kind: isa.Invalid}
		}
		nzuimm := ((iw>>2)&0xF)<<6 | ((iw>>6)&0x3)<<4 | ((iw>>1)&1)<<2 | (iw&1)<<3
		return isa.Operation{Kind: isa.CAddi4spn, Rd: rdq, Rs1: register.NewInt(2), Imm: int32(nzuimm)}
	case 0b010:
		high, low := r.CLSImmHigh(), r.CLSImmLow()
		off := (high << 3) | ((low >> 1) & 1 << 2) | ((low & 1) << 6)
		return isa.Operation{Kind: isa.CLw, Rd: rdq, Rs1: rs1q, Imm: int32(off)}
	case 0b011:
		high, low := r.CLSImmHigh(), r.CLSImmLow()
		off := (high << 3) | (low << 6)
		return isa.Operation{Kind: isa.CLd, Rd: rdq, Rs1: rs1q, Imm: int32(off)}
	case 0b110:
		high, low := r.CLSImmHigh(), r.CLSImmLow()
		off := (high << 3) | ((low >> 1) & 1 << 2) | ((low & 1) << 6)
		return isa.Operation{Kind: isa.CSw, Rs1: rs1q, Rs2: rdq, Imm: int32(off)}
	case 0b111:
		high, low := r.CLSImmHigh(), r.CLSImmLow()
		off := (high << 3) | (low << 6)
		return isa.Operation{Kind: isa.CSd, Rs1: rs1q, Rs2: rdq, Imm: int32(off)}
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
}

func ciImm6(r rawinst.Raw) int32 {
	v := (r.CBit12() << 5) | r.CImmLo5()
	return word.SignExtendBits(v, 6)
}

func decodeCQuadrant1(r rawinst.Raw, xlen uint) isa.Operation {
	rdrs1 := register.NewInt(uint(r.CRdRs1()))
	switch r.CFunct3() {
	case 0b000:
		if rdrs1.Num() == 0 {
			return isa.Operation{Kind: isa.CNop}
		}
		return isa.Operation{Kind: isa.CAddi, Rd: rdrs1, Rs1: rdrs1, Imm: ciImm6(r)}
	case 0b001:
		if xlen == 32 {
			return isa.Operation{Kind: isa.CJalC, Imm: cJumpImm(r)}
		}
		return isa.Operation{Kind: isa.CAddiw, Rd: rdrs1, Rs1: rdrs1, Imm: ciImm6(r)}
	case 0b010:
		return isa.Operation{Kind: isa.CLi, Rd: rdrs1, Imm: ciImm6(r)}
	case 0b011:
		if rdrs1.Num() == 2 {
			lo := r.CImmLo5()
			v := (r.CBit12() << 9) | (((lo >> 1) & 0x3) << 7) | (((lo >> 4) & 1) << 4) |
				(((lo >> 3) & 1) << 6) | ((lo & 1) << 5)
			return isa.Operation{Kind: isa.CAddi16sp, Rd: register.NewInt(2), Rs1: register.NewInt(2), Imm: word.SignExtendBits(v, 10)}
		}
		lo := r.CImmLo5()
		v := (r.CBit12() << 17) | (lo << 12)
		return isa.Operation{Kind: isa.CLui, Rd: rdrs1, Imm: word.SignExtendBits(v, 18)}
	case 0b100:
		rdq := register.NewCompressedInt(uint(r.CRs1q()))
		switch r.CFunct2High() {
		case 0b00:
			shamt := (r.CBit12() << 5) | r.CImmLo5()
			return isa.Operation{Kind: isa.CSrli, Rd: rdq, Rs1: rdq, Imm: int32(shamt)}
		case 0b01:
			shamt := (r.CBit12() << 5) | r.CImmLo5()
			return isa.Operation{Kind: isa.CSrai, Rd: rdq, Rs1: rdq, Imm: int32(shamt)}
		case 0b10:
			return isa.Operation{Kind: isa.CAndi, Rd: rdq, Rs1: rdq, Imm: ciImm6(r)}
		case 0b11:
			rs2q := register.NewCompressedInt(uint(r.CRs2q()))
			var kind isa.Kind
			if r.CBit12() == 0 {
				switch r.CFunct2Low() {
				case 0b00:
					kind = isa.CSub
				case 0b01:
					kind = isa.CXor
				case 0b10:
					kind = isa.COr
				case 0b11:
					kind = isa.CAnd
				}
			} else {
				switch r.CFunct2Low() {
				case 0b00:
					kind = isa.CSubw
				case 0b01:
					kind = isa.CAddw
				default:
					return isa.Operation{Kind: isa.Invalid}
				}
			}
			return isa.Operation{Kind: kind, Rd: rdq, Rs1: rdq, Rs2: rs2q}
		}
		return isa.Operation{Kind: isa.Invalid}
	case 0b101:
		return isa.Operation{Kind: isa.CJ, Imm: cJumpImm(r)}
	case 0b110, 0b111:
		rs1q := register.NewCompressedInt(uint(r.CRs1q()))
		high, low := r.CBImmHigh(), r.CBImmLow()
		v := (((high >> 2) & 1) << 8) | (((low >> 4) & 1) << 7) | (((low >> 3) & 1) << 6) |
			((low & 1) << 5) | (((high >> 1) & 1) << 4) | ((high & 1) << 3) |
			(((low >> 2) & 1) << 2) | (((low >> 1) & 1) << 1)
		kind := isa.CBeqz
		if r.CFunct3() == 0b111 {
			kind = isa.CBnez
		}
		return isa.Operation{Kind: kind, Rs1: rs1q, Imm: word.SignExtendBits(v, 9)}
	}
	return isa.Operation{Kind: isa.Invalid}
}

func decodeCQuadrant2(r rawinst.Raw) isa.Operation {
	rdrs1 := register.NewInt(uint(r.CRdRs1()))
	switch r.CFunct3() {
	case 0b000:
		shamt := (r.CBit12() << 5) | r.CImmLo5()
		return isa.Operation{Kind: isa.CSlli, Rd: rdrs1, Rs1: rdrs1, Imm: int32(shamt)}
	case 0b010:
		lo := r.CImmLo5()
		off := (r.CBit12() << 5) | (((lo >> 2) & 0x7) << 2) | ((lo & 0x3) << 6)
		return isa.Operation{Kind: isa.CLwsp, Rd: rdrs1, Rs1: register.NewInt(2), Imm: int32(off)}
	case 0b011:
		lo := r.CImmLo5()
		off := (r.CBit12() << 5) | (((lo >> 3) & 0x3) << 3) | ((lo & 0x7) << 6)
		return isa.Operation{Kind: isa.CLdsp, Rd: rdrs1, Rs1: register.NewInt(2), Imm: int32(off)}
	case 0b100:
		rs2 := register.NewInt(uint(r.CRs2()))
		if r.CBit12() == 0 {
			if rs2.Num() == 0 {
				if rdrs1.Num() == 0 {
					return isa.Operation{Kind: isa.Invalid}
				}
				return isa.Operation{Kind: isa.CJr, Rs1: rdrs1}
			}
			return isa.Operation{Kind: isa.CMv, Rd: rdrs1, Rs2: rs2}
		}
		if rs2.Num() == 0 {
			if rdrs1.Num() == 0 {
				return isa.Operation{Kind: isa.CEbreak}
			}
			return isa.Operation{Kind: isa.CJalr, Rs1: rdrs1}
		}
		return isa.Operation{Kind: isa.CAdd, Rd: rdrs1, Rs1: rdrs1, Rs2: rs2}
	case 0b110:
		imm := r.CSSImm()
		off := (((imm >> 2) & 0xF) << 2) | ((imm & 0x3) << 6)
		return isa.Operation{Kind: isa.CSwsp, Rs1: register.NewInt(2), Rs2: register.NewInt(uint(r.CRs2())), Imm: int32(off)}
	case 0b111:
		imm := r.CSSImm()
		off := (((imm >> 3) & 0x7) << 3) | ((imm & 0x7) << 6)
		return isa.Operation{Kind: isa.CSdsp, Rs1: register.NewInt(2), Rs2: register.NewInt(uint(r.CRs2())), Imm: int32(off)}
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
}
