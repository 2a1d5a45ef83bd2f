package decode

import (
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/rawinst"
	"github.com/bassosimone/risc32/pkg/register"
)

func decodeLoadFP(r rawinst.Raw) isa.Operation {
	var kind isa.Kind
	switch r.Funct3() {
	case 2:
		kind = isa.Flw
	case 3:
		kind = isa.Fld
	case 4:
		kind = isa.Flq
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
	return isa.Operation{
		Kind: kind,
		Frd:  register.NewFloat(uint(r.Rd())),
		Rs1:  register.NewInt(uint(r.Rs1())),
		Imm:  r.ImmI(),
	}
}

func decodeStoreFP(r rawinst.Raw) isa.Operation {
	var kind isa.Kind
	switch r.Funct3() {
	case 2:
		kind = isa.Fsw
	case 3:
		kind = isa.Fsd
	case 4:
		kind = isa.Fsq
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
	return isa.Operation{
		Kind: kind,
		Rs1:  register.NewInt(uint(r.Rs1())),
		Frs2: register.NewFloat(uint(r.Rs2())),
		Imm:  r.ImmS(),
	}
}

// decodeFused handles the four R4-type fused multiply-add families
// (FMADD/FMSUB/FNMSUB/FNMADD), which share a layout differing only in
// the fmt field selecting precision.
func decodeFused(r rawinst.Raw, kindS, kindD, kindQ isa.Kind) isa.Operation {
	kind, ok := fmtKind(r.Funct2(), kindS, kindD, kindQ)
	if !ok {
		return isa.Operation{Kind: isa.Invalid}
	}
	return isa.Operation{
		Kind: kind,
		Frd:  register.NewFloat(uint(r.Rd())),
		Frs1: register.NewFloat(uint(r.Rs1())),
		Frs2: register.NewFloat(uint(r.Rs2())),
		Frs3: register.NewFloat(uint(r.Rs3())),
		RM:   uint8(r.RM()),
	}
}

func fmtKind(fmt uint32, s, d, q isa.Kind) (isa.Kind, bool) {
	switch fmt {
	case 0:
		return s, true
	case 1:
		return d, true
	case 3:
		return q, true
	default:
		return isa.Invalid, false
	}
}

// decodeOpFP decodes the OP-FP major opcode, whose funct7 field packs
// an operation-family code in its top five bits and (for most,
// though not all, sub-families) a precision selector in its bottom
// two bits. The conversion families instead use the rs2 field to name
// source or target width.
func decodeOpFP(r rawinst.Raw) isa.Operation {
	fam := r.Funct7() >> 2
	fmt := r.Funct7() & 0x3
	frd, frs1, frs2 := register.NewFloat(uint(r.Rd())), register.NewFloat(uint(r.Rs1())), register.NewFloat(uint(r.Rs2()))
	rm := uint8(r.RM())

	switch fam {
	case 0x00: // FADD
		if k, ok := fmtKind(fmt, isa.FaddS, isa.FaddD, isa.FaddQ); ok {
			return isa.Operation{Kind: k, Frd: frd, Frs1: frs1, Frs2: frs2, RM: rm}
		}
	case 0x01: // FSUB
		if k, ok := fmtKind(fmt, isa.FsubS, isa.FsubD, isa.FsubQ); ok {
			return isa.Operation{Kind: k, Frd: frd, Frs1: frs1, Frs2: frs2, RM: rm}
		}
	case 0x02: // FMUL
		if k, ok := fmtKind(fmt, isa.FmulS, isa.FmulD, isa.FmulQ); ok {
			return isa.Operation{Kind: k, Frd: frd, Frs1: frs1, Frs2: frs2, RM: rm}
		}
	case 0x03: // FDIV
		if k, ok := fmtKind(fmt, isa.FdivS, isa.FdivD, isa.FdivQ); ok {
			return isa.Operation{Kind: k, Frd: frd, Frs1: frs1, Frs2: frs2, RM: rm}
		}
	case 0x0b: // FSQRT, rs2 == 0
		if k, ok := fmtKind(fmt, isa.FsqrtS, isa.FsqrtD, isa.FsqrtQ); ok {
			return isa.Operation{Kind: k, Frd: frd, Frs1: frs1, RM: rm}
		}
	case 0x04: // FSGNJ/FSGNJN/FSGNJX
		var sj, sjn, sjx isa.Kind
		switch fmt {
		case 0:
			sj, sjn, sjx = isa.FsgnjS, isa.FsgnjnS, isa.FsgnjxS
		case 1:
			sj, sjn, sjx = isa.FsgnjD, isa.FsgnjnD, isa.FsgnjxD
		case 3:
			sj, sjn, sjx = isa.FsgnjQ, isa.FsgnjnQ, isa.FsgnjxQ
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
		var k isa.Kind
		switch r.Funct3() {
		case 0:
			k = sj
		case 1:
			k = sjn
		case 2:
			k = sjx
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
		return isa.Operation{Kind: k, Frd: frd, Frs1: frs1, Frs2: frs2}
	case 0x05: // FMIN/FMAX
		var min, max isa.Kind
		switch fmt {
		case 0:
			min, max = isa.FminS, isa.FmaxS
		case 1:
			min, max = isa.FminD, isa.FmaxD
		case 3:
			min, max = isa.FminQ, isa.FmaxQ
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
		var k isa.Kind
		switch r.Funct3() {
		case 0:
			k = min
		case 1:
			k = max
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
		return isa.Operation{Kind: k, Frd: frd, Frs1: frs1, Frs2: frs2}
	case 0x18: // FCVT.<int>.<fmt> (float to int)
		var w, wu, l, lu isa.Kind
		switch fmt {
		case 0:
			w, wu, l, lu = isa.FcvtWS, isa.FcvtWuS, isa.FcvtLS, isa.FcvtLuS
		case 1:
			w, wu, l, lu = isa.FcvtWD, isa.FcvtWuD, isa.FcvtLD, isa.FcvtLuD
		case 3:
			w, wu, l, lu = isa.FcvtWQ, isa.FcvtWuQ, isa.FcvtLQ, isa.FcvtLuQ
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
		var k isa.Kind
		switch r.Rs2() {
		case 0:
			k = w
		case 1:
			k = wu
		case 2:
			k = l
		case 3:
			k = lu
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
		return isa.Operation{Kind: k, Rd: register.NewInt(uint(r.Rd())), Frs1: frs1, RM: rm}
	case 0x1a: // FCVT.<fmt>.<int> (int to float)
		var w, wu, l, lu isa.Kind
		switch fmt {
		case 0:
			w, wu, l, lu = isa.FcvtSW, isa.FcvtSWu, isa.FcvtSL, isa.FcvtSLu
		case 1:
			w, wu, l, lu = isa.FcvtDW, isa.FcvtDWu, isa.FcvtDL, isa.FcvtDLu
		case 3:
			w, wu, l, lu = isa.FcvtQW, isa.FcvtQWu, isa.FcvtQL, isa.FcvtQLu
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
		var k isa.Kind
		switch r.Rs2() {
		case 0:
			k = w
		case 1:
			k = wu
		case 2:
			k = l
		case 3:
			k = lu
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
		return isa.Operation{Kind: k, Frd: frd, Rs1: register.NewInt(uint(r.Rs1())), RM: rm}
	case 0x08: // FCVT between floating point formats: target fmt in low bits, source in rs2.
		var k isa.Kind
		switch {
		case fmt == 0 && r.Rs2() == 1:
			k = isa.FcvtSD
		case fmt == 0 && r.Rs2() == 3:
			k = isa.FcvtSQ
		case fmt == 1 && r.Rs2() == 0:
			k = isa.FcvtDS
		case fmt == 1 && r.Rs2() == 3:
			k = isa.FcvtDQ
		case fmt == 3 && r.Rs2() == 0:
			k = isa.FcvtQS
		case fmt == 3 && r.Rs2() == 1:
			k = isa.FcvtQD
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
		return isa.Operation{Kind: k, Frd: frd, Frs1: frs1, RM: rm}
	case 0x1c: // FMV.X.W/FCLASS.S and the D/Q analogues, rs2 == 0
		var mv, class isa.Kind
		switch fmt {
		case 0:
			mv, class = isa.FmvXW, isa.FclassS
		case 1:
			mv, class = isa.FmvXD, isa.FclassD
		case 3:
			class = isa.FclassQ
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
		switch r.Funct3() {
		case 0:
			if mv == isa.Invalid {
				return isa.Operation{Kind: isa.Invalid}
			}
			return isa.Operation{Kind: mv, Rd: register.NewInt(uint(r.Rd())), Frs1: frs1}
		case 1:
			return isa.Operation{Kind: class, Rd: register.NewInt(uint(r.Rd())), Frs1: frs1}
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
	case 0x1e: // FMV.W.X and the D analogue, rs2 == 0, funct3 == 0
		if r.Funct3() != 0 {
			return isa.Operation{Kind: isa.Invalid}
		}
		switch fmt {
		case 0:
			return isa.Operation{Kind: isa.FmvWX, Frd: frd, Rs1: register.NewInt(uint(r.Rs1()))}
		case 1:
			return isa.Operation{Kind: isa.FmvDX, Frd: frd, Rs1: register.NewInt(uint(r.Rs1()))}
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
	case 0x14: // FEQ/FLT/FLE
		var eq, lt, le isa.Kind
		switch fmt {
		case 0:
			eq, lt, le = isa.FeqS, isa.FltS, isa.FleS
		case 1:
			eq, lt, le = isa.FeqD, isa.FltD, isa.FleD
		case 3:
			eq, lt, le = isa.FeqQ, isa.FltQ, isa.FleQ
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
		var k isa.Kind
		switch r.Funct3() {
		case 2:
			k = eq
		case 1:
			k = lt
		case 0:
			k = le
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
		return isa.Operation{Kind: k, Rd: register.NewInt(uint(r.Rd())), Frs1: frs1, Frs2: frs2}
	}
	return isa.Operation{Kind: isa.Invalid}
}
