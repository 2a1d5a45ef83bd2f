package exec

import (
	"math"

	"github.com/bassosimone/risc32/pkg/bus"
	"github.com/bassosimone/risc32/pkg/hart"
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/word"
)

func isFP(k isa.Kind) bool {
	switch k {
	case isa.Flw, isa.Fsw, isa.Fld, isa.Fsd, isa.Flq, isa.Fsq,
		isa.FmaddS, isa.FmsubS, isa.FnmsubS, isa.FnmaddS,
		isa.FaddS, isa.FsubS, isa.FmulS, isa.FdivS, isa.FsqrtS,
		isa.FsgnjS, isa.FsgnjnS, isa.FsgnjxS, isa.FminS, isa.FmaxS,
		isa.FcvtWS, isa.FcvtWuS, isa.FmvXW, isa.FeqS, isa.FltS, isa.FleS, isa.FclassS,
		isa.FcvtSW, isa.FcvtSWu, isa.FmvWX, isa.FcvtLS, isa.FcvtLuS, isa.FcvtSL, isa.FcvtSLu,
		isa.FmaddD, isa.FmsubD, isa.FnmsubD, isa.FnmaddD,
		isa.FaddD, isa.FsubD, isa.FmulD, isa.FdivD, isa.FsqrtD,
		isa.FsgnjD, isa.FsgnjnD, isa.FsgnjxD, isa.FminD, isa.FmaxD,
		isa.FcvtSD, isa.FcvtDS, isa.FeqD, isa.FltD, isa.FleD, isa.FclassD,
		isa.FcvtWD, isa.FcvtWuD, isa.FcvtDW, isa.FcvtDWu,
		isa.FcvtLD, isa.FcvtLuD, isa.FmvXD, isa.FcvtDL, isa.FcvtDLu, isa.FmvDX,
		isa.FmaddQ, isa.FmsubQ, isa.FnmsubQ, isa.FnmaddQ,
		isa.FaddQ, isa.FsubQ, isa.FmulQ, isa.FdivQ, isa.FsqrtQ,
		isa.FsgnjQ, isa.FsgnjnQ, isa.FsgnjxQ, isa.FminQ, isa.FmaxQ,
		isa.FcvtSQ, isa.FcvtQS, isa.FcvtDQ, isa.FcvtQD,
		isa.FeqQ, isa.FltQ, isa.FleQ, isa.FclassQ,
		isa.FcvtWQ, isa.FcvtWuQ, isa.FcvtQW, isa.FcvtQWu,
		isa.FcvtLQ, isa.FcvtLuQ, isa.FcvtQL, isa.FcvtQLu:
		return true
	}
	return false
}

func isQuadPrecision(k isa.Kind) bool {
	switch k {
	case isa.Flq, isa.Fsq, isa.FmaddQ, isa.FmsubQ, isa.FnmsubQ, isa.FnmaddQ,
		isa.FaddQ, isa.FsubQ, isa.FmulQ, isa.FdivQ, isa.FsqrtQ,
		isa.FsgnjQ, isa.FsgnjnQ, isa.FsgnjxQ, isa.FminQ, isa.FmaxQ,
		isa.FcvtSQ, isa.FcvtQS, isa.FcvtDQ, isa.FcvtQD,
		isa.FeqQ, isa.FltQ, isa.FleQ, isa.FclassQ,
		isa.FcvtWQ, isa.FcvtWuQ, isa.FcvtQW, isa.FcvtQWu,
		isa.FcvtLQ, isa.FcvtLuQ, isa.FcvtQL, isa.FcvtQLu:
		return true
	}
	return false
}

// isInt64Only reports whether k converts to/from or moves a 64-bit
// integer register, which only exists on an RV64 hart — this covers
// both the single- and double-precision forms (fcvt.l.s/fcvt.lu.s/
// fcvt.s.l/fcvt.s.lu convert through a 32-bit float just as readily as
// their double-precision counterparts do, but the integer side is
// still 64 bits wide and RV32 has no register to hold it).
func isInt64Only(k isa.Kind) bool {
	switch k {
	case isa.FcvtLS, isa.FcvtLuS, isa.FcvtSL, isa.FcvtSLu,
		isa.FcvtLD, isa.FcvtLuD, isa.FmvXD, isa.FcvtDL, isa.FcvtDLu, isa.FmvDX:
		return true
	}
	return false
}

// execFP implements the F and D extensions: single- and
// double-precision arithmetic, comparison, classification, conversion
// and load/store, using Go's native float32/float64 arithmetic and
// NaN-boxing values written back to single-precision destinations.
// Quad precision (Q) and the 64-bit-only move/convert forms on an
// RV32 hart are not materialized and trap as illegal instructions.
func execFP[U word.Uint](e *env[U], op isa.Operation) {
	if isQuadPrecision(op.Kind) {
		e.h.Exception(hart.IllegalInstruction)
		return
	}
	if isInt64Only(op.Kind) && word.Width[U]() != 64 {
		e.h.Exception(hart.IllegalInstruction)
		return
	}

	switch op.Kind {
	case isa.Flw:
		execFloatLoad(e, op, true)
		return
	case isa.Fld:
		execFloatLoad(e, op, false)
		return
	case isa.Fsw:
		execFloatStore(e, op, true)
		return
	case isa.Fsd:
		execFloatStore(e, op, false)
		return
	}

	switch op.Kind {
	case isa.FmaddS, isa.FmsubS, isa.FnmsubS, isa.FnmaddS:
		execFusedS(e, op)
		return
	case isa.FmaddD, isa.FmsubD, isa.FnmsubD, isa.FnmaddD:
		execFusedD(e, op)
		return
	}

	switch op.Kind {
	case isa.FaddS, isa.FsubS, isa.FmulS, isa.FdivS, isa.FsqrtS,
		isa.FsgnjS, isa.FsgnjnS, isa.FsgnjxS, isa.FminS, isa.FmaxS:
		execArithS(e, op)
		return
	case isa.FaddD, isa.FsubD, isa.FmulD, isa.FdivD, isa.FsqrtD,
		isa.FsgnjD, isa.FsgnjnD, isa.FsgnjxD, isa.FminD, isa.FmaxD:
		execArithD(e, op)
		return
	}

	switch op.Kind {
	case isa.FeqS, isa.FltS, isa.FleS:
		execCompareS(e, op)
		return
	case isa.FeqD, isa.FltD, isa.FleD:
		execCompareD(e, op)
		return
	case isa.FclassS:
		e.h.WriteIntRegister(op.Rd, U(classifyS(word.ToSingle(e.h.ReadFloatRegister(op.Frs1)))))
		return
	case isa.FclassD:
		e.h.WriteIntRegister(op.Rd, U(classifyD(word.ToDouble(e.h.ReadFloatRegister(op.Frs1)))))
		return
	}

	switch op.Kind {
	case isa.FcvtWS, isa.FcvtWuS, isa.FcvtLS, isa.FcvtLuS:
		execFloatToInt(e, op, float64(word.ToSingle(e.h.ReadFloatRegister(op.Frs1))))
		return
	case isa.FcvtWD, isa.FcvtWuD, isa.FcvtLD, isa.FcvtLuD:
		execFloatToInt(e, op, word.ToDouble(e.h.ReadFloatRegister(op.Frs1)))
		return
	case isa.FcvtSW, isa.FcvtSWu, isa.FcvtSL, isa.FcvtSLu:
		execIntToFloatS(e, op)
		return
	case isa.FcvtDW, isa.FcvtDWu, isa.FcvtDL, isa.FcvtDLu:
		execIntToFloatD(e, op)
		return
	case isa.FcvtSD:
		e.h.WriteFloatRegister(op.Frd, word.FromSingle(float32(word.ToDouble(e.h.ReadFloatRegister(op.Frs1)))))
		return
	case isa.FcvtDS:
		e.h.WriteFloatRegister(op.Frd, word.FromDouble(float64(word.ToSingle(e.h.ReadFloatRegister(op.Frs1)))))
		return
	case isa.FmvXW:
		e.h.WriteIntRegister(op.Rd, word.SignExtend32[U](int32(word.ToRawSingle(e.h.ReadFloatRegister(op.Frs1)))))
		return
	case isa.FmvXD:
		e.h.WriteIntRegister(op.Rd, U(word.ToRawDouble(e.h.ReadFloatRegister(op.Frs1))))
		return
	case isa.FmvWX:
		e.h.WriteFloatRegister(op.Frd, word.FromRawSingle(uint32(e.h.ReadIntRegister(op.Rs1))))
		return
	case isa.FmvDX:
		e.h.WriteFloatRegister(op.Frd, word.FromRawDouble(word.AsUnsigned(e.h.ReadIntRegister(op.Rs1))))
		return
	}

	e.h.Exception(hart.IllegalInstruction)
}

func execFloatLoad[U word.Uint](e *env[U], op isa.Operation, single bool) {
	addr := e.h.ReadIntRegister(op.Rs1) + word.SignExtend32[U](op.Imm)
	var v word.Float
	err := e.h.WithMemory(func(b bus.Bus[U]) error {
		if single {
			raw, err := b.ReadWord(addr)
			v = word.FromRawSingle(raw)
			return err
		}
		raw, err := b.ReadLong(addr)
		v = word.FromRawDouble(raw)
		return err
	})
	if err != nil {
		reportFault(e, err, accessLoad)
		return
	}
	e.h.WriteFloatRegister(op.Frd, v)
}

func execFloatStore[U word.Uint](e *env[U], op isa.Operation, single bool) {
	addr := e.h.ReadIntRegister(op.Rs1) + word.SignExtend32[U](op.Imm)
	v := e.h.ReadFloatRegister(op.Frs2)
	err := e.h.WithMemory(func(b bus.Bus[U]) error {
		if single {
			return b.WriteWord(addr, word.ToRawSingle(v))
		}
		return b.WriteLong(addr, word.ToRawDouble(v))
	})
	if err != nil {
		reportFault(e, err, accessStore)
	}
}

func execFusedS[U word.Uint](e *env[U], op isa.Operation) {
	a := word.ToSingle(e.h.ReadFloatRegister(op.Frs1))
	b := word.ToSingle(e.h.ReadFloatRegister(op.Frs2))
	c := word.ToSingle(e.h.ReadFloatRegister(op.Frs3))
	var r float32
	switch op.Kind {
	case isa.FmaddS:
		r = float32(math.FMA(float64(a), float64(b), float64(c)))
	case isa.FmsubS:
		r = float32(math.FMA(float64(a), float64(b), -float64(c)))
	case isa.FnmsubS:
		r = -float32(math.FMA(float64(a), float64(b), -float64(c)))
	case isa.FnmaddS:
		r = -float32(math.FMA(float64(a), float64(b), float64(c)))
	}
	e.h.WriteFloatRegister(op.Frd, word.FromSingle(r))
}

func execFusedD[U word.Uint](e *env[U], op isa.Operation) {
	a := word.ToDouble(e.h.ReadFloatRegister(op.Frs1))
	b := word.ToDouble(e.h.ReadFloatRegister(op.Frs2))
	c := word.ToDouble(e.h.ReadFloatRegister(op.Frs3))
	var r float64
	switch op.Kind {
	case isa.FmaddD:
		r = math.FMA(a, b, c)
	case isa.FmsubD:
		r = math.FMA(a, b, -c)
	case isa.FnmsubD:
		r = -math.FMA(a, b, -c)
	case isa.FnmaddD:
		r = -math.FMA(a, b, c)
	}
	e.h.WriteFloatRegister(op.Frd, word.FromDouble(r))
}

func execArithS[U word.Uint](e *env[U], op isa.Operation) {
	a := word.ToSingle(e.h.ReadFloatRegister(op.Frs1))
	var r float32
	switch op.Kind {
	case isa.FsqrtS:
		r = float32(math.Sqrt(float64(a)))
	default:
		b := word.ToSingle(e.h.ReadFloatRegister(op.Frs2))
		switch op.Kind {
		case isa.FaddS:
			r = a + b
		case isa.FsubS:
			r = a - b
		case isa.FmulS:
			r = a * b
		case isa.FdivS:
			r = a / b
		case isa.FsgnjS:
			r = float32(math.Copysign(float64(a), float64(b)))
		case isa.FsgnjnS:
			r = float32(math.Copysign(float64(a), -float64(b)))
		case isa.FsgnjxS:
			r = signInjectXor32(a, b)
		case isa.FminS:
			r = minFloat32(a, b)
		case isa.FmaxS:
			r = maxFloat32(a, b)
		}
	}
	e.h.WriteFloatRegister(op.Frd, word.FromSingle(r))
}

func execArithD[U word.Uint](e *env[U], op isa.Operation) {
	a := word.ToDouble(e.h.ReadFloatRegister(op.Frs1))
	var r float64
	switch op.Kind {
	case isa.FsqrtD:
		r = math.Sqrt(a)
	default:
		b := word.ToDouble(e.h.ReadFloatRegister(op.Frs2))
		switch op.Kind {
		case isa.FaddD:
			r = a + b
		case isa.FsubD:
			r = a - b
		case isa.FmulD:
			r = a * b
		case isa.FdivD:
			r = a / b
		case isa.FsgnjD:
			r = math.Copysign(a, b)
		case isa.FsgnjnD:
			r = math.Copysign(a, -b)
		case isa.FsgnjxD:
			r = signInjectXor64(a, b)
		case isa.FminD:
			r = minFloat64(a, b)
		case isa.FmaxD:
			r = maxFloat64(a, b)
		}
	}
	e.h.WriteFloatRegister(op.Frd, word.FromDouble(r))
}

func signInjectXor32(a, b float32) float32 {
	signA := math.Float32bits(a) & 0x8000_0000
	signB := math.Float32bits(b) & 0x8000_0000
	bits := math.Float32bits(a)&0x7fff_ffff | (signA ^ signB)
	return math.Float32frombits(bits)
}

func signInjectXor64(a, b float64) float64 {
	signA := math.Float64bits(a) & 0x8000_0000_0000_0000
	signB := math.Float64bits(b) & 0x8000_0000_0000_0000
	bits := math.Float64bits(a)&0x7fff_ffff_ffff_ffff | (signA ^ signB)
	return math.Float64frombits(bits)
}

func minFloat32(a, b float32) float32 {
	if math.IsNaN(float64(a)) {
		return b
	}
	if math.IsNaN(float64(b)) {
		return a
	}
	if a < b {
		return a
	}
	return b
}

func maxFloat32(a, b float32) float32 {
	if math.IsNaN(float64(a)) {
		return b
	}
	if math.IsNaN(float64(b)) {
		return a
	}
	if a > b {
		return a
	}
	return b
}

func minFloat64(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	if a < b {
		return a
	}
	return b
}

func maxFloat64(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	if a > b {
		return a
	}
	return b
}

func execCompareS[U word.Uint](e *env[U], op isa.Operation) {
	a := word.ToSingle(e.h.ReadFloatRegister(op.Frs1))
	b := word.ToSingle(e.h.ReadFloatRegister(op.Frs2))
	var result bool
	switch op.Kind {
	case isa.FeqS:
		result = a == b
	case isa.FltS:
		result = a < b
	case isa.FleS:
		result = a <= b
	}
	e.h.WriteIntRegister(op.Rd, boolU[U](result))
}

func execCompareD[U word.Uint](e *env[U], op isa.Operation) {
	a := word.ToDouble(e.h.ReadFloatRegister(op.Frs1))
	b := word.ToDouble(e.h.ReadFloatRegister(op.Frs2))
	var result bool
	switch op.Kind {
	case isa.FeqD:
		result = a == b
	case isa.FltD:
		result = a < b
	case isa.FleD:
		result = a <= b
	}
	e.h.WriteIntRegister(op.Rd, boolU[U](result))
}

// classifyS and classifyD return the 10-bit fclass.s/fclass.d
// bitmask, per the bit assignment in the F/D extension's
// classification table (bit 0: -inf, 1: -normal, 2: -subnormal, 3:
// -0, 4: +0, 5: +subnormal, 6: +normal, 7: +inf, 8: signaling NaN, 9:
// quiet NaN).
func classifyS(v float32) uint32 {
	return classifyBits(float64(v), math.Signbit(float64(v)), isSubnormal32(v), math.IsNaN(float64(v)), isSignalingNaN32(v))
}

func classifyD(v float64) uint32 {
	return classifyBits(v, math.Signbit(v), isSubnormal64(v), math.IsNaN(v), isSignalingNaN64(v))
}

func classifyBits(v float64, neg, subnormal, nan, signaling bool) uint32 {
	switch {
	case nan && signaling:
		return 1 << 8
	case nan:
		return 1 << 9
	case math.IsInf(v, 0):
		if neg {
			return 1 << 0
		}
		return 1 << 7
	case v == 0:
		if neg {
			return 1 << 3
		}
		return 1 << 4
	case subnormal:
		if neg {
			return 1 << 2
		}
		return 1 << 5
	default:
		if neg {
			return 1 << 1
		}
		return 1 << 6
	}
}

func isSubnormal32(v float32) bool {
	bits := math.Float32bits(v)
	exp := (bits >> 23) & 0xff
	mant := bits & 0x7fffff
	return exp == 0 && mant != 0
}

func isSubnormal64(v float64) bool {
	bits := math.Float64bits(v)
	exp := (bits >> 52) & 0x7ff
	mant := bits & 0xfffffffffffff
	return exp == 0 && mant != 0
}

func isSignalingNaN32(v float32) bool {
	bits := math.Float32bits(v)
	return math.IsNaN(float64(v)) && bits&(1<<22) == 0
}

func isSignalingNaN64(v float64) bool {
	bits := math.Float64bits(v)
	return math.IsNaN(v) && bits&(1<<51) == 0
}

func execFloatToInt[U word.Uint](e *env[U], op isa.Operation, v float64) {
	switch op.Kind {
	case isa.FcvtWS, isa.FcvtWD:
		e.h.WriteIntRegister(op.Rd, word.SignExtend32[U](int32(v)))
	case isa.FcvtWuS, isa.FcvtWuD:
		e.h.WriteIntRegister(op.Rd, word.SignExtend32[U](int32(uint32(int64(v)))))
	case isa.FcvtLS, isa.FcvtLD:
		e.h.WriteIntRegister(op.Rd, U(uint64(int64(v))))
	case isa.FcvtLuS, isa.FcvtLuD:
		e.h.WriteIntRegister(op.Rd, U(uint64(v)))
	}
}

func execIntToFloatS[U word.Uint](e *env[U], op isa.Operation) {
	v := e.h.ReadIntRegister(op.Rs1)
	var r float32
	switch op.Kind {
	case isa.FcvtSW:
		r = float32(int32(v))
	case isa.FcvtSWu:
		r = float32(uint32(v))
	case isa.FcvtSL:
		r = float32(word.AsSigned(v))
	case isa.FcvtSLu:
		r = float32(word.AsUnsigned(v))
	}
	e.h.WriteFloatRegister(op.Frd, word.FromSingle(r))
}

func execIntToFloatD[U word.Uint](e *env[U], op isa.Operation) {
	v := e.h.ReadIntRegister(op.Rs1)
	var r float64
	switch op.Kind {
	case isa.FcvtDW:
		r = float64(int32(v))
	case isa.FcvtDWu:
		r = float64(uint32(v))
	case isa.FcvtDL:
		r = float64(word.AsSigned(v))
	case isa.FcvtDLu:
		r = float64(word.AsUnsigned(v))
	}
	e.h.WriteFloatRegister(op.Frd, word.FromDouble(r))
}
