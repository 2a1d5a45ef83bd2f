// Package decode implements the mask-and-match dispatch from a raw
// fetched word to a typed isa.Operation, for both the standard 32-bit
// encodings and the compressed 16-bit encodings. The decoder is
// stateless: every call is a pure function of its input bits.
package decode

import (
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/rawinst"
)

// Decoded pairs a decoded Operation with the PC at which it was
// fetched and its length in bytes, so executors can compute
// PC-relative targets without relying on the hart's pre-advanced PC.
type Decoded struct {
	Op     isa.Operation
	PC     uint64
	Length int
}

// Decode decodes the instruction found in the low bits of fetch (a
// 32-bit fetch unit, of which only the low 16 bits matter for a
// compressed form) at the given pc. xlen (32 or 64) resolves the one
// compressed encoding (c.jal vs. c.addiw) whose meaning depends on the
// register width rather than trapping on the wrong width. Raw words
// whose length classification is not 2 or 4 bytes (48-bit and wider
// reserved encodings) decode to Invalid with the classified length (0
// for the ≥192-bit reserved space, which callers should treat as an
// unrecoverable fetch-alignment situation).
func Decode(fetch uint32, pc uint64, xlen uint) Decoded {
	low16 := uint16(fetch)
	length := rawinst.Length(low16)
	switch length {
	case 2:
		return Decoded{Op: DecodeCompressed(low16, xlen), PC: pc, Length: 2}
	case 4:
		return Decoded{Op: DecodeStandard(fetch), PC: pc, Length: 4}
	default:
		return Decoded{Op: isa.Operation{Kind: isa.Invalid}, PC: pc, Length: length}
	}
}

// The following opcode constants name the 7-bit top-level dispatch
// field of the standard 32-bit encoding. Decoding is two-level: first
// the opcode family, then a switch on that family's funct3/funct7 (or
// other) fields.
const (
	opLoad     = 0x03
	opLoadFP   = 0x07
	opMiscMem  = 0x0F
	opOpImm    = 0x13
	opAuipc    = 0x17
	opOpImm32  = 0x1B
	opStore    = 0x23
	opStoreFP  = 0x27
	opAmo      = 0x2F
	opOp       = 0x33
	opLui      = 0x37
	opOp32     = 0x3B
	opMadd     = 0x43
	opMsub     = 0x47
	opNmsub    = 0x4B
	opNmadd    = 0x4F
	opOpFP     = 0x53
	opBranch   = 0x63
	opJalr     = 0x67
	opJal      = 0x6F
	opSystem   = 0x73
)

// DecodeStandard decodes a 32-bit standard-length instruction word.
// Unrecognized bit patterns return isa.Invalid.
func DecodeStandard(w uint32) isa.Operation {
	r := rawinst.New(w)
	switch r.Opcode7() {
	case opLui:
		return decodeLui(r)
	case opAuipc:
		return decodeAuipc(r)
	case opJal:
		return decodeJal(r)
	case opJalr:
		return decodeJalr(r)
	case opBranch:
		return decodeBranch(r)
	case opLoad:
		return decodeLoad(r)
	case opStore:
		return decodeStore(r)
	case opOpImm:
		return decodeOpImm(r)
	case opOpImm32:
		return decodeOpImm32(r)
	case opOp:
		return decodeOp(r)
	case opOp32:
		return decodeOp32(r)
	case opMiscMem:
		return decodeMiscMem(r)
	case opSystem:
		return decodeSystem(r)
	case opAmo:
		return decodeAmo(r)
	case opLoadFP:
		return decodeLoadFP(r)
	case opStoreFP:
		return decodeStoreFP(r)
	case opMadd:
		return decodeFused(r, isa.FmaddS, isa.FmaddD, isa.FmaddQ)
	case opMsub:
		return decodeFused(r, isa.FmsubS, isa.FmsubD, isa.FmsubQ)
	case opNmsub:
		return decodeFused(r, isa.FnmsubS, isa.FnmsubD, isa.FnmsubQ)
	case opNmadd:
		return decodeFused(r, isa.FnmaddS, isa.FnmaddD, isa.FnmaddQ)
	case opOpFP:
		return decodeOpFP(r)
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
}
