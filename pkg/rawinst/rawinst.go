// Package rawinst implements the bit-field extraction, length
// classification, and immediate reconstruction for a fetched 32-bit
// (or, for compressed forms, 16-bit-within-32-bit) instruction word.
package rawinst

import "github.com/bassosimone/risc32/pkg/word"

// Raw wraps a fetched 32-bit word and exposes named bit-field
// extractors. For 16-bit (compressed) forms, only the low 16 bits are
// meaningful; callers determine which extractors apply based on the
// decoded Length.
type Raw struct {
	W uint32
}

// New wraps w as a Raw instruction.
func New(w uint32) Raw { return Raw{W: w} }

// Length classifies the instruction length in bytes by inspecting the
// low parcel only, per the RISC-V variable-length encoding rule. It
// returns 0 for the reserved ≥192-bit encoding space.
func Length(low uint16) int {
	switch {
	case low&0b11 != 0b11:
		return 2
	case low&0b11111 != 0b11111:
		return 4
	case low&0b111111 == 0b011111:
		return 6
	case low&0b1111111 == 0b0111111:
		return 8
	case low&0b1111111 == 0b1111111:
		n := (low >> 12) & 0b111
		if n == 0b111 {
			return 0
		}
		return 10 + 2*int(n)
	default:
		return 0
	}
}

// Opcode7 extracts the 7-bit standard-length opcode field.
func (r Raw) Opcode7() uint32 { return r.W & 0x7f }

// Opcode5 extracts the 5-bit opcode used to distinguish some
// reserved/compressed forms (bits [6:2]).
func (r Raw) Opcode5() uint32 { return (r.W >> 2) & 0x1f }

// Opcode2 extracts the 2-bit compressed-form opcode (bits [1:0]).
func (r Raw) Opcode2() uint32 { return r.W & 0x3 }

// Funct3 extracts the 3-bit funct3 field common to most standard
// formats.
func (r Raw) Funct3() uint32 { return (r.W >> 12) & 0x7 }

// Funct7 extracts the 7-bit funct7 field of R-type instructions.
func (r Raw) Funct7() uint32 { return (r.W >> 25) & 0x7f }

// Funct2 extracts the 2-bit funct2 field of the R4-type (fused
// multiply-add) floating point instructions.
func (r Raw) Funct2() uint32 { return (r.W >> 25) & 0x3 }

// Rd extracts the destination register selector.
func (r Raw) Rd() uint32 { return (r.W >> 7) & 0x1f }

// Rs1 extracts the first source register selector.
func (r Raw) Rs1() uint32 { return (r.W >> 15) & 0x1f }

// Rs2 extracts the second source register selector.
func (r Raw) Rs2() uint32 { return (r.W >> 20) & 0x1f }

// Rs3 extracts the third source register selector, used by the R4-type
// fused multiply-add instructions.
func (r Raw) Rs3() uint32 { return (r.W >> 27) & 0x1f }

// CRd extracts a compressed destination/source register selector
// spanning bits [11:7] (used by CI/CIW-derived forms that address the
// full register file).
func (r Raw) CRd() uint32 { return (r.W >> 7) & 0x1f }

// CRs1q extracts a 3-bit "quadrant" compressed register selector from
// bits [9:7], resolving to the full range 8..15.
func (r Raw) CRs1q() uint32 { return (r.W >> 7) & 0x7 }

// CRs2q extracts a 3-bit compressed register selector from bits
// [4:2], resolving to the full range 8..15.
func (r Raw) CRs2q() uint32 { return (r.W >> 2) & 0x7 }

// CRs2 extracts a full 5-bit compressed register selector from bits
// [6:2], used by CR/CSS-type forms that address the full register
// file.
func (r Raw) CRs2() uint32 { return (r.W >> 2) & 0x1f }

// ImmI reconstructs the sign-extended I-type immediate (bits [31:20]).
func (r Raw) ImmI() int32 {
	return word.SignExtendBits(r.W>>20, 12)
}

// ImmS reconstructs the sign-extended S-type immediate.
func (r Raw) ImmS() int32 {
	v := ((r.W >> 25) << 5) | ((r.W >> 7) & 0x1f)
	return word.SignExtendBits(v, 12)
}

// ImmB reconstructs the sign-extended B-type (branch) immediate.
func (r Raw) ImmB() int32 {
	v := (((r.W >> 31) & 0x1) << 12) |
		(((r.W >> 7) & 0x1) << 11) |
		(((r.W >> 25) & 0x3f) << 5) |
		(((r.W >> 8) & 0xf) << 1)
	return word.SignExtendBits(v, 13)
}

// ImmU reconstructs the U-type immediate (bits [31:12], shifted into
// place, not sign-extended beyond the natural 32-bit width since bit
// 31 is already the top bit).
func (r Raw) ImmU() int32 {
	return int32(r.W & 0xFFFFF000)
}

// ImmJ reconstructs the sign-extended J-type (jump) immediate.
func (r Raw) ImmJ() int32 {
	v := (((r.W >> 31) & 0x1) << 20) |
		(((r.W >> 12) & 0xff) << 12) |
		(((r.W >> 20) & 0x1) << 11) |
		(((r.W >> 21) & 0x3ff) << 1)
	return word.SignExtendBits(v, 21)
}

// Shamt5 extracts a 5-bit shift amount (RV32 SLLI/SRLI/SRAI).
func (r Raw) Shamt5() uint32 { return (r.W >> 20) & 0x1f }

// Shamt6 extracts a 6-bit shift amount (RV64 SLLI/SRLI/SRAI).
func (r Raw) Shamt6() uint32 { return (r.W >> 20) & 0x3f }

// Acquire extracts the AMO acquire ordering bit.
func (r Raw) Acquire() bool { return (r.W>>26)&1 != 0 }

// Release extracts the AMO release ordering bit.
func (r Raw) Release() bool { return (r.W>>25)&1 != 0 }

// FencePred extracts the FENCE predecessor mask.
func (r Raw) FencePred() uint32 { return (r.W >> 24) & 0xf }

// FenceSucc extracts the FENCE successor mask.
func (r Raw) FenceSucc() uint32 { return (r.W >> 20) & 0xf }

// RM extracts the 3-bit floating point rounding mode field. A value of
// 0b111 means "use the current frm CSR value".
func (r Raw) RM() uint32 { return (r.W >> 12) & 0x7 }

// CSRIndex extracts the 12-bit CSR address field.
func (r Raw) CSRIndex() uint32 { return (r.W >> 20) & 0xfff }

// Zimm extracts the 5-bit zero-extended immediate used by the CSR
// immediate-form instructions.
func (r Raw) Zimm() uint32 { return (r.W >> 15) & 0x1f }
