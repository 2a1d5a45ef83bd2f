package rawinst

// The following methods extract the fields common across the
// compressed (16-bit) instruction formats: CR, CI, CSS, CIW, CL, CS,
// CA, CB, and CJ. Format-specific immediate reassembly (which varies
// instruction by instruction even within one format, per the C
// extension's encoding tables) lives in pkg/decode's compressed
// decoder, which composes these raw fields with word.SignExtendBits.

// CFunct4 extracts the 4-bit funct4 field used by the CR format
// (bits [15:12]).
func (r Raw) CFunct4() uint32 { return (r.W >> 12) & 0xf }

// CFunct3 extracts the 3-bit funct3 field common to most compressed
// formats (bits [15:13]).
func (r Raw) CFunct3() uint32 { return (r.W >> 13) & 0x7 }

// CFunct6 extracts the 6-bit funct6 field used by the CA format
// (bits [15:10]).
func (r Raw) CFunct6() uint32 { return (r.W >> 10) & 0x3f }

// CFunct2High extracts the 2-bit funct2 field at bits [11:10], used to
// distinguish c.srli/c.srai/c.andi within the CB format.
func (r Raw) CFunct2High() uint32 { return (r.W >> 10) & 0x3 }

// CFunct2Low extracts the 2-bit funct2 field at bits [6:5], used to
// distinguish c.sub/c.xor/c.or/c.and (and their *w RV64 counterparts)
// within the CA format.
func (r Raw) CFunct2Low() uint32 { return (r.W >> 5) & 0x3 }

// CRdRs1 extracts the full 5-bit register selector at bits [11:7],
// used by CR and CI formats.
func (r Raw) CRdRs1() uint32 { return (r.W >> 7) & 0x1f }

// CBit12 extracts bit 12, the high immediate bit of the CI format.
func (r Raw) CBit12() uint32 { return (r.W >> 12) & 1 }

// CImmLo5 extracts bits [6:2], the low immediate field of the CI
// format.
func (r Raw) CImmLo5() uint32 { return (r.W >> 2) & 0x1f }

// CSSImm extracts bits [12:7], the immediate field of the CSS format.
func (r Raw) CSSImm() uint32 { return (r.W >> 7) & 0x3f }

// CIWImm extracts bits [12:5], the immediate field of the CIW format.
func (r Raw) CIWImm() uint32 { return (r.W >> 5) & 0xff }

// CLSImmHigh extracts bits [12:10], the high immediate field shared by
// the CL and CS formats.
func (r Raw) CLSImmHigh() uint32 { return (r.W >> 10) & 0x7 }

// CLSImmLow extracts bits [6:5], the low immediate field shared by the
// CL and CS formats.
func (r Raw) CLSImmLow() uint32 { return (r.W >> 5) & 0x3 }

// CBImmHigh extracts bits [12:10], the high offset field of the CB
// (branch) format.
func (r Raw) CBImmHigh() uint32 { return (r.W >> 10) & 0x7 }

// CBImmLow extracts bits [6:2], the low offset field of the CB
// (branch) format.
func (r Raw) CBImmLow() uint32 { return (r.W >> 2) & 0x1f }

// CJTarget extracts bits [12:2], the jump target field of the CJ
// format.
func (r Raw) CJTarget() uint32 { return (r.W >> 2) & 0x7ff }
