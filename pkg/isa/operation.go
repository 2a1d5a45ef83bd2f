// Package isa defines the tagged Operation type produced by the
// decoder and consumed by the executor, along with the BaseISA marker
// types binding RV32/RV64 to their storage widths.
package isa

import "github.com/bassosimone/risc32/pkg/register"

// Kind tags which named RISC-V operation an Operation value represents.
// There is one Kind per supported mnemonic in the base integer ISA and
// its M, A, F, D, C, and Zicsr extensions, plus Invalid for any bit
// pattern the decoder did not recognize.
type Kind int

const (
	Invalid Kind = iota

	// RV32I/RV64I base integer ISA.
	Lui
	Auipc
	Jal
	Jalr
	Beq
	Bne
	Blt
	Bge
	Bltu
	Bgeu
	Lb
	Lh
	Lw
	Lbu
	Lhu
	Sb
	Sh
	Sw
	Addi
	Slti
	Sltiu
	Xori
	Ori
	Andi
	Slli
	Srli
	Srai
	Add
	Sub
	Sll
	Slt
	Sltu
	Xor
	Srl
	Sra
	Or
	And
	Fence
	FenceI
	Ecall
	Ebreak

	// RV64I-only additions.
	Lwu
	Ld
	Sd
	Addiw
	Slliw
	Srliw
	Sraiw
	Addw
	Subw
	Sllw
	Srlw
	Sraw

	// M extension.
	Mul
	Mulh
	Mulhsu
	Mulhu
	Div
	Divu
	Rem
	Remu
	Mulw
	Divw
	Divuw
	Remw
	Remuw

	// Zicsr.
	Csrrw
	Csrrs
	Csrrc
	Csrrwi
	Csrrsi
	Csrrci

	// A extension (32-bit and 64-bit word forms).
	LrW
	ScW
	AmoswapW
	AmoaddW
	AmoxorW
	AmoandW
	AmoorW
	AmominW
	AmomaxW
	AmominuW
	AmomaxuW
	LrD
	ScD
	AmoswapD
	AmoaddD
	AmoxorD
	AmoandD
	AmoorD
	AmominD
	AmomaxD
	AmominuD
	AmomaxuD

	// F extension (single precision).
	Flw
	Fsw
	FmaddS
	FmsubS
	FnmsubS
	FnmaddS
	FaddS
	FsubS
	FmulS
	FdivS
	FsqrtS
	FsgnjS
	FsgnjnS
	FsgnjxS
	FminS
	FmaxS
	FcvtWS
	FcvtWuS
	FmvXW
	FeqS
	FltS
	FleS
	FclassS
	FcvtSW
	FcvtSWu
	FmvWX
	FcvtLS
	FcvtLuS
	FcvtSL
	FcvtSLu

	// D extension (double precision).
	Fld
	Fsd
	FmaddD
	FmsubD
	FnmsubD
	FnmaddD
	FaddD
	FsubD
	FmulD
	FdivD
	FsqrtD
	FsgnjD
	FsgnjnD
	FsgnjxD
	FminD
	FmaxD
	FcvtSD
	FcvtDS
	FeqD
	FltD
	FleD
	FclassD
	FcvtWD
	FcvtWuD
	FcvtDW
	FcvtDWu
	FcvtLD
	FcvtLuD
	FmvXD
	FcvtDL
	FcvtDLu
	FmvDX

	// Q extension — decode-only, executes as IllegalInstruction.
	Flq
	Fsq
	FmaddQ
	FmsubQ
	FnmsubQ
	FnmaddQ
	FaddQ
	FsubQ
	FmulQ
	FdivQ
	FsqrtQ
	FsgnjQ
	FsgnjnQ
	FsgnjxQ
	FminQ
	FmaxQ
	FcvtSQ
	FcvtQS
	FcvtDQ
	FcvtQD
	FeqQ
	FltQ
	FleQ
	FclassQ
	FcvtWQ
	FcvtWuQ
	FcvtQW
	FcvtQWu
	FcvtLQ
	FcvtLuQ
	FcvtQL
	FcvtQLu

	// System / trap-return / supervisor ISA stubs.
	Mret
	Sret
	Uret
	Dret
	Hret
	Wfi
	SfenceVma
	SfenceVm

	// Compressed (C) forms that map onto their non-compressed
	// equivalent at execution time; decoded as distinct Kinds because
	// their operand shapes (implicit sp, restricted register ranges)
	// differ from the standard forms.
	CAddi4spn
	CLw
	CSw
	CLd
	CSd
	CNop
	CAddi
	CJalC // c.jal, RV32-only
	CAddiw
	CLi
	CAddi16sp
	CLui
	CSrli
	CSrai
	CAndi
	CSub
	CXor
	COr
	CAnd
	CSubw
	CAddw
	CJ
	CBeqz
	CBnez
	CSlli
	CLwsp
	CLdsp
	CJr
	CMv
	CEbreak
	CJalr
	CAdd
	CSwsp
	CSdsp

	numKinds
)

// Operation is the decoded, tagged representation of one instruction.
// Only the fields relevant to Kind are meaningful; unused fields are
// zero. PC and decoded length are not carried here — see
// decode.Decoded, which pairs an Operation with those.
type Operation struct {
	Kind Kind

	Rd, Rs1, Rs2       register.Int
	Frd, Frs1, Frs2, Frs3 register.Float

	// Imm carries the sign-extended immediate for any operand shape
	// that has exactly one (I/S/B/U/J-type and their compressed
	// equivalents).
	Imm int32

	// CSR carries the 12-bit CSR address for Zicsr operations.
	CSR register.CSR

	// Zimm carries the 5-bit zero-extended immediate used by the CSR
	// immediate-form instructions.
	Zimm uint8

	// RM carries the floating point rounding mode field (0-4 are
	// concrete modes, 7 means "use frm").
	RM uint8

	// Aq, Rl carry the AMO acquire/release ordering bits. The executor
	// is free to ignore them in this single-hart, sequentially
	// consistent core.
	Aq, Rl bool

	// FencePred, FenceSucc carry the FENCE predecessor/successor masks.
	FencePred, FenceSucc uint8
}

// String names the Kind for diagnostics and disassembly.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}
