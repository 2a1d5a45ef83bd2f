package exec

import (
	"github.com/bassosimone/risc32/pkg/hart"
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/word"
)

func isIntArith(k isa.Kind) bool {
	switch k {
	case isa.Add, isa.Sub, isa.And, isa.Or, isa.Xor, isa.Sll, isa.Srl, isa.Sra,
		isa.Slt, isa.Sltu,
		isa.Addi, isa.Andi, isa.Ori, isa.Xori, isa.Slli, isa.Srli, isa.Srai,
		isa.Slti, isa.Sltiu,
		isa.Addw, isa.Subw, isa.Sllw, isa.Srlw, isa.Sraw, isa.Addiw, isa.Slliw, isa.Srliw, isa.Sraiw:
		return true
	}
	return false
}

func isUpperImm(k isa.Kind) bool { return k == isa.Lui || k == isa.Auipc }

func isBranch(k isa.Kind) bool {
	switch k {
	case isa.Beq, isa.Bne, isa.Blt, isa.Bge, isa.Bltu, isa.Bgeu:
		return true
	}
	return false
}

// execIntArith implements the reg-reg and reg-imm integer
// arithmetic/logical family, including the RV64-only *W word forms,
// which operate on the low 32 bits and sign-extend the result to
// XLEN. Running a *W form on an RV32 hart (Width == 32) traps, since
// the opcode family (Op-32/OpImm-32) does not exist in RV32I.
func execIntArith[U word.Uint](e *env[U], op isa.Operation) {
	if isWordForm(op.Kind) && word.Width[U]() != 64 {
		e.h.Exception(hart.IllegalInstruction)
		return
	}
	rs1 := e.h.ReadIntRegister(op.Rs1)
	var rs2 U
	if hasRs2(op.Kind) {
		rs2 = e.h.ReadIntRegister(op.Rs2)
	} else {
		rs2 = word.SignExtend32[U](op.Imm)
	}

	var result U
	switch op.Kind {
	case isa.Add, isa.Addi:
		result = rs1 + rs2
	case isa.Sub:
		result = rs1 - rs2
	case isa.And, isa.Andi:
		result = rs1 & rs2
	case isa.Or, isa.Ori:
		result = rs1 | rs2
	case isa.Xor, isa.Xori:
		result = rs1 ^ rs2
	case isa.Sll:
		result = rs1 << word.ShiftMask[U](rs2)
	case isa.Slli:
		result = rs1 << word.ShiftMask[U](U(op.Imm))
	case isa.Srl:
		result = rs1 >> word.ShiftMask[U](rs2)
	case isa.Srli:
		result = rs1 >> word.ShiftMask[U](U(op.Imm))
	case isa.Sra:
		result = U(word.AsSigned(rs1) >> word.ShiftMask[U](rs2))
	case isa.Srai:
		result = U(word.AsSigned(rs1) >> word.ShiftMask[U](U(op.Imm)))
	case isa.Slt, isa.Slti:
		result = boolU[U](word.AsSigned(rs1) < word.AsSigned(rs2))
	case isa.Sltu, isa.Sltiu:
		result = boolU[U](word.AsUnsigned(rs1) < word.AsUnsigned(rs2))
	case isa.Addw, isa.Addiw:
		result = word.SignExtend32[U](int32(rs1) + int32(rs2))
	case isa.Subw:
		result = word.SignExtend32[U](int32(rs1) - int32(rs2))
	case isa.Sllw, isa.Slliw:
		shamt := uint(op.Imm) & 0x1f
		if op.Kind == isa.Sllw {
			shamt = uint(rs2) & 0x1f
		}
		result = word.SignExtend32[U](int32(uint32(rs1) << shamt))
	case isa.Srlw:
		result = word.SignExtend32[U](int32(uint32(rs1) >> (uint(rs2) & 0x1f)))
	case isa.Srliw:
		result = word.SignExtend32[U](int32(uint32(rs1) >> (uint(op.Imm) & 0x1f)))
	case isa.Sraw:
		result = word.SignExtend32[U](int32(rs1) >> (uint(rs2) & 0x1f))
	case isa.Sraiw:
		result = word.SignExtend32[U](int32(rs1) >> (uint(op.Imm) & 0x1f))
	}
	e.h.WriteIntRegister(op.Rd, result)
}

func isWordForm(k isa.Kind) bool {
	switch k {
	case isa.Addw, isa.Subw, isa.Sllw, isa.Srlw, isa.Sraw,
		isa.Addiw, isa.Slliw, isa.Srliw, isa.Sraiw:
		return true
	}
	return false
}

func hasRs2(k isa.Kind) bool {
	switch k {
	case isa.Add, isa.Sub, isa.And, isa.Or, isa.Xor, isa.Sll, isa.Srl, isa.Sra,
		isa.Slt, isa.Sltu, isa.Addw, isa.Subw, isa.Sllw, isa.Srlw, isa.Sraw:
		return true
	}
	return false
}

func boolU[U word.Uint](b bool) U {
	if b {
		return U(1)
	}
	return U(0)
}

func execUpperImm[U word.Uint](e *env[U], op isa.Operation) {
	switch op.Kind {
	case isa.Lui:
		e.h.WriteIntRegister(op.Rd, word.SignExtend32[U](op.Imm))
	case isa.Auipc:
		e.h.WriteIntRegister(op.Rd, e.instrPC+word.SignExtend32[U](op.Imm))
	}
}

func execBranch[U word.Uint](e *env[U], op isa.Operation) {
	rs1, rs2 := e.h.ReadIntRegister(op.Rs1), e.h.ReadIntRegister(op.Rs2)
	var taken bool
	switch op.Kind {
	case isa.Beq:
		taken = rs1 == rs2
	case isa.Bne:
		taken = rs1 != rs2
	case isa.Blt:
		taken = word.AsSigned(rs1) < word.AsSigned(rs2)
	case isa.Bge:
		taken = word.AsSigned(rs1) >= word.AsSigned(rs2)
	case isa.Bltu:
		taken = word.AsUnsigned(rs1) < word.AsUnsigned(rs2)
	case isa.Bgeu:
		taken = word.AsUnsigned(rs1) >= word.AsUnsigned(rs2)
	}
	if taken {
		e.h.WritePC(e.instrPC + word.SignExtend32[U](op.Imm))
	}
}

func execJump[U word.Uint](e *env[U], op isa.Operation) {
	switch op.Kind {
	case isa.Jal:
		e.h.WriteIntRegister(op.Rd, e.nextPC)
		e.h.WritePC(e.instrPC + word.SignExtend32[U](op.Imm))
	case isa.Jalr:
		rs1 := e.h.ReadIntRegister(op.Rs1)
		target := (rs1 + word.SignExtend32[U](op.Imm)) &^ U(1)
		e.h.WriteIntRegister(op.Rd, e.nextPC)
		e.h.WritePC(target)
	}
}
