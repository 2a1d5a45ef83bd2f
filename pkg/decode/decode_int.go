package decode

import (
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/rawinst"
	"github.com/bassosimone/risc32/pkg/register"
)

func decodeLui(r rawinst.Raw) isa.Operation {
	return isa.Operation{Kind: isa.Lui, Rd: register.NewInt(uint(r.Rd())), Imm: r.ImmU()}
}

func decodeAuipc(r rawinst.Raw) isa.Operation {
	return isa.Operation{Kind: isa.Auipc, Rd: register.NewInt(uint(r.Rd())), Imm: r.ImmU()}
}

func decodeJal(r rawinst.Raw) isa.Operation {
	return isa.Operation{Kind: isa.Jal, Rd: register.NewInt(uint(r.Rd())), Imm: r.ImmJ()}
}

func decodeJalr(r rawinst.Raw) isa.Operation {
	if r.Funct3() != 0 {
		return isa.Operation{Kind: isa.Invalid}
	}
	return isa.Operation{
		Kind: isa.Jalr,
		Rd:   register.NewInt(uint(r.Rd())),
		Rs1:  register.NewInt(uint(r.Rs1())),
		Imm:  r.ImmI(),
	}
}

func decodeBranch(r rawinst.Raw) isa.Operation {
	var kind isa.Kind
	switch r.Funct3() {
	case 0:
		kind = isa.Beq
	case 1:
		kind = isa.Bne
	case 4:
		kind = isa.Blt
	case 5:
		kind = isa.Bge
	case 6:
		kind = isa.Bltu
	case 7:
		kind = isa.Bgeu
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
	return isa.Operation{
		Kind: kind,
		Rs1:  register.NewInt(uint(r.Rs1())),
		Rs2:  register.NewInt(uint(r.Rs2())),
		Imm:  r.ImmB(),
	}
}

func decodeLoad(r rawinst.Raw) isa.Operation {
	var kind isa.Kind
	switch r.Funct3() {
	case 0:
		kind = isa.Lb
	case 1:
		kind = isa.Lh
	case 2:
		kind = isa.Lw
	case 3:
		kind = isa.Ld
	case 4:
		kind = isa.Lbu
	case 5:
		kind = isa.Lhu
	case 6:
		kind = isa.Lwu
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
	return isa.Operation{
		Kind: kind,
		Rd:   register.NewInt(uint(r.Rd())),
		Rs1:  register.NewInt(uint(r.Rs1())),
		Imm:  r.ImmI(),
	}
}

func decodeStore(r rawinst.Raw) isa.Operation {
	var kind isa.Kind
	switch r.Funct3() {
	case 0:
		kind = isa.Sb
	case 1:
		kind = isa.Sh
	case 2:
		kind = isa.Sw
	case 3:
		kind = isa.Sd
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
	return isa.Operation{
		Kind: kind,
		Rs1:  register.NewInt(uint(r.Rs1())),
		Rs2:  register.NewInt(uint(r.Rs2())),
		Imm:  r.ImmS(),
	}
}

// decodeShift is shared by OP-IMM and OP-IMM-32: the shift-type
// immediate forms select SLLI by funct3 and distinguish SRAI from SRLI
// by bit 30 of the raw word (above the shift-amount field), and carry a 6-bit
// shift amount regardless of XLEN — the executor masks it to the
// correct width, so decoding it uniformly here is safe for both RV32
// and RV64.
func decodeShift(r rawinst.Raw, sll, srl, sra isa.Kind) isa.Operation {
	kind := srl
	if r.Funct7()&0x20 != 0 {
		kind = sra
	}
	if r.Funct3() == 0x1 {
		kind = sll
	}
	return isa.Operation{
		Kind: kind,
		Rd:   register.NewInt(uint(r.Rd())),
		Rs1:  register.NewInt(uint(r.Rs1())),
		Imm:  int32(r.Shamt6()),
	}
}

func decodeOpImm(r rawinst.Raw) isa.Operation {
	switch r.Funct3() {
	case 0:
		return isa.Operation{Kind: isa.Addi, Rd: register.NewInt(uint(r.Rd())), Rs1: register.NewInt(uint(r.Rs1())), Imm: r.ImmI()}
	case 2:
		return isa.Operation{Kind: isa.Slti, Rd: register.NewInt(uint(r.Rd())), Rs1: register.NewInt(uint(r.Rs1())), Imm: r.ImmI()}
	case 3:
		return isa.Operation{Kind: isa.Sltiu, Rd: register.NewInt(uint(r.Rd())), Rs1: register.NewInt(uint(r.Rs1())), Imm: r.ImmI()}
	case 4:
		return isa.Operation{Kind: isa.Xori, Rd: register.NewInt(uint(r.Rd())), Rs1: register.NewInt(uint(r.Rs1())), Imm: r.ImmI()}
	case 6:
		return isa.Operation{Kind: isa.Ori, Rd: register.NewInt(uint(r.Rd())), Rs1: register.NewInt(uint(r.Rs1())), Imm: r.ImmI()}
	case 7:
		return isa.Operation{Kind: isa.Andi, Rd: register.NewInt(uint(r.Rd())), Rs1: register.NewInt(uint(r.Rs1())), Imm: r.ImmI()}
	case 1, 5:
		return decodeShift(r, isa.Slli, isa.Srli, isa.Srai)
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
}

func decodeOpImm32(r rawinst.Raw) isa.Operation {
	switch r.Funct3() {
	case 0:
		return isa.Operation{Kind: isa.Addiw, Rd: register.NewInt(uint(r.Rd())), Rs1: register.NewInt(uint(r.Rs1())), Imm: r.ImmI()}
	case 1, 5:
		return decodeShift(r, isa.Slliw, isa.Srliw, isa.Sraiw)
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
}

func decodeOp(r rawinst.Raw) isa.Operation {
	rd, rs1, rs2 := register.NewInt(uint(r.Rd())), register.NewInt(uint(r.Rs1())), register.NewInt(uint(r.Rs2()))
	var kind isa.Kind
	switch r.Funct7() {
	case 0x00:
		switch r.Funct3() {
		case 0:
			kind = isa.Add
		case 1:
			kind = isa.Sll
		case 2:
			kind = isa.Slt
		case 3:
			kind = isa.Sltu
		case 4:
			kind = isa.Xor
		case 5:
			kind = isa.Srl
		case 6:
			kind = isa.Or
		case 7:
			kind = isa.And
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
	case 0x20:
		switch r.Funct3() {
		case 0:
			kind = isa.Sub
		case 5:
			kind = isa.Sra
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
	case 0x01:
		switch r.Funct3() {
		case 0:
			kind = isa.Mul
		case 1:
			kind = isa.Mulh
		case 2:
			kind = isa.Mulhsu
		case 3:
			kind = isa.Mulhu
		case 4:
			kind = isa.Div
		case 5:
			kind = isa.Divu
		case 6:
			kind = isa.Rem
		case 7:
			kind = isa.Remu
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
	return isa.Operation{Kind: kind, Rd: rd, Rs1: rs1, Rs2: rs2}
}

func decodeOp32(r rawinst.Raw) isa.Operation {
	rd, rs1, rs2 := register.NewInt(uint(r.Rd())), register.NewInt(uint(r.Rs1())), register.NewInt(uint(r.Rs2()))
	var kind isa.Kind
	switch r.Funct7() {
	case 0x00:
		switch r.Funct3() {
		case 0:
			kind = isa.Addw
		case 1:
			kind = isa.Sllw
		case 5:
			kind = isa.Srlw
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
	case 0x20:
		switch r.Funct3() {
		case 0:
			kind = isa.Subw
		case 5:
			kind = isa.Sraw
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
	case 0x01:
		switch r.Funct3() {
		case 0:
			kind = isa.Mulw
		case 4:
			kind = isa.Divw
		case 5:
			kind = isa.Divuw
		case 6:
			kind = isa.Remw
		case 7:
			kind = isa.Remuw
		default:
			return isa.Operation{Kind: isa.Invalid}
		}
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
	return isa.Operation{Kind: kind, Rd: rd, Rs1: rs1, Rs2: rs2}
}

func decodeMiscMem(r rawinst.Raw) isa.Operation {
	switch r.Funct3() {
	case 0:
		return isa.Operation{Kind: isa.Fence, FencePred: uint8(r.FencePred()), FenceSucc: uint8(r.FenceSucc())}
	case 1:
		return isa.Operation{Kind: isa.FenceI}
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
}

func decodeSystem(r rawinst.Raw) isa.Operation {
	switch r.Funct3() {
	case 0:
		imm := r.ImmI()
		switch imm {
		case 0x000:
			return isa.Operation{Kind: isa.Ecall}
		case 0x001:
			return isa.Operation{Kind: isa.Ebreak}
		case 0x002:
			return isa.Operation{Kind: isa.Uret}
		case 0x102:
			return isa.Operation{Kind: isa.Sret}
		case 0x302:
			return isa.Operation{Kind: isa.Mret}
		case 0x105:
			return isa.Operation{Kind: isa.Wfi}
		case 0x7b2:
			return isa.Operation{Kind: isa.Dret}
		default:
			if r.Funct7() == 0x09 {
				return isa.Operation{Kind: isa.SfenceVma, Rs1: register.NewInt(uint(r.Rs1())), Rs2: register.NewInt(uint(r.Rs2()))}
			}
			if r.Funct7() == 0x08 && r.Rs2() == 0 {
				return isa.Operation{Kind: isa.SfenceVm, Rs1: register.NewInt(uint(r.Rs1()))}
			}
			if r.Funct7() == 0x22 {
				return isa.Operation{Kind: isa.Hret}
			}
			return isa.Operation{Kind: isa.Invalid}
		}
	case 1, 2, 3, 5, 6, 7:
		var kind isa.Kind
		var zimm uint8
		switch r.Funct3() {
		case 1:
			kind = isa.Csrrw
		case 2:
			kind = isa.Csrrs
		case 3:
			kind = isa.Csrrc
		case 5:
			kind, zimm = isa.Csrrwi, uint8(r.Zimm())
		case 6:
			kind, zimm = isa.Csrrsi, uint8(r.Zimm())
		case 7:
			kind, zimm = isa.Csrrci, uint8(r.Zimm())
		}
		op := isa.Operation{
			Kind: kind,
			Rd:   register.NewInt(uint(r.Rd())),
			CSR:  register.NewCSR(uint(r.CSRIndex())),
			Zimm: zimm,
		}
		if kind == isa.Csrrw || kind == isa.Csrrs || kind == isa.Csrrc {
			op.Rs1 = register.NewInt(uint(r.Rs1()))
		}
		return op
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
}
