package exec

import (
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/register"
)

// lowerCompressed rewrites a decoded C-form operation into the
// equivalent standard-form operation that dispatch already knows how
// to execute. decode_c.go has already resolved every implicit
// operand (the stack pointer, the zero register, ra) into an
// explicit Rd/Rs1/Rs2 field, so nearly every C-Kind carries exactly
// the operand shape its standard equivalent expects and only the Kind
// itself needs to change. c.jal (CJalC) is RV32-only; decode_c.go
// selects it over c.addiw based on XLEN, so only an RV32 hart ever
// reaches this case.
func lowerCompressed(op isa.Operation) isa.Operation {
	zero := register.NewInt(0)
	ra := register.NewInt(1)

	switch op.Kind {
	case isa.CAddi4spn:
		op.Kind = isa.Addi
	case isa.CLw, isa.CLwsp:
		op.Kind = isa.Lw
	case isa.CSw, isa.CSwsp:
		op.Kind = isa.Sw
	case isa.CLd, isa.CLdsp:
		op.Kind = isa.Ld
	case isa.CSd, isa.CSdsp:
		op.Kind = isa.Sd
	case isa.CNop:
		op.Kind = isa.Addi
		op.Rd, op.Rs1 = zero, zero
	case isa.CAddi, isa.CAddi16sp:
		op.Kind = isa.Addi
	case isa.CJalC:
		op.Kind = isa.Jal
		op.Rd = ra
	case isa.CAddiw:
		op.Kind = isa.Addiw
	case isa.CLi:
		op.Kind = isa.Addi
		op.Rs1 = zero
	case isa.CLui:
		op.Kind = isa.Lui
	case isa.CSrli:
		op.Kind = isa.Srli
	case isa.CSrai:
		op.Kind = isa.Srai
	case isa.CAndi:
		op.Kind = isa.Andi
	case isa.CSub:
		op.Kind = isa.Sub
	case isa.CXor:
		op.Kind = isa.Xor
	case isa.COr:
		op.Kind = isa.Or
	case isa.CAnd:
		op.Kind = isa.And
	case isa.CSubw:
		op.Kind = isa.Subw
	case isa.CAddw:
		op.Kind = isa.Addw
	case isa.CJ:
		op.Kind = isa.Jal
		op.Rd = zero
	case isa.CBeqz:
		op.Kind = isa.Beq
		op.Rs2 = zero
	case isa.CBnez:
		op.Kind = isa.Bne
		op.Rs2 = zero
	case isa.CSlli:
		op.Kind = isa.Slli
	case isa.CJr:
		op.Kind = isa.Jalr
		op.Rd = zero
		op.Imm = 0
	case isa.CMv:
		op.Kind = isa.Add
		op.Rs1 = zero
	case isa.CEbreak:
		op.Kind = isa.Ebreak
	case isa.CJalr:
		op.Kind = isa.Jalr
		op.Rd = ra
		op.Imm = 0
	case isa.CAdd:
		op.Kind = isa.Add
	}
	return op
}
