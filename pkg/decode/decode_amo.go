package decode

import (
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/rawinst"
	"github.com/bassosimone/risc32/pkg/register"
)

// decodeAmo decodes the A extension's LR/SC/AMO* forms. Bits [31:27] of
// funct7 name the operation; funct3 (2 for .w, 3 for .d) selects the
// operand width. The aq/rl ordering bits are preserved on the Operation
// but are not load-bearing for this single-hart core.
func decodeAmo(r rawinst.Raw) isa.Operation {
	op5 := r.Funct7() >> 2
	var kind isa.Kind
	isWord := r.Funct3() == 2
	isDouble := r.Funct3() == 3
	if !isWord && !isDouble {
		return isa.Operation{Kind: isa.Invalid}
	}
	switch op5 {
	case 0x02:
		if isWord {
			kind = isa.LrW
		} else {
			kind = isa.LrD
		}
	case 0x03:
		if isWord {
			kind = isa.ScW
		} else {
			kind = isa.ScD
		}
	case 0x01:
		if isWord {
			kind = isa.AmoswapW
		} else {
			kind = isa.AmoswapD
		}
	case 0x00:
		if isWord {
			kind = isa.AmoaddW
		} else {
			kind = isa.AmoaddD
		}
	case 0x04:
		if isWord {
			kind = isa.AmoxorW
		} else {
			kind = isa.AmoxorD
		}
	case 0x0c:
		if isWord {
			kind = isa.AmoandW
		} else {
			kind = isa.AmoandD
		}
	case 0x08:
		if isWord {
			kind = isa.AmoorW
		} else {
			kind = isa.AmoorD
		}
	case 0x10:
		if isWord {
			kind = isa.AmominW
		} else {
			kind = isa.AmominD
		}
	case 0x14:
		if isWord {
			kind = isa.AmomaxW
		} else {
			kind = isa.AmomaxD
		}
	case 0x18:
		if isWord {
			kind = isa.AmominuW
		} else {
			kind = isa.AmominuD
		}
	case 0x1c:
		if isWord {
			kind = isa.AmomaxuW
		} else {
			kind = isa.AmomaxuD
		}
	default:
		return isa.Operation{Kind: isa.Invalid}
	}
	op := isa.Operation{
		Kind: kind,
		Rd:   register.NewInt(uint(r.Rd())),
		Rs1:  register.NewInt(uint(r.Rs1())),
		Aq:   r.Acquire(),
		Rl:   r.Release(),
	}
	if kind != isa.LrW && kind != isa.LrD {
		op.Rs2 = register.NewInt(uint(r.Rs2()))
	}
	return op
}
