package exec

import (
	"github.com/bassosimone/risc32/pkg/hart"
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/word"
)

func isCSR(k isa.Kind) bool {
	switch k {
	case isa.Csrrw, isa.Csrrs, isa.Csrrc, isa.Csrrwi, isa.Csrrsi, isa.Csrrci:
		return true
	}
	return false
}

// execCSR implements the Zicsr read-modify-write family. Every form
// reads the addressed CSR into rd first (x0 silently discards the
// write, as everywhere else). The "s"/"c" forms additionally suppress
// the write back to the CSR when their mask source is zero (rs1 for
// the register forms, the 5-bit zimm immediate for the immediate
// forms), since the ISA defines that as skipping the write outright
// rather than performing a no-op OR/AND-NOT.
func execCSR[U word.Uint](e *env[U], op isa.Operation) {
	old, err := e.h.ReadCSR(op.CSR)
	if err != nil {
		e.h.Exception(hart.IllegalInstruction)
		return
	}

	var mask U
	switch op.Kind {
	case isa.Csrrwi, isa.Csrrsi, isa.Csrrci:
		mask = U(op.Zimm)
	default:
		mask = e.h.ReadIntRegister(op.Rs1)
	}

	var write bool
	var next U
	switch op.Kind {
	case isa.Csrrw, isa.Csrrwi:
		write = true
		next = mask
	case isa.Csrrs, isa.Csrrsi:
		write = mask != 0
		next = old | mask
	case isa.Csrrc, isa.Csrrci:
		write = mask != 0
		next = old &^ mask
	}

	if write {
		if werr := e.h.WriteCSR(op.CSR, next); werr != nil {
			e.h.Exception(hart.IllegalInstruction)
			return
		}
	}
	e.h.WriteIntRegister(op.Rd, old)
}
