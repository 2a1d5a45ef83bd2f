package exec

import (
	"github.com/bassosimone/risc32/pkg/bus"
	"github.com/bassosimone/risc32/pkg/hart"
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/word"
)

func isAMO(k isa.Kind) bool {
	switch k {
	case isa.LrW, isa.ScW, isa.AmoswapW, isa.AmoaddW, isa.AmoxorW, isa.AmoandW,
		isa.AmoorW, isa.AmominW, isa.AmomaxW, isa.AmominuW, isa.AmomaxuW,
		isa.LrD, isa.ScD, isa.AmoswapD, isa.AmoaddD, isa.AmoxorD, isa.AmoandD,
		isa.AmoorD, isa.AmominD, isa.AmomaxD, isa.AmominuD, isa.AmomaxuD:
		return true
	}
	return false
}

func isDoubleWordAMO(k isa.Kind) bool {
	switch k {
	case isa.LrD, isa.ScD, isa.AmoswapD, isa.AmoaddD, isa.AmoxorD, isa.AmoandD,
		isa.AmoorD, isa.AmominD, isa.AmomaxD, isa.AmominuD, isa.AmomaxuD:
		return true
	}
	return false
}

// execAMO implements the A-extension load-reserved/store-conditional
// and atomic-memory-operation families. This core has exactly one
// hart and no other bus agent, so there is nothing that can ever
// invalidate a reservation between lr and sc: sc.w/sc.d always
// succeeds here, writing 0 (success) to rd.
func execAMO[U word.Uint](e *env[U], op isa.Operation) {
	if isDoubleWordAMO(op.Kind) && word.Width[U]() != 64 {
		e.h.Exception(hart.IllegalInstruction)
		return
	}
	addr := e.h.ReadIntRegister(op.Rs1)

	switch op.Kind {
	case isa.LrW:
		amoReadModifyWrite(e, op, addr, func(old U) (U, bool) { return old, false })
		return
	case isa.LrD:
		amoReadModifyWrite(e, op, addr, func(old U) (U, bool) { return old, false })
		return
	case isa.ScW, isa.ScD:
		rs2 := e.h.ReadIntRegister(op.Rs2)
		err := e.h.WithMemory(func(b bus.Bus[U]) error {
			if op.Kind == isa.ScW {
				return b.WriteWord(addr, word.TruncUnsigned32(rs2))
			}
			return b.WriteLong(addr, word.AsUnsigned(rs2))
		})
		if err != nil {
			reportFault(e, err, accessStore)
			return
		}
		e.h.WriteIntRegister(op.Rd, U(0))
		return
	}

	rs2 := e.h.ReadIntRegister(op.Rs2)
	amoReadModifyWrite(e, op, addr, func(old U) (U, bool) {
		switch op.Kind {
		case isa.AmoswapW, isa.AmoswapD:
			return rs2, true
		case isa.AmoaddW, isa.AmoaddD:
			return old + rs2, true
		case isa.AmoxorW, isa.AmoxorD:
			return old ^ rs2, true
		case isa.AmoandW, isa.AmoandD:
			return old & rs2, true
		case isa.AmoorW, isa.AmoorD:
			return old | rs2, true
		case isa.AmominW, isa.AmominD:
			if word.AsSigned(rs2) < word.AsSigned(old) {
				return rs2, true
			}
			return old, true
		case isa.AmomaxW, isa.AmomaxD:
			if word.AsSigned(rs2) > word.AsSigned(old) {
				return rs2, true
			}
			return old, true
		case isa.AmominuW, isa.AmominuD:
			if word.AsUnsigned(rs2) < word.AsUnsigned(old) {
				return rs2, true
			}
			return old, true
		case isa.AmomaxuW, isa.AmomaxuD:
			if word.AsUnsigned(rs2) > word.AsUnsigned(old) {
				return rs2, true
			}
			return old, true
		}
		return old, false
	})
}

// amoReadModifyWrite reads the word or long at addr, passes the
// sign-extended old value to update, writes the returned value back
// when update asks for it, and always reports the old value in rd.
func amoReadModifyWrite[U word.Uint](e *env[U], op isa.Operation, addr U, update func(old U) (U, bool)) {
	var old U
	readErr := e.h.WithMemory(func(b bus.Bus[U]) error {
		if isDoubleWordAMO(op.Kind) {
			v, err := b.ReadLong(addr)
			old = word.FromUnsignedNative[U](v)
			return err
		}
		v, err := b.ReadWord(addr)
		old = word.SignExtend32[U](int32(v))
		return err
	})
	if readErr != nil {
		reportFault(e, readErr, accessLoad)
		return
	}

	next, write := update(old)
	if write {
		writeErr := e.h.WithMemory(func(b bus.Bus[U]) error {
			if isDoubleWordAMO(op.Kind) {
				return b.WriteLong(addr, word.AsUnsigned(next))
			}
			return b.WriteWord(addr, word.TruncUnsigned32(next))
		})
		if writeErr != nil {
			reportFault(e, writeErr, accessStore)
			return
		}
	}
	e.h.WriteIntRegister(op.Rd, old)
}
