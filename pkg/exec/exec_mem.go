package exec

import (
	"github.com/bassosimone/risc32/pkg/bus"
	"github.com/bassosimone/risc32/pkg/hart"
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/word"
)

func isLoad(k isa.Kind) bool {
	switch k {
	case isa.Lb, isa.Lh, isa.Lw, isa.Lbu, isa.Lhu, isa.Lwu, isa.Ld:
		return true
	}
	return false
}

func isStore(k isa.Kind) bool {
	switch k {
	case isa.Sb, isa.Sh, isa.Sw, isa.Sd:
		return true
	}
	return false
}

func execLoad[U word.Uint](e *env[U], op isa.Operation) {
	addr := e.h.ReadIntRegister(op.Rs1) + word.SignExtend32[U](op.Imm)
	var result U
	err := e.h.WithMemory(func(b bus.Bus[U]) error {
		switch op.Kind {
		case isa.Lb:
			v, err := b.ReadByte(addr)
			result = word.SignExtend32[U](int32(int8(v)))
			return err
		case isa.Lbu:
			v, err := b.ReadByte(addr)
			result = U(v)
			return err
		case isa.Lh:
			v, err := b.ReadHalf(addr)
			result = word.SignExtend32[U](int32(int16(v)))
			return err
		case isa.Lhu:
			v, err := b.ReadHalf(addr)
			result = U(v)
			return err
		case isa.Lw:
			v, err := b.ReadWord(addr)
			result = word.SignExtend32[U](int32(v))
			return err
		case isa.Lwu:
			v, err := b.ReadWord(addr)
			result = word.FromUnsignedNative[U](uint64(v))
			return err
		case isa.Ld:
			v, err := b.ReadLong(addr)
			result = word.FromUnsignedNative[U](v)
			return err
		}
		return nil
	})
	if err != nil {
		reportFault(e, err, accessLoad)
		return
	}
	e.h.WriteIntRegister(op.Rd, result)
}

func execStore[U word.Uint](e *env[U], op isa.Operation) {
	addr := e.h.ReadIntRegister(op.Rs1) + word.SignExtend32[U](op.Imm)
	v := e.h.ReadIntRegister(op.Rs2)
	err := e.h.WithMemory(func(b bus.Bus[U]) error {
		switch op.Kind {
		case isa.Sb:
			return b.WriteByte(addr, uint8(v))
		case isa.Sh:
			return b.WriteHalf(addr, uint16(v))
		case isa.Sw:
			return b.WriteWord(addr, word.TruncUnsigned32(v))
		case isa.Sd:
			return b.WriteLong(addr, word.AsUnsigned(v))
		}
		return nil
	})
	if err != nil {
		reportFault(e, err, accessStore)
	}
}

func reportFault[U word.Uint](e *env[U], err error, kind accessKind) {
	if f, ok := err.(*bus.Fault); ok {
		e.h.Exception(faultCause(f, kind))
		return
	}
	e.h.Exception(hart.IllegalInstruction)
}
