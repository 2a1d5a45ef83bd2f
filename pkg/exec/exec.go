// Package exec implements the one-step fetch-decode-execute loop: per
// the executor contract, it fetches the instruction word at PC,
// decodes it, pre-advances PC by the decoded length, dispatches by
// operation kind, and returns an ExecStatus describing what happened.
package exec

import (
	"github.com/bassosimone/risc32/pkg/bus"
	"github.com/bassosimone/risc32/pkg/decode"
	"github.com/bassosimone/risc32/pkg/hart"
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/word"
)

// Status classifies the outcome of one Step.
type Status int

const (
	// Running means the step completed normally (including one that
	// raised and serviced a trap internally); the caller should call
	// Step again.
	Running Status = iota
	// WaitingForInterrupt is advisory: the hart executed wfi. A driver
	// may sleep until an external event before calling Step again, but
	// treating this the same as Running is equally correct.
	WaitingForInterrupt
	// EnvironmentCall means the hart declined to service an ecall
	// itself; PC names the instruction that issued it.
	EnvironmentCall
	// EnvironmentBreak is the ebreak analogue of EnvironmentCall.
	EnvironmentBreak
)

// Result is what one Step call returns.
type Result struct {
	Status Status
	// PC is the address of the instruction executed this step; zero
	// when the fetch itself faulted.
	PC uint64
	// Op is the decoded operation executed this step, for tracing.
	Op isa.Operation
}

// accessKind distinguishes which exception-cause triple a bus fault
// should map onto.
type accessKind int

const (
	accessFetch accessKind = iota
	accessLoad
	accessStore
)

func faultCause(f *bus.Fault, kind accessKind) hart.Cause {
	switch kind {
	case accessFetch:
		switch f.Kind {
		case bus.Misaligned:
			return hart.InstructionAddressMisaligned
		case bus.PageFault:
			return hart.InstructionPageFault
		default:
			return hart.InstructionAccessFault
		}
	case accessStore:
		switch f.Kind {
		case bus.Misaligned:
			return hart.StoreAddressMisaligned
		case bus.PageFault:
			return hart.StorePageFault
		default:
			return hart.StoreAccessFault
		}
	default:
		switch f.Kind {
		case bus.Misaligned:
			return hart.LoadAddressMisaligned
		case bus.PageFault:
			return hart.LoadPageFault
		default:
			return hart.LoadAccessFault
		}
	}
}

// Step executes exactly one instruction on h and reports the outcome.
// Every locally-recoverable error (bus fault, decoder Invalid,
// unsupported CSR) is serviced as a trap through h and Step still
// returns Running; only ecall/ebreak escalate to the caller.
func Step[U word.Uint](h *hart.Hart[U]) Result {
	pc := h.ReadPC()

	var fetched uint32
	ferr := h.WithMemory(func(b bus.Bus[U]) error {
		w, err := b.ReadWord(pc)
		fetched = w
		return err
	})
	if ferr != nil {
		if f, ok := ferr.(*bus.Fault); ok {
			h.Exception(faultCause(f, accessFetch))
		} else {
			h.Exception(hart.InstructionAccessFault)
		}
		return Result{Status: Running}
	}

	d := decode.Decode(fetched, uint64(word.AsUnsigned(pc)), word.Width[U]())
	h.WritePC(pc + U(d.Length))

	op := d.Op
	if isCompressed(op.Kind) {
		op = lowerCompressed(op)
	}

	e := newEnv(h, U(d.PC), pc+U(d.Length))
	status := dispatch(e, op)
	return Result{Status: status, PC: d.PC, Op: d.Op}
}

// env bundles the per-step context every family handler needs:
// the hart, the PC the instruction was fetched at (for PC-relative
// operations), and the pre-advanced PC (the fallthrough target).
type env[U word.Uint] struct {
	h        *hart.Hart[U]
	instrPC  U
	nextPC   U
}

func newEnv[U word.Uint](h *hart.Hart[U], instrPC, nextPC U) *env[U] {
	return &env[U]{h: h, instrPC: instrPC, nextPC: nextPC}
}

func dispatch[U word.Uint](e *env[U], op isa.Operation) Status {
	switch {
	case isIntArith(op.Kind):
		execIntArith(e, op)
	case isUpperImm(op.Kind):
		execUpperImm(e, op)
	case isBranch(op.Kind):
		execBranch(e, op)
	case op.Kind == isa.Jal || op.Kind == isa.Jalr:
		execJump(e, op)
	case (op.Kind == isa.Ld || op.Kind == isa.Sd) && word.Width[U]() != 64:
		e.h.Exception(hart.IllegalInstruction)
	case isLoad(op.Kind):
		execLoad(e, op)
	case isStore(op.Kind):
		execStore(e, op)
	case isMulDiv(op.Kind):
		execMulDiv(e, op)
	case isCSR(op.Kind):
		execCSR(e, op)
	case op.Kind == isa.Fence:
		e.h.FenceData()
	case op.Kind == isa.FenceI:
		e.h.FenceCode()
	case op.Kind == isa.Ecall:
		if !e.h.EnvironmentCall(e.instrPC) {
			return EnvironmentCall
		}
	case op.Kind == isa.Ebreak:
		if !e.h.EnvironmentBreak(e.instrPC) {
			return EnvironmentBreak
		}
	case isAMO(op.Kind):
		execAMO(e, op)
	case isFP(op.Kind):
		execFP(e, op)
	case op.Kind == isa.Wfi:
		return WaitingForInterrupt
	case op.Kind == isa.SfenceVma || op.Kind == isa.SfenceVm:
		e.h.FenceVirtualMemoryConfig(op.Rs1, op.Rs2)
	case isSystemStub(op.Kind):
		e.h.Exception(hart.IllegalInstruction)
	default:
		e.h.Exception(hart.IllegalInstruction)
	}
	return Running
}

func isSystemStub(k isa.Kind) bool {
	switch k {
	case isa.Mret, isa.Sret, isa.Uret, isa.Dret, isa.Hret:
		return true
	}
	return false
}

func isCompressed(k isa.Kind) bool {
	return k >= isa.CAddi4spn
}
