// Package hart implements the mutable hart state model: the program
// counter, integer and floating-point register files, the CSR space,
// and the exclusively-owned memory bus, together with the policy
// operations (reset, exception entry, fences, environment-call
// delegation) the executor drives one step at a time.
package hart

import (
	"github.com/bassosimone/risc32/pkg/bus"
	"github.com/bassosimone/risc32/pkg/register"
	"github.com/bassosimone/risc32/pkg/word"
)

// Hart is one RISC-V hardware thread, generic over its register
// width U. The bus is owned exclusively by the Hart; callers reach it
// only through WithMemory, which scopes the borrow to the callback.
type Hart[U word.Uint] struct {
	pc      U
	resetPC U
	ints    register.IntFile[U]
	floats  register.FloatFile
	csrs    register.CSRSpace[U]
	bus     bus.Bus[U]
}

// New constructs a Hart over the given bus, with resetPC as the
// address the PC is restored to on Reset.
func New[U word.Uint](b bus.Bus[U], resetPC U) *Hart[U] {
	h := &Hart[U]{bus: b, resetPC: resetPC}
	h.Reset(Reset)
	return h
}

// ReadPC returns the current program counter.
func (h *Hart[U]) ReadPC() U { return h.pc }

// WritePC sets the program counter. No alignment is enforced here;
// a misaligned target surfaces as a fetch fault on the next step.
func (h *Hart[U]) WritePC(pc U) { h.pc = pc }

// ReadIntRegister reads an integer register, observing the
// always-zero rule for x0.
func (h *Hart[U]) ReadIntRegister(r register.Int) U { return h.ints.Read(r) }

// WriteIntRegister writes an integer register; writes to x0 are
// silently discarded.
func (h *Hart[U]) WriteIntRegister(r register.Int, v U) { h.ints.Write(r, v) }

// ReadFloatRegister reads a floating point register.
func (h *Hart[U]) ReadFloatRegister(r register.Float) word.Float { return h.floats.Read(r) }

// WriteFloatRegister writes a floating point register.
func (h *Hart[U]) WriteFloatRegister(r register.Float, v word.Float) { h.floats.Write(r, v) }

// ReadCSR reads a control/status register, failing with
// *register.CSRError when the slot is not materialized.
func (h *Hart[U]) ReadCSR(r register.CSR) (U, error) { return h.csrs.Read(r) }

// WriteCSR writes a control/status register, failing with
// *register.CSRError when the slot is not materialized.
func (h *Hart[U]) WriteCSR(r register.CSR, v U) error { return h.csrs.Write(r, v) }

// FRM returns the current dynamic floating point rounding mode.
func (h *Hart[U]) FRM() uint8 { return h.csrs.FRM() }

// SetFFlags ORs the given accrued floating point exception flags into
// the fflags CSR.
func (h *Hart[U]) SetFFlags(flags uint8) { h.csrs.SetFFlags(flags) }

// WithMemory scopes access to the hart's exclusively-owned bus to the
// callback: no reference to the bus escapes beyond the call. Go's type
// parameters cannot appear on a method (only on the type or a free
// function), so the callback communicates its outcome through error
// alone rather than an arbitrary return value.
func (h *Hart[U]) WithMemory(f func(bus.Bus[U]) error) error {
	return f(h.bus)
}

// Reset restores the PC to the implementation's reset vector, zeros
// every register and CSR, and records cause in the cause CSR.
func (h *Hart[U]) Reset(cause Cause) {
	h.pc = h.resetPC
	h.ints.Reset()
	h.floats.Reset()
	h.csrs.Reset()
	h.csrs.SetCause(U(cause.Encode(word.Width[U]())))
}

// Exception computes the trap vector base as utvec & ~0b11 (only
// direct mode is implemented; the two low bits selecting vectored mode
// are ignored), redirects the PC there, and records cause. Other trap
// CSRs (epc/tval) are left unspecified by this core.
func (h *Hart[U]) Exception(cause Cause) {
	base := h.csrs.TVec() &^ U(0b11)
	h.pc = base
	h.csrs.SetCause(U(cause.Encode(word.Width[U]())))
}

// FenceData and FenceCode are no-ops in this single-hart, single
// address space model: there is no other agent whose view of memory
// or instruction stream needs synchronizing.
func (h *Hart[U]) FenceData()  {}
func (h *Hart[U]) FenceCode() {}

// FenceVirtualMemoryConfig backs sfence.vma/sfence.vm. There is no
// supervisor ISA in this core, so every invocation traps.
func (h *Hart[U]) FenceVirtualMemoryConfig(rs1, rs2 register.Int) {
	h.Exception(IllegalInstruction)
}

// EnvironmentCall and EnvironmentBreak always decline in this
// single-thread user hart, signalling the executor to escalate the
// call to its own caller as an ExecStatus.
func (h *Hart[U]) EnvironmentCall(pc U) bool  { return false }
func (h *Hart[U]) EnvironmentBreak(pc U) bool { return false }
