// Package register implements the register selector types, the
// general-purpose integer and floating-point register files, and the
// sparse control/status register space described by the data model.
package register

import (
	"fmt"

	"github.com/bassosimone/risc32/pkg/word"
)

// Int is a validated selector for one of the 32 integer registers.
// Construction above 31 is a programmer error and panics, matching the
// original's IntRegister::num contract.
type Int struct {
	n uint8
}

// NewInt constructs an Int selector, panicking if n is out of range.
func NewInt(n uint) Int {
	if n > 31 {
		panic(fmt.Sprintf("register: integer register number out of range (0-31): %d", n))
	}
	return Int{n: uint8(n)}
}

// ZeroInt is the always-zero integer register x0.
func ZeroInt() Int { return NewInt(0) }

// NewCompressedInt resolves a 3-bit compressed register selector (0..7)
// to its corresponding full selector in the range 8..15, as used by the
// C extension's register-restricted forms (c.lw, c.sw, c.and, ...).
func NewCompressedInt(n uint) Int {
	if n > 7 {
		panic(fmt.Sprintf("register: compressed register number out of range (0-7): %d", n))
	}
	return NewInt(n + 8)
}

// Num returns the raw register index.
func (r Int) Num() uint { return uint(r.n) }

func (r Int) String() string { return fmt.Sprintf("x%d", r.n) }

// Float is a validated selector for one of the 32 floating-point
// registers. Unlike Int, there is no zero-register rule.
type Float struct {
	n uint8
}

// NewFloat constructs a Float selector, panicking if n is out of range.
func NewFloat(n uint) Float {
	if n > 31 {
		panic(fmt.Sprintf("register: float register number out of range (0-31): %d", n))
	}
	return Float{n: uint8(n)}
}

// NewCompressedFloat resolves a 3-bit compressed float register
// selector to its corresponding full selector in the range 8..15.
func NewCompressedFloat(n uint) Float {
	if n > 7 {
		panic(fmt.Sprintf("register: compressed float register number out of range (0-7): %d", n))
	}
	return NewFloat(n + 8)
}

// Num returns the raw register index.
func (r Float) Num() uint { return uint(r.n) }

func (r Float) String() string { return fmt.Sprintf("f%d", r.n) }

// CSR is a validated selector for one of the 4096 control/status
// register slots.
type CSR struct {
	n uint16
}

// NewCSR constructs a CSR selector, panicking if n is out of range.
func NewCSR(n uint) CSR {
	if n >= 4096 {
		panic(fmt.Sprintf("register: CSR number out of range (0-4095): %d", n))
	}
	return CSR{n: uint16(n)}
}

// Num returns the raw CSR index.
func (r CSR) Num() uint { return uint(r.n) }

func (r CSR) String() string { return fmt.Sprintf("csr(%#x)", r.n) }

// IntFile is the fixed 32-entry integer register file. Index 0 (x0)
// always reads as zero and silently discards writes.
type IntFile[U word.Uint] struct {
	regs [32]U
}

// Read returns the current value of reg.
func (f *IntFile[U]) Read(reg Int) U {
	if reg.n == 0 {
		return word.Zero[U]()
	}
	return f.regs[reg.n]
}

// Write sets the value of reg, unless reg is x0.
func (f *IntFile[U]) Write(reg Int, v U) {
	if reg.n == 0 {
		return
	}
	f.regs[reg.n] = v
}

// Reset zeros every register.
func (f *IntFile[U]) Reset() {
	for i := range f.regs {
		f.regs[i] = word.Zero[U]()
	}
}

// FloatFile is the fixed 32-entry floating point register file.
type FloatFile struct {
	regs [32]word.Float
}

// Read returns the current value of reg.
func (f *FloatFile) Read(reg Float) word.Float {
	return f.regs[reg.n]
}

// Write sets the value of reg.
func (f *FloatFile) Write(reg Float, v word.Float) {
	f.regs[reg.n] = v
}

// Reset zeros every register.
func (f *FloatFile) Reset() {
	for i := range f.regs {
		f.regs[i] = word.FloatZero()
	}
}
