package isa

// BaseISA associates a RISC-V base integer ISA with its register
// width and display name. RV32/RV64 are compile-time marker types; the
// actual width-parametrized logic lives in pkg/word, pkg/hart, and
// pkg/exec as generic code over word.Uint. No other package references
// these values: the CLI front-ends pick hart.Hart[uint32] or
// hart.Hart[uint64] from the numeric XLen setting in pkg/config.
type BaseISA struct {
	Name string
	XLen uint
}

// RV32 is the 32-bit base integer ISA.
var RV32 = BaseISA{Name: "rv32", XLen: 32}

// RV64 is the 64-bit base integer ISA.
var RV64 = BaseISA{Name: "rv64", XLen: 64}
