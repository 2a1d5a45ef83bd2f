package exec

import (
	"math/bits"

	"github.com/bassosimone/risc32/pkg/hart"
	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/word"
)

func isMulDiv(k isa.Kind) bool {
	switch k {
	case isa.Mul, isa.Mulh, isa.Mulhsu, isa.Mulhu, isa.Div, isa.Divu, isa.Rem, isa.Remu,
		isa.Mulw, isa.Divw, isa.Divuw, isa.Remw, isa.Remuw:
		return true
	}
	return false
}

// mulhSigned returns the high 64 bits of the signed 128-bit product of
// a and b, using the standard unsigned-multiply correction (Hacker's
// Delight §8-2): compute the unsigned product, then subtract the
// other operand wherever a factor was negative, since two's
// complement negation of a 64-bit factor in a 128-bit product
// subtracts that factor shifted into the high word.
func mulhSigned(a, b int64) int64 {
	hi, _ := bits.Mul64(uint64(a), uint64(b))
	if a < 0 {
		hi -= uint64(b)
	}
	if b < 0 {
		hi -= uint64(a)
	}
	return int64(hi)
}

func mulhSignedUnsigned(a int64, b uint64) int64 {
	hi, _ := bits.Mul64(uint64(a), b)
	if a < 0 {
		hi -= b
	}
	return int64(hi)
}

func execMulDiv[U word.Uint](e *env[U], op isa.Operation) {
	if isWordForm32M(op.Kind) && word.Width[U]() != 64 {
		e.h.Exception(hart.IllegalInstruction)
		return
	}
	rs1, rs2 := e.h.ReadIntRegister(op.Rs1), e.h.ReadIntRegister(op.Rs2)
	var result U
	switch op.Kind {
	case isa.Mul:
		result = rs1 * rs2
	case isa.Mulh:
		result = U(mulhNative[U](word.AsSigned(rs1), word.AsSigned(rs2)))
	case isa.Mulhu:
		result = U(mulhuNative[U](word.AsUnsigned(rs1), word.AsUnsigned(rs2)))
	case isa.Mulhsu:
		result = U(mulhsuNative[U](word.AsSigned(rs1), word.AsUnsigned(rs2)))
	case isa.Div:
		result = divSigned[U](word.AsSigned(rs1), word.AsSigned(rs2))
	case isa.Divu:
		result = divUnsigned[U](word.AsUnsigned(rs1), word.AsUnsigned(rs2))
	case isa.Rem:
		result = remSigned[U](word.AsSigned(rs1), word.AsSigned(rs2))
	case isa.Remu:
		result = remUnsigned[U](word.AsUnsigned(rs1), word.AsUnsigned(rs2))
	case isa.Mulw:
		result = word.SignExtend32[U](int32(rs1) * int32(rs2))
	case isa.Divw:
		result = word.SignExtend32[U](divSigned32(int32(rs1), int32(rs2)))
	case isa.Divuw:
		result = word.SignExtend32[U](int32(divUnsigned32(uint32(rs1), uint32(rs2))))
	case isa.Remw:
		result = word.SignExtend32[U](remSigned32(int32(rs1), int32(rs2)))
	case isa.Remuw:
		result = word.SignExtend32[U](int32(remUnsigned32(uint32(rs1), uint32(rs2))))
	}
	e.h.WriteIntRegister(op.Rd, result)
}

func isWordForm32M(k isa.Kind) bool {
	switch k {
	case isa.Mulw, isa.Divw, isa.Divuw, isa.Remw, isa.Remuw:
		return true
	}
	return false
}

func mulhNative[U word.Uint](a, b int64) int64 {
	if word.Width[U]() == 32 {
		return (a * b) >> 32
	}
	return mulhSigned(a, b)
}

func mulhuNative[U word.Uint](a, b uint64) uint64 {
	if word.Width[U]() == 32 {
		return (a * b) >> 32
	}
	hi, _ := bits.Mul64(a, b)
	return hi
}

func mulhsuNative[U word.Uint](a int64, b uint64) int64 {
	if word.Width[U]() == 32 {
		return int64((uint64(a) * b) >> 32)
	}
	return mulhSignedUnsigned(a, b)
}

func divSigned[U word.Uint](a, b int64) U {
	width := word.Width[U]()
	minVal := int64(-1) << (width - 1)
	if b == 0 {
		return ^U(0)
	}
	if a == minVal && b == -1 {
		return U(uint64(minVal))
	}
	return U(uint64(a / b))
}

func remSigned[U word.Uint](a, b int64) U {
	width := word.Width[U]()
	minVal := int64(-1) << (width - 1)
	if b == 0 {
		return U(uint64(a))
	}
	if a == minVal && b == -1 {
		return U(0)
	}
	return U(uint64(a % b))
}

func divUnsigned[U word.Uint](a, b uint64) U {
	if b == 0 {
		return ^U(0)
	}
	return U(a / b)
}

func remUnsigned[U word.Uint](a, b uint64) U {
	if b == 0 {
		return U(a)
	}
	return U(a % b)
}

func divSigned32(a, b int32) int32 {
	if b == 0 {
		return -1
	}
	if a == -(1<<31) && b == -1 {
		return a
	}
	return a / b
}

func remSigned32(a, b int32) int32 {
	if b == 0 {
		return a
	}
	if a == -(1<<31) && b == -1 {
		return 0
	}
	return a % b
}

func divUnsigned32(a, b uint32) uint32 {
	if b == 0 {
		return ^uint32(0)
	}
	return a / b
}

func remUnsigned32(a, b uint32) uint32 {
	if b == 0 {
		return a
	}
	return a % b
}
