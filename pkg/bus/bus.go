// Package bus implements the memory bus abstraction: byte/half/word/
// long/quad granularity access with a small fault taxonomy, and the
// RAM/ROM, address-transformer, and address-width-converter adapters
// described by the data model.
package bus

import "fmt"

// FaultKind enumerates the three ways a bus access can fail. The
// executor converts a FaultKind into the cause-code-appropriate
// exception depending on whether the access was a code fetch, a data
// load, or a data store (see pkg/exec).
type FaultKind int

const (
	// Misaligned indicates the address did not meet the access's
	// alignment requirement. The RAM/ROM adapter itself never raises
	// this — per the data model, misalignment is a decision left to the
	// operation's definition, not the bus.
	Misaligned FaultKind = iota
	// AccessFault indicates a permission violation, e.g. writing to ROM.
	AccessFault
	// PageFault indicates the address could not be translated, e.g. an
	// address-width converter rejecting an out-of-range address.
	PageFault
)

func (k FaultKind) String() string {
	switch k {
	case Misaligned:
		return "misaligned"
	case AccessFault:
		return "access-fault"
	case PageFault:
		return "page-fault"
	default:
		return "unknown-fault"
	}
}

// Fault is returned by a Bus's Read*/Write* methods when an access
// cannot be satisfied.
type Fault struct {
	Kind    FaultKind
	Address uint64
}

func (f *Fault) Error() string {
	return fmt.Sprintf("bus: %s at %#x", f.Kind, f.Address)
}

// Bus is the abstract memory interface, parameterized by address type
// A (uint32 for a 32-bit bus, uint64 for a 64-bit bus). Multi-byte
// accesses are little-endian.
type Bus[A Address] interface {
	ReadByte(addr A) (uint8, error)
	WriteByte(addr A, v uint8) error
	ReadHalf(addr A) (uint16, error)
	WriteHalf(addr A, v uint16) error
	ReadWord(addr A) (uint32, error)
	WriteWord(addr A, v uint32) error
	ReadLong(addr A) (uint64, error)
	WriteLong(addr A, v uint64) error
	ReadQuad(addr A) ([2]uint64, error)
	WriteQuad(addr A, v [2]uint64) error
}

// Address is the set of types a Bus may be indexed by.
type Address interface {
	~uint32 | ~uint64
}
