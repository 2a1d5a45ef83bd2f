package register

import "github.com/bassosimone/risc32/pkg/word"

// CSRErrorKind enumerates the three ways a CSR access can fail.
type CSRErrorKind int

const (
	// CSRUnsupported indicates the addressed CSR is not materialized by
	// this core.
	CSRUnsupported CSRErrorKind = iota
	// CSRMisaligned indicates a malformed CSR access (reserved for
	// future use; no access in this core currently produces it).
	CSRMisaligned
	// CSRAccessFault indicates a privilege or mode violation.
	CSRAccessFault
)

func (k CSRErrorKind) String() string {
	switch k {
	case CSRUnsupported:
		return "unsupported"
	case CSRMisaligned:
		return "misaligned"
	case CSRAccessFault:
		return "access-fault"
	default:
		return "unknown"
	}
}

// CSRError is returned by CSRSpace.Read/Write when an access cannot be
// satisfied.
type CSRError struct {
	Kind CSRErrorKind
	CSR  CSR
}

func (e *CSRError) Error() string {
	return "register: csr " + e.CSR.String() + ": " + e.Kind.String()
}

// The following addresses name the small subset of the 4096-slot CSR
// space that this core materializes: the user-level trap CSRs and the
// floating point control/status CSRs. Every other address surfaces
// CSRUnsupported, per the data model's documented coverage gap.
const (
	AddrFFlags  = 0x001 // floating-point accrued exception flags
	AddrFRM     = 0x002 // floating-point dynamic rounding mode
	AddrFCSR    = 0x003 // fflags (low 5 bits) | frm (bits 5:7)
	AddrStatus  = 0x000 // ustatus
	AddrIE      = 0x004 // uie
	AddrTVec    = 0x005 // utvec
	AddrScratch = 0x040 // uscratch
	AddrEPC     = 0x041 // uepc
	AddrCause   = 0x042 // ucause
	AddrTVal    = 0x043 // utval
	AddrIP      = 0x044 // uip
)

// CSRSpace is the sparse 4096-slot control/status register space. Only
// the addresses named above are backed by storage; every other index
// reports CSRUnsupported on both read and write.
type CSRSpace[U word.Uint] struct {
	status, ie, tvec, scratch, epc, cause, tval, ip U
	fflags, frm                                     uint8
}

// Reset zeros every materialized CSR.
func (s *CSRSpace[U]) Reset() {
	*s = CSRSpace[U]{}
}

// Read returns the current value of reg, or a CSRError if reg is not
// materialized by this core.
func (s *CSRSpace[U]) Read(reg CSR) (U, error) {
	switch reg.Num() {
	case AddrStatus:
		return s.status, nil
	case AddrIE:
		return s.ie, nil
	case AddrTVec:
		return s.tvec, nil
	case AddrScratch:
		return s.scratch, nil
	case AddrEPC:
		return s.epc, nil
	case AddrCause:
		return s.cause, nil
	case AddrTVal:
		return s.tval, nil
	case AddrIP:
		return s.ip, nil
	case AddrFFlags:
		return U(s.fflags), nil
	case AddrFRM:
		return U(s.frm), nil
	case AddrFCSR:
		return U(s.fflags) | U(s.frm)<<5, nil
	default:
		return word.Zero[U](), &CSRError{Kind: CSRUnsupported, CSR: reg}
	}
}

// Write sets the value of reg, or returns a CSRError if reg is not
// materialized by this core.
func (s *CSRSpace[U]) Write(reg CSR, v U) error {
	switch reg.Num() {
	case AddrStatus:
		s.status = v
	case AddrIE:
		s.ie = v
	case AddrTVec:
		s.tvec = v
	case AddrScratch:
		s.scratch = v
	case AddrEPC:
		s.epc = v
	case AddrCause:
		s.cause = v
	case AddrTVal:
		s.tval = v
	case AddrFFlags:
		s.fflags = uint8(v) & 0x1f
	case AddrFRM:
		s.frm = uint8(v) & 0x7
	case AddrFCSR:
		s.fflags = uint8(v) & 0x1f
		s.frm = uint8(v>>5) & 0x7
	case AddrIP:
		s.ip = v
	default:
		return &CSRError{Kind: CSRUnsupported, CSR: reg}
	}
	return nil
}

// SetCause is a direct internal setter used by the hart's reset and
// exception entry points, which must always be able to record a cause
// even though user code writing ucause through Write is perfectly
// legal too.
func (s *CSRSpace[U]) SetCause(v U) { s.cause = v }

// TVec returns the current trap vector base CSR (utvec), unmasked.
func (s *CSRSpace[U]) TVec() U { return s.tvec }

// FRM returns the current dynamic rounding mode (the low 3 bits of
// frm), for floating point operations whose decoded rounding mode says
// "use CSR".
func (s *CSRSpace[U]) FRM() uint8 { return s.frm }

// SetFFlags ORs the given accrued exception flags into fflags, as
// required after a floating point operation signals an IEEE exception.
func (s *CSRSpace[U]) SetFFlags(flags uint8) { s.fflags |= flags & 0x1f }
