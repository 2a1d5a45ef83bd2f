package bus

// RAM is a byte-addressable memory backed by an external byte buffer.
// It services reads and writes at any granularically as byte-by-byte
// little-endian assembly/disassembly and wraps the index into the
// buffer modulo its length — a deliberate simplification (see the data
// model's RAM/ROM invariants) that keeps host accesses safe even for
// misaligned or out-of-range addresses, at the cost of silently
// aliasing addresses beyond the buffer's length. When ReadOnly is set,
// writes are rejected with AccessFault, turning the same type into a
// ROM adapter.
type RAM[A Address] struct {
	Buf      []byte
	ReadOnly bool
}

// NewRAM wraps buf as a read-write RAM.
func NewRAM[A Address](buf []byte) *RAM[A] {
	return &RAM[A]{Buf: buf}
}

// NewROM wraps buf as a read-only ROM.
func NewROM[A Address](buf []byte) *RAM[A] {
	return &RAM[A]{Buf: buf, ReadOnly: true}
}

func (m *RAM[A]) index(addr A) int {
	n := len(m.Buf)
	if n == 0 {
		return 0
	}
	return int(uint64(addr) % uint64(n))
}

func (m *RAM[A]) ReadByte(addr A) (uint8, error) {
	return m.Buf[m.index(addr)], nil
}

func (m *RAM[A]) WriteByte(addr A, v uint8) error {
	if m.ReadOnly {
		return &Fault{Kind: AccessFault, Address: uint64(addr)}
	}
	m.Buf[m.index(addr)] = v
	return nil
}

func (m *RAM[A]) ReadHalf(addr A) (uint16, error) {
	var v uint16
	for i := 0; i < 2; i++ {
		b, _ := m.ReadByte(addr + A(i))
		v |= uint16(b) << (8 * i)
	}
	return v, nil
}

func (m *RAM[A]) WriteHalf(addr A, v uint16) error {
	if m.ReadOnly {
		return &Fault{Kind: AccessFault, Address: uint64(addr)}
	}
	for i := 0; i < 2; i++ {
		_ = m.WriteByte(addr+A(i), uint8(v>>(8*i)))
	}
	return nil
}

func (m *RAM[A]) ReadWord(addr A) (uint32, error) {
	var v uint32
	for i := 0; i < 4; i++ {
		b, _ := m.ReadByte(addr + A(i))
		v |= uint32(b) << (8 * i)
	}
	return v, nil
}

func (m *RAM[A]) WriteWord(addr A, v uint32) error {
	if m.ReadOnly {
		return &Fault{Kind: AccessFault, Address: uint64(addr)}
	}
	for i := 0; i < 4; i++ {
		_ = m.WriteByte(addr+A(i), uint8(v>>(8*i)))
	}
	return nil
}

func (m *RAM[A]) ReadLong(addr A) (uint64, error) {
	var v uint64
	for i := 0; i < 8; i++ {
		b, _ := m.ReadByte(addr + A(i))
		v |= uint64(b) << (8 * i)
	}
	return v, nil
}

func (m *RAM[A]) WriteLong(addr A, v uint64) error {
	if m.ReadOnly {
		return &Fault{Kind: AccessFault, Address: uint64(addr)}
	}
	for i := 0; i < 8; i++ {
		_ = m.WriteByte(addr+A(i), uint8(v>>(8*i)))
	}
	return nil
}

func (m *RAM[A]) ReadQuad(addr A) ([2]uint64, error) {
	lo, _ := m.ReadLong(addr)
	hi, _ := m.ReadLong(addr + A(8))
	return [2]uint64{lo, hi}, nil
}

func (m *RAM[A]) WriteQuad(addr A, v [2]uint64) error {
	if m.ReadOnly {
		return &Fault{Kind: AccessFault, Address: uint64(addr)}
	}
	if err := m.WriteLong(addr, v[0]); err != nil {
		return err
	}
	return m.WriteLong(addr+A(8), v[1])
}

var _ Bus[uint32] = &RAM[uint32]{}
var _ Bus[uint64] = &RAM[uint64]{}
