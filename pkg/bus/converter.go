package bus

// WidthConverter adapts a Bus[Inner] so it can be used where a
// Bus[Outer] is expected, narrowing or widening addresses as needed.
// An incoming address that does not fit in Inner (detected by a
// round-trip check: converting down and back up must reproduce the
// original value) yields PageFault without ever reaching the wrapped
// bus.
type WidthConverter[Outer Address, Inner Address] struct {
	Inner Bus[Inner]
}

// NewWidthConverter wraps inner for use as a Bus[Outer].
func NewWidthConverter[Outer Address, Inner Address](inner Bus[Inner]) *WidthConverter[Outer, Inner] {
	return &WidthConverter[Outer, Inner]{Inner: inner}
}

func (c *WidthConverter[Outer, Inner]) convert(addr Outer) (Inner, error) {
	inner := Inner(addr)
	if Outer(inner) != addr {
		return 0, &Fault{Kind: PageFault, Address: uint64(addr)}
	}
	return inner, nil
}

func (c *WidthConverter[Outer, Inner]) ReadByte(addr Outer) (uint8, error) {
	a, err := c.convert(addr)
	if err != nil {
		return 0, err
	}
	return c.Inner.ReadByte(a)
}

func (c *WidthConverter[Outer, Inner]) WriteByte(addr Outer, v uint8) error {
	a, err := c.convert(addr)
	if err != nil {
		return err
	}
	return c.Inner.WriteByte(a, v)
}

func (c *WidthConverter[Outer, Inner]) ReadHalf(addr Outer) (uint16, error) {
	a, err := c.convert(addr)
	if err != nil {
		return 0, err
	}
	return c.Inner.ReadHalf(a)
}

func (c *WidthConverter[Outer, Inner]) WriteHalf(addr Outer, v uint16) error {
	a, err := c.convert(addr)
	if err != nil {
		return err
	}
	return c.Inner.WriteHalf(a, v)
}

func (c *WidthConverter[Outer, Inner]) ReadWord(addr Outer) (uint32, error) {
	a, err := c.convert(addr)
	if err != nil {
		return 0, err
	}
	return c.Inner.ReadWord(a)
}

func (c *WidthConverter[Outer, Inner]) WriteWord(addr Outer, v uint32) error {
	a, err := c.convert(addr)
	if err != nil {
		return err
	}
	return c.Inner.WriteWord(a, v)
}

func (c *WidthConverter[Outer, Inner]) ReadLong(addr Outer) (uint64, error) {
	a, err := c.convert(addr)
	if err != nil {
		return 0, err
	}
	return c.Inner.ReadLong(a)
}

func (c *WidthConverter[Outer, Inner]) WriteLong(addr Outer, v uint64) error {
	a, err := c.convert(addr)
	if err != nil {
		return err
	}
	return c.Inner.WriteLong(a, v)
}

func (c *WidthConverter[Outer, Inner]) ReadQuad(addr Outer) ([2]uint64, error) {
	a, err := c.convert(addr)
	if err != nil {
		return [2]uint64{}, err
	}
	return c.Inner.ReadQuad(a)
}

func (c *WidthConverter[Outer, Inner]) WriteQuad(addr Outer, v [2]uint64) error {
	a, err := c.convert(addr)
	if err != nil {
		return err
	}
	return c.Inner.WriteQuad(a, v)
}

var _ Bus[uint64] = &WidthConverter[uint64, uint32]{}
