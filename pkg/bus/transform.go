package bus

// Transformer adapts a Bus by applying a caller-supplied function to
// every incoming address before delegating to the wrapped bus — for
// example, subtracting a guest load base to map a guest address onto a
// host buffer index. If the transform function itself reports a
// fault, that fault is returned directly without ever consulting the
// wrapped bus.
type Transformer[A Address] struct {
	Inner     Bus[A]
	Transform func(addr A) (A, error)
}

// NewTransformer builds a Transformer wrapping inner, applying fn to
// every address before delegating.
func NewTransformer[A Address](inner Bus[A], fn func(addr A) (A, error)) *Transformer[A] {
	return &Transformer[A]{Inner: inner, Transform: fn}
}

func (t *Transformer[A]) ReadByte(addr A) (uint8, error) {
	a, err := t.Transform(addr)
	if err != nil {
		return 0, err
	}
	return t.Inner.ReadByte(a)
}

func (t *Transformer[A]) WriteByte(addr A, v uint8) error {
	a, err := t.Transform(addr)
	if err != nil {
		return err
	}
	return t.Inner.WriteByte(a, v)
}

func (t *Transformer[A]) ReadHalf(addr A) (uint16, error) {
	a, err := t.Transform(addr)
	if err != nil {
		return 0, err
	}
	return t.Inner.ReadHalf(a)
}

func (t *Transformer[A]) WriteHalf(addr A, v uint16) error {
	a, err := t.Transform(addr)
	if err != nil {
		return err
	}
	return t.Inner.WriteHalf(a, v)
}

func (t *Transformer[A]) ReadWord(addr A) (uint32, error) {
	a, err := t.Transform(addr)
	if err != nil {
		return 0, err
	}
	return t.Inner.ReadWord(a)
}

func (t *Transformer[A]) WriteWord(addr A, v uint32) error {
	a, err := t.Transform(addr)
	if err != nil {
		return err
	}
	return t.Inner.WriteWord(a, v)
}

func (t *Transformer[A]) ReadLong(addr A) (uint64, error) {
	a, err := t.Transform(addr)
	if err != nil {
		return 0, err
	}
	return t.Inner.ReadLong(a)
}

func (t *Transformer[A]) WriteLong(addr A, v uint64) error {
	a, err := t.Transform(addr)
	if err != nil {
		return err
	}
	return t.Inner.WriteLong(a, v)
}

func (t *Transformer[A]) ReadQuad(addr A) ([2]uint64, error) {
	a, err := t.Transform(addr)
	if err != nil {
		return [2]uint64{}, err
	}
	return t.Inner.ReadQuad(a)
}

func (t *Transformer[A]) WriteQuad(addr A, v [2]uint64) error {
	a, err := t.Transform(addr)
	if err != nil {
		return err
	}
	return t.Inner.WriteQuad(a, v)
}

var _ Bus[uint32] = &Transformer[uint32]{}

// SubtractBase returns a Transform function that maps addr to addr -
// base, reporting PageFault if addr is below base (underflow).
func SubtractBase[A Address](base A) func(A) (A, error) {
	return func(addr A) (A, error) {
		if addr < base {
			return 0, &Fault{Kind: PageFault, Address: uint64(addr)}
		}
		return addr - base, nil
	}
}
