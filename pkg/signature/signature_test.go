package signature_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bassosimone/risc32/pkg/bus"
	"github.com/bassosimone/risc32/pkg/signature"
)

const sampleSymbols = `
00000000 l    d  .text	00000000 .text
80000000 g       .data	00000000 begin_signature
80000010 g       .data	00000000 end_signature
`

func TestParseSymbols(t *testing.T) {
	rng, err := signature.ParseSymbols(strings.NewReader(sampleSymbols))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x8000_0000), rng.Begin)
	assert.Equal(t, uint64(0x8000_0010), rng.End)
}

func TestParseSymbolsEmptyWhenMissing(t *testing.T) {
	rng, err := signature.ParseSymbols(strings.NewReader("no markers here\n"))
	require.NoError(t, err)
	assert.Equal(t, signature.Range{}, rng)
}

func TestDumpThreeWords(t *testing.T) {
	ram := bus.NewRAM[uint32](make([]byte, 16))
	require.NoError(t, ram.WriteWord(0, 0))
	require.NoError(t, ram.WriteWord(4, 1))
	require.NoError(t, ram.WriteWord(8, 0xdeadbeef))

	var out bytes.Buffer
	require.NoError(t, signature.Dump[uint32](ram, signature.Range{Begin: 0, End: 12}, &out))
	assert.Equal(t, "00000000\n00000001\ndeadbeef\n", out.String())
}

func TestDumpMisalignedBeginRoundsUp(t *testing.T) {
	ram := bus.NewRAM[uint32](make([]byte, 16))
	require.NoError(t, ram.WriteWord(0, 0xaaaaaaaa))
	require.NoError(t, ram.WriteWord(4, 1))
	require.NoError(t, ram.WriteWord(8, 0xdeadbeef))

	var out bytes.Buffer
	require.NoError(t, signature.Dump[uint32](ram, signature.Range{Begin: 1, End: 12}, &out))
	assert.Equal(t, "00000001\ndeadbeef\n", out.String())
}

func TestDumpFaultPrintsPlaceholder(t *testing.T) {
	ram := bus.NewROM[uint32](make([]byte, 4))
	faulty := &faultingBus{}
	var out bytes.Buffer
	require.NoError(t, signature.Dump[uint32](faulty, signature.Range{Begin: 0, End: 4}, &out))
	assert.Equal(t, "XXXXXXXX\n", out.String())
	_ = ram
}

type faultingBus struct{ bus.Bus[uint32] }

func (f *faultingBus) ReadWord(addr uint32) (uint32, error) {
	return 0, &bus.Fault{Kind: bus.AccessFault, Address: uint64(addr)}
}
