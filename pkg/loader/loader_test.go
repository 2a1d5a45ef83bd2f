package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bassosimone/risc32/pkg/loader"
)

func TestMapReadsImageAtLoadBase(t *testing.T) {
	image := []byte{0x93, 0x00, 0x30, 0x00} // addi x1, x0, 3
	b, err := loader.Map[uint32](image, 4096, 0x8000_0000)
	require.NoError(t, err)

	v, err := b.ReadWord(0x8000_0000)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00300093), v)
}

func TestMapFaultsBelowLoadBase(t *testing.T) {
	b, err := loader.Map[uint32]([]byte{1, 2, 3, 4}, 4096, 0x8000_0000)
	require.NoError(t, err)

	_, err = b.ReadByte(0)
	assert.Error(t, err)
}

func TestMapRejectsOversizedImage(t *testing.T) {
	_, err := loader.Map[uint32](make([]byte, 8192), 4096, 0)
	assert.Error(t, err)
}

func TestMapZeroFillsBeyondImage(t *testing.T) {
	b, err := loader.Map[uint32]([]byte{0xff}, 16, 0)
	require.NoError(t, err)

	v, err := b.ReadByte(8)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v)
}
