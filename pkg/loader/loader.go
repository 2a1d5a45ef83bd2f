// Package loader maps a flat binary image into a guest address space:
// it copies the image into a host buffer sized for the whole guest
// memory region and wraps it in an address transformer that subtracts
// the configured load base, so guest addresses at or above the load
// base index into the buffer and everything below faults. Grounded on
// arm-emulator's loader (which maps a parsed program's segments into
// VM memory at an entry point) and the teacher's own LoadBytecode,
// adapted here for a headerless flat image rather than an assembled
// program.
package loader

import (
	"fmt"

	"github.com/bassosimone/risc32/pkg/bus"
	"github.com/bassosimone/risc32/pkg/word"
)

// Map copies image into a host buffer of memSize bytes (zero-filled
// beyond the image's length, giving the guest scratch memory to work
// with) and returns a Bus that maps guest address loadBase onto the
// start of that buffer. It fails if the image does not fit.
func Map[U word.Uint](image []byte, memSize int, loadBase U) (bus.Bus[U], error) {
	if len(image) > memSize {
		return nil, fmt.Errorf("loader: image is %d bytes, exceeds memory size %d", len(image), memSize)
	}
	buf := make([]byte, memSize)
	copy(buf, image)
	ram := bus.NewRAM[U](buf)
	return bus.NewTransformer[U](ram, bus.SubtractBase[U](loadBase)), nil
}
