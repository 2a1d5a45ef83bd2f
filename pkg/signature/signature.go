// Package signature implements the conformance front-end's
// symbol-table scan and signature-region dump (spec.md §6,
// "Conformance"): it locates begin_signature/end_signature in a
// standard object-dump symbol listing and renders the memory words
// between them as the line format a reference conformance suite
// expects.
package signature

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bassosimone/risc32/pkg/bus"
	"github.com/bassosimone/risc32/pkg/word"
)

// Range names the addresses bracketing the signature region:
// [Begin, End).
type Range struct {
	Begin, End uint64
}

// ParseSymbols scans r's lines for the two token matches
// begin_signature and end_signature, reading the first 8-character
// hex field on each matching line as an address. A symbol file that
// names neither token yields a zero Range (an empty signature
// region), per spec.md §7's documented CLI failure mode.
func ParseSymbols(r io.Reader) (Range, error) {
	var rng Range
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.Contains(line, "begin_signature"):
			addr, ok := firstHexField(line)
			if ok {
				rng.Begin = addr
			}
		case strings.Contains(line, "end_signature"):
			addr, ok := firstHexField(line)
			if ok {
				rng.End = addr
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Range{}, fmt.Errorf("signature: failed to read symbol file: %w", err)
	}
	return rng, nil
}

// firstHexField extracts the first whitespace-delimited 8-character
// hex field on line, as produced by a standard symbol-table dump's
// address column.
func firstHexField(line string) (uint64, bool) {
	for _, field := range strings.Fields(line) {
		if len(field) != 8 {
			continue
		}
		v, err := strconv.ParseUint(field, 16, 64)
		if err == nil {
			return v, true
		}
	}
	return 0, false
}

// Dump writes one lowercase hex 32-bit word per line, in ascending
// address order, for every 4-byte-aligned address in [rng.Begin,
// rng.End). rng.Begin itself need not be aligned: the first line comes
// from the first aligned address at or after it, matching the
// reference conformance harness, which walks the region byte by byte
// and only acts on aligned offsets. A read fault renders as the
// literal line "XXXXXXXX", per spec.md §6.
func Dump[U word.Uint](b bus.Bus[U], rng Range, w io.Writer) error {
	start := rng.Begin
	if start%4 != 0 {
		start += 4 - start%4
	}
	for addr := start; addr < rng.End; addr += 4 {
		v, err := b.ReadWord(U(addr))
		if err != nil {
			if _, werr := fmt.Fprintln(w, "XXXXXXXX"); werr != nil {
				return werr
			}
			continue
		}
		if _, werr := fmt.Fprintf(w, "%08x\n", v); werr != nil {
			return werr
		}
	}
	return nil
}
