// Package trace implements the per-step PC/operation tracer shared by
// both CLI front-ends, generalizing the teacher's separate -v
// (verbose machine state) and -d (paused single-step) flags into one
// Logger that a run either has or doesn't.
package trace

import (
	"fmt"
	"io"
	"log"

	"github.com/bassosimone/risc32/pkg/isa"
)

// Logger writes one line per executed step when enabled; Step is a
// no-op otherwise, so callers can unconditionally call it on the hot
// path without branching on whether tracing is on.
type Logger struct {
	enabled bool
	out     *log.Logger
}

// New builds a Logger writing to w. If enabled is false, Step never
// writes anything.
func New(w io.Writer, enabled bool) *Logger {
	l := log.New(w, "", 0)
	return &Logger{enabled: enabled, out: l}
}

// Step records one executed instruction: the PC it was fetched at and
// the decoded operation.
func (l *Logger) Step(pc uint64, op isa.Operation) {
	if l == nil || !l.enabled {
		return
	}
	l.out.Printf("%#010x: %s", pc, op.Kind)
}

// Printf forwards a free-form trace line when enabled, for CLI-level
// events (such as reaching ebreak) that aren't tied to a single
// decoded operation.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.enabled {
		return
	}
	l.out.Print(fmt.Sprintf(format, args...))
}
