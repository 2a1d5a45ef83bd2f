package trace_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bassosimone/risc32/pkg/isa"
	"github.com/bassosimone/risc32/pkg/trace"
)

func TestStepWritesWhenEnabled(t *testing.T) {
	var out bytes.Buffer
	l := trace.New(&out, true)
	l.Step(0x8000_0000, isa.Operation{Kind: isa.Addi})
	assert.Contains(t, out.String(), "addi")
	assert.Contains(t, out.String(), "0x8000000")
}

func TestStepSilentWhenDisabled(t *testing.T) {
	var out bytes.Buffer
	l := trace.New(&out, false)
	l.Step(0x8000_0000, isa.Operation{Kind: isa.Addi})
	assert.Empty(t, out.String())
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *trace.Logger
	l.Step(0, isa.Operation{Kind: isa.Addi})
	l.Printf("unreachable %d", 1)
}

func TestPrintfFormatsArgs(t *testing.T) {
	var out bytes.Buffer
	l := trace.New(&out, true)
	l.Printf("step cap %d exceeded", 512)
	assert.True(t, strings.Contains(out.String(), "step cap 512 exceeded"))
}
