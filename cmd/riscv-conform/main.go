// Command riscv-conform runs a flat RISC-V binary image exactly like
// riscv-run, then additionally parses an object-dump symbol listing
// for the begin_signature/end_signature markers and dumps the memory
// words between them to a signature file, for comparison against a
// reference conformance suite's expected output.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bassosimone/risc32/pkg/bus"
	"github.com/bassosimone/risc32/pkg/config"
	"github.com/bassosimone/risc32/pkg/exec"
	"github.com/bassosimone/risc32/pkg/hart"
	"github.com/bassosimone/risc32/pkg/loader"
	"github.com/bassosimone/risc32/pkg/signature"
	"github.com/bassosimone/risc32/pkg/trace"
	"github.com/bassosimone/risc32/pkg/word"
)

const memSize = 16 * 1024 * 1024

func main() {
	log.SetFlags(0)

	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "riscv-conform <image> <symbols> <signature-out>",
		Short: "Run a RISC-V conformance image and dump its signature region",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Trace.Enabled = true
			}
			image, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			symbols, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer symbols.Close()
			rng, err := signature.ParseSymbols(symbols)
			if err != nil {
				return err
			}
			out, err := os.Create(args[2])
			if err != nil {
				return err
			}
			defer out.Close()
			return conform(cfg, image, rng, out)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file (defaults if omitted)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every executed step to standard output")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func conform(cfg *config.Config, image []byte, rng signature.Range, out *os.File) error {
	switch cfg.Execution.XLen {
	case 64:
		return conformXLen[uint64](cfg, image, rng, out)
	default:
		return conformXLen[uint32](cfg, image, rng, out)
	}
}

func conformXLen[U word.Uint](cfg *config.Config, image []byte, rng signature.Range, out *os.File) error {
	tracer := trace.New(os.Stdout, cfg.Trace.Enabled)

	b, err := loader.Map[U](image, memSize, U(cfg.Execution.LoadBase))
	if err != nil {
		return err
	}
	h := hart.New[U](b, U(cfg.Execution.LoadBase))

	if err := run(h, cfg.Execution.StepCap, tracer); err != nil {
		return err
	}

	var dumpErr error
	h.WithMemory(func(mem bus.Bus[U]) error {
		dumpErr = signature.Dump[U](mem, rng, out)
		return nil
	})
	return dumpErr
}

func run[U word.Uint](h *hart.Hart[U], stepCap uint64, tracer *trace.Logger) error {
	for step := uint64(0); ; step++ {
		if step >= stepCap {
			return fmt.Errorf("riscv-conform: step cap %d exceeded without reaching ecall", stepCap)
		}
		res := exec.Step(h)
		tracer.Step(res.PC, res.Op)
		switch res.Status {
		case exec.EnvironmentCall:
			return nil
		case exec.EnvironmentBreak:
			tracer.Printf("ebreak at %#x", res.PC)
			return nil
		}
	}
}
