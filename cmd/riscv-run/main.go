// Command riscv-run loads a flat binary RISC-V image, maps it at the
// configured load base, and steps it until it issues an uncaught
// ecall/ebreak or a configured step cap aborts the run, printing each
// executed PC and decoded operation to standard output. This is the
// "run-until-ecall" front-end; it plays the role the teacher's cmd/vm
// and cmd/interp played, rebuilt around cobra for its flags and
// pkg/loader for mapping a raw image instead of an assembler pipeline.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bassosimone/risc32/pkg/config"
	"github.com/bassosimone/risc32/pkg/exec"
	"github.com/bassosimone/risc32/pkg/hart"
	"github.com/bassosimone/risc32/pkg/loader"
	"github.com/bassosimone/risc32/pkg/trace"
	"github.com/bassosimone/risc32/pkg/word"
)

// memSize is the flat guest address space mapped above the load base;
// large enough for a conformance-suite image plus its working memory.
const memSize = 16 * 1024 * 1024

func main() {
	log.SetFlags(0)

	var configPath string

	cmd := &cobra.Command{
		Use:   "riscv-run <image>",
		Short: "Run a flat RISC-V binary image until it issues ecall",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			image, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return run(cfg, image)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file (defaults if omitted)")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config, image []byte) error {
	switch cfg.Execution.XLen {
	case 64:
		return runXLen[uint64](cfg, image)
	default:
		return runXLen[uint32](cfg, image)
	}
}

func runXLen[U word.Uint](cfg *config.Config, image []byte) error {
	tracer, closeTracer, err := openTracer(cfg)
	if err != nil {
		return err
	}
	defer closeTracer()

	b, err := loader.Map[U](image, memSize, U(cfg.Execution.LoadBase))
	if err != nil {
		return err
	}
	h := hart.New[U](b, U(cfg.Execution.LoadBase))

	for step := uint64(0); ; step++ {
		if step >= cfg.Execution.StepCap {
			return fmt.Errorf("riscv-run: step cap %d exceeded without reaching ecall", cfg.Execution.StepCap)
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

// openTracer always traces to standard output unless the config names
// an output file, per the run-until-ecall front-end's unconditional
// per-step printing; the returned closer is a no-op for stdout.
func openTracer(cfg *config.Config) (*trace.Logger, func(), error) {
	if cfg.Trace.OutputFile == "" {
		return trace.New(os.Stdout, true), func() {}, nil
	}
	f, err := os.Create(cfg.Trace.OutputFile)
	if err != nil {
		return nil, nil, err
	}
	return trace.New(f, true), func() { f.Close() }, nil
}
