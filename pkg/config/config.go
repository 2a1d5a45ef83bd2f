// Package config loads the execution settings shared by both CLI
// front-ends: the guest load base, the step cap enforced against
// runaway images, and the trace toggles. Settings are TOML-backed
// with a coded-default fallback, mirroring the arm-emulator config
// package's DefaultConfig/LoadFrom split.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings a run needs beyond the image itself.
type Config struct {
	Execution struct {
		// LoadBase is the guest address the image's first byte is
		// mapped to.
		LoadBase uint64 `toml:"load_base"`
		// StepCap bounds how many Step calls a run will make before
		// giving up on a runaway image.
		StepCap uint64 `toml:"step_cap"`
		// XLen selects the register width: 32 or 64.
		XLen uint `toml:"xlen"`
	} `toml:"execution"`

	Trace struct {
		// Enabled turns on riscv-conform's per-step PC/operation
		// tracing; riscv-run traces every step regardless.
		Enabled bool `toml:"enabled"`
		// OutputFile receives riscv-run's trace lines; empty means
		// standard output. riscv-conform always traces to standard
		// output.
		OutputFile string `toml:"output_file"`
	} `toml:"trace"`
}

// DefaultConfig returns the settings used when no config file is
// present: a 0x8000_0000 guest load base (the address spec.md's
// conformance front-end uses), a 512-step cap, RV32, and tracing off.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Execution.LoadBase = 0x8000_0000
	cfg.Execution.StepCap = 512
	cfg.Execution.XLen = 32
	cfg.Trace.Enabled = false
	cfg.Trace.OutputFile = ""
	return cfg
}

// Load reads path, falling back to DefaultConfig if it does not
// exist. A malformed file is reported as an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
