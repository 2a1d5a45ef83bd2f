package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, uint64(0x8000_0000), cfg.Execution.LoadBase)
	assert.Equal(t, uint64(512), cfg.Execution.StepCap)
	assert.Equal(t, uint(32), cfg.Execution.XLen)
	assert.False(t, cfg.Trace.Enabled)
}

func TestLoadNonExistentReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riscv-emu.toml")
	contents := `
[execution]
load_base = 4096
step_cap = 1000
xlen = 64

[trace]
enabled = true
output_file = "trace.log"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), cfg.Execution.LoadBase)
	assert.Equal(t, uint64(1000), cfg.Execution.StepCap)
	assert.Equal(t, uint(64), cfg.Execution.XLen)
	assert.True(t, cfg.Trace.Enabled)
	assert.Equal(t, "trace.log", cfg.Trace.OutputFile)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.toml")
	require.NoError(t, os.WriteFile(path, []byte("execution = \"not a table\""), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
