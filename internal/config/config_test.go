package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2021"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("inputs-dir", DefaultInputsDir, "")
	fs.Bool("debug", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, &Config{InputsDir: DefaultInputsDir}, cfg)

	cfg, err = Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultInputsDir, cfg.InputsDir)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "inputs_dir: from-file\ndebug: true\n")

	cfg, err := Load(path, testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.InputsDir)
	assert.True(t, cfg.Debug)

	cfg, err = Load(path, testFlags(t, "--inputs-dir", "from-flag"))
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.InputsDir)
	assert.True(t, cfg.Debug)
}

func TestLoadIgnoresEnv(t *testing.T) {
	t.Setenv("INPUTS_DIR", "from-env")
	cfg, err := Load("", testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultInputsDir, cfg.InputsDir)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	var ioe *aoc.IOError
	assert.ErrorAs(t, err, &ioe)

	var ue *aoc.UsageError
	_, err = Load(writeConfig(t, "inputs_dir: [unclosed\n"), nil)
	assert.ErrorAs(t, err, &ue)

	_, err = Load("", testFlags(t, "--inputs-dir", ""))
	assert.ErrorAs(t, err, &ue)
}
