package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Defaults(t *testing.T) {
	cfg, err := Decode(New())
	require.NoError(t, err)

	assert.Equal(t, Config{
		Format:     "text",
		Selector:   "list",
		Policy:     "strict",
		Inversions: true,
		Parallel:   4,
	}, cfg)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modus.yaml")
	content := "format: json\npolicy: partial\ninversions: false\nparallel: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := New()
	require.NoError(t, Load(v, path))

	cfg, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "partial", cfg.Policy)
	assert.False(t, cfg.Inversions)
	assert.Equal(t, 2, cfg.Parallel)
	assert.Equal(t, "list", cfg.Selector, "unset keys keep their defaults")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_MissingDefaultFileIsIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.NoError(t, Load(New(), ""))
}

func TestDecode_EnvironmentOverride(t *testing.T) {
	t.Setenv("MODUS_FORMAT", "yaml")
	t.Setenv("MODUS_EXTENDED", "true")

	cfg, err := Decode(New())
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Format)
	assert.True(t, cfg.Extended)
}

func TestDecode_FlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o600))

	v := New()
	require.NoError(t, Load(v, path))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(KeyFormat, "text", "")
	require.NoError(t, v.BindPFlag(KeyFormat, flags.Lookup(KeyFormat)))
	require.NoError(t, flags.Parse([]string{"--format", "yaml"}))

	cfg, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
}
