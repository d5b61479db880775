package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlreport-go/pkg/xlreport"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "info", "")
	fs.String("log-format", "console", "")
	fs.String("layout", "append", "")
	fs.Int64("seed", 0, "")
	fs.Int("years", 2, "")
	fs.Int("concurrency", 0, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "stderr", cfg.Logger.OutputPath)
	assert.Equal(t, "console", cfg.Logger.Format)

	opts := cfg.Options()
	assert.Equal(t, xlreport.LayoutAppend, opts.Layout)
	assert.Equal(t, 2, opts.YearsBack)
	assert.Zero(t, opts.Seed)
	assert.Zero(t, opts.Concurrency)
	assert.True(t, opts.ShouldWriteDefaultHeader())
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xlreport.yaml")
	content := `
logger:
  level: debug
  format: json
generator:
  layout: fresh
  seed: 11
  years_back: 3
  concurrency: 4
  default_header: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Run("file", func(t *testing.T) {
		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, "json", cfg.Logger.Format)
		assert.Equal(t, "fresh", cfg.Generator.Layout)
		assert.Equal(t, int64(11), cfg.Generator.Seed)
		assert.Equal(t, 3, cfg.Generator.YearsBack)
		assert.Equal(t, 4, cfg.Generator.Concurrency)
		assert.False(t, cfg.Options().ShouldWriteDefaultHeader())
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("XLREPORT_GENERATOR_SEED", "21")
		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(21), cfg.Generator.Seed)
	})

	t.Run("set flags override file, unset flags do not", func(t *testing.T) {
		cfg, err := Load(path, testFlags(t, "--layout", "append", "--concurrency", "8"))
		require.NoError(t, err)
		assert.Equal(t, "append", cfg.Generator.Layout)
		assert.Equal(t, 8, cfg.Generator.Concurrency)
		assert.Equal(t, int64(11), cfg.Generator.Seed)
		assert.Equal(t, "debug", cfg.Logger.Level)
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("invalid layout", func(t *testing.T) {
		_, err := Load("", testFlags(t, "--layout", "sideways"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "generator.layout")
	})

	t.Run("negative concurrency", func(t *testing.T) {
		_, err := Load("", testFlags(t, "--concurrency=-1"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "generator.concurrency")
	})

	t.Run("invalid log format", func(t *testing.T) {
		_, err := Load("", testFlags(t, "--log-format", "xml"))
		assert.Error(t, err)
	})
}
