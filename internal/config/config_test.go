package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gedcomx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	cfg, err := Load(New(), writeConfig(t, ""))
	r.NoError(err)
	a.Equal(Config{Output: OutputYAML, ExpandLimit: 10, LogLevel: "info"}, cfg)

	lvl, err := cfg.Level()
	r.NoError(err)
	a.Equal(slog.LevelInfo, lvl)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	path := writeConfig(t, "output: json\nexpand_limit: 3\nlog_level: debug\n")
	cfg, err := Load(New(), path)
	r.NoError(err)
	a.Equal(Config{Output: OutputJSON, ExpandLimit: 3, LogLevel: "debug"}, cfg)
}

func TestLoadOverride(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	v := New()
	v.Set("expand_limit", 25)
	cfg, err := Load(v, writeConfig(t, "expand_limit: 3\n"))
	r.NoError(err)
	a.Equal(25, cfg.ExpandLimit)
}

// Not parallel: t.Setenv modifies the process environment.
func TestLoadEnv(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	t.Setenv("GEDCOMX_OUTPUT", "json")
	t.Setenv("GEDCOMX_LOG_LEVEL", "warn")
	cfg, err := Load(New(), writeConfig(t, "output: yaml\n"))
	r.NoError(err)
	a.Equal(OutputJSON, cfg.Output)
	a.Equal("warn", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test string
		body string
		err  string
	}{
		{"output", "output: toml\n", `config: unknown output format "toml"`},
		{"limit", "expand_limit: 0\n", "config: expand_limit must be greater than zero"},
		{"level", "log_level: loud\n", ""},
		{"syntax", "output: [\n", ""},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			_, err := Load(New(), writeConfig(t, tc.body))
			r.ErrorIs(err, ErrConfig)
			if tc.err != "" {
				r.EqualError(err, tc.err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	r.ErrorIs(err, ErrConfig)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.NoError(Config{Output: OutputJSON, ExpandLimit: 1, LogLevel: "ERROR"}.Validate())
	a.ErrorIs(Config{Output: OutputJSON, ExpandLimit: 1, LogLevel: "nope"}.Validate(), ErrConfig)
	a.ErrorIs(Config{Output: "", ExpandLimit: 1, LogLevel: "info"}.Validate(), ErrConfig)
}
