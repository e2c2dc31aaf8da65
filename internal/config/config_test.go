// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jetobsmc/grooming"
	"github.com/katalvlaran/jetobsmc/internal/config"
)

// chdir moves into an empty directory so no stray jetobs.yaml is found.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
	assert.Equal(t, 40, cfg.Bins)
	assert.Empty(t, cfg.Observables)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "", cfg.DB.Path)
	assert.Equal(t, grooming.DefaultParams(), cfg.SoftDrop)
	assert.Equal(t, 0.0, cfg.Canon.Tolerance)
	assert.Nil(t, cfg.CanonOptions())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	yaml := `
workers: 3
bins: 25
observables: [pt, mass, tau21]
log:
  level: debug
  format: json
softdrop:
  zcut: 0.2
  beta: 1
canon:
  tolerance: 0.5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "jetobs.yaml"), []byte(yaml), 0o644))
	t.Setenv("JETOBS_BINS", "60")
	t.Setenv("JETOBS_DB_PATH", "runs.db")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 60, cfg.Bins)
	assert.Equal(t, []string{"pt", "mass", "tau21"}, cfg.Observables)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "runs.db", cfg.DB.Path)
	assert.Equal(t, grooming.Params{ZCut: 0.2, Beta: 1, R0: 1}, cfg.SoftDrop)
	assert.Len(t, cfg.CanonOptions(), 1)
}

func TestLoad_EnvList(t *testing.T) {
	chdir(t)
	t.Setenv("JETOBS_OBSERVABLES", "pt, e2,,c2")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"pt", "e2", "c2"}, cfg.Observables)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bins: 7\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Bins)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"JETOBS_WORKERS":         "0",
		"JETOBS_BINS":            "-1",
		"JETOBS_SOFTDROP_R0":     "0",
		"JETOBS_SOFTDROP_ZCUT":   "-0.1",
		"JETOBS_CANON_TOLERANCE": "-1",
		"JETOBS_LOG_FORMAT":      "xml",
	}
	for env, val := range cases {
		t.Run(env, func(t *testing.T) {
			chdir(t)
			t.Setenv(env, val)
			_, err := config.Load("")
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}
