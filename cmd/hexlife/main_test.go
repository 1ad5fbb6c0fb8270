package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	// The --set flag merges into the existing map once it has been used.
	t.Cleanup(func() {
		configPath, overrides = "", map[string]string{}
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPatternsListsCatalog(t *testing.T) {
	out, err := execute(t, "patterns", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "single cell")
	assert.Contains(t, out, "star")
}

func TestRunComputesRequestedTicks(t *testing.T) {
	_, err := execute(t, "run",
		"--log-level", "error",
		"--ticks", "3",
		"--set", "resolution=1",
		"--set", "seed=5",
	)
	assert.NoError(t, err)
}

func TestRunRejectsUnknownPattern(t *testing.T) {
	_, err := execute(t, "run", "--log-level", "error", "--ticks", "1",
		"--set", "resolution=0", "--pattern", "glider gun")
	assert.Error(t, err)
	runPattern = ""
}

func TestLoadConfigAppliesOverridesOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexlife.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resolution: 3\nseed: 8\n"), 0o644))
	configPath = path
	overrides = map[string]string{"resolution": "1"}
	t.Cleanup(func() { configPath, overrides = "", map[string]string{} })

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Resolution)
	assert.Equal(t, int64(8), cfg.Seed)
}

func TestLoadConfigValidates(t *testing.T) {
	overrides = map[string]string{"resolution": "9"}
	t.Cleanup(func() { overrides = map[string]string{} })

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestSetupLoggingRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, setupLogging("chatty"))
	assert.NoError(t, setupLogging("debug"))
}
