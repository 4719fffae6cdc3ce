package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is the pre-Go 1.24 equivalent of t.Chdir.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestInitConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	v, err := InitConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8, v.GetInt("crawler.concurrency"))
	assert.Equal(t, 3, v.GetInt("crawler.depth_limit"))
	assert.Equal(t, 100, v.GetInt("crawler.min_text_length"))
	assert.InDelta(t, 0.5, v.GetFloat64("crawler.min_language_confidence"), 0.001)
	assert.True(t, v.GetBool("crawler.respect_robots"))
	assert.Equal(t, "data/crawled", v.GetString("crawler.output_dir"))
}

func TestInitConfigExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("crawler:\n  concurrency: 3\n  output_dir: /tmp/out\n"), 0o644))

	v, err := InitConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, v.GetInt("crawler.concurrency"))
	assert.Equal(t, "/tmp/out", v.GetString("crawler.output_dir"))
	// Unset keys still fall back to defaults.
	assert.Equal(t, 100, v.GetInt("crawler.min_text_length"))
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	_, err := InitConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestInitConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LOOKUPLY_CRAWLER_CONCURRENCY", "42")

	v, err := InitConfig("")
	require.NoError(t, err)
	assert.Equal(t, 42, v.GetInt("crawler.concurrency"))
}
