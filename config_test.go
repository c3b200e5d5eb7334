package lox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ".glox_history", cfg.HistoryFile)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, "... ", cfg.ContinuationPrompt)
	assert.Equal(t, 1024, cfg.MaxCallDepth)
}

func TestLoadConfigWithNoFileAnywhereReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	withWorkingDir(t, dir)
	withHome(t, filepath.Join(dir, "empty-home"))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigExplicitPathOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "prompt: \"lox> \"\nmax_call_depth: 64\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "lox> ", cfg.Prompt)
	assert.Equal(t, 64, cfg.MaxCallDepth)
	assert.Equal(t, DefaultConfig().HistoryFile, cfg.HistoryFile)
}

func TestLoadConfigExplicitPathMissingIsAnError(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadConfig(filepath.Join(dir, "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigDiscoversWorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "glox.yaml"), "prompt: \"local> \"\n")
	withWorkingDir(t, dir)
	withHome(t, filepath.Join(dir, "empty-home"))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "local> ", cfg.Prompt)
}

func TestLoadConfigFallsBackToHomeDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	home := filepath.Join(dir, "home")
	require.NoError(t, os.MkdirAll(home, 0o755))
	writeFile(t, filepath.Join(home, ".glox.yaml"), "prompt: \"home> \"\n")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cwd-with-no-glox-yaml"), 0o755))
	withWorkingDir(t, filepath.Join(dir, "cwd-with-no-glox-yaml"))
	withHome(t, home)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "home> ", cfg.Prompt)
}

func TestLoadConfigMalformedYamlIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	writeFile(t, path, "prompt: [this is not a string\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func withWorkingDir(t *testing.T, dir string) {
	t.Helper()
	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(original) })
}

func withHome(t *testing.T, home string) {
	t.Helper()
	t.Setenv("HOME", home)
}
