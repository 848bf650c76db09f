package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Entries)
	assert.Empty(t, cfg.DefaultEditor)
}

func TestLoadBlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("  \n\t\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Entries)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("entries: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yml")

	cfg := &Config{
		Entries: []Entry{
			{Path: "/tmp/project"},
			{Path: "/tmp/other", Editor: "code --wait"},
		},
		DefaultEditor: "nvim",
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Entries, loaded.Entries)
	assert.Equal(t, "nvim", loaded.DefaultEditor)
}

func TestSaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	require.NoError(t, Save(path, &Config{DefaultEditor: "vim"}))
	require.NoError(t, Save(path, &Config{DefaultEditor: "hx"}))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hx", loaded.DefaultEditor)

	// No temp files left behind.
	matches, err := filepath.Glob(filepath.Join(dir, ".config-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestHasEditor(t *testing.T) {
	assert.False(t, Entry{Path: "/tmp"}.HasEditor())
	assert.True(t, Entry{Path: "/tmp", Editor: "vim"}.HasEditor())
}
