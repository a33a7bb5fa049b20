package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePrefs(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	writePrefs(t, filepath.Join(home, ".config", "ganjoor", "prefs.toml"),
		"theme = \"Slate\"\nlast_poem_id = 2130\nshow_comments = true\n")

	p, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Prefs{Theme: "Slate", LastPoemID: 2130, ShowComments: true}, p)
}

func TestSave_RoundTripsThroughTildePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := Prefs{Theme: "Nightfox", LastPoemID: 42}
	require.NoError(t, Save("~/nested/dir/prefs.toml", p))
	assert.FileExists(t, filepath.Join(home, "nested", "dir", "prefs.toml"))

	loaded, err := Load("~/nested/dir/prefs.toml")
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestLoad_Normalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	writePrefs(t, path, "theme = \"  \"\nlast_poem_id = -3\n")

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, defaultTheme, p.Theme)
	assert.Zero(t, p.LastPoemID)
}

func TestLoad_BrokenFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	writePrefs(t, path, "last_poem_id = \"many\"\n")

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	// A directory in place of the file is unreadable, not fatal.
	p, err = Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}
