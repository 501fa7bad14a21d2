package config

import (
	"os"
	"path/filepath"
	goruntime "runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syamace/syaOS/internal/shell"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	return &Manager{dir: t.TempDir()}
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	m := testManager(t)

	scope, err := m.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultScope(), scope)
	assert.True(t, scope.OpenURLs)
	assert.Empty(t, scope.Commands)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	m := testManager(t)
	scope := shell.Scope{
		OpenURLs: true,
		Commands: []shell.CommandSpec{
			{Name: "echo", Cmd: "echo", AllowExtraArgs: true},
			{Name: "status", Cmd: "git", Args: []string{"status"}},
		},
	}

	require.NoError(t, m.Save(scope))

	loaded, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, scope, loaded)
}

func TestLoadMalformedFileIsAnError(t *testing.T) {
	m := testManager(t)
	require.NoError(t, os.WriteFile(filepath.Join(m.dir, scopeFileName), []byte("{not json"), 0600))

	_, err := m.Load()

	require.ErrorContains(t, err, "failed to parse capability scope")
}

func TestSaveRestrictsPermissions(t *testing.T) {
	m := testManager(t)

	require.NoError(t, m.Save(DefaultScope()))

	info, err := os.Stat(filepath.Join(m.dir, scopeFileName))
	require.NoError(t, err)
	if goruntime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}
