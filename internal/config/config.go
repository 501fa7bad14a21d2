// Package config persists the shell capability scope.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/syamace/syaOS/internal/shell"
)

const (
	appDirName    = "syaOS"
	scopeFileName = "capabilities.json"
)

// Manager loads and saves the capability scope.
type Manager struct {
	mu sync.Mutex

	// dir overrides the user config directory when set. Used in tests.
	dir string
}

func NewManager() *Manager {
	return &Manager{}
}

// DefaultScope permits opening URLs in the system browser and nothing else.
func DefaultScope() shell.Scope {
	return shell.Scope{OpenURLs: true}
}

func (m *Manager) scopePath() (string, error) {
	dir := m.dir
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(configDir, appDirName)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, scopeFileName), nil
}

// Load returns the saved scope, or the default scope if none was saved yet.
// A file that exists but cannot be parsed is an error: capability grants are
// never guessed.
func (m *Manager) Load() (shell.Scope, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path, err := m.scopePath()
	if err != nil {
		return shell.Scope{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultScope(), nil
	}
	if err != nil {
		return shell.Scope{}, err
	}

	var scope shell.Scope
	if err := json.Unmarshal(data, &scope); err != nil {
		return shell.Scope{}, fmt.Errorf("failed to parse capability scope: %w", err)
	}
	return scope, nil
}

// Save writes the scope with restricted permissions.
func (m *Manager) Save(scope shell.Scope) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path, err := m.scopePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(scope, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
