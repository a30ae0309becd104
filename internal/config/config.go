// Package config resolves where the task list is persisted.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the name of the task file inside the home directory.
const FileName = "todo.json"

// Config holds the values fixed for the lifetime of one invocation.
type Config struct {
	// DataFile is the path of the persisted task list.
	DataFile string
}

// Default returns the configuration rooted at the user's home directory.
func Default() (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get home directory: %w", err)
	}
	return InDir(homeDir), nil
}

// InDir returns a configuration that keeps the task file in dir.
func InDir(dir string) Config {
	return Config{DataFile: filepath.Join(dir, FileName)}
}
