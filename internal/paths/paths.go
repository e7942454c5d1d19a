package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "winplace"

// ConfigDir returns the directory holding the window settings file.
// Priority:
// 1) XDG_CONFIG_HOME/winplace (if set)
// 2) ~/.config/winplace
func ConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the directory the run log is written to.
// Priority:
// 1) XDG_STATE_HOME/winplace (if set)
// 2) ~/.local/state/winplace
func StateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// ConfigFile returns the default window settings path.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "windows.json"), nil
}

// LogFile returns the default run log path.
func LogFile() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".log"), nil
}

func xdgDir(envVar, homeRel string) (string, error) {
	if base := os.Getenv(envVar); base != "" && filepath.IsAbs(base) {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, homeRel, appName), nil
}
