package paths

import (
	"path/filepath"
	"testing"
)

func TestConfigFile_UsesXDGConfigHomeWhenSet(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", td)

	got, err := ConfigFile()
	if err != nil {
		t.Fatalf("ConfigFile() error: %v", err)
	}
	want := filepath.Join(td, "winplace", "windows.json")
	if got != want {
		t.Fatalf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestConfigFile_FallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")

	got, err := ConfigFile()
	if err != nil {
		t.Fatalf("ConfigFile() error: %v", err)
	}
	want := filepath.Join(home, ".config", "winplace", "windows.json")
	if got != want {
		t.Fatalf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestLogFile_IgnoresRelativeXDGStateHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", "relative/state")

	got, err := LogFile()
	if err != nil {
		t.Fatalf("LogFile() error: %v", err)
	}
	want := filepath.Join(home, ".local", "state", "winplace", "winplace.log")
	if got != want {
		t.Fatalf("LogFile() = %q, want %q", got, want)
	}
}

func TestLogFile_UsesXDGStateHome(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_STATE_HOME", td)

	got, err := LogFile()
	if err != nil {
		t.Fatalf("LogFile() error: %v", err)
	}
	if got != filepath.Join(td, "winplace", "winplace.log") {
		t.Fatalf("LogFile() = %q", got)
	}
}
