//go:build linux

package platform

import (
	"errors"
	"testing"
)

func TestLinuxBackend_NilConnection(t *testing.T) {
	var b *LinuxBackend
	if _, err := b.MainWindow(1); err == nil {
		t.Fatalf("expected error for nil backend")
	}
	if err := b.Place(1, Placement{}); err == nil {
		t.Fatalf("expected error for nil backend")
	}
	b.Close()
}

func TestLinuxBackend_FindProcessesDelegates(t *testing.T) {
	want := errors.New("boom")
	var gotName string
	b := &LinuxBackend{findProcesses: func(name string) ([]Process, error) {
		gotName = name
		return nil, want
	}}
	if _, err := b.FindProcesses("xterm"); !errors.Is(err, want) {
		t.Fatalf("expected delegated error, got %v", err)
	}
	if gotName != "xterm" {
		t.Fatalf("expected name xterm, got %q", gotName)
	}
}
