//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/winplace/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend places windows through an X11 connection.
type LinuxBackend struct {
	conn          *x11.Connection
	findProcesses func(name string) ([]Process, error)
}

var _ Session = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn, findProcesses: FindProcesses}
}

// Open connects to the X11 display (empty means $DISPLAY).
func Open(display string) (Session, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return NewLinuxBackend(conn), nil
}

// Close closes the underlying X11 connection.
func (b *LinuxBackend) Close() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// FindProcesses lists running processes named name.
func (b *LinuxBackend) FindProcesses(name string) ([]Process, error) {
	return b.findProcesses(name)
}

// MainWindow returns the oldest normal client window owned by pid.
func (b *LinuxBackend) MainWindow(pid int) (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}

	windows, err := conn.ClientWindowsForPID(pid)
	if err != nil {
		return 0, &PlatformError{Op: "list client windows", Code: x11.ErrorCode(err), Err: err}
	}
	if len(windows) == 0 {
		return 0, ErrNoMainWindow
	}
	if windows[0] == 0 {
		return 0, ErrNullHandle
	}
	return WindowID(windows[0]), nil
}

// Place maps the window when FlagShowWindow is set, then moves, resizes, and
// restacks it as requested.
func (b *LinuxBackend) Place(windowID WindowID, p Placement) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	if windowID == 0 {
		return ErrNullHandle
	}
	win := xproto.Window(windowID)

	if p.Flags.Has(FlagShowWindow) {
		if err := conn.MapWindow(win); err != nil {
			return &PlatformError{Op: "map window", Code: x11.ErrorCode(err), Err: err}
		}
	}

	mask, values := configureRequest(p)
	if mask == 0 {
		return nil
	}
	if r, ok := moveResizeHint(p); ok {
		// Reparenting window managers honor the EWMH request; the checked
		// configure below is what reports errors.
		_ = conn.RequestMoveResize(win, r.X, r.Y, r.Width, r.Height)
	}
	if err := conn.ConfigureWindow(win, mask, values); err != nil {
		return &PlatformError{Op: "configure window", Code: x11.ErrorCode(err), Err: err}
	}
	return nil
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}
