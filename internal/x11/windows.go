package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// ClientWindowsForPID returns the normal client windows whose _NET_WM_PID is
// pid, in _NET_CLIENT_LIST order (oldest mapped first).
func (c *Connection) ClientWindowsForPID(pid int) ([]xproto.Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, err
	}

	var out []xproto.Window
	for _, windowID := range clients {
		owner, err := ewmh.WmPidGet(c.XUtil, windowID)
		if err != nil || int(owner) != pid {
			continue
		}
		if !c.IsNormalWindow(windowID) {
			continue
		}
		out = append(out, windowID)
	}
	return out, nil
}

// MapWindow asks the server to show a window.
func (c *Connection) MapWindow(windowID xproto.Window) error {
	return xproto.MapWindowChecked(c.XUtil.Conn(), windowID).Check()
}

// RequestMoveResize asks the window manager to move and resize a window
// through _NET_MOVERESIZE_WINDOW. The request is unchecked: window managers
// may ignore it, so callers follow up with ConfigureWindow.
func (c *Connection) RequestMoveResize(windowID xproto.Window, x, y, width, height int) error {
	// Maximized windows ignore geometry requests.
	_ = c.unmaximizeWindow(windowID)
	return ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, width, height)
}

// ConfigureWindow sends a checked ConfigureWindow request. values must follow
// the bit order of mask. Maximized windows are unmaximized first when the
// request changes the size.
func (c *Connection) ConfigureWindow(windowID xproto.Window, mask uint16, values []uint32) error {
	if mask&(xproto.ConfigWindowWidth|xproto.ConfigWindowHeight) != 0 {
		// Not every window supports EWMH state; the configure below still runs.
		_ = c.unmaximizeWindow(windowID)
	}
	return xproto.ConfigureWindowChecked(c.XUtil.Conn(), windowID, mask, values).Check()
}

// unmaximizeWindow removes maximized state from a window
func (c *Connection) unmaximizeWindow(windowID xproto.Window) error {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return err
	}

	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT":
			if err := ewmh.WmStateReq(c.XUtil, windowID, ewmh.StateRemove, state); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsNormalWindow checks if a window is a normal application window
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// If we can't determine type, assume it's normal
		return true
	}

	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_NORMAL" {
			return true
		}
		// Reject desktop, dock, splash, etc.
		if t == "_NET_WM_WINDOW_TYPE_DESKTOP" ||
			t == "_NET_WM_WINDOW_TYPE_DOCK" ||
			t == "_NET_WM_WINDOW_TYPE_SPLASH" ||
			t == "_NET_WM_WINDOW_TYPE_NOTIFICATION" {
			return false
		}
	}

	// If no specific type is set, assume it's normal
	return len(types) == 0
}
