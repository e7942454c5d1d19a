package platform

import (
	"errors"
	"fmt"
	"strings"
)

// WindowID is a platform-neutral window identifier. Zero is never a valid
// window.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Process is a running process matched by name.
type Process struct {
	PID  int
	Name string
}

// ZOrder is the stacking position requested with a placement.
type ZOrder int

const (
	ZOrderTop ZOrder = iota
	ZOrderBottom
)

func (z ZOrder) String() string {
	switch z {
	case ZOrderTop:
		return "top"
	case ZOrderBottom:
		return "bottom"
	default:
		return fmt.Sprintf("ZOrder(%d)", int(z))
	}
}

// PlacementFlag modifies what a placement request changes.
type PlacementFlag uint8

const (
	// FlagNoSize keeps the current size.
	FlagNoSize PlacementFlag = 1 << iota
	// FlagNoMove keeps the current position.
	FlagNoMove
	// FlagNoZOrder leaves stacking untouched.
	FlagNoZOrder
	// FlagShowWindow maps the window before moving it.
	FlagShowWindow
)

var flagNames = []struct {
	flag PlacementFlag
	name string
}{
	{FlagNoSize, "no_size"},
	{FlagNoMove, "no_move"},
	{FlagNoZOrder, "no_zorder"},
	{FlagShowWindow, "show_window"},
}

// Has reports whether every bit of flag is set in f.
func (f PlacementFlag) Has(flag PlacementFlag) bool {
	return f&flag == flag
}

func (f PlacementFlag) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// Placement is a single request to move, resize, and show a window.
type Placement struct {
	Bounds Rect
	ZOrder ZOrder
	Flags  PlacementFlag
}

var (
	// ErrNoMainWindow means the process exists but has not mapped a
	// top-level window yet.
	ErrNoMainWindow = errors.New("process has no main window")
	// ErrNullHandle means window resolution produced a zero handle.
	ErrNullHandle = errors.New("window handle is null")
)

// Backend abstracts the window-system operations used to place windows.
type Backend interface {
	// FindProcesses returns the running processes called name, lowest pid
	// first.
	FindProcesses(name string) ([]Process, error)
	// MainWindow returns the first top-level window owned by pid.
	MainWindow(pid int) (WindowID, error)
	// Place issues one placement request.
	Place(windowID WindowID, p Placement) error
}

// Session is a Backend holding a live connection to the window system.
type Session interface {
	Backend
	Close()
}

// PlatformError is a failed window-system request together with the
// platform's error code.
type PlatformError struct {
	Op   string
	Code int
	Err  error
}

func (e *PlatformError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %v (error code %d)", e.Op, e.Err, e.Code)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the platform error code carried by err, or 0.
func ErrorCode(err error) int {
	var perr *PlatformError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return 0
}
