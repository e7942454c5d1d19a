//go:build !linux

package platform

import (
	"fmt"
	"runtime"
)

// Open is only implemented for X11 on Linux.
func Open(display string) (Session, error) {
	return nil, fmt.Errorf("window placement is not supported on %s", runtime.GOOS)
}
