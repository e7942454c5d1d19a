package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// waitForKey blocks until a single key is pressed. It returns immediately
// when stdin is not a terminal.
func waitForKey(stdin *os.File, w io.Writer) {
	if stdin == nil {
		return
	}
	fd := int(stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	fmt.Fprint(w, "Press any key to exit...")
	state, err := term.MakeRaw(fd)

	var buf [1]byte
	_, _ = stdin.Read(buf[:])
	if err == nil {
		_ = term.Restore(fd, state)
	}
	fmt.Fprintln(w)
}
