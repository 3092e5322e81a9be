package host

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so a crash restores the terminal first.
func Go(onCrash func(r any), fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				onCrash(r)
			}
		}()
		fn()
	}()
}

// Recover restores the terminal and exits on panic; defer it on the loop goroutine
func (h *Host) Recover() {
	if r := recover(); r != nil {
		h.crash(r)
	}
}

func (h *Host) crash(r any) {
	// Restore terminal to sane state before printing
	h.Close()
	_ = h.logger.Sync()

	// Use \r\n in case the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
