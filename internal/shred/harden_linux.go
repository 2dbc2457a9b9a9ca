//go:build linux

package shred

import "golang.org/x/sys/unix"

// DisableCoreDumps marks the process non-dumpable so sensitive error
// context cannot leak through a core file. Best-effort: the error is
// returned for callers that want to log a degraded state.
func DisableCoreDumps() error {
	return unix.Prctl(unix.PR_SET_DUMPABLE, 0, 0, 0, 0)
}

// LockBuffer pins b into resident memory so it cannot be written to swap.
// Callers must pair with UnlockBuffer before the buffer is freed.
func LockBuffer(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Mlock(b)
}

// UnlockBuffer releases a LockBuffer pin. Safe to call on buffers that
// were never locked.
func UnlockBuffer(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munlock(b)
}
