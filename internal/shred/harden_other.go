//go:build !linux

package shred

// DisableCoreDumps is a no-op on platforms without prctl.
func DisableCoreDumps() error { return nil }

// LockBuffer is a no-op on platforms without mlock support wired in.
func LockBuffer(b []byte) error { return nil }

// UnlockBuffer is a no-op on platforms without mlock support wired in.
func UnlockBuffer(b []byte) error { return nil }
