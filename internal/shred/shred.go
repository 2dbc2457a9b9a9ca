// Package shred provides best-effort secure erasure of in-memory byte
// buffers holding sensitive error context.
//
// The overwrite is routed through a noinline function followed by a
// runtime.KeepAlive barrier so the compiler cannot prove the buffer dead
// and elide the writes. This defends against compiler optimization and
// casual memory inspection only — not against hardware caches, allocator
// reuse, swap, or DMA copies. Callers needing stronger guarantees should
// pair Wipe with LockBuffer on platforms that support it.
package shred

import "runtime"

// Wipe overwrites every byte of b with zero and then clears it again
// through a write path the compiler cannot eliminate. Safe on nil and
// empty slices. Never panics.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	sink(b)
	runtime.KeepAlive(b)
}

// sink re-touches the buffer behind a noinline boundary so the zeroing
// loop above cannot be proven dead.
//
//go:noinline
func sink(b []byte) {
	if len(b) > 0 && b[0] != 0 {
		b[0] = 0
	}
}

// WipeAll wipes each buffer in order. Nil entries are skipped.
func WipeAll(bufs ...[]byte) {
	for _, b := range bufs {
		Wipe(b)
	}
}
