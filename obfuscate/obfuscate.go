// Package obfuscate maps internal error code numbers to session-scoped
// external values so adversaries cannot build a stable catalog of the
// system's error taxonomy across sessions.
//
// This is obfuscation, not encryption: it removes cross-session
// correlation value from observed codes, nothing more. The mapping is a
// keyed permutation, so within one session each (namespace, id) pair has
// exactly one external value and no two ids collide.
package obfuscate

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"sync/atomic"
)

// Session salt state. A zero active flag means degraded mode: External
// passes ids through unchanged and Active reports false, so operators can
// see that obfuscation is off rather than trusting a fixed default salt.
var (
	sessionSalt   atomic.Uint64
	sessionActive atomic.Bool
)

// InitSession derives a fresh session salt from the OS entropy source.
// Call once at process start. On entropy failure the session stays in
// degraded mode and the error is returned for the caller to report.
func InitSession() error {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Errorf("obfuscate: session salt: %w", err)
	}
	sessionSalt.Store(binary.LittleEndian.Uint64(buf[:]))
	sessionActive.Store(true)
	return nil
}

// InitSessionSeed installs a fixed salt. For tests and reproduction of
// captured output only; a fixed salt voids cross-session protection.
func InitSessionSeed(seed uint64) {
	sessionSalt.Store(seed)
	sessionActive.Store(true)
}

// ResetSession clears the salt and returns to degraded mode.
//
// Re-initializing mid-process is permitted, but codes already observed
// under the old salt lose their correlation resistance: an observer who
// saw both mappings can line them up.
func ResetSession() {
	sessionSalt.Store(0)
	sessionActive.Store(false)
}

// Active reports whether a session salt is installed.
func Active() bool {
	return sessionActive.Load()
}

// External maps an internal code id to its external value for the current
// session. Deterministic per salt and namespace, injective within a
// namespace (a 16-bit permutation), and not invertible without the salt.
// In degraded mode the id passes through unchanged.
func External(namespace string, id uint16) uint32 {
	if !sessionActive.Load() {
		return uint32(id)
	}
	return uint32(permute(sessionSalt.Load(), namespace, id))
}

// permute runs a 4-round Feistel network over the 16-bit id. Round keys
// come from the salt mixed with the namespace label, so the same id maps
// differently in different namespaces.
func permute(salt uint64, namespace string, id uint16) uint16 {
	h := fnv.New64a()
	h.Write([]byte(namespace))
	key := salt ^ h.Sum64()

	l := uint8(id >> 8)
	r := uint8(id)
	for round := uint64(0); round < 4; round++ {
		k := splitmix64(key + round)
		l, r = r, l^roundFunc(r, k)
	}
	return uint16(l)<<8 | uint16(r)
}

// roundFunc compresses the round key and half-block to 8 bits.
func roundFunc(half uint8, k uint64) uint8 {
	x := splitmix64(k ^ uint64(half))
	return uint8(x ^ x>>8 ^ x>>16 ^ x>>24)
}

// splitmix64 is the standard 64-bit finalizer used to stretch one key
// into independent round keys.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ x>>30) * 0xbf58476d1ce4e5b9
	x = (x ^ x>>27) * 0x94d049bb133111eb
	return x ^ x>>31
}
