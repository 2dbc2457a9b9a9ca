package shred

import "testing"

func TestWipeZeroesBuffer(t *testing.T) {
	b := []byte("User 'attacker' denied access to /etc/shadow")
	Wipe(b)
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d not cleared: %q", i, c)
		}
	}
}

func TestWipeHandlesNilAndEmpty(t *testing.T) {
	Wipe(nil)
	Wipe([]byte{})
}

func TestWipeAll(t *testing.T) {
	a := []byte("first secret")
	b := []byte("second secret")
	WipeAll(a, nil, b)
	for _, buf := range [][]byte{a, b} {
		for i, c := range buf {
			if c != 0 {
				t.Fatalf("byte %d not cleared", i)
			}
		}
	}
}
