// Package forensic provides a bounded in-memory ring buffer for error
// retention in environments where writing to disk would tip off an
// intruder. Entries are size-capped and oldest-first evicted; nothing
// in this package allocates after construction beyond entry copies.
package forensic

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"
)

// Per-field retention budgets. An entry never exceeds maxEntryBytes;
// within that, each field gets its own ceiling so a single oversized
// detail string cannot starve the rest of the record.
const (
	maxOperationBytes = 256
	maxDetailsBytes   = 512
	maxMetaValueBytes = 128
	maxSourceBytes    = 128

	truncMarker = "...[TRUNC]"
)

// LogSource is anything the logger can retain. Both error types in the
// root package satisfy it.
type LogSource interface {
	ForensicCode() string
	ForensicOperation() string
	ForensicDetails() string
	ForensicMetadata() [][2]string
	ForensicRetryable() bool
}

// Entry is a retained error record. All fields are copies; an Entry
// stays valid after the source error is destroyed.
type Entry struct {
	Timestamp time.Time
	Code      string
	Operation string
	Details   string
	Source    string
	Metadata  [][2]string
	SizeBytes int
	Retryable bool
}

// RingBufferLogger retains the most recent errors in a fixed-capacity
// ring. Writers evict the oldest entry when full. Safe for concurrent
// use. Copies share the same backing state; pass by pointer.
type RingBufferLogger struct {
	mu        sync.RWMutex
	entries   []Entry
	head      int // index of the oldest entry when count > 0
	count     int
	maxEntry  int
	evictions atomic.Uint64
}

// New returns a logger retaining at most capacity entries, each capped
// at maxEntryBytes of text. Non-positive arguments are clamped to 1.
func New(capacity, maxEntryBytes int) *RingBufferLogger {
	if capacity < 1 {
		capacity = 1
	}
	if maxEntryBytes < 1 {
		maxEntryBytes = 1
	}
	return &RingBufferLogger{
		entries:  make([]Entry, capacity),
		maxEntry: maxEntryBytes,
	}
}

// Log retains src, evicting the oldest entry if the buffer is full.
// source names the subsystem reporting the error and is budgeted like
// any other field.
func (l *RingBufferLogger) Log(src LogSource, source string) {
	e := l.buildEntry(src, source)

	l.mu.Lock()
	if l.count == len(l.entries) {
		l.entries[l.head] = e
		l.head = (l.head + 1) % len(l.entries)
		l.evictions.Add(1)
	} else {
		l.entries[(l.head+l.count)%len(l.entries)] = e
		l.count++
	}
	l.mu.Unlock()
}

func (l *RingBufferLogger) buildEntry(src LogSource, source string) Entry {
	remaining := l.maxEntry

	code := clamp(src.ForensicCode(), remaining)
	remaining -= len(code)

	op := clamp(src.ForensicOperation(), budget(maxOperationBytes, remaining))
	remaining -= len(op)

	details := clamp(src.ForensicDetails(), budget(maxDetailsBytes, remaining))
	remaining -= len(details)

	srcField := clamp(source, budget(maxSourceBytes, remaining))
	remaining -= len(srcField)

	var meta [][2]string
	for _, kv := range src.ForensicMetadata() {
		if remaining <= 0 {
			break
		}
		k := clamp(kv[0], remaining)
		remaining -= len(k)
		v := clamp(kv[1], budget(maxMetaValueBytes, remaining))
		remaining -= len(v)
		meta = append(meta, [2]string{k, v})
	}

	size := len(code) + len(op) + len(details) + len(srcField)
	for _, kv := range meta {
		size += len(kv[0]) + len(kv[1])
	}

	return Entry{
		Timestamp: time.Now(),
		Code:      code,
		Operation: op,
		Details:   details,
		Source:    srcField,
		Metadata:  meta,
		SizeBytes: size,
		Retryable: src.ForensicRetryable(),
	}
}

func budget(fieldMax, remaining int) int {
	if remaining < fieldMax {
		return remaining
	}
	return fieldMax
}

// clamp bounds s to max bytes, appending the truncation marker when it
// fits. Cuts land on rune boundaries so retained text stays valid UTF-8.
func clamp(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s
	}
	if max <= len(truncMarker) {
		return runeCut(s, max)
	}
	return runeCut(s, max-len(truncMarker)) + truncMarker
}

func runeCut(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Recent returns up to n entries, newest first.
func (l *RingBufferLogger) Recent(n int) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n > l.count {
		n = l.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		idx := (l.head + l.count - 1 - i) % len(l.entries)
		out = append(out, l.entries[idx])
	}
	return out
}

// All returns every retained entry, newest first.
func (l *RingBufferLogger) All() []Entry {
	return l.Recent(len(l.entries))
}

// Filtered returns the entries matching pred, newest first.
func (l *RingBufferLogger) Filtered(pred func(*Entry) bool) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []Entry
	for i := 0; i < l.count; i++ {
		idx := (l.head + l.count - 1 - i) % len(l.entries)
		if pred(&l.entries[idx]) {
			out = append(out, l.entries[idx])
		}
	}
	return out
}

// Len reports the number of retained entries.
func (l *RingBufferLogger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.count
}

// Capacity reports the maximum number of retained entries.
func (l *RingBufferLogger) Capacity() int { return len(l.entries) }

// IsFull reports whether the next Log will evict.
func (l *RingBufferLogger) IsFull() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.count == len(l.entries)
}

// Evictions reports how many entries have been displaced since
// construction or the last Clear.
func (l *RingBufferLogger) Evictions() uint64 { return l.evictions.Load() }

// Clear drops all retained entries and resets the eviction counter.
func (l *RingBufferLogger) Clear() {
	l.mu.Lock()
	for i := range l.entries {
		l.entries[i] = Entry{}
	}
	l.head = 0
	l.count = 0
	l.mu.Unlock()
	l.evictions.Store(0)
}

// Summary renders a short single-line digest of the newest entries,
// suitable for operator consoles.
func (l *RingBufferLogger) Summary(n int) string {
	entries := l.Recent(n)
	if len(entries) == 0 {
		return "forensic: empty"
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Code)
		b.WriteByte(' ')
		b.WriteString(e.Operation)
	}
	return b.String()
}
