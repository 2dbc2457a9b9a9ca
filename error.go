package palisade

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ppiankov/palisade/internal/shred"
	"github.com/ppiankov/palisade/obfuscate"
	"github.com/ppiankov/palisade/taxonomy"
	"github.com/ppiankov/palisade/timing"
)

// metadataEntry is one correlation tag. Keys are expected to be static
// identifiers; values may be attacker-influenced and are owned and
// erasable.
type metadataEntry struct {
	key   string
	value []byte
}

// AgentError is the operational error type. It owns every text buffer it
// holds so Destroy can erase them, renders externally through one fixed
// template, and applies code obfuscation and the constant-time floor at
// construction.
//
// Convenience constructors (Config, Telemetry, ...) exist per subsystem
// even though the code already carries the category: call sites stay
// grep-able per subsystem, and a mismatched constructor stands out in
// review.
type AgentError struct {
	code     *taxonomy.Code
	external uint32

	operation []byte
	details   []byte
	sensitive []byte

	// FromIOError splits its source: the error kind is semi-sensitive,
	// the path is sensitive. Keeping them apart lets loggers treat them
	// differently.
	srcInternal  []byte
	srcSensitive []byte

	metadata  []metadataEntry
	retryable bool
	createdAt time.Time
	destroyed bool
}

func newError(code *taxonomy.Code, operation, details string) *AgentError {
	start := time.Now()
	e := &AgentError{
		code:      code,
		external:  obfuscate.External(code.Namespace().Label(), code.ID()),
		operation: []byte(operation),
		details:   []byte(details),
		retryable: code.Retryable(),
		createdAt: start,
	}
	timing.Floor(start)
	return e
}

// NewError creates an error with internal context only.
func NewError(code *taxonomy.Code, operation, details string) *AgentError {
	return newError(code, operation, details)
}

// NewSensitiveError creates an error carrying sensitive information
// (paths, usernames, connection strings). The payload never renders
// anywhere; it is reachable only through the internal view's presence
// flag and is erased on Destroy.
func NewSensitiveError(code *taxonomy.Code, operation, details, sensitive string) *AgentError {
	start := time.Now()
	e := &AgentError{
		code:      code,
		external:  obfuscate.External(code.Namespace().Label(), code.ID()),
		operation: []byte(operation),
		details:   []byte(details),
		sensitive: []byte(sensitive),
		retryable: code.Retryable(),
		createdAt: start,
	}
	timing.Floor(start)
	return e
}

// Subsystem constructors. See the type comment for why these exist.

// Config creates a configuration error.
func Config(code *taxonomy.Code, operation, details string) *AgentError {
	return newError(code, operation, details)
}

// ConfigSensitive creates a configuration error with a sensitive payload.
func ConfigSensitive(code *taxonomy.Code, operation, details, sensitive string) *AgentError {
	return NewSensitiveError(code, operation, details, sensitive)
}

// Deployment creates a deception-deployment error.
func Deployment(code *taxonomy.Code, operation, details string) *AgentError {
	return newError(code, operation, details)
}

// Detection creates a detection error. Its external rendering masks the
// category through the taxonomy's masked-name table.
func Detection(code *taxonomy.Code, operation, details string) *AgentError {
	return newError(code, operation, details)
}

// Telemetry creates a telemetry error.
func Telemetry(code *taxonomy.Code, operation, details string) *AgentError {
	return newError(code, operation, details)
}

// Correlation creates a correlation-engine error.
func Correlation(code *taxonomy.Code, operation, details string) *AgentError {
	return newError(code, operation, details)
}

// Response creates a response-execution error.
func Response(code *taxonomy.Code, operation, details string) *AgentError {
	return newError(code, operation, details)
}

// Logging creates a logging-subsystem error.
func Logging(code *taxonomy.Code, operation, details string) *AgentError {
	return newError(code, operation, details)
}

// Platform creates a platform/OS error.
func Platform(code *taxonomy.Code, operation, details string) *AgentError {
	return newError(code, operation, details)
}

// IOOp creates an I/O error.
func IOOp(code *taxonomy.Code, operation, details string) *AgentError {
	return newError(code, operation, details)
}

// FromIOError wraps a filesystem or network error, keeping the error
// kind (semi-sensitive, reveals failure type) separate from the path
// (sensitive, reveals filesystem structure) so logging can handle them
// differently.
func FromIOError(code *taxonomy.Code, operation, path string, err error) *AgentError {
	start := time.Now()
	e := &AgentError{
		code:         code,
		external:     obfuscate.External(code.Namespace().Label(), code.ID()),
		operation:    []byte(operation),
		details:      []byte("I/O operation failed"),
		srcInternal:  []byte(ioErrorKindLabel(err)),
		srcSensitive: []byte(path),
		retryable:    code.Retryable(),
		createdAt:    start,
	}
	timing.Floor(start)
	return e
}

// ioErrorKindLabel classifies an I/O error without carrying its message,
// which may embed the path.
func ioErrorKindLabel(err error) string {
	switch {
	case err == nil:
		return "None"
	case errors.Is(err, os.ErrNotExist):
		return "NotFound"
	case errors.Is(err, os.ErrPermission):
		return "PermissionDenied"
	case errors.Is(err, os.ErrExist):
		return "AlreadyExists"
	case errors.Is(err, os.ErrClosed):
		return "Closed"
	case errors.Is(err, os.ErrDeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return "TimedOut"
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "UnexpectedEof"
	case errors.Is(err, io.EOF):
		return "Eof"
	case errors.Is(err, io.ErrShortWrite):
		return "WriteZero"
	case errors.Is(err, context.Canceled):
		return "Interrupted"
	default:
		return "Other"
	}
}

// WithRetry marks the error as a transient failure and returns it for
// chaining.
func (e *AgentError) WithRetry() *AgentError {
	e.retryable = true
	return e
}

// WithMetadata attaches a correlation tag (request ID, session token
// hash) and returns the same error. Keys should be static identifiers;
// values are owned and erased on Destroy.
func (e *AgentError) WithMetadata(key, value string) *AgentError {
	e.metadata = append(e.metadata, metadataEntry{key: key, value: []byte(value)})
	return e
}

// WithTimingNormalization blocks until target has elapsed since this
// error's creation, so error responses take consistent time regardless
// of which code path failed. Use for authentication failures, sensitive
// file operations, anything enumerable by latency. Only pads: if the
// work already overran the target, latency equals the real work and the
// anti-enumeration guarantee is void for this call.
func (e *AgentError) WithTimingNormalization(target time.Duration) *AgentError {
	timing.Normalize(e.createdAt, target)
	return e
}

// WithTimingNormalizationContext is the cooperative form for callers
// under a scheduler; it yields while the timer runs instead of occupying
// the thread. Cancellation returns ctx.Err() and voids the equalization
// guarantee for this call.
func (e *AgentError) WithTimingNormalizationContext(ctx context.Context, target time.Duration) (*AgentError, error) {
	if err := timing.NormalizeContext(ctx, e.createdAt, target); err != nil {
		return e, err
	}
	return e, nil
}

// Code returns the underlying identity code.
func (e *AgentError) Code() *taxonomy.Code { return e.code }

// Category returns the operation category.
func (e *AgentError) Category() taxonomy.Category { return e.code.Category() }

// Retryable reports whether this failure is transient.
func (e *AgentError) Retryable() bool { return e.retryable }

// Age returns the time since construction. Internal use only: exposing
// it externally would leak timing information.
func (e *AgentError) Age() time.Duration { return time.Since(e.createdAt) }

// ExternalCode renders the session-obfuscated code identity.
func (e *AgentError) ExternalCode() string {
	return fmt.Sprintf("E-%s-%03d", e.code.Namespace().Label(), e.external)
}

// Error renders the external form. Fixed template:
//
//	{Category} operation failed [{permanence}] (E-{NS}-{code})
//
// It reveals the operation domain, retry semantics, and a trackable
// obfuscated code, and nothing else: no operation name, no details, no
// metadata, no payload, no paths.
func (e *AgentError) Error() string {
	permanence := "permanent"
	if e.retryable {
		permanence = "temporary"
	}
	return fmt.Sprintf("%s operation failed [%s] (%s)",
		e.code.Category().DisplayName(), permanence, e.ExternalCode())
}

// Destroy erases every owned text buffer, including the sensitive
// payload and metadata values. Idempotent, never panics, safe under
// defer while a panic is unwinding elsewhere on the stack. Best-effort
// against compiler optimization only; see internal/shred.
func (e *AgentError) Destroy() {
	defer func() {
		_ = recover()
	}()
	if e == nil || e.destroyed {
		return
	}
	e.destroyed = true
	shred.WipeAll(e.operation, e.details, e.sensitive, e.srcInternal, e.srcSensitive)
	for i := range e.metadata {
		shred.Wipe(e.metadata[i].value)
	}
}
