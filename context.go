package palisade

import (
	"github.com/ppiankov/palisade/internal/shred"
	"github.com/ppiankov/palisade/taxonomy"
)

// internalRedacted is the only thing a generic formatting path can
// extract from an InternalContext. Absolute invariant: no variant and
// no content changes it.
const internalRedacted = "[INTERNAL CONTEXT REDACTED]"

// lieMarker prefixes internal lie payloads when rendered, so analysts
// never mistake deceptive narrative for authentic diagnostics.
const lieMarker = "[LIE] "

// SocAccess is the capability required to read sensitive internal
// content. It is obtainable only through AcquireSocAccess; the zero
// value is invalid. It carries no data and grants nothing against code
// execution in this process — its function is to make every sensitive
// read an explicit, grep-able call site.
type SocAccess struct {
	token *socToken
}

type socToken struct{}

var validSocToken = &socToken{}

// AcquireSocAccess mints the capability. Call sites of this function are
// the audit surface for sensitive data access.
func AcquireSocAccess() SocAccess {
	return SocAccess{token: validSocToken}
}

func (a SocAccess) valid() bool { return a.token == validSocToken }

// publicKind tags the PublicContext variant.
type publicKind uint8

const (
	publicLie publicKind = iota
	publicTruth
)

// PublicContext is the externally visible narrative. Without the
// external_signaling build tag the only constructor is PublicLie, so a
// truthful public message cannot exist in the binary at all.
type PublicContext struct {
	kind publicKind
	text []byte
}

// PublicLie wraps an intentionally false external message.
func PublicLie(text string) PublicContext {
	return PublicContext{kind: publicLie, text: []byte(text)}
}

// String renders the external message. Safe for untrusted display by
// construction: only lie (and, when compiled in, truth) variants exist.
func (p *PublicContext) String() string { return string(p.text) }

// Classification labels the variant for audit indexing without exposing
// the payload.
func (p *PublicContext) Classification() string {
	if p.kind == publicTruth {
		return "PublicTruth"
	}
	return "DeceptiveLie"
}

// internalKind tags the InternalContext variant.
type internalKind uint8

const (
	internalDiagnostic internalKind = iota
	internalSensitive
	internalLie
)

// InternalContext is the SOC-only narrative. Its String method always
// returns the fixed redaction string, so no generic formatting path can
// leak content; access goes through Payload or ExposeSensitive.
type InternalContext struct {
	kind internalKind
	text []byte
}

// Diagnostic wraps authentic forensic text.
func Diagnostic(text string) InternalContext {
	return InternalContext{kind: internalDiagnostic, text: []byte(text)}
}

// Sensitive wraps high-value text (PII, credentials, paths). Readable
// only through ExposeSensitive with a valid capability; erased on
// Destroy.
func Sensitive(text string) InternalContext {
	return InternalContext{kind: internalSensitive, text: []byte(text)}
}

// InternalLie wraps an intentionally false internal narrative, for
// scenarios where internal logs themselves may be exfiltrated. Rendered
// payloads carry the lie marker.
func InternalLie(text string) InternalContext {
	return InternalContext{kind: internalLie, text: []byte(text)}
}

// Classification labels the variant for audit indexing.
func (c *InternalContext) Classification() string {
	switch c.kind {
	case internalSensitive:
		return "Sensitive"
	case internalLie:
		return "InternalLie"
	default:
		return "InternalDiagnostic"
	}
}

// InternalPayload is forensic text tagged with its deception status.
type InternalPayload struct {
	text  string
	isLie bool
}

// Text returns the raw payload without the lie marker. Use String for
// log rendering so the marker survives.
func (p InternalPayload) Text() string { return p.text }

// IsLie reports whether this payload is deceptive narrative.
func (p InternalPayload) IsLie() bool { return p.isLie }

// String renders the payload for internal logs, prefixing lies with the
// literal marker.
func (p InternalPayload) String() string {
	if p.isLie {
		return lieMarker + p.text
	}
	return p.text
}

// Payload returns the forensic payload for Diagnostic and InternalLie
// variants. Sensitive variants return ok=false: their content moves only
// through ExposeSensitive.
func (c *InternalContext) Payload() (InternalPayload, bool) {
	switch c.kind {
	case internalDiagnostic:
		return InternalPayload{text: string(c.text)}, true
	case internalLie:
		return InternalPayload{text: string(c.text), isLie: true}, true
	default:
		return InternalPayload{}, false
	}
}

// ExposeSensitive yields the raw sensitive bytes, only for a Sensitive
// variant and only with a valid capability. Every other combination
// yields nothing — a silent filter, not a failure, so the check itself
// produces no distinguishable side channel. The returned slice aliases
// the context's buffer and is valid until Destroy.
func (c *InternalContext) ExposeSensitive(access SocAccess) ([]byte, bool) {
	if c.kind != internalSensitive || !access.valid() {
		return nil, false
	}
	return c.text, true
}

// String always returns the fixed redaction string. It exists so that
// any generic formatting path that reaches an InternalContext emits
// nothing useful; real access goes through Payload or ExposeSensitive.
func (c *InternalContext) String() string { return internalRedacted }

// DualContextError pairs a public narrative with an internal one.
// Immutable once built; construct through the named constructors or
// ContextBuilder.
type DualContextError struct {
	public    PublicContext
	internal  InternalContext
	category  taxonomy.Category
	destroyed bool
}

// WithLie is the default honeypot pattern: the adversary sees a
// deceptive message, analysts see the authentic diagnostic.
func WithLie(publicLie, internalDiagnostic string, category taxonomy.Category) *DualContextError {
	return &DualContextError{
		public:   PublicLie(publicLie),
		internal: Diagnostic(internalDiagnostic),
		category: category,
	}
}

// WithLieAndSensitive pairs a public lie with sensitive internal content
// that is capability-gated and erased on Destroy.
func WithLieAndSensitive(publicLie, internalSensitive string, category taxonomy.Category) *DualContextError {
	return &DualContextError{
		public:   PublicLie(publicLie),
		internal: Sensitive(internalSensitive),
		category: category,
	}
}

// WithDoubleLie makes both narratives deceptive, for environments where
// even internal logs may be exfiltrated. The internal lie renders with
// the lie marker so analysts know not to trust it.
func WithDoubleLie(publicLie, internalLie string, category taxonomy.Category) *DualContextError {
	return &DualContextError{
		public:   PublicLie(publicLie),
		internal: InternalLie(internalLie),
		category: category,
	}
}

// Public returns the externally safe context.
func (e *DualContextError) Public() *PublicContext { return &e.public }

// Internal returns the SOC-only context. Do not rely on its String
// method for content; it is always redacted.
func (e *DualContextError) Internal() *InternalContext { return &e.internal }

// Category returns the true operation category.
func (e *DualContextError) Category() taxonomy.Category { return e.category }

// ExternalMessage returns the public narrative for untrusted surfaces.
func (e *DualContextError) ExternalMessage() string { return e.public.String() }

// ExternalCategory returns the masked category name. Deception-sensitive
// categories report "Routine Operation" so error output never reveals
// that a defensive operation ran.
func (e *DualContextError) ExternalCategory() string { return e.category.MaskedName() }

// Error renders the public context only. Internal narrative never
// crosses this path.
func (e *DualContextError) Error() string { return e.public.String() }

// Destroy erases both owned narratives. Idempotent, never panics, safe
// under defer during panic unwinding.
func (e *DualContextError) Destroy() {
	defer func() {
		_ = recover()
	}()
	if e == nil || e.destroyed {
		return
	}
	e.destroyed = true
	shred.WipeAll(e.public.text, e.internal.text)
}
