package palisade

import (
	"fmt"

	"github.com/ppiankov/palisade/taxonomy"
)

// ContextBuilder accumulates the parts of a DualContextError across a
// multi-step construction flow. Cross-field validation happens only at
// Build; the result is immutable. Truth-without-capability cannot reach
// Build because no truth-bearing setter exists without the
// external_signaling tag.
type ContextBuilder struct {
	public      *PublicContext
	internal    *InternalContext
	category    taxonomy.Category
	overwritten bool
}

// NewContextBuilder starts an empty builder with the System category.
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{category: taxonomy.CatSystem}
}

// PublicLie sets the public context to a deceptive message.
func (b *ContextBuilder) PublicLie(message string) *ContextBuilder {
	if b.public != nil {
		b.overwritten = true
	}
	p := PublicLie(message)
	b.public = &p
	return b
}

// InternalDiagnostic sets the internal context to authentic forensic
// text.
func (b *ContextBuilder) InternalDiagnostic(message string) *ContextBuilder {
	if b.internal != nil {
		b.overwritten = true
	}
	c := Diagnostic(message)
	b.internal = &c
	return b
}

// InternalSensitive sets the internal context to capability-gated text.
func (b *ContextBuilder) InternalSensitive(message string) *ContextBuilder {
	if b.internal != nil {
		b.overwritten = true
	}
	c := Sensitive(message)
	b.internal = &c
	return b
}

// InternalLie sets the internal context to tracked deceptive text.
func (b *ContextBuilder) InternalLie(message string) *ContextBuilder {
	if b.internal != nil {
		b.overwritten = true
	}
	c := InternalLie(message)
	b.internal = &c
	return b
}

// Category sets the operation category.
func (b *ContextBuilder) Category(category taxonomy.Category) *ContextBuilder {
	b.category = category
	return b
}

// Build finalizes the error, validating cross-field invariants. A
// missing part or a double-set field returns a *BuildError describing
// the builder state; the parts themselves are already valid by
// construction.
func (b *ContextBuilder) Build() (*DualContextError, error) {
	if b.overwritten {
		return nil, &BuildError{
			Reason:      "context set twice",
			HasPublic:   b.public != nil,
			HasInternal: b.internal != nil,
		}
	}
	if b.public == nil {
		return nil, &BuildError{
			Reason:      "missing public context",
			HasInternal: b.internal != nil,
		}
	}
	if b.internal == nil {
		return nil, &BuildError{
			Reason:    "missing internal context",
			HasPublic: true,
		}
	}
	return &DualContextError{
		public:   *b.public,
		internal: *b.internal,
		category: b.category,
	}, nil
}

// MustBuild is Build for construction flows where an incomplete builder
// is a programmer error.
func (b *ContextBuilder) MustBuild() *DualContextError {
	e, err := b.Build()
	if err != nil {
		panic("palisade: " + err.Error())
	}
	return e
}

// BuildError reports an incomplete or inconsistent builder. It carries
// which parts were set to make partial builds diagnosable.
type BuildError struct {
	Reason      string
	HasPublic   bool
	HasInternal bool
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("context builder: %s (public: %s, internal: %s)",
		e.Reason, setLabel(e.HasPublic), setLabel(e.HasInternal))
}

func setLabel(set bool) string {
	if set {
		return "set"
	}
	return "missing"
}
