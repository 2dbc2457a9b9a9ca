//go:build external_signaling

package palisade

import "github.com/ppiankov/palisade/taxonomy"

// PublicTruth wraps an authentic external message. Compiled in only
// under the external_signaling tag: without it no code path can produce
// a truthful public value, enforced at build time rather than by a
// runtime check.
//
// For honeypots that intentionally signal some authentic errors (benign
// validation failures) to appear more legitimate.
func PublicTruth(text string) PublicContext {
	return PublicContext{kind: publicTruth, text: []byte(text)}
}

// WithTruth pairs a truthful public message with an authentic internal
// diagnostic. Telling the truth externally while lying internally is
// unrepresentable: this is the only truth-bearing constructor and it
// fixes the internal variant to Diagnostic.
func WithTruth(publicTruth, internalDiagnostic string, category taxonomy.Category) *DualContextError {
	return &DualContextError{
		public:   PublicTruth(publicTruth),
		internal: Diagnostic(internalDiagnostic),
		category: category,
	}
}

// PublicTruth sets the builder's public context to an authentic message.
func (b *ContextBuilder) PublicTruth(message string) *ContextBuilder {
	if b.public != nil {
		b.overwritten = true
	}
	p := PublicTruth(message)
	b.public = &p
	return b
}
