//go:build trusted_debug

package palisade

import "strings"

// DebugString materializes the full internal state, including the split
// sensitive source, into one human-readable line.
//
// Compiled in only under the trusted_debug tag. Use in local development
// or air-gapped forensic analysis; never route the output to external
// log aggregation.
func (v *InternalView) DebugString() string {
	var b strings.Builder
	v.WriteTo(&b)
	if v.SourceSensitive != "" {
		b.WriteString(" sensitive_source='")
		b.WriteString(v.SourceSensitive)
		b.WriteByte('\'')
	}
	return b.String()
}
