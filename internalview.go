package palisade

import (
	"strings"
	"unicode/utf8"
)

// maxViewFieldBytes caps every textual field in an InternalView. Keeps
// forensic writes bounded even when details were built from large
// attacker-influenced input.
const maxViewFieldBytes = 1024

// viewTruncationMarker replaces the tail of an over-long view field.
const viewTruncationMarker = "...[TRUNCATED]"

// MetadataPair is one correlation tag in an internal view.
type MetadataPair struct {
	Key   string
	Value string
}

// InternalView is a short-lived snapshot of an error's internal state
// for forensic writing. It exposes the operation, details, metadata, the
// split I/O source, and whether a sensitive payload is present. The
// payload itself is never included.
//
// Consume the view immediately and let it go; retaining one past the
// error's Destroy defeats the erasure guarantee.
type InternalView struct {
	Code            string
	Operation       string
	Details         string
	SourceInternal  string
	SourceSensitive string
	Metadata        []MetadataPair
	HasSensitive    bool
	Retryable       bool
}

// InternalView builds the forensic snapshot. Every textual field is
// truncated at maxViewFieldBytes on a rune boundary with a marker.
func (e *AgentError) InternalView() *InternalView {
	v := &InternalView{
		Code:            e.code.String(),
		Operation:       truncateView(string(e.operation)),
		Details:         truncateView(string(e.details)),
		SourceInternal:  truncateView(string(e.srcInternal)),
		SourceSensitive: truncateView(string(e.srcSensitive)),
		HasSensitive:    len(e.sensitive) > 0,
		Retryable:       e.retryable,
	}
	if len(e.metadata) > 0 {
		v.Metadata = make([]MetadataPair, 0, len(e.metadata))
		for _, m := range e.metadata {
			v.Metadata = append(v.Metadata, MetadataPair{
				Key:   m.key,
				Value: truncateView(string(m.value)),
			})
		}
	}
	return v
}

// WithInternalView passes the forensic snapshot to f and enforces the
// immediate-consumption pattern: the view exists only for the duration
// of the callback.
func (e *AgentError) WithInternalView(f func(*InternalView)) {
	f(e.InternalView())
}

// WriteTo renders the view as one structured log line. The forensic
// logger and the trusted-debug formatter share this form.
func (v *InternalView) WriteTo(b *strings.Builder) {
	b.WriteByte('[')
	b.WriteString(v.Code)
	b.WriteString("] ")
	if v.Retryable {
		b.WriteString("[RETRYABLE] ")
	}
	b.WriteString("operation='")
	b.WriteString(v.Operation)
	b.WriteString("' details='")
	b.WriteString(v.Details)
	b.WriteByte('\'')
	if v.SourceInternal != "" {
		b.WriteString(" source='")
		b.WriteString(v.SourceInternal)
		b.WriteByte('\'')
	}
	for _, m := range v.Metadata {
		b.WriteByte(' ')
		b.WriteString(m.Key)
		b.WriteString("='")
		b.WriteString(m.Value)
		b.WriteByte('\'')
	}
	if v.HasSensitive {
		b.WriteString(" sensitive=present")
	}
}

// truncateView bounds one view field at maxViewFieldBytes, cutting on a
// rune boundary and appending the marker.
func truncateView(s string) string {
	if len(s) <= maxViewFieldBytes {
		return s
	}
	keep := maxViewFieldBytes - len(viewTruncationMarker)
	for keep > 0 && !utf8.RuneStart(s[keep]) {
		keep--
	}
	return s[:keep] + viewTruncationMarker
}
