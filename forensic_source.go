package palisade

// Forensic source methods. The forensic package consumes errors through
// its LogSource interface; both error types satisfy it here, so the ring
// buffer never depends on concrete error types.

// ForensicCode returns the obfuscated code identity recorded in forensic
// entries. Deliberately the external form: forensic stores may be
// exfiltrated, so even they never hold raw code numbers.
func (e *AgentError) ForensicCode() string { return e.ExternalCode() }

// ForensicOperation returns the operation name for forensic retention.
func (e *AgentError) ForensicOperation() string { return string(e.operation) }

// ForensicDetails returns the detail text for forensic retention.
func (e *AgentError) ForensicDetails() string { return string(e.details) }

// ForensicMetadata returns the correlation tags as key/value pairs.
func (e *AgentError) ForensicMetadata() [][2]string {
	if len(e.metadata) == 0 {
		return nil
	}
	pairs := make([][2]string, 0, len(e.metadata))
	for _, m := range e.metadata {
		pairs = append(pairs, [2]string{m.key, string(m.value)})
	}
	return pairs
}

// ForensicRetryable reports the retry flag for forensic retention.
func (e *AgentError) ForensicRetryable() bool { return e.retryable }

// ForensicCode marks dual-context entries; they carry no numeric code.
func (e *DualContextError) ForensicCode() string { return "DUAL-CTX" }

// ForensicOperation records the narrative classification pair, which
// tells analysts what kind of deception ran without exposing payloads.
func (e *DualContextError) ForensicOperation() string {
	return e.public.Classification() + "/" + e.internal.Classification()
}

// ForensicDetails returns the internal payload where one exists. Lie
// payloads carry the lie marker; sensitive content stays redacted even
// in forensic storage and moves only through ExposeSensitive.
func (e *DualContextError) ForensicDetails() string {
	p, ok := e.internal.Payload()
	if !ok {
		return "[SENSITIVE REDACTED]"
	}
	return p.String()
}

// ForensicMetadata returns the true category as the only tag.
func (e *DualContextError) ForensicMetadata() [][2]string {
	return [][2]string{{"category", e.category.DisplayName()}}
}

// ForensicRetryable is always false: dual-context errors model
// narrative outcomes, not transient operations.
func (e *DualContextError) ForensicRetryable() bool { return false }
