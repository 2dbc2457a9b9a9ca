// Package taxonomy defines the frozen error identity model: namespaces,
// operation categories, impact scores, and validated error codes.
//
// Identity values (Namespace, Code) are process-lifetime singletons used by
// pointer. They carry no construction surface beyond the canonical set and
// the two Code constructors, so the taxonomy cannot drift at runtime.
package taxonomy

// Namespace is a fixed subsystem identity. Instances exist only as the
// canonical package-level set below; the unexported fields prevent
// construction elsewhere, and all comparisons are by pointer.
type Namespace struct {
	label     string
	canBreach bool
}

// Label returns the short external label ("CFG", "IO", ...).
func (n *Namespace) Label() string { return n.label }

// CanBreach reports whether this namespace may legitimately report
// Breach-level impacts. Enforced at construction only under the
// strict_severity build tag; advisory otherwise.
func (n *Namespace) CanBreach() bool { return n.canBreach }

// Canonical namespaces. These are the only Namespace values that exist.
//
// INVARIANT: created once at init, never duplicated, compared by pointer.
var (
	// Core covers fundamental system health (init, shutdown, recovery).
	Core = &Namespace{label: "CORE", canBreach: true}
	// Config covers configuration parsing and validation.
	Config = &Namespace{label: "CFG"}
	// Deception covers deception artifact management. A compromised
	// deception layer is a breach, so the namespace holds that authority.
	Deception = &Namespace{label: "DCP", canBreach: true}
	// Telemetry covers the event collection subsystem.
	Telemetry = &Namespace{label: "TEL"}
	// Correlation covers the correlation engine.
	Correlation = &Namespace{label: "COR"}
	// Response covers response execution.
	Response = &Namespace{label: "RSP"}
	// Logging covers the logging subsystem.
	Logging = &Namespace{label: "LOG"}
	// Platform covers platform-specific operations.
	Platform = &Namespace{label: "PLT"}
	// IO covers filesystem and network operations.
	IO = &Namespace{label: "IO"}
)

// Namespaces lists the canonical set in range order.
func Namespaces() []*Namespace {
	return []*Namespace{Core, Config, Deception, Telemetry, Correlation, Response, Logging, Platform, IO}
}

// LookupNamespace resolves a label to its canonical namespace.
func LookupNamespace(label string) (*Namespace, bool) {
	for _, ns := range Namespaces() {
		if ns.label == label {
			return ns, true
		}
	}
	return nil, false
}
