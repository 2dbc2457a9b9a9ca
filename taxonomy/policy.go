package taxonomy

// Category enforcement policy. The always-on rules prevent obvious
// semantic mismatches; the strict_taxonomy build tag replaces the
// permissive fallback with an explicit allow table (see policy_strict.go).

// ioPermits: filesystem/network errors never carry deception categories.
func ioPermits(c Category) bool {
	switch c {
	case CatDeception, CatDetection, CatContainment:
		return false
	default:
		return true
	}
}

// observabilityPermits: logging and telemetry are restricted to their domain.
func observabilityPermits(c Category) bool {
	switch c {
	case CatAudit, CatMonitoring, CatSystem:
		return true
	default:
		return false
	}
}

// deceptionPermits: the deception namespace must use deception-related
// categories.
func deceptionPermits(c Category) bool {
	switch c {
	case CatDeception, CatDetection, CatContainment, CatDeployment:
		return true
	default:
		return false
	}
}

// PermitsCategory reports whether a namespace/category pairing is valid
// under the compiled policy mode.
func PermitsCategory(ns *Namespace, c Category) bool {
	switch ns {
	case IO:
		return ioPermits(c)
	case Logging, Telemetry:
		return observabilityPermits(c)
	case Deception:
		return deceptionPermits(c)
	default:
		return fallbackPermits(ns, c)
	}
}
