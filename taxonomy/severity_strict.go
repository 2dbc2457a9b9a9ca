//go:build strict_severity

package taxonomy

// PermitsImpact restricts Breach-level scores (951-1000) to namespaces
// holding breach authority.
func PermitsImpact(ns *Namespace, s ImpactScore) bool {
	if s.IsBreachLevel() {
		return ns.CanBreach()
	}
	return true
}
