//go:build !strict_severity

package taxonomy

// PermitsImpact reports whether a namespace may carry the given impact.
// Without the strict_severity build tag, breach authority is advisory only.
func PermitsImpact(_ *Namespace, _ ImpactScore) bool { return true }
