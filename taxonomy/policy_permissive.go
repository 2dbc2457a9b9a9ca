//go:build !strict_taxonomy

package taxonomy

// Default mode: namespaces without always-on rules accept any category.
// Whether this bootstrap allowance should survive is an open governance
// question; the strict_taxonomy build tag closes it without a code change.
func fallbackPermits(_ *Namespace, _ Category) bool { return true }
