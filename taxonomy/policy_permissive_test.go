//go:build !strict_taxonomy

package taxonomy

import "testing"

func TestPermissiveFallbackAcceptsAnyCategory(t *testing.T) {
	// Namespaces without an always-on rule accept any pairing by default.
	for _, ns := range []*Namespace{Core, Config, Correlation, Response, Platform} {
		for c := CatConfiguration; c <= CatContainment; c++ {
			if !PermitsCategory(ns, c) {
				t.Errorf("PermitsCategory(%s, %s) = false in permissive mode", ns.Label(), c.DisplayName())
			}
		}
	}
}
