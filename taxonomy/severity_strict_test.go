//go:build strict_severity

package taxonomy

import "testing"

func TestBreachRequiresAuthority(t *testing.T) {
	breach := MustImpactScore(980)
	if !PermitsImpact(Core, breach) || !PermitsImpact(Deception, breach) {
		t.Error("breach authority namespaces must accept Breach-level scores")
	}
	if PermitsImpact(Config, breach) {
		t.Error("CFG accepted a Breach-level score")
	}
	if _, v := New(Config, 150, CatConfiguration, breach, false); v == nil {
		t.Fatal("construction accepted Breach score without authority")
	} else if v.Kind != ViolationImpactNotPermitted {
		t.Fatalf("kind = %v", v.Kind)
	}
	// Below the breach band the authority flag is irrelevant.
	if !PermitsImpact(Config, MustImpactScore(950)) {
		t.Error("sub-breach score rejected")
	}
}
