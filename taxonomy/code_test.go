package taxonomy

import (
	"strings"
	"testing"
)

func TestCodeStringFormat(t *testing.T) {
	if got := CfgParseFailed.String(); got != "E-CFG-100" {
		t.Fatalf("String() = %q, want E-CFG-100", got)
	}
	if got := CoreInitFailed.String(); got != "E-CORE-001" {
		t.Fatalf("String() = %q, want E-CORE-001", got)
	}
}

func TestCodeAccessors(t *testing.T) {
	c := DcpNarrativeBreak
	if c.Namespace() != Deception {
		t.Error("wrong namespace")
	}
	if c.ID() != 232 {
		t.Errorf("ID() = %d, want 232", c.ID())
	}
	if c.Category() != CatDeception {
		t.Errorf("Category() = %v", c.Category())
	}
	if c.Level() != ImpactCollapse {
		t.Errorf("Level() = %v, want Collapse", c.Level())
	}
	if c.Retryable() || !c.Permanent() {
		t.Error("narrative break must be permanent")
	}
}

func TestNewRejectsOutOfRangeID(t *testing.T) {
	for _, id := range []uint16{0, 1000, 65535} {
		if _, v := New(Core, id, CatSystem, MustImpactScore(100), false); v == nil {
			t.Errorf("id %d accepted", id)
		}
	}
	if _, v := New(nil, 5, CatSystem, MustImpactScore(100), false); v == nil {
		t.Error("nil namespace accepted")
	}
}

func TestNewRejectsForbiddenCategory(t *testing.T) {
	_, v := New(IO, 850, CatDeception, MustImpactScore(100), false)
	if v == nil {
		t.Fatal("deception category accepted in IO namespace")
	}
	if v.Kind != ViolationCategoryNotPermitted {
		t.Fatalf("kind = %v", v.Kind)
	}
	if !strings.Contains(v.Error(), "IO") {
		t.Errorf("internal diagnostic missing namespace: %q", v.Error())
	}
}

func TestViolationPublicIsOpaque(t *testing.T) {
	cases := []struct {
		v    *Violation
		want string
	}{
		{&Violation{Kind: ViolationCodeOutOfRange, Value: 4242}, "Invalid error code format"},
		{&Violation{Kind: ViolationCategoryNotPermitted, Namespace: "IO", Category: "Deception"}, "Invalid error configuration"},
		{&Violation{Kind: ViolationImpactNotPermitted, Namespace: "CFG", Impact: 999}, "Invalid error severity"},
	}
	for _, c := range cases {
		got := c.v.Public()
		if got != c.want {
			t.Errorf("Public() = %q, want %q", got, c.want)
		}
		if strings.Contains(got, "4242") || strings.Contains(got, "999") {
			t.Errorf("public form leaks offending value: %q", got)
		}
	}
}

func TestMustNewPanicsOnViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNew(Logging, 650, CatDeception, MustImpactScore(100), false)
}

func TestObservabilityNamespacesRestricted(t *testing.T) {
	for _, ns := range []*Namespace{Logging, Telemetry} {
		if PermitsCategory(ns, CatDeception) {
			t.Errorf("%s permits Deception", ns.Label())
		}
		if !PermitsCategory(ns, CatAudit) {
			t.Errorf("%s rejects Audit", ns.Label())
		}
		if !PermitsCategory(ns, CatMonitoring) {
			t.Errorf("%s rejects Monitoring", ns.Label())
		}
	}
}

func TestDeceptionNamespaceRequiresDeceptionCategories(t *testing.T) {
	for _, c := range []Category{CatDeception, CatDetection, CatContainment, CatDeployment} {
		if !PermitsCategory(Deception, c) {
			t.Errorf("DCP rejects %v", c)
		}
	}
	if PermitsCategory(Deception, CatConfiguration) {
		t.Error("DCP permits Configuration")
	}
}

func TestDefinedCodesRespectRanges(t *testing.T) {
	for _, c := range Defined() {
		start, end, ok := Range(c.Namespace())
		if !ok {
			t.Fatalf("%s: no range for namespace %s", c, c.Namespace().Label())
		}
		if c.ID() < start || c.ID() > end {
			t.Errorf("%s: id %d outside range %d-%d", c, c.ID(), start, end)
		}
	}
}

func TestDefinedCodesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Defined() {
		key := c.String()
		if seen[key] {
			t.Errorf("duplicate code %s", key)
		}
		seen[key] = true
	}
}

func TestCriticalImpactMappings(t *testing.T) {
	if DcpNarrativeBreak.Level() != ImpactCollapse {
		t.Error("narrative break must classify as Collapse")
	}
	if TelEvasionDetected.Level() != ImpactCollapse {
		t.Error("telemetry evasion must classify as Collapse")
	}
	if CoreMemoryAllocFailed.Level() != ImpactLeak {
		t.Error("memory alloc failure must classify as Leak")
	}
}
