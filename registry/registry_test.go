package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/palisade/taxonomy"
)

const validYAML = `codes:
  - name: cfg_parse_failed
    namespace: CFG
    code: 150
    category: Configuration
    impact: 200
    retryable: false
  - name: io_flaky_read
    namespace: IO
    code: 850
    category: I/O
    impact: 120
    retryable: true
`

func writeDefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codes.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidFile(t *testing.T) {
	r, err := Load(writeDefs(t, validYAML))
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	c, ok := r.Lookup("cfg_parse_failed")
	if !ok {
		t.Fatal("cfg_parse_failed not registered")
	}
	if c.Namespace() != taxonomy.Config || c.ID() != 150 {
		t.Fatalf("wrong code: %s", c)
	}
	if c.Level() != taxonomy.ImpactJitter {
		t.Fatalf("impact 200 mapped to %s", c.Level())
	}
	if got := r.SanitizedReport(); got != nil {
		t.Fatalf("unexpected report: %v", got)
	}
}

func TestLoadCollectsIssuesWithoutFailing(t *testing.T) {
	r, err := Load(writeDefs(t, `codes:
  - name: good
    namespace: CORE
    code: 10
    category: System
    impact: 100
  - name: bad_range
    namespace: CFG
    code: 0
    category: Configuration
    impact: 100
  - name: bad_category
    namespace: IO
    code: 820
    category: Deception
    impact: 400
  - name: bad_impact
    namespace: CORE
    code: 11
    category: System
    impact: 5000
`))
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
	report := r.SanitizedReport()
	if len(report) != 3 {
		t.Fatalf("report has %d lines: %v", len(report), report)
	}
	// Sanitized lines never carry the offending values.
	for _, line := range report {
		for _, leak := range []string{"5000", "Deception", "CFG"} {
			if strings.Contains(line, leak) {
				t.Fatalf("report leaks %q: %s", leak, line)
			}
		}
	}
	if !strings.Contains(report[0], "Invalid error code format") {
		t.Fatalf("range rejection line = %q", report[0])
	}
	if !strings.Contains(report[2], "Invalid error severity") {
		t.Fatalf("impact rejection line = %q", report[2])
	}
}

func TestIssuesCarryFullDetail(t *testing.T) {
	r, err := Load(writeDefs(t, `codes:
  - name: forbidden
    namespace: LOG
    code: 610
    category: Deception
    impact: 300
`))
	if err != nil {
		t.Fatal(err)
	}
	issues := r.Issues()
	if len(issues) != 1 {
		t.Fatalf("issues = %d", len(issues))
	}
	var v *taxonomy.Violation
	if !errors.As(issues[0].Detail, &v) {
		t.Fatalf("detail is %T, want *taxonomy.Violation", issues[0].Detail)
	}
	if v.Kind != taxonomy.ViolationCategoryNotPermitted {
		t.Fatalf("kind = %v", v.Kind)
	}
}

func TestLoadRejectsUnknownNamespaceAndDuplicates(t *testing.T) {
	r, err := Load(writeDefs(t, `codes:
  - name: mystery
    namespace: XYZ
    code: 5
    category: System
    impact: 100
  - name: twice
    namespace: CORE
    code: 20
    category: System
    impact: 100
  - name: twice
    namespace: CORE
    code: 21
    category: System
    impact: 100
`))
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
	if len(r.Issues()) != 2 {
		t.Fatalf("issues = %v", r.Issues())
	}
}

func TestLoadFailsOnMalformedYAML(t *testing.T) {
	if _, err := Load(writeDefs(t, "codes: [broken")); err == nil {
		t.Fatal("malformed YAML accepted")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestReloadSwapsSnapshot(t *testing.T) {
	path := writeDefs(t, validYAML)
	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	next := `codes:
  - name: dcp_lure_taken
    namespace: DCP
    code: 240
    category: Deception
    impact: 650
`
	if err := os.WriteFile(path, []byte(next), 0600); err != nil {
		t.Fatal(err)
	}
	if err := r.Reload(); err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Lookup("cfg_parse_failed"); ok {
		t.Fatal("stale entry survived reload")
	}
	if _, ok := r.Lookup("dcp_lure_taken"); !ok {
		t.Fatal("new entry missing after reload")
	}
}

func TestReloadKeepsSnapshotOnBadFile(t *testing.T) {
	path := writeDefs(t, validYAML)
	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("codes: [broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := r.Reload(); err == nil {
		t.Fatal("bad file reload reported success")
	}
	if r.Len() != 2 {
		t.Fatalf("snapshot modified: Len = %d", r.Len())
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := writeDefs(t, validYAML)
	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan error, 4)
	go func() {
		_ = r.Watch(ctx, func(err error) { reloaded <- err })
	}()

	// Give the watcher time to start.
	time.Sleep(100 * time.Millisecond)

	next := `codes:
  - name: rsp_isolated
    namespace: RSP
    code: 520
    category: Containment
    impact: 500
`
	if err := os.WriteFile(path, []byte(next), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-reloaded:
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watch never reloaded")
	}

	if _, ok := r.Lookup("rsp_isolated"); !ok {
		t.Fatal("watch reload lost new entry")
	}
}
