package palisade

import (
	"strings"
	"testing"

	"github.com/ppiankov/palisade/taxonomy"
)

func TestChainOrderAndSummary(t *testing.T) {
	chain := NewContextChain(WithLie("Database error", "connection refused by decoy backend", taxonomy.CatIO))
	chain.Push(WithLie("Retry failed", "max retries (3) exceeded", taxonomy.CatSystem))

	if chain.Depth() != 2 {
		t.Fatalf("depth = %d", chain.Depth())
	}
	if chain.Root().ExternalMessage() != "Database error" {
		t.Errorf("root = %q", chain.Root().ExternalMessage())
	}
	if chain.Head().ExternalMessage() != "Retry failed" {
		t.Errorf("head = %q", chain.Head().ExternalMessage())
	}
	if got := chain.ExternalSummary(); got != "Database error -> Retry failed" {
		t.Errorf("summary = %q", got)
	}
}

func TestChainSummaryExcludesInternal(t *testing.T) {
	chain := NewContextChain(WithLieAndSensitive("Not found", "probe on /srv/decoys/keys", taxonomy.CatIO))
	if strings.Contains(chain.ExternalSummary(), "decoys") {
		t.Errorf("summary leaks internal content: %q", chain.ExternalSummary())
	}
}

func TestChainDestroy(t *testing.T) {
	root := WithLieAndSensitive("err", "secret-a", taxonomy.CatIO)
	next := WithLieAndSensitive("err2", "secret-b", taxonomy.CatIO)
	buf := root.internal.text

	chain := NewContextChain(root)
	chain.Push(next)
	chain.Destroy()

	for _, b := range buf {
		if b != 0 {
			t.Fatal("chain destroy left internal bytes")
		}
	}
}
