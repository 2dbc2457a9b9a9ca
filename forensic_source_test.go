package palisade

import (
	"strings"
	"testing"

	"github.com/ppiankov/palisade/forensic"
	"github.com/ppiankov/palisade/taxonomy"
)

func TestAgentErrorForensicRetention(t *testing.T) {
	logger := forensic.New(8, 4096)

	err := Config(taxonomy.CfgParseFailed, "load_config", "malformed yaml").
		WithMetadata("file", "agent.yaml")
	defer err.Destroy()

	logger.Log(err, "config")

	e := logger.Recent(1)[0]
	if e.Code != err.ExternalCode() {
		t.Fatalf("retained code %q, want external form %q", e.Code, err.ExternalCode())
	}
	if e.Operation != "load_config" || e.Details != "malformed yaml" {
		t.Fatalf("retained op/details = %q/%q", e.Operation, e.Details)
	}
	if len(e.Metadata) != 1 || e.Metadata[0] != [2]string{"file", "agent.yaml"} {
		t.Fatalf("metadata = %v", e.Metadata)
	}
	if e.Retryable {
		t.Fatal("parse failure retained as retryable")
	}
}

// Entries must outlive the errors they were built from.
func TestRetainedEntrySurvivesDestroy(t *testing.T) {
	logger := forensic.New(4, 4096)
	err := Detection(taxonomy.TelEvasionDetected, "probe_scan", "evasion pattern")
	logger.Log(err, "telemetry")
	err.Destroy()

	e := logger.Recent(1)[0]
	if e.Operation != "probe_scan" || e.Details != "evasion pattern" {
		t.Fatalf("entry mutated by Destroy: %q/%q", e.Operation, e.Details)
	}
}

func TestDualContextForensicRetention(t *testing.T) {
	logger := forensic.New(4, 4096)

	lie := WithLie("Service temporarily unavailable",
		"honeypot engaged on port 2222", taxonomy.CatDeception)
	defer lie.Destroy()
	logger.Log(lie, "deception")

	sensitive := WithLieAndSensitive("Access denied",
		"operator credentials intercepted", taxonomy.CatDetection)
	defer sensitive.Destroy()
	logger.Log(sensitive, "deception")

	entries := logger.All()
	if entries[1].Code != "DUAL-CTX" {
		t.Fatalf("dual-context code = %q", entries[1].Code)
	}
	if !strings.Contains(entries[1].Operation, "DeceptiveLie") {
		t.Fatalf("operation misses classification: %q", entries[1].Operation)
	}
	if entries[1].Details != "honeypot engaged on port 2222" {
		t.Fatalf("diagnostic payload not retained: %q", entries[1].Details)
	}
	// Sensitive variants never leak payloads into forensic storage.
	if entries[0].Details != "[SENSITIVE REDACTED]" {
		t.Fatalf("sensitive payload leaked: %q", entries[0].Details)
	}
	if entries[0].Metadata[0][1] != taxonomy.CatDetection.DisplayName() {
		t.Fatalf("category tag = %q", entries[0].Metadata[0][1])
	}
}
