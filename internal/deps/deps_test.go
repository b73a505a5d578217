package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckUnconfiguredCommand(t *testing.T) {
	statuses := Check([]Requirement{{Name: "Skyscraper"}})
	if len(statuses) != 1 {
		t.Fatalf("statuses = %d, want 1", len(statuses))
	}
	if statuses[0].Available {
		t.Error("empty command reported available")
	}
	if statuses[0].Detail != "command not configured" {
		t.Errorf("detail = %q", statuses[0].Detail)
	}
}

func TestCheckAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	binary := filepath.Join(dir, "Skyscraper")
	if err := os.WriteFile(binary, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	statuses := Check([]Requirement{
		{Name: "present", Command: binary},
		{Name: "absent", Command: filepath.Join(dir, "missing")},
	})
	if !statuses[0].Available {
		t.Errorf("existing binary reported unavailable: %s", statuses[0].Detail)
	}
	if statuses[1].Available {
		t.Error("missing binary reported available")
	}
}

func TestMissingRequired(t *testing.T) {
	statuses := []Status{
		{Requirement: Requirement{Name: "a"}, Available: true},
		{Requirement: Requirement{Name: "b", Optional: true}},
		{Requirement: Requirement{Name: "c"}},
	}
	missing := MissingRequired(statuses)
	if len(missing) != 1 || missing[0] != "c" {
		t.Errorf("missing = %v, want [c]", missing)
	}
}
