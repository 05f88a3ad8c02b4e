package deps_test

import (
	"testing"

	"corpusdash/internal/deps"
)

func TestCheckBinaries(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "shell", Command: "sh", Description: "posix shell"},
		{Name: "ghost", Command: "definitely-not-a-binary-xyz"},
		{Name: "blank", Command: "   ", Optional: true},
	})
	if len(statuses) != 3 {
		t.Fatalf("statuses = %d", len(statuses))
	}
	if !statuses[0].Available {
		t.Errorf("sh should be available: %+v", statuses[0])
	}
	if statuses[1].Available || statuses[1].Detail == "" {
		t.Errorf("ghost should be missing with detail: %+v", statuses[1])
	}
	if statuses[2].Available || statuses[2].Detail != "command not configured" {
		t.Errorf("blank command: %+v", statuses[2])
	}
}

func TestMissingRequired(t *testing.T) {
	missing := deps.MissingRequired([]deps.Status{
		{Name: "a", Available: false},
		{Name: "b", Available: false, Optional: true},
		{Name: "c", Available: true},
	})
	if len(missing) != 1 || missing[0] != "a" {
		t.Fatalf("missing = %v", missing)
	}
}
