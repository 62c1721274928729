package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRunsListsLedgerEntries(t *testing.T) {
	env := setupCLITestEnv(t)

	records := writeRecordsFile(t, env.baseDir,
		`{"id":"r1","units":["K","O"],"text":"ko"}`,
	)

	out, _, err := runCLI(t, []string{"encode", records, "--scheme", "direct"}, env.configPath)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	runID := extractRunID(t, out)

	out, _, err = runCLI(t, []string{"runs"}, env.configPath)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	requireContains(t, out, runID)
	requireContains(t, out, "completed")
	requireContains(t, out, "direct")
}

func TestRunsShowPrintsDetails(t *testing.T) {
	env := setupCLITestEnv(t)

	records := writeRecordsFile(t, env.baseDir,
		`{"id":"r1","units":["K","A","T","T"],"text":"katt"}`,
	)
	output := filepath.Join(env.baseDir, "labels.jsonl")

	out, _, err := runCLI(t, []string{"encode", records, "--scheme", "direct", "--output", output}, env.configPath)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	runID := extractRunID(t, out)

	out, _, err = runCLI(t, []string{"runs", "show", runID}, env.configPath)
	if err != nil {
		t.Fatalf("runs show: %v", err)
	}
	requireContains(t, out, runID)
	requireContains(t, out, output)
	requireContains(t, out, "Records:  1")
	requireContains(t, out, "Tokens:   4")

	out, _, err = runCLI(t, []string{"runs", "show", runID, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("runs show --json: %v", err)
	}
	requireContains(t, out, `"kind": "encode"`)
	requireContains(t, out, `"status": "completed"`)
}

func TestRunsShowMissingRun(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"runs", "show", "no-such-run"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing run")
	}
}

func TestRunsRejectsUnknownStatusFilter(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"runs", "--status", "paused"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "paused") {
		t.Fatalf("expected unknown status error, got %v", err)
	}
}

func extractRunID(t *testing.T, output string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if rest, ok := strings.CutPrefix(line, "Run "); ok {
			return strings.TrimSpace(rest)
		}
	}
	t.Fatalf("no run id in output: %q", output)
	return ""
}
