package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeWritesLabelFile(t *testing.T) {
	env := setupCLITestEnv(t)

	records := writeRecordsFile(t, env.baseDir,
		`{"id":"r1","units":["K","A","T","T"],"text":"katt"}`,
		`{"id":"r2","units":["B","AO","T"],"text":"båt"}`,
	)
	output := filepath.Join(env.baseDir, "labels.jsonl")

	out, _, err := runCLI(t, []string{"encode", records, "--scheme", "direct", "--output", output}, env.configPath)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	requireContains(t, out, "Encoded 2 records")
	requireContains(t, out, output)

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read labels: %v", err)
	}
	requireContains(t, string(data), `"scheme":"direct"`)
	requireContains(t, string(data), `"tokens":["k","a","t","t"]`)
}

func TestEncodeDefaultsOutputToConfiguredDir(t *testing.T) {
	env := setupCLITestEnv(t)

	records := writeRecordsFile(t, env.baseDir,
		`{"id":"r1","units":["K","O"],"text":"ko"}`,
	)

	_, _, err := runCLI(t, []string{"encode", records, "--scheme", "word-level"}, env.configPath)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	expected := filepath.Join(env.cfg.Paths.OutDir, "labels-word-level.jsonl")
	if _, err := os.Stat(expected); err != nil {
		t.Fatalf("expected label file at %s: %v", expected, err)
	}
}

func TestEncodeRejectsInvalidRecord(t *testing.T) {
	env := setupCLITestEnv(t)

	records := writeRecordsFile(t, env.baseDir,
		`{"id":"bad","units":["K"],"text":"   "}`,
	)

	_, _, err := runCLI(t, []string{"encode", records, "--scheme", "direct"}, env.configPath)
	if err == nil {
		t.Fatal("expected encode to fail for empty transcript")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Fatalf("expected record id in error, got %v", err)
	}
}

func TestEncodeRejectsUnknownScheme(t *testing.T) {
	env := setupCLITestEnv(t)

	records := writeRecordsFile(t, env.baseDir,
		`{"id":"r1","units":["K","O"],"text":"ko"}`,
	)

	_, _, err := runCLI(t, []string{"encode", records, "--scheme", "phonetic"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "phonetic") {
		t.Fatalf("expected unknown scheme error, got %v", err)
	}
}
