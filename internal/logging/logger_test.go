package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stenocodec/internal/config"
)

func TestJSONHandlerShapesCoreFields(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, levelVar, false))

	logger.Info("encoded batch", String(FieldScheme, "direct"), Int("records", 3))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line["msg"] != "encoded batch" {
		t.Fatalf("unexpected msg: %v", line["msg"])
	}
	if line["level"] != "info" {
		t.Fatalf("unexpected level: %v", line["level"])
	}
	if line[FieldScheme] != "direct" {
		t.Fatalf("unexpected scheme: %v", line[FieldScheme])
	}
	if _, ok := line["ts"]; !ok {
		t.Fatal("expected ts field")
	}
}

func TestConsoleHandlerIncludesSubjectAndFields(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar, false))

	logger = logger.With(String(FieldComponent, "encode"), String(FieldRunID, "0123456789abcdef"))
	logger.Info("wrote labels", Int("records", 12))

	out := buf.String()
	if !strings.Contains(out, "[encode]") {
		t.Fatalf("expected component in output: %q", out)
	}
	if !strings.Contains(out, "run 01234567") {
		t.Fatalf("expected shortened run id in output: %q", out)
	}
	if !strings.Contains(out, "records: 12") {
		t.Fatalf("expected fields in output: %q", out)
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar, false))

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info below warn to be suppressed: %q", buf.String())
	}
	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("expected warn output: %q", buf.String())
	}
}

func TestWithContextCarriesRunFields(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, levelVar, false))

	ctx := WithRunID(context.Background(), "run-1")
	ctx = WithScheme(ctx, "positional")
	ctx = WithRecordID(ctx, "rec-9")

	WithContext(ctx, logger).Info("decoded")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatal(err)
	}
	if line[FieldRunID] != "run-1" || line[FieldScheme] != "positional" || line[FieldRecordID] != "rec-9" {
		t.Fatalf("missing context fields: %v", line)
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	logger, err := NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("ledger opened")

	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "stenocodec.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "ledger opened") {
		t.Fatalf("expected log line in file: %q", data)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected nop logger to be disabled")
	}
}
