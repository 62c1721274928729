package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stenocodec/internal/codec"
	"stenocodec/internal/dataset"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadRecordsCanonicalizesTranscripts(t *testing.T) {
	path := writeFile(t, "records.jsonl", strings.Join([]string{
		`{"id":"r1","units":["K","A","T","T"],"text":"  KATT "}`,
		``,
		`{"id":"r2","units":["B","AO","T"],"text":"båt"}`,
	}, "\n"))

	records, err := dataset.ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Text != "katt" {
		t.Fatalf("text not canonicalized: %q", records[0].Text)
	}
	if records[1].Text != "båt" {
		t.Fatalf("text not NFC-normalized: %q", records[1].Text)
	}
	if records[0].Units[0] != codec.Unit("K") {
		t.Fatalf("unexpected units: %v", records[0].Units)
	}
}

func TestReadRecordsAssignsLineIDs(t *testing.T) {
	path := writeFile(t, "records.jsonl", `{"units":["K","O"],"text":"ko"}`)
	records, err := dataset.ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if records[0].ID != "line-1" {
		t.Fatalf("expected synthesized id, got %q", records[0].ID)
	}
}

func TestReadRecordsRejectsInvalidRecordsWithLineNumbers(t *testing.T) {
	path := writeFile(t, "records.jsonl", strings.Join([]string{
		`{"id":"ok","units":["K","O"],"text":"ko"}`,
		`{"id":"bad","units":[],"text":"ko"}`,
	}, "\n"))

	_, err := dataset.ReadRecords(path)
	if err == nil {
		t.Fatal("expected error for empty unit sequence")
	}
	if !strings.Contains(err.Error(), ":2:") {
		t.Fatalf("expected line number in error: %v", err)
	}
}

func TestReadRecordsRejectsMalformedJSON(t *testing.T) {
	path := writeFile(t, "records.jsonl", `{"id":"r1","units":`)
	if _, err := dataset.ReadRecords(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestReadRecordsRejectsEmptyFile(t *testing.T) {
	path := writeFile(t, "records.jsonl", "\n\n")
	if _, err := dataset.ReadRecords(path); err == nil {
		t.Fatal("expected error for empty dataset")
	}
}

func TestWriteLabelsRoundTripsAsPredictions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "labels.jsonl")
	entries := []dataset.LabelEntry{
		{ID: "r1", Tokens: []string{"k", "a", "t", "t"}},
		{ID: "r2", Tokens: []string{"b", "å", "t"}},
	}
	if err := dataset.WriteLabels(path, codec.TagDirect, entries); err != nil {
		t.Fatalf("WriteLabels: %v", err)
	}

	// Encoded labels are exactly what a perfect model would predict, so the
	// prediction reader must accept the label file shape.
	predictions, err := dataset.ReadPredictions(path)
	if err != nil {
		t.Fatalf("ReadPredictions: %v", err)
	}
	if len(predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(predictions))
	}
	if predictions[1].ID != "r2" || predictions[1].Tokens[2] != "t" {
		t.Fatalf("unexpected prediction: %+v", predictions[1])
	}
}

func TestReadPredictionsToleratesEmptyTokenArrays(t *testing.T) {
	path := writeFile(t, "pred.jsonl", strings.Join([]string{
		`{"id":"p1","tokens":[]}`,
		`{"tokens":["k","o"]}`,
	}, "\n"))

	predictions, err := dataset.ReadPredictions(path)
	if err != nil {
		t.Fatalf("ReadPredictions: %v", err)
	}
	if len(predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(predictions))
	}
	if len(predictions[0].Tokens) != 0 {
		t.Fatalf("expected empty tokens, got %v", predictions[0].Tokens)
	}
	if predictions[1].ID != "line-2" {
		t.Fatalf("expected synthesized id, got %q", predictions[1].ID)
	}
}

func TestWriteDecoded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decoded.jsonl")
	entries := []dataset.DecodedEntry{
		{ID: "p1", Text: "katten är grön", Dropped: 1},
	}
	if err := dataset.WriteDecoded(path, entries); err != nil {
		t.Fatalf("WriteDecoded: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"katten är grön"`) {
		t.Fatalf("unexpected output: %s", data)
	}
	if !strings.Contains(string(data), `"dropped":1`) {
		t.Fatalf("missing diagnostics: %s", data)
	}
}
