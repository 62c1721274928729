package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"stenocodec/internal/codec"
	"stenocodec/internal/fileutil"
)

// LabelEntry pairs a record id with its encoded label sequence.
type LabelEntry struct {
	ID     string   `json:"id"`
	Scheme string   `json:"scheme"`
	Tokens []string `json:"tokens"`
}

// WriteLabels writes encoded labels as JSONL, one entry per record, through
// an atomic replace.
func WriteLabels(path string, scheme codec.Tag, entries []LabelEntry) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	for i := range entries {
		entries[i].Scheme = string(scheme)
		if err := encoder.Encode(&entries[i]); err != nil {
			return fmt.Errorf("marshal label %s: %w", entries[i].ID, err)
		}
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write labels: %w", err)
	}
	return nil
}

// Prediction is one predicted label sequence as emitted by the recognition
// model. Token content is untrusted; the codec's decode handles the noise.
type Prediction struct {
	ID     string   `json:"id"`
	Tokens []string `json:"tokens"`
}

// ReadPredictions loads predicted label sequences from a JSONL file. Only
// malformed JSON is fatal; empty or garbage token arrays flow through to
// decode's graceful degradation.
func ReadPredictions(path string) ([]Prediction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open predictions: %w", err)
	}
	defer file.Close()

	var predictions []Prediction
	scanner := newLineScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var parsed Prediction
		if err := json.Unmarshal([]byte(line), &parsed); err != nil {
			return nil, fmt.Errorf("%s:%d: parse prediction: %w", path, lineNo, err)
		}
		if strings.TrimSpace(parsed.ID) == "" {
			parsed.ID = fmt.Sprintf("line-%d", lineNo)
		}
		predictions = append(predictions, parsed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read predictions: %w", err)
	}
	return predictions, nil
}

// DecodedEntry is one decoded transcript with its degradation counts, ready
// for the downstream evaluation harness.
type DecodedEntry struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Dropped  int    `json:"dropped"`
	Replaced int    `json:"replaced"`
}

// WriteDecoded writes decoded transcripts as JSONL through an atomic
// replace.
func WriteDecoded(path string, entries []DecodedEntry) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	for i := range entries {
		if err := encoder.Encode(&entries[i]); err != nil {
			return fmt.Errorf("marshal decoded %s: %w", entries[i].ID, err)
		}
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write decoded: %w", err)
	}
	return nil
}
