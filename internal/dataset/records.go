package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"stenocodec/internal/codec"
	"stenocodec/internal/textutil"
)

// maxLineBytes bounds a single JSONL line. Transcription lines are short;
// anything past this is a corrupt file, not data.
const maxLineBytes = 1 << 20

// recordLine is the on-disk shape of one transcription record.
type recordLine struct {
	ID    string   `json:"id"`
	Units []string `json:"units"`
	Text  string   `json:"text"`
}

// ReadRecords loads transcription records from a JSONL file. Transcripts are
// canonicalized here; records violating the non-emptiness invariant fail
// with their line number so the offending dataset row is easy to find.
func ReadRecords(path string) ([]codec.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer file.Close()

	var records []codec.Record
	scanner := newLineScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var parsed recordLine
		if err := json.Unmarshal([]byte(line), &parsed); err != nil {
			return nil, fmt.Errorf("%s:%d: parse record: %w", path, lineNo, err)
		}

		rec := codec.Record{
			ID:    strings.TrimSpace(parsed.ID),
			Units: make([]codec.Unit, len(parsed.Units)),
			Text:  textutil.Canonical(parsed.Text),
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("line-%d", lineNo)
		}
		for i, unit := range parsed.Units {
			rec.Units[i] = codec.Unit(textutil.Normalize(strings.TrimSpace(unit)))
		}

		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no records", path)
	}
	return records, nil
}

func newLineScanner(file *os.File) *bufio.Scanner {
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	return scanner
}
