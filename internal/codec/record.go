package codec

import "strings"

// Unit is an atomic stenographic symbol identifier.
type Unit string

// Record pairs an ordered unit sequence with its aligned ground-truth
// transcript. Records are produced by the dataset loader and are read-only
// to the codec.
type Record struct {
	ID    string
	Units []Unit
	Text  string
}

// Validate checks the record invariant: a non-empty unit sequence and a
// non-empty transcript.
func (r Record) Validate() error {
	if len(r.Units) == 0 {
		return &InvalidRecordError{RecordID: r.ID, Reason: "empty unit sequence"}
	}
	if strings.TrimSpace(r.Text) == "" {
		return &InvalidRecordError{RecordID: r.ID, Reason: "empty transcript"}
	}
	return nil
}

// Label is an ordered sequence of symbolic label tokens.
type Label []string
