package codec

import "fmt"

// InvalidRecordError reports a transcription record that violates the
// non-emptiness invariant. It signals a data-integrity bug upstream and is
// the only error Encode can return.
type InvalidRecordError struct {
	RecordID string
	Reason   string
}

func (e *InvalidRecordError) Error() string {
	if e.RecordID != "" {
		return fmt.Sprintf("invalid record %s: %s", e.RecordID, e.Reason)
	}
	return fmt.Sprintf("invalid record: %s", e.Reason)
}
