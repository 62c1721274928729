package runstore

import (
	"strings"
	"time"
)

// Kind distinguishes the two directions a run can take through the codec.
type Kind string

const (
	KindEncode Kind = "encode"
	KindDecode Kind = "decode"
)

// Status represents the lifecycle of a run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

var statusSet = map[Status]struct{}{
	StatusRunning:   {},
	StatusCompleted: {},
	StatusFailed:    {},
}

// ParseStatus normalizes a status string, returning false for unknown values.
func ParseStatus(value string) (Status, bool) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	_, ok := statusSet[status]
	return status, ok
}

// Run is one recorded pass over a dataset.
type Run struct {
	ID             string
	Kind           Kind
	Scheme         string
	InputPath      string
	OutputPath     string
	Records        int
	Tokens         int
	DroppedTokens  int
	ReplacedTokens int
	Status         Status
	ErrorMessage   string
	StartedAt      time.Time
	FinishedAt     *time.Time
}

// Duration reports how long the run took, or how long it has been running.
func (r *Run) Duration() time.Duration {
	if r.FinishedAt != nil {
		return r.FinishedAt.Sub(r.StartedAt)
	}
	return time.Since(r.StartedAt)
}
