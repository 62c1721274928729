package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for run identifiers.
	FieldRunID = "run_id"
	// FieldScheme is the standardized structured logging key for the active encoding scheme.
	FieldScheme = "scheme"
	// FieldRecordID is the standardized structured logging key for transcription record identifiers.
	FieldRecordID = "record_id"
)

type contextKey int

const (
	runIDKey contextKey = iota
	schemeKey
	recordIDKey
)

// WithRunID stores a run identifier on the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// WithScheme stores the active scheme tag on the context.
func WithScheme(ctx context.Context, scheme string) context.Context {
	return context.WithValue(ctx, schemeKey, scheme)
}

// WithRecordID stores a record identifier on the context.
func WithRecordID(ctx context.Context, recordID string) context.Context {
	return context.WithValue(ctx, recordIDKey, recordID)
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := ctx.Value(runIDKey).(string); ok && id != "" {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if scheme, ok := ctx.Value(schemeKey).(string); ok && scheme != "" {
		fields = append(fields, slog.String(FieldScheme, scheme))
	}
	if id, ok := ctx.Value(recordIDKey).(string); ok && id != "" {
		fields = append(fields, slog.String(FieldRecordID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
