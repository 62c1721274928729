// Package config loads, normalizes, and validates the stenocodec TOML
// configuration.
//
// A single Config value is resolved once at session start and treated as
// read-only afterwards; in particular the active encoding scheme is fixed
// here rather than re-dispatched per record. Unknown scheme tags, decode
// policies, or log settings fail Load immediately so misconfiguration never
// surfaces in the middle of a batch.
//
// Prefer Load over hand-assembling Config values outside of tests; it is the
// only path that applies path expansion and cross-field validation.
package config
