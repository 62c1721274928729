// Package codec maps stenographic transcription records to training label
// sequences and back.
//
// Four interchangeable schemes share the Scheme interface: direct (one unit,
// one character), word-level (one unit run, one word), compositional (units
// expanded to stroke primitives), and positional (unit identity plus
// word-relative position). The active scheme is resolved once per session
// through Resolve; nothing re-dispatches per record.
//
// Encode is pure and deterministic and fails only when a record violates its
// non-emptiness invariant. Decode is total: predicted label sequences are
// noisy by nature, so unrecognized tokens degrade according to the
// configured policy and are reported through Diagnostics instead of errors.
//
// Treat this package as the single source of truth for label semantics; the
// dataset and run-ledger packages only move its inputs and outputs around.
package codec
