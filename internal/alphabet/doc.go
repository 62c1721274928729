// Package alphabet models the Melin stenography symbol inventory.
//
// An Alphabet maps transcription unit identifiers to output characters,
// stroke decompositions, and position-dependent character variants. It is
// loaded from TOML once per session (a built-in Swedish inventory is
// embedded) and is immutable afterwards, so the codec schemes can share one
// instance across concurrent batches.
//
// Unit identifiers and characters are canonicalized (NFC, Swedish
// lowercasing for characters) at load time; reverse lookup tables for
// decoding are built eagerly so per-token decode work is a map access.
package alphabet
