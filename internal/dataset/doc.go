// Package dataset reads and writes the JSONL files the codec operates on:
// transcription records, encoded label sequences, predicted label sequences,
// and decoded text.
//
// The record reader is the boundary where transcripts are canonicalized
// (NFC, Swedish lowercase, single-spaced) and where the record invariant is
// enforced with line-numbered errors. Everything past this boundary can
// assume well-formed, canonical input. Writers go through atomic file
// replacement so a crashed run never leaves a half-written dataset behind.
package dataset
