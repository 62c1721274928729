// Package main hosts the stenocodec CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into codec
// sessions: encoding transcription records into label files, decoding
// predicted labels back into text, inspecting the available schemes, and
// browsing the run ledger. It centralizes configuration resolution and
// logging setup so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
