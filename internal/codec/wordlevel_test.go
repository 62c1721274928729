package codec_test

import (
	"reflect"
	"testing"

	"stenocodec/internal/codec"
)

func TestWordLevelEncodeWordsAsAtomicLabels(t *testing.T) {
	scheme := mustResolve(t, codec.TagWordLevel, codec.Options{})
	rec := kattenRecord()

	label, err := scheme.Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !reflect.DeepEqual(label, codec.Label{"katten", "är", "grön"}) {
		t.Fatalf("label = %v", label)
	}
}

// Word labels come from the transcript alone: a unit sequence that disagrees
// with the text has no bearing on the encoded words.
func TestWordLevelEncodeTranscriptWins(t *testing.T) {
	scheme := mustResolve(t, codec.TagWordLevel, codec.Options{})
	rec := codec.Record{ID: "disagrees", Units: units("K"), Text: "katten är grön"}

	label, err := scheme.Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !reflect.DeepEqual(label, codec.Label{"katten", "är", "grön"}) {
		t.Fatalf("label = %v", label)
	}
}

func TestWordLevelDecodeJoinsWithSingleSpaces(t *testing.T) {
	scheme := mustResolve(t, codec.TagWordLevel, codec.Options{})
	got, diag := scheme.Decode(codec.Label{"katten", "är", "grön"})
	if got != "katten är grön" || !diag.Clean() {
		t.Fatalf("decode = %q (%+v)", got, diag)
	}
}

func TestWordLevelDecodeResplitsGluedWords(t *testing.T) {
	scheme := mustResolve(t, codec.TagWordLevel, codec.Options{})
	got, diag := scheme.Decode(codec.Label{"katten är", "grön"})
	if got != "katten är grön" {
		t.Fatalf("decode = %q", got)
	}
	if !diag.Clean() {
		t.Fatalf("diagnostics = %+v", diag)
	}
}

func TestWordLevelDecodeEmptyTokens(t *testing.T) {
	drop := mustResolve(t, codec.TagWordLevel, codec.Options{OnUnknown: codec.UnknownDrop})
	got, diag := drop.Decode(codec.Label{"katten", "", "grön"})
	if got != "katten grön" || diag.Dropped != 1 {
		t.Fatalf("drop decode = %q (%+v)", got, diag)
	}

	sub := mustResolve(t, codec.TagWordLevel, codec.Options{OnUnknown: codec.UnknownPlaceholder, Placeholder: "?"})
	got, diag = sub.Decode(codec.Label{"katten", "   ", "grön"})
	if got != "katten ? grön" || diag.Replaced != 1 {
		t.Fatalf("placeholder decode = %q (%+v)", got, diag)
	}
}
