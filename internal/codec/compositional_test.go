package codec_test

import (
	"reflect"
	"testing"

	"stenocodec/internal/codec"
)

func TestCompositionalEncodeExpandsSubunits(t *testing.T) {
	scheme := mustResolve(t, codec.TagCompositional, codec.Options{})
	rec := codec.Record{ID: "r", Units: units("K", "O"), Text: "ko"}

	label, err := scheme.Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := codec.Label{"up", "bar", "/", "ring", "tail"}
	if !reflect.DeepEqual(label, want) {
		t.Fatalf("label = %v, want %v", label, want)
	}
}

func TestCompositionalEncodeBoundaryAsUnitToken(t *testing.T) {
	scheme := mustResolve(t, codec.TagCompositional, codec.Options{})
	rec := codec.Record{ID: "r", Units: units("K", "O", "SP", "N", "U"), Text: "ko nu"}

	label, err := scheme.Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// SP has no decomposition, so it rides as a u:SP token.
	want := codec.Label{"up", "bar", "/", "ring", "tail", "/", "u:SP", "/", "wave", "/", "dip", "tail"}
	if !reflect.DeepEqual(label, want) {
		t.Fatalf("label = %v, want %v", label, want)
	}

	got, diag := scheme.Decode(label)
	if got != "ko nu" || !diag.Clean() {
		t.Fatalf("decode = %q (%+v)", got, diag)
	}
}

func TestCompositionalDecodeRecomposesSingleSubunitUnits(t *testing.T) {
	scheme := mustResolve(t, codec.TagCompositional, codec.Options{})
	// "bar" alone recomposes to T, "ring" alone to A.
	got, diag := scheme.Decode(codec.Label{"bar", "/", "ring"})
	if got != "ta" || !diag.Clean() {
		t.Fatalf("decode = %q (%+v)", got, diag)
	}
}

func TestCompositionalDecodeUnknownGroups(t *testing.T) {
	drop := mustResolve(t, codec.TagCompositional, codec.Options{OnUnknown: codec.UnknownDrop})
	got, diag := drop.Decode(codec.Label{"bar", "/", "sparkle", "glow", "/", "ring"})
	if got != "ta" || diag.Dropped != 1 {
		t.Fatalf("drop decode = %q (%+v)", got, diag)
	}

	sub := mustResolve(t, codec.TagCompositional, codec.Options{OnUnknown: codec.UnknownPlaceholder, Placeholder: "#"})
	got, diag = sub.Decode(codec.Label{"bar", "/", "sparkle", "/", "ring"})
	if got != "t#a" || diag.Replaced != 1 {
		t.Fatalf("placeholder decode = %q (%+v)", got, diag)
	}
}

func TestCompositionalDecodeSkipsEmptyGroups(t *testing.T) {
	scheme := mustResolve(t, codec.TagCompositional, codec.Options{})
	got, diag := scheme.Decode(codec.Label{"/", "/", "bar", "/", "/"})
	if got != "t" || !diag.Clean() {
		t.Fatalf("decode = %q (%+v)", got, diag)
	}
}

func TestCompositionalEncodeCarriesUnknownUnitsAsLiterals(t *testing.T) {
	scheme := mustResolve(t, codec.TagCompositional, codec.Options{})
	rec := codec.Record{ID: "r", Units: units("K", "XX"), Text: "ko"}

	label, err := scheme.Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := codec.Label{"up", "bar", "/", "lit:o"}
	if !reflect.DeepEqual(label, want) {
		t.Fatalf("label = %v, want %v", label, want)
	}

	got, diag := scheme.Decode(label)
	if got != "ko" || !diag.Clean() {
		t.Fatalf("decode = %q (%+v)", got, diag)
	}
}
