package codec_test

import (
	"reflect"
	"testing"

	"stenocodec/internal/codec"
)

func TestDirectEncodeUsesAlphabetChars(t *testing.T) {
	scheme := mustResolve(t, codec.TagDirect, codec.Options{})
	rec := codec.Record{ID: "r", Units: units("B", "AO", "T"), Text: "båt"}

	label, err := scheme.Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !reflect.DeepEqual(label, codec.Label{"b", "å", "t"}) {
		t.Fatalf("label = %v", label)
	}
}

func TestDirectEncodeCarriesUnknownUnitsAsLiterals(t *testing.T) {
	scheme := mustResolve(t, codec.TagDirect, codec.Options{})
	// "XX" is not in the inventory; the aligned transcript rune rides along
	// so the label still reproduces the text.
	rec := codec.Record{ID: "r", Units: units("B", "XX", "T"), Text: "båt"}

	label, err := scheme.Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !reflect.DeepEqual(label, codec.Label{"b", "lit:å", "t"}) {
		t.Fatalf("label = %v", label)
	}

	got, diag := scheme.Decode(label)
	if got != "båt" || !diag.Clean() {
		t.Fatalf("decode = %q (%+v)", got, diag)
	}
}

func TestDirectDecodePolicies(t *testing.T) {
	noisy := codec.Label{"k", "??", "a", "t", "zz", "t"}

	drop := mustResolve(t, codec.TagDirect, codec.Options{OnUnknown: codec.UnknownDrop})
	got, diag := drop.Decode(noisy)
	if got != "katt" {
		t.Fatalf("drop decode = %q", got)
	}
	if diag.Dropped != 2 || diag.Replaced != 0 {
		t.Fatalf("drop diagnostics = %+v", diag)
	}

	sub := mustResolve(t, codec.TagDirect, codec.Options{OnUnknown: codec.UnknownPlaceholder, Placeholder: "_"})
	got, diag = sub.Decode(noisy)
	if got != "k_at_t" {
		t.Fatalf("placeholder decode = %q", got)
	}
	if diag.Dropped != 0 || diag.Replaced != 2 {
		t.Fatalf("placeholder diagnostics = %+v", diag)
	}
}

func TestDirectDecodeEmptyLabel(t *testing.T) {
	scheme := mustResolve(t, codec.TagDirect, codec.Options{})
	got, diag := scheme.Decode(nil)
	if got != "" || !diag.Clean() {
		t.Fatalf("decode(nil) = %q (%+v)", got, diag)
	}
}
