// Package textutil provides text canonicalization helpers shared by the
// alphabet loader and the dataset boundary.
//
// Ground-truth transcripts and alphabet tables both pass through Canonical
// before any codec sees them, so composed/decomposed Unicode forms, casing,
// and irregular whitespace can never break the encode/decode round trip.
package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var swedishLower = cases.Lower(language.Swedish)

// Normalize applies Unicode NFC so combining sequences (å, ä, ö) compare
// equal regardless of how the source file encoded them.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Lower lowercases using Swedish casing rules.
func Lower(s string) string {
	return swedishLower.String(s)
}

// CanonicalSpaces collapses all whitespace runs to single spaces and trims
// the ends.
func CanonicalSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Canonical is the full canonical form used for transcript text: NFC,
// Swedish lowercase, single-spaced.
func Canonical(s string) string {
	return CanonicalSpaces(Lower(Normalize(s)))
}

// Words splits canonical text into its words.
func Words(s string) []string {
	return strings.Fields(s)
}
