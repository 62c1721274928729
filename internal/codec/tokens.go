package codec

import (
	"strings"

	"stenocodec/internal/alphabet"
)

// Reserved token forms shared by the schemes. Literal tokens carry
// ground-truth characters wherever the alphabet reading cannot reproduce the
// transcript, so encoding stays total and lossless on any valid record.
const (
	literalPrefix  = "lit:"
	unitPrefix     = "u:"
	groupSeparator = "/"
	positionMark   = "@"
)

func literalToken(text string) string {
	return literalPrefix + text
}

func literalValue(token string) (string, bool) {
	if strings.HasPrefix(token, literalPrefix) {
		return token[len(literalPrefix):], true
	}
	return "", false
}

// alignedRune pairs a record's unit index with its transcript rune. Units
// beyond the transcript length align with the empty string.
func alignedRune(runes []rune, i int) string {
	if i < len(runes) {
		return string(runes[i])
	}
	return ""
}

// unitGroups splits a unit sequence into word groups on the boundary unit.
// With no boundary unit defined the whole sequence is one group.
func unitGroups(units []Unit, boundary string) [][]Unit {
	if boundary == "" {
		return [][]Unit{units}
	}
	groups := make([][]Unit, 0, 4)
	start := 0
	for i, unit := range units {
		if string(unit) != boundary {
			continue
		}
		if i > start {
			groups = append(groups, units[start:i])
		}
		start = i + 1
	}
	if start < len(units) {
		groups = append(groups, units[start:])
	}
	return groups
}

// positionsFor classifies every unit by its word-relative position. Boundary
// units are classified as isolated; they sit between words, not in them.
func positionsFor(units []Unit, boundary string) []alphabet.Position {
	positions := make([]alphabet.Position, len(units))
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		if end-start == 1 {
			positions[start] = alphabet.PosIsolated
		} else {
			positions[start] = alphabet.PosInitial
			for i := start + 1; i < end-1; i++ {
				positions[i] = alphabet.PosMedial
			}
			positions[end-1] = alphabet.PosFinal
		}
		start = -1
	}
	for i, unit := range units {
		if boundary != "" && string(unit) == boundary {
			flush(i)
			positions[i] = alphabet.PosIsolated
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(units))
	return positions
}

var positionTags = map[alphabet.Position]string{
	alphabet.PosIsolated: "iso",
	alphabet.PosInitial:  "ini",
	alphabet.PosMedial:   "med",
	alphabet.PosFinal:    "fin",
}

func positionTag(pos alphabet.Position) string {
	return positionTags[pos]
}

func parsePositionTag(tag string) (alphabet.Position, bool) {
	for pos, candidate := range positionTags {
		if candidate == tag {
			return pos, true
		}
	}
	return alphabet.PosIsolated, false
}
