package codec

import (
	"strings"

	"stenocodec/internal/alphabet"
)

// positionalScheme encodes each unit as <id>@<position>, where position is
// the unit's word-relative class. The alphabet's positional variant table
// resolves units whose reading depends on where in the word they sit.
type positionalScheme struct {
	alpha *alphabet.Alphabet
	opts  Options
}

func (s *positionalScheme) Tag() Tag { return TagPositional }

func (s *positionalScheme) Encode(rec Record) (Label, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	runes := []rune(rec.Text)
	positions := positionsFor(rec.Units, s.alpha.Boundary())
	label := make(Label, 0, max(len(rec.Units), len(runes)))
	for i, unit := range rec.Units {
		want := alignedRune(runes, i)
		ch, ok := s.alpha.CharForUnitAt(string(unit), positions[i])
		if !ok || ch != want {
			label = append(label, literalToken(want))
			continue
		}
		label = append(label, string(unit)+positionMark+positionTag(positions[i]))
	}
	for i := len(rec.Units); i < len(runes); i++ {
		label = append(label, literalToken(string(runes[i])))
	}
	return label, nil
}

type positionalToken struct {
	literal  string
	isLit    bool
	id       string
	pos      alphabet.Position
	hasPos   bool
	boundary bool
}

// Decode resolves each token's character through the positional variant
// table. Predicted tokens sometimes arrive without a position tag; those are
// resolved by consulting the neighboring labels instead of failing.
func (s *positionalScheme) Decode(label Label) (string, Diagnostics) {
	tokens := make([]positionalToken, len(label))
	for i, raw := range label {
		tokens[i] = s.parseToken(raw)
	}

	var b strings.Builder
	var diag Diagnostics
	for i := range tokens {
		token := tokens[i]
		if token.isLit {
			b.WriteString(token.literal)
			continue
		}
		if _, ok := s.alpha.Lookup(token.id); !ok {
			s.opts.degrade(&b, &diag)
			continue
		}
		pos := token.pos
		if !token.hasPos {
			pos = inferPosition(tokens, i)
		}
		ch, _ := s.alpha.CharForUnitAt(token.id, pos)
		b.WriteString(ch)
	}
	return b.String(), diag
}

func (s *positionalScheme) parseToken(raw string) positionalToken {
	if lit, ok := literalValue(raw); ok {
		return positionalToken{literal: lit, isLit: true, boundary: strings.TrimSpace(lit) == ""}
	}
	id := raw
	var pos alphabet.Position
	hasPos := false
	if at := strings.LastIndex(raw, positionMark); at >= 0 {
		if parsed, ok := parsePositionTag(raw[at+1:]); ok {
			id = raw[:at]
			pos = parsed
			hasPos = true
		}
	}
	return positionalToken{
		id:       id,
		pos:      pos,
		hasPos:   hasPos,
		boundary: s.alpha.Boundary() != "" && id == s.alpha.Boundary(),
	}
}

// inferPosition recovers a missing position tag from the neighbors: a token
// at a sequence edge or next to a boundary token takes the corresponding
// word-edge class.
func inferPosition(tokens []positionalToken, i int) alphabet.Position {
	beforeBreak := i == 0 || tokens[i-1].boundary
	afterBreak := i == len(tokens)-1 || tokens[i+1].boundary
	switch {
	case beforeBreak && afterBreak:
		return alphabet.PosIsolated
	case beforeBreak:
		return alphabet.PosInitial
	case afterBreak:
		return alphabet.PosFinal
	default:
		return alphabet.PosMedial
	}
}
