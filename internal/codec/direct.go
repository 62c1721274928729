package codec

import (
	"strings"

	"stenocodec/internal/alphabet"
)

// directScheme maps each unit to exactly one output character.
type directScheme struct {
	alpha *alphabet.Alphabet
	opts  Options
}

func (s *directScheme) Tag() Tag { return TagDirect }

// Encode trusts the aligned transcript rune over the alphabet: a unit whose
// alphabet reading disagrees with its rune, or that has no rune left to pair
// with, rides as a literal so the label always reproduces the text. Runes
// past the last unit trail as literals for the same reason.
func (s *directScheme) Encode(rec Record) (Label, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	runes := []rune(rec.Text)
	label := make(Label, 0, max(len(rec.Units), len(runes)))
	for i, unit := range rec.Units {
		want := alignedRune(runes, i)
		if ch, ok := s.alpha.CharForUnit(string(unit)); ok && ch == want {
			label = append(label, ch)
			continue
		}
		label = append(label, literalToken(want))
	}
	for i := len(rec.Units); i < len(runes); i++ {
		label = append(label, literalToken(string(runes[i])))
	}
	return label, nil
}

func (s *directScheme) Decode(label Label) (string, Diagnostics) {
	var b strings.Builder
	var diag Diagnostics
	for _, token := range label {
		if lit, ok := literalValue(token); ok {
			b.WriteString(lit)
			continue
		}
		if _, ok := s.alpha.UnitForChar(token); ok {
			b.WriteString(token)
			continue
		}
		s.opts.degrade(&b, &diag)
	}
	return b.String(), diag
}
