package codec

import (
	"strings"

	"stenocodec/internal/alphabet"
)

// compositionalScheme expands each unit into its stroke primitive tokens.
// Unit groups are separated by a reserved separator token; units without a
// decomposition are carried as a single u:<id> token.
type compositionalScheme struct {
	alpha *alphabet.Alphabet
	opts  Options
}

func (s *compositionalScheme) Tag() Tag { return TagCompositional }

func (s *compositionalScheme) Encode(rec Record) (Label, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	runes := []rune(rec.Text)
	label := make(Label, 0, max(len(rec.Units), len(runes))*2)
	for i, unit := range rec.Units {
		if i > 0 {
			label = append(label, groupSeparator)
		}
		want := alignedRune(runes, i)
		u, ok := s.alpha.Lookup(string(unit))
		if !ok || u.Char != want {
			label = append(label, literalToken(want))
			continue
		}
		if len(u.Subunits) == 0 {
			label = append(label, unitPrefix+u.ID)
			continue
		}
		label = append(label, u.Subunits...)
	}
	for i := len(rec.Units); i < len(runes); i++ {
		label = append(label, groupSeparator, literalToken(string(runes[i])))
	}
	return label, nil
}

// Decode splits the label on separator tokens and re-composes each group
// into a unit before mapping to its character.
func (s *compositionalScheme) Decode(label Label) (string, Diagnostics) {
	var b strings.Builder
	var diag Diagnostics

	group := make([]string, 0, 4)
	flush := func() {
		if len(group) == 0 {
			return
		}
		s.decodeGroup(&b, &diag, group)
		group = group[:0]
	}
	for _, token := range label {
		if token == groupSeparator {
			flush()
			continue
		}
		group = append(group, token)
	}
	flush()

	return b.String(), diag
}

func (s *compositionalScheme) decodeGroup(b *strings.Builder, diag *Diagnostics, group []string) {
	if len(group) == 1 {
		token := group[0]
		if lit, ok := literalValue(token); ok {
			b.WriteString(lit)
			return
		}
		if id, found := strings.CutPrefix(token, unitPrefix); found {
			if ch, ok := s.alpha.CharForUnit(id); ok {
				b.WriteString(ch)
				return
			}
			s.opts.degrade(b, diag)
			return
		}
	}
	if id, ok := s.alpha.UnitForSubunits(group); ok {
		if ch, found := s.alpha.CharForUnit(id); found {
			b.WriteString(ch)
			return
		}
	}
	s.opts.degrade(b, diag)
}
