package codec

import (
	"strings"

	"stenocodec/internal/textutil"
)

// wordLevelScheme maps each boundary-delimited unit run to one word of the
// transcript as an atomic label. The transcript owns word identity; the
// steno segmentation pairs run i with word i, and when the two disagree the
// transcript wins so decode stays lossless. The scheme never reads the
// alphabet: labels are transcript words, not unit readings.
type wordLevelScheme struct {
	opts Options
}

func (s *wordLevelScheme) Tag() Tag { return TagWordLevel }

func (s *wordLevelScheme) Encode(rec Record) (Label, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	words := textutil.Words(rec.Text)
	label := make(Label, len(words))
	copy(label, words)
	return label, nil
}

// Decode joins word labels with single spaces. Boundary detection is token
// granularity: each kept token is one word. Tokens that themselves contain
// whitespace are re-split so a sloppy prediction cannot glue words together.
func (s *wordLevelScheme) Decode(label Label) (string, Diagnostics) {
	words := make([]string, 0, len(label))
	var diag Diagnostics
	for _, token := range label {
		if lit, ok := literalValue(token); ok {
			token = lit
		}
		fields := strings.Fields(token)
		if len(fields) == 0 {
			if s.opts.OnUnknown == UnknownDrop {
				diag.Dropped++
			} else {
				words = append(words, s.opts.Placeholder)
				diag.Replaced++
			}
			continue
		}
		words = append(words, fields...)
	}
	return strings.Join(words, " "), diag
}
