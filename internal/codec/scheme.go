package codec

import (
	"fmt"
	"strings"

	"stenocodec/internal/alphabet"
)

// Tag identifies one of the supported encoding schemes.
type Tag string

const (
	TagDirect        Tag = "direct"
	TagWordLevel     Tag = "word-level"
	TagCompositional Tag = "compositional"
	TagPositional    Tag = "positional"
)

// Tags returns the supported scheme tags in presentation order.
func Tags() []Tag {
	return []Tag{TagDirect, TagWordLevel, TagCompositional, TagPositional}
}

// ParseTag validates a scheme tag from configuration.
func ParseTag(value string) (Tag, error) {
	tag := Tag(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Tags() {
		if tag == known {
			return tag, nil
		}
	}
	names := make([]string, 0, len(Tags()))
	for _, known := range Tags() {
		names = append(names, string(known))
	}
	return "", fmt.Errorf("unknown scheme %q (valid: %s)", value, strings.Join(names, ", "))
}

// Description returns a one-line summary for CLI output.
func (t Tag) Description() string {
	switch t {
	case TagDirect:
		return "one unit per output character"
	case TagWordLevel:
		return "one unit run per word, words as atomic labels"
	case TagCompositional:
		return "units expanded to stroke primitives"
	case TagPositional:
		return "unit identity tagged with word position"
	default:
		return ""
	}
}

// Scheme is the capability shared by all four encoding strategies.
type Scheme interface {
	Tag() Tag
	// Encode produces the label sequence for a record. The only failure
	// mode is an InvalidRecordError.
	Encode(rec Record) (Label, error)
	// Decode reconstructs transcript text from a possibly noisy label
	// sequence. It never fails; degradation is reported via Diagnostics.
	Decode(label Label) (string, Diagnostics)
}

// UnknownPolicy controls how Decode treats unrecognized tokens.
type UnknownPolicy string

const (
	UnknownDrop        UnknownPolicy = "drop"
	UnknownPlaceholder UnknownPolicy = "placeholder"
)

// DefaultPlaceholder is substituted for unrecognized tokens under
// UnknownPlaceholder when no placeholder is configured.
const DefaultPlaceholder = "�"

// Options carries session-wide codec settings.
type Options struct {
	OnUnknown   UnknownPolicy
	Placeholder string
}

func (o Options) withDefaults() Options {
	if o.OnUnknown == "" {
		o.OnUnknown = UnknownPlaceholder
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	return o
}

// degrade applies the unknown-token policy to the output being built.
func (o Options) degrade(b *strings.Builder, diag *Diagnostics) {
	if o.OnUnknown == UnknownDrop {
		diag.Dropped++
		return
	}
	b.WriteString(o.Placeholder)
	diag.Replaced++
}

// Diagnostics counts decode degradations. A zero value means the label
// sequence decoded cleanly.
type Diagnostics struct {
	// Dropped counts unrecognized tokens removed from the output.
	Dropped int
	// Replaced counts unrecognized tokens substituted with the placeholder.
	Replaced int
}

// Clean reports whether decoding required no degradation.
func (d Diagnostics) Clean() bool {
	return d.Dropped == 0 && d.Replaced == 0
}

// Add accumulates counts from another decode.
func (d *Diagnostics) Add(other Diagnostics) {
	d.Dropped += other.Dropped
	d.Replaced += other.Replaced
}

// Resolve builds the scheme for a tag. It is called once at session start;
// an unknown tag is a configuration error, reported before any batch work
// begins.
func Resolve(tag Tag, alpha *alphabet.Alphabet, opts Options) (Scheme, error) {
	if alpha == nil {
		return nil, fmt.Errorf("resolve scheme: alphabet is required")
	}
	opts = opts.withDefaults()
	switch tag {
	case TagDirect:
		return &directScheme{alpha: alpha, opts: opts}, nil
	case TagWordLevel:
		return &wordLevelScheme{opts: opts}, nil
	case TagCompositional:
		return &compositionalScheme{alpha: alpha, opts: opts}, nil
	case TagPositional:
		return &positionalScheme{alpha: alpha, opts: opts}, nil
	default:
		_, err := ParseTag(string(tag))
		if err == nil {
			err = fmt.Errorf("scheme %q has no implementation", tag)
		}
		return nil, err
	}
}
