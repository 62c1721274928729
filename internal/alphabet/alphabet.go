package alphabet

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"stenocodec/internal/textutil"
)

//go:embed melin.toml
var melinTOML []byte

// Position classifies where a unit sits inside its word.
type Position int

const (
	PosIsolated Position = iota
	PosInitial
	PosMedial
	PosFinal
)

var positionNames = map[Position]string{
	PosIsolated: "isolated",
	PosInitial:  "initial",
	PosMedial:   "medial",
	PosFinal:    "final",
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("position(%d)", int(p))
}

// ParsePosition maps a position name to its Position value.
func ParsePosition(name string) (Position, bool) {
	for pos, candidate := range positionNames {
		if candidate == name {
			return pos, true
		}
	}
	return PosIsolated, false
}

// Unit describes a single stenographic stroke.
type Unit struct {
	ID       string
	Char     string
	Subunits []string

	positions map[Position]string
}

// CharAt returns the unit's character for the given word position, falling
// back to the base character when no variant is defined.
func (u Unit) CharAt(pos Position) string {
	if variant, ok := u.positions[pos]; ok {
		return variant
	}
	return u.Char
}

// Alphabet is an immutable symbol inventory with reverse lookup tables.
type Alphabet struct {
	units    []Unit
	byID     map[string]int
	byChar   map[string]string
	bySubKey map[string]string
	boundary string
}

type unitSpec struct {
	ID        string            `toml:"id"`
	Char      string            `toml:"char"`
	Subunits  []string          `toml:"subunits"`
	Positions map[string]string `toml:"positions"`
}

type fileSpec struct {
	BoundaryUnit string     `toml:"boundary_unit"`
	Units        []unitSpec `toml:"unit"`
}

var defaultAlphabet = sync.OnceValue(func() *Alphabet {
	alpha, err := Load(strings.NewReader(string(melinTOML)))
	if err != nil {
		panic(fmt.Sprintf("alphabet: embedded melin.toml invalid: %v", err))
	}
	return alpha
})

// Default returns the embedded Melin inventory.
func Default() *Alphabet {
	return defaultAlphabet()
}

// LoadFile reads an alphabet description from a TOML file.
func LoadFile(path string) (*Alphabet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open alphabet: %w", err)
	}
	defer file.Close()
	alpha, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("alphabet %s: %w", path, err)
	}
	return alpha, nil
}

// Load parses and validates an alphabet description.
func Load(r io.Reader) (*Alphabet, error) {
	var spec fileSpec
	decoder := toml.NewDecoder(r)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parse alphabet: %w", err)
	}

	if len(spec.Units) == 0 {
		return nil, fmt.Errorf("alphabet defines no units")
	}

	alpha := &Alphabet{
		byID:     make(map[string]int, len(spec.Units)),
		byChar:   make(map[string]string, len(spec.Units)),
		bySubKey: make(map[string]string, len(spec.Units)),
	}

	for i, entry := range spec.Units {
		id := textutil.Normalize(strings.TrimSpace(entry.ID))
		if id == "" {
			return nil, fmt.Errorf("unit %d has an empty id", i+1)
		}
		if _, exists := alpha.byID[id]; exists {
			return nil, fmt.Errorf("duplicate unit id %q", id)
		}

		char := canonicalChar(entry.Char)
		if char == "" {
			return nil, fmt.Errorf("unit %q has no char", id)
		}
		if utf8.RuneCountInString(char) != 1 {
			return nil, fmt.Errorf("unit %q char %q must be a single character", id, char)
		}

		unit := Unit{ID: id, Char: char}
		if len(entry.Subunits) > 0 {
			unit.Subunits = make([]string, len(entry.Subunits))
			for j, sub := range entry.Subunits {
				sub = strings.TrimSpace(sub)
				if sub == "" {
					return nil, fmt.Errorf("unit %q subunit %d is empty", id, j+1)
				}
				unit.Subunits[j] = sub
			}
			key := SubunitKey(unit.Subunits)
			if prior, exists := alpha.bySubKey[key]; exists {
				return nil, fmt.Errorf("units %q and %q share subunit decomposition %q", prior, id, key)
			}
			alpha.bySubKey[key] = id
		}

		if len(entry.Positions) > 0 {
			unit.positions = make(map[Position]string, len(entry.Positions))
			for name, variant := range entry.Positions {
				pos, ok := ParsePosition(strings.TrimSpace(name))
				if !ok {
					return nil, fmt.Errorf("unit %q has unknown position %q", id, name)
				}
				variant = canonicalChar(variant)
				if utf8.RuneCountInString(variant) != 1 {
					return nil, fmt.Errorf("unit %q position %q variant %q must be a single character", id, name, variant)
				}
				unit.positions[pos] = variant
			}
		}

		alpha.byID[id] = len(alpha.units)
		alpha.units = append(alpha.units, unit)
		if _, exists := alpha.byChar[char]; !exists {
			alpha.byChar[char] = id
		}
	}

	boundary := textutil.Normalize(strings.TrimSpace(spec.BoundaryUnit))
	if boundary != "" {
		if _, ok := alpha.byID[boundary]; !ok {
			return nil, fmt.Errorf("boundary_unit %q is not a defined unit", boundary)
		}
		alpha.boundary = boundary
	}

	return alpha, nil
}

// SubunitKey joins stroke primitives into the lookup key used for
// recomposition.
func SubunitKey(parts []string) string {
	return strings.Join(parts, "+")
}

// Size returns the number of units. The training harness derives its output
// layer width from this.
func (a *Alphabet) Size() int {
	return len(a.units)
}

// Units returns the inventory in definition order.
func (a *Alphabet) Units() []Unit {
	out := make([]Unit, len(a.units))
	copy(out, a.units)
	return out
}

// Boundary returns the word-boundary unit id, or "" if none is defined.
func (a *Alphabet) Boundary() string {
	return a.boundary
}

// Lookup returns the unit with the given id.
func (a *Alphabet) Lookup(id string) (Unit, bool) {
	idx, ok := a.byID[id]
	if !ok {
		return Unit{}, false
	}
	return a.units[idx], true
}

// CharForUnit returns the base character for a unit id.
func (a *Alphabet) CharForUnit(id string) (string, bool) {
	unit, ok := a.Lookup(id)
	if !ok {
		return "", false
	}
	return unit.Char, true
}

// CharForUnitAt returns the character for a unit id in the given position.
func (a *Alphabet) CharForUnitAt(id string, pos Position) (string, bool) {
	unit, ok := a.Lookup(id)
	if !ok {
		return "", false
	}
	return unit.CharAt(pos), true
}

// UnitForChar returns the unit id whose base character is ch. When several
// units share a character the first definition wins.
func (a *Alphabet) UnitForChar(ch string) (string, bool) {
	id, ok := a.byChar[ch]
	return id, ok
}

// UnitForSubunits recomposes a stroke primitive sequence into a unit id.
func (a *Alphabet) UnitForSubunits(parts []string) (string, bool) {
	id, ok := a.bySubKey[SubunitKey(parts)]
	return id, ok
}

// canonicalChar deliberately does not trim: the boundary unit's char is a
// literal space.
func canonicalChar(s string) string {
	return textutil.Lower(textutil.Normalize(s))
}
