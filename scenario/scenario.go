// Package scenario loads complete burrow puzzles from YAML documents and
// ships the reference layouts as presets.
//
// Document shape:
//
//	name: example
//	variant: shallow          # or deep; inferred from branch length when empty
//	branches: [BA, CD, BC, DA] # one entry per kind A..D, entrance first, '.' for empty
//	hallway:                   # optional: corridor index (left to right) → kind
//	  0: D
//
// A scenario must place exactly one token per storage cell.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/placement"
)

var (
	// ErrBadBranches indicates a branch list that does not fit the variant.
	ErrBadBranches = errors.New("scenario: branches do not match the board")

	// ErrBadHallway indicates a hallway index outside the corridor cells.
	ErrBadHallway = errors.New("scenario: hallway index out of range")

	// ErrNotShallow indicates Unfold on a scenario that is not shallow.
	ErrNotShallow = errors.New("scenario: only shallow scenarios unfold")

	// ErrUnknownPreset indicates an unsupported preset name.
	ErrUnknownPreset = errors.New("scenario: unknown preset")
)

// Scenario is one puzzle: a board variant and the initial token layout.
type Scenario struct {
	Name     string         `yaml:"name"`
	Variant  string         `yaml:"variant,omitempty"`
	Branches []string       `yaml:"branches"`
	Hallway  map[int]string `yaml:"hallway,omitempty"`
}

// Decode reads one scenario document. Unknown fields are rejected.
func Decode(r io.Reader) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("scenario: decode: %w", err)
	}
	return s, nil
}

// LoadFile decodes the scenario stored at path. An empty Name defaults to the
// file path.
func LoadFile(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Encode writes s as a YAML document.
func Encode(w io.Writer, s Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}
	return enc.Close()
}

// BoardVariant resolves the variant, inferring it from the branch length when
// the Variant field is empty.
func (s Scenario) BoardVariant() (board.Variant, error) {
	if s.Variant != "" {
		return board.ParseVariant(s.Variant)
	}
	if len(s.Branches) == 0 {
		return 0, fmt.Errorf("%w: no branches", ErrBadBranches)
	}
	switch len(s.Branches[0]) {
	case board.Shallow.Depth():
		return board.Shallow, nil
	case board.Deep.Depth():
		return board.Deep, nil
	default:
		return 0, fmt.Errorf("%w: branch %q has depth %d", ErrBadBranches, s.Branches[0], len(s.Branches[0]))
	}
}

// Build constructs the board and the initial placement.
func (s Scenario) Build() (*board.Board, *placement.Placement, error) {
	v, err := s.BoardVariant()
	if err != nil {
		return nil, nil, err
	}
	b, err := board.ForVariant(v)
	if err != nil {
		return nil, nil, err
	}

	kinds := b.Kinds()
	if len(s.Branches) != len(kinds) {
		return nil, nil, fmt.Errorf("%w: %d branches for %d kinds", ErrBadBranches, len(s.Branches), len(kinds))
	}

	var specs []placement.Spec
	for i, k := range kinds {
		top := b.Branches(k)[0]
		cells := append([]board.CellID{top}, b.Chain(top)...)
		row := s.Branches[i]
		if len(row) != len(cells) {
			return nil, nil, fmt.Errorf("%w: branch %s %q needs %d cells", ErrBadBranches, k, row, len(cells))
		}
		for j, r := range row {
			if r == '.' {
				continue
			}
			kind, err := board.ParseKind(r)
			if err != nil {
				return nil, nil, fmt.Errorf("scenario %s: branch %s: %w", s.Name, k, err)
			}
			specs = append(specs, placement.Spec{Kind: kind, Cell: cells[j]})
		}
	}

	corridors := b.Corridors()
	positions := lo.Keys(s.Hallway)
	sort.Ints(positions)
	for _, idx := range positions {
		if idx < 0 || idx >= len(corridors) {
			return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrBadHallway, idx, len(corridors))
		}
		kind, err := board.ParseKind(firstRune(s.Hallway[idx]))
		if err != nil {
			return nil, nil, fmt.Errorf("scenario %s: hallway %d: %w", s.Name, idx, err)
		}
		specs = append(specs, placement.Spec{Kind: kind, Cell: corridors[idx]})
	}

	p, err := placement.New(b, specs, placement.WithExactFill())
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return b, p, nil
}

// foldedRows are inserted between the entrance and terminal tokens of each
// branch when a shallow puzzle is unfolded into its deep form.
var foldedRows = [2]string{"DCBA", "DBAC"}

// Unfold derives the deep puzzle from a shallow one by inserting the two
// folded rows into every branch. Hallway tokens are kept.
func (s Scenario) Unfold() (Scenario, error) {
	v, err := s.BoardVariant()
	if err != nil {
		return Scenario{}, err
	}
	if v != board.Shallow {
		return Scenario{}, fmt.Errorf("%w: %s is %s", ErrNotShallow, s.Name, v)
	}
	if len(s.Branches) != len(foldedRows[0]) {
		return Scenario{}, fmt.Errorf("%w: %d branches", ErrBadBranches, len(s.Branches))
	}

	out := Scenario{
		Name:     s.Name + "-unfolded",
		Variant:  board.Deep.String(),
		Branches: make([]string, len(s.Branches)),
		Hallway:  maps.Clone(s.Hallway),
	}
	for i, row := range s.Branches {
		if len(row) != board.Shallow.Depth() {
			return Scenario{}, fmt.Errorf("%w: branch %d %q has depth %d", ErrBadBranches, i, row, len(row))
		}
		var sb strings.Builder
		sb.WriteByte(row[0])
		sb.WriteByte(foldedRows[0][i])
		sb.WriteByte(foldedRows[1][i])
		sb.WriteByte(row[1])
		out.Branches[i] = sb.String()
	}
	return out, nil
}

// clone returns a copy of s that shares no slice or map with it.
func (s Scenario) clone() Scenario {
	s.Branches = slices.Clone(s.Branches)
	s.Hallway = maps.Clone(s.Hallway)
	return s
}

func firstRune(s string) rune {
	for _, r := range strings.TrimSpace(s) {
		return r
	}
	return 0
}
