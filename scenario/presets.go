package scenario

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

var presets = map[string]Scenario{
	"example-shallow": {
		Name:     "example-shallow",
		Variant:  "shallow",
		Branches: []string{"BA", "CD", "BC", "DA"},
	},
	"reference-shallow": {
		Name:     "reference-shallow",
		Variant:  "shallow",
		Branches: []string{"BB", "AC", "AD", "DC"},
	},
}

// Preset returns a copy of a built-in scenario. The "-deep" presets are the
// unfolded forms of their "-shallow" counterparts.
func Preset(name string) (Scenario, error) {
	if s, ok := presets[name]; ok {
		return s.clone(), nil
	}
	if base, ok := deepOf(name); ok {
		s, err := presets[base].Unfold()
		if err != nil {
			return Scenario{}, err
		}
		s.Name = name
		return s, nil
	}
	return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// PresetNames lists every preset name in sorted order.
func PresetNames() []string {
	names := lo.Keys(presets)
	for _, n := range lo.Keys(presets) {
		names = append(names, deepName(n))
	}
	sort.Strings(names)
	return names
}

func deepName(shallow string) string {
	return shallow[:len(shallow)-len("shallow")] + "deep"
}

func deepOf(name string) (string, bool) {
	for n := range presets {
		if deepName(n) == name {
			return n, true
		}
	}
	return "", false
}
