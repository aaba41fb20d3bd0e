// Package preset loads named roll presets from YAML files. A preset bundles
// a game, a dice-quantity mapping, and an optional push ceiling so commonly
// rolled pools can be referenced by name from the CLI or an embedding host.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/yearzero/internal/game/yze"
)

// Preset is one named, validated roll configuration.
type Preset struct {
	// Name is the lookup key, unique within a file.
	Name string
	// Game is the ruleset the pool is built for.
	Game yze.Game
	// Dice is the dice-quantity mapping handed to yze.NewPool.
	Dice yze.Quantities
	// MaxPush overrides the default push ceiling when > 0.
	MaxPush int
}

// yamlFile is the top-level YAML structure for preset files.
type yamlFile struct {
	Presets []yamlPreset `yaml:"presets"`
}

// yamlPreset is the YAML representation of a single preset.
type yamlPreset struct {
	Name    string         `yaml:"name"`
	Game    string         `yaml:"game"`
	Dice    map[string]int `yaml:"dice"`
	MaxPush int            `yaml:"max_push"`
}

// LoadFile reads and validates a preset YAML file.
//
// Precondition: path must point to a readable YAML preset file.
// Postcondition: returns presets keyed by name, or a non-nil error naming
// the first offending preset. Validation covers duplicate names, unknown
// games, die types illegal for the preset's game, and negative quantities,
// so a loaded preset always builds a pool without construction errors
// short of the Twilight 2000 ladder cap.
func LoadFile(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset file %s: %w", path, err)
	}
	return parse(data, path)
}

// parse unmarshals and validates preset YAML content.
func parse(data []byte, path string) (map[string]Preset, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing preset file %s: %w", path, err)
	}

	presets := make(map[string]Preset, len(file.Presets))
	for i, yp := range file.Presets {
		if yp.Name == "" {
			return nil, fmt.Errorf("preset %d in %s: name must be non-empty", i, path)
		}
		if _, dup := presets[yp.Name]; dup {
			return nil, fmt.Errorf("preset %q in %s: duplicate name", yp.Name, path)
		}
		game := yze.Game(yp.Game)
		legal, err := yze.GameDice(game)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", yp.Name, err)
		}
		if len(yp.Dice) == 0 {
			return nil, fmt.Errorf("preset %q: dice must be non-empty", yp.Name)
		}
		qty := make(yze.Quantities, len(yp.Dice))
		for id, n := range yp.Dice {
			if n < 0 {
				return nil, fmt.Errorf("preset %q: die type %q has negative quantity %d", yp.Name, id, n)
			}
			if !contains(legal, yze.TypeID(id)) {
				return nil, fmt.Errorf("preset %q: die type %q not legal for game %q", yp.Name, id, game)
			}
			if n > 0 {
				qty[yze.TypeID(id)] = n
			}
		}
		if yp.MaxPush < 0 {
			return nil, fmt.Errorf("preset %q: max_push must be >= 0", yp.Name)
		}
		presets[yp.Name] = Preset{
			Name:    yp.Name,
			Game:    game,
			Dice:    qty,
			MaxPush: yp.MaxPush,
		}
	}
	return presets, nil
}

// contains reports whether ids includes id.
func contains(ids []yze.TypeID, id yze.TypeID) bool {
	for _, t := range ids {
		if t == id {
			return true
		}
	}
	return false
}
