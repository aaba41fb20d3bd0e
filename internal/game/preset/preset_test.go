package preset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/yearzero/internal/game/preset"
	"github.com/cory-johannsen/yearzero/internal/game/yze"
)

func writePresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadFile_Valid verifies a well-formed file loads with validated
// quantities and zero counts dropped.
func TestLoadFile_Valid(t *testing.T) {
	path := writePresets(t, `
presets:
  - name: hunter
    game: fbl
    max_push: 2
    dice:
      base: 3
      skill: 2
      gear: 1
      neg: 0
  - name: recon
    game: t2k
    dice:
      t2kD10: 1
      t2kD6: 1
      ammo: 2
`)
	presets, err := preset.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, presets, 2)

	hunter := presets["hunter"]
	assert.Equal(t, yze.GameForbiddenLands, hunter.Game)
	assert.Equal(t, 2, hunter.MaxPush)
	assert.Equal(t, yze.Quantities{
		yze.TypeBase: 3, yze.TypeSkill: 2, yze.TypeGear: 1,
	}, hunter.Dice, "zero-count entries are dropped")

	recon := presets["recon"]
	assert.Equal(t, yze.GameTwilight2000, recon.Game)
	assert.Equal(t, 0, recon.MaxPush)
}

// TestLoadFile_MissingFile verifies the path is named in the error.
func TestLoadFile_MissingFile(t *testing.T) {
	_, err := preset.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml")
}

// TestLoadFile_UnknownGame verifies game validation wraps the engine
// sentinel and names the preset.
func TestLoadFile_UnknownGame(t *testing.T) {
	path := writePresets(t, `
presets:
  - name: broken
    game: dnd
    dice:
      base: 1
`)
	_, err := preset.LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, yze.ErrUnknownGame)
	assert.Contains(t, err.Error(), "broken")
}

// TestLoadFile_IllegalDieType verifies die-type legality is checked per the
// preset's game.
func TestLoadFile_IllegalDieType(t *testing.T) {
	path := writePresets(t, `
presets:
  - name: broken
    game: alien
    dice:
      gear: 1
`)
	_, err := preset.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gear")
	assert.Contains(t, err.Error(), "alien")
}

// TestLoadFile_DuplicateName verifies duplicate names are rejected.
func TestLoadFile_DuplicateName(t *testing.T) {
	path := writePresets(t, `
presets:
  - name: twin
    game: myz
    dice:
      base: 1
  - name: twin
    game: myz
    dice:
      base: 2
`)
	_, err := preset.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

// TestLoadFile_NegativeQuantity verifies negative counts are rejected at
// load time.
func TestLoadFile_NegativeQuantity(t *testing.T) {
	path := writePresets(t, `
presets:
  - name: broken
    game: myz
    dice:
      base: -1
`)
	_, err := preset.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

// TestLoadFile_EmptyDice verifies a preset with no dice is rejected.
func TestLoadFile_EmptyDice(t *testing.T) {
	path := writePresets(t, `
presets:
  - name: empty
    game: myz
    dice: {}
`)
	_, err := preset.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dice must be non-empty")
}
