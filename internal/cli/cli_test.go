package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/yearzero/internal/game/yze"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseQuantities_Valid(t *testing.T) {
	qty, err := parseQuantities("base=3, skill=2,gear=1")
	require.NoError(t, err)
	assert.Equal(t, yze.Quantities{
		yze.TypeBase: 3, yze.TypeSkill: 2, yze.TypeGear: 1,
	}, qty)
}

func TestParseQuantities_RepeatedTypeAccumulates(t *testing.T) {
	qty, err := parseQuantities("base=1,base=2")
	require.NoError(t, err)
	assert.Equal(t, yze.Quantities{yze.TypeBase: 3}, qty)
}

func TestParseQuantities_Invalid(t *testing.T) {
	cases := []string{"", "base", "base=x", "base=-1", ",,"}
	for _, spec := range cases {
		_, err := parseQuantities(spec)
		assert.Error(t, err, "spec %q must be rejected", spec)
	}
}

func TestFormatQuantities_SortedAndStable(t *testing.T) {
	s := formatQuantities(yze.Quantities{yze.TypeSkill: 2, yze.TypeBase: 3, yze.TypeNeg: 0})
	assert.Equal(t, "base=3,skill=2", s)

	assert.Equal(t, "(empty)", formatQuantities(yze.Quantities{}))
}

// TestGamesCommand verifies the games listing names every supported game
// with its die types.
func TestGamesCommand(t *testing.T) {
	out, err := execute(t, "games")
	require.NoError(t, err)
	for _, game := range yze.Games() {
		assert.Contains(t, out, string(game))
	}
	assert.Contains(t, out, "t2kD12")
}

// TestModifyCommand verifies the skill-to-negative overflow end to end
// through the command tree.
func TestModifyCommand(t *testing.T) {
	out, err := execute(t, "modify", "--game", "myz", "--modifier", "-3", "--dice", "skill=2")
	require.NoError(t, err)
	assert.Equal(t, "neg=1\n", out)
}

// TestModifyCommand_Ladder verifies the Twilight 2000 ladder path.
func TestModifyCommand_Ladder(t *testing.T) {
	out, err := execute(t, "modify", "--game", "t2k", "--modifier", "1", "--dice", "t2kD6=1")
	require.NoError(t, err)
	assert.Equal(t, "t2kD8=1\n", out)
}

// TestModifyCommand_UnknownGame verifies engine errors surface to the user.
func TestModifyCommand_UnknownGame(t *testing.T) {
	_, err := execute(t, "modify", "--game", "dnd", "--modifier", "1", "--dice", "base=1")
	require.Error(t, err)
	assert.ErrorIs(t, err, yze.ErrUnknownGame)
}

// TestRollCommand_Seeded verifies a seeded roll renders the pool read model.
func TestRollCommand_Seeded(t *testing.T) {
	out, err := execute(t, "roll",
		"--game", "fbl",
		"--dice", "base=3,skill=2,gear=1",
		"--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "size=6")
	assert.Contains(t, out, "base")
	assert.Contains(t, out, "pushed=0")
}

// TestRollCommand_SeededDeterministic verifies equal seeds render equal
// dice lines.
func TestRollCommand_SeededDeterministic(t *testing.T) {
	a, err := execute(t, "roll", "--game", "myz", "--dice", "base=4", "--seed", "7")
	require.NoError(t, err)
	b, err := execute(t, "roll", "--game", "myz", "--dice", "base=4", "--seed", "7")
	require.NoError(t, err)

	// Pool IDs differ; everything after the header line must match.
	assert.Equal(t, stripHeader(a), stripHeader(b))
}

func stripHeader(s string) string {
	i := bytes.IndexByte([]byte(s), '\n')
	if i < 0 {
		return s
	}
	return s[i+1:]
}

// TestRollCommand_Push verifies --push increments the pool's push count at
// most up to the ceiling.
func TestRollCommand_Push(t *testing.T) {
	out, err := execute(t, "roll",
		"--game", "myz",
		"--dice", "skill=4",
		"--seed", "9",
		"--push", "3",
		"--max-push", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "pushable=false", "the push budget must be spent or the pool locked")
}

// TestRollCommand_NoDice verifies the flag validation message.
func TestRollCommand_NoDice(t *testing.T) {
	_, err := execute(t, "roll")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dice")
}
