// Package yze implements the dice-pool rules shared by the Year Zero Engine
// family of tabletop games: typed dice pools, success counting, the push
// (reroll) mechanic, and the difficulty-modifier algorithm that reshapes a
// pool before it is built.
//
// The package is deliberately free of I/O. Randomness is injected through
// dice.Source, and every derived metric is a pure function over in-memory
// pool state. A Pool is not internally synchronized; callers embedding the
// engine in a concurrent host must serialize Roll and Push on a given Pool.
package yze

import (
	"errors"
	"fmt"
	"strings"
)

// Game identifies one ruleset in the Year Zero Engine family.
type Game string

// Supported games.
const (
	GameMutantYearZero Game = "myz"
	GameForbiddenLands Game = "fbl"
	GameAlien          Game = "alien"
	GameTalesFromLoop  Game = "tftl"
	GameVaesen         Game = "vaesen"
	GameCoriolis       Game = "coriolis"
	GameTwilight2000   Game = "t2k"
)

// Engine error taxonomy. Construction-time failures are surfaced through
// these sentinels, wrapped with context naming the offending identifier.
var (
	// ErrUnknownGame indicates a game identifier outside the supported set.
	ErrUnknownGame = errors.New("unknown game")
	// ErrUnknownDieType indicates a die-type identifier that is either not
	// registered at all or not legal for the requested game.
	ErrUnknownDieType = errors.New("unknown die type")
	// ErrInvalidPoolState indicates a pool shape outside the rules' domain,
	// such as more than two ladder dice in a Twilight 2000 check.
	ErrInvalidPoolState = errors.New("invalid pool state")
)

// gameOrder fixes the ordering of Games().
var gameOrder = []Game{
	GameMutantYearZero,
	GameForbiddenLands,
	GameAlien,
	GameTalesFromLoop,
	GameVaesen,
	GameCoriolis,
	GameTwilight2000,
}

// gameDice maps each game to its legal die types, in display order.
var gameDice = map[Game][]TypeID{
	GameMutantYearZero: {TypeBase, TypeSkill, TypeGear, TypeNeg},
	GameForbiddenLands: {TypeBase, TypeSkill, TypeGear, TypeNeg, TypeArtifactD8, TypeArtifactD10, TypeArtifactD12},
	GameAlien:          {TypeBase, TypeStress},
	GameTalesFromLoop:  {TypeBase},
	GameVaesen:         {TypeBase},
	GameCoriolis:       {TypeBase},
	GameTwilight2000:   {TypeT2KD12, TypeT2KD10, TypeT2KD8, TypeT2KD6, TypeAmmo, TypeLocation},
}

// Games returns all supported game identifiers in a fixed order.
//
// Postcondition: the returned slice is a fresh copy; callers may mutate it.
func Games() []Game {
	out := make([]Game, len(gameOrder))
	copy(out, gameOrder)
	return out
}

// GameDice returns the ordered list of die types legal for game.
//
// Postcondition: returns a fresh copy, or ErrUnknownGame wrapped with the
// offending identifier and the legal alternatives.
func GameDice(game Game) ([]TypeID, error) {
	types, ok := gameDice[game]
	if !ok {
		return nil, fmt.Errorf("game %q (supported: %s): %w", game, gameList(), ErrUnknownGame)
	}
	out := make([]TypeID, len(types))
	copy(out, types)
	return out, nil
}

// legalFor reports whether id is a legal die type for game.
//
// Precondition: game must be a supported game.
func legalFor(game Game, id TypeID) bool {
	for _, t := range gameDice[game] {
		if t == id {
			return true
		}
	}
	return false
}

// gameList renders the supported games for error messages.
func gameList() string {
	names := make([]string, len(gameOrder))
	for i, g := range gameOrder {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}
