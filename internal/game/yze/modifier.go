package yze

import "fmt"

// ladderRanks orders the Twilight 2000 ladder dice weakest to strongest:
// d (D6) < c (D8) < b (D10) < a (D12). Rank indices below are indices into
// this slice.
var ladderRanks = [...]TypeID{TypeT2KD6, TypeT2KD8, TypeT2KD10, TypeT2KD12}

const (
	topRank       = len(ladderRanks) - 1
	maxLadderDice = 2
)

// modifierTarget names the die type a simple-addition modifier applies to,
// and whether overruns below zero overflow into negative dice.
var modifierTarget = map[Game]struct {
	target      TypeID
	negOverflow bool
}{
	GameMutantYearZero: {TypeSkill, true},
	GameForbiddenLands: {TypeSkill, true},
	GameAlien:          {TypeBase, false},
	GameTalesFromLoop:  {TypeBase, false},
	GameVaesen:         {TypeBase, false},
	GameCoriolis:       {TypeBase, false},
}

// Modify applies a signed difficulty modifier to a dice-quantity mapping
// and returns the rewritten mapping. The input is never mutated; modifier
// application always precedes pool construction and never touches an
// existing pool.
//
// For every game except Twilight 2000 the modifier adds to the game's
// skill-equivalent die type; in Mutant Year Zero and Forbidden Lands a
// malus beyond the available skill dice overflows into negative dice
// instead of going below zero. For Twilight 2000 the modifier walks the
// four-rank die ladder; see ladderModify.
//
// Postcondition: returns a fresh Quantities, or ErrUnknownGame. Quantities
// for die types the rule does not touch carry through unchanged.
func Modify(game Game, modifier int, qty Quantities) (Quantities, error) {
	if _, ok := gameDice[game]; !ok {
		return nil, fmt.Errorf("game %q (supported: %s): %w", game, gameList(), ErrUnknownGame)
	}
	out := qty.Clone()
	if modifier == 0 {
		return out, nil
	}
	if game == GameTwilight2000 {
		return ladderQuantities(out, modifier), nil
	}

	rule := modifierTarget[game]
	n := out[rule.target] + modifier
	if n < 0 {
		if rule.negOverflow {
			out[TypeNeg] += -n
		}
		n = 0
	}
	if n == 0 {
		delete(out, rule.target)
	} else {
		out[rule.target] = n
	}
	return out, nil
}

// ladderQuantities flattens qty's ladder ranks into a rank list, runs the
// substitution algorithm, and folds the result back over qty. Non-ladder
// entries (ammo, location) pass through untouched. A pool already holding
// more than two ladder dice is outside the rule's domain and is returned
// unmodified.
func ladderQuantities(qty Quantities, modifier int) Quantities {
	ranks := make([]int, 0, maxLadderDice)
	total := 0
	for i := topRank; i >= 0; i-- {
		n := qty[ladderRanks[i]]
		total += n
		for j := 0; j < n; j++ {
			ranks = append(ranks, i)
		}
	}
	if total > maxLadderDice {
		return qty
	}

	ranks = ladderModify(ranks, modifier)

	for _, id := range ladderRanks {
		delete(qty, id)
	}
	for _, r := range ranks {
		qty[ladderRanks[r]]++
	}
	return qty
}

// ladderModify applies a signed step count to a rank list of at most two
// dice and returns the rewritten list.
//
// A bonus bumps the highest die not already at the top rank; once a die
// runs off the top the leftover steps buy a second die, and further
// leftovers recurse against the now two-die pool. A malus shrinks the
// lowest die; once a two-die pool's die runs off the bottom the die is
// dropped entirely, with the drop itself worth one malus step. A lone die
// at the weakest rank never shrinks further.
//
// Termination: every recursive call strictly reduces the leftover step
// count or the pool size, both of which are bounded (four ranks, two dice).
func ladderModify(ranks []int, modifier int) []int {
	if len(ranks) > maxLadderDice || len(ranks) == 0 || modifier == 0 {
		return ranks
	}

	if modifier > 0 {
		sel := -1
		for i, r := range ranks {
			if r < topRank && (sel < 0 || r > ranks[sel]) {
				sel = i
			}
		}
		if sel < 0 {
			// Every die is at the top rank already.
			if len(ranks) < maxLadderDice {
				return addLadderDie(ranks, modifier)
			}
			return ranks
		}
		cur := ranks[sel]
		newRank := clampRank(cur + modifier)
		excess := modifier - (newRank - cur)
		ranks[sel] = newRank
		if excess > 0 {
			if len(ranks) < maxLadderDice {
				return addLadderDie(ranks, excess)
			}
			return ladderModify(ranks, excess)
		}
		return ranks
	}

	// Malus: shrink the lowest die.
	sel := 0
	for i, r := range ranks {
		if r < ranks[sel] {
			sel = i
		}
	}
	cur := ranks[sel]
	newRank := clampRank(cur + modifier)
	excess := modifier - (newRank - cur)
	if excess < 0 && len(ranks) == maxLadderDice {
		// Dropping the die consumes one malus step on its own.
		ranks = append(ranks[:sel], ranks[sel+1:]...)
		if excess+1 < 0 {
			return ladderModify(ranks, excess+1)
		}
		return ranks
	}
	ranks[sel] = newRank
	return ranks
}

// addLadderDie grows a pool below the die cap by one extra die bought with
// excess bonus steps, then recurses with whatever steps remain after the
// purchase.
//
// Precondition: excess > 0 and len(ranks) < maxLadderDice.
func addLadderDie(ranks []int, excess int) []int {
	extra := min(excess, topRank+1) - 1
	ranks = append(ranks, extra)
	remaining := excess - (extra + 1)
	if remaining > 0 {
		return ladderModify(ranks, remaining)
	}
	return ranks
}

// clampRank bounds a rank index to the ladder.
func clampRank(r int) int {
	if r < 0 {
		return 0
	}
	if r > topRank {
		return topRank
	}
	return r
}
