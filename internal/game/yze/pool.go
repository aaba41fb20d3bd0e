package yze

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/yearzero/internal/game/dice"
)

// Quantities maps die-type identifiers to non-negative die counts. It is
// the construction input for a Pool and the sole input/output type of the
// difficulty-modifier engine; it is never owned by a long-lived entity.
type Quantities map[TypeID]int

// Clone returns a copy of q with zero-count entries dropped.
func (q Quantities) Clone() Quantities {
	out := make(Quantities, len(q))
	for id, n := range q {
		if n != 0 {
			out[id] = n
		}
	}
	return out
}

// DefaultMaxPush is the push ceiling applied when no option overrides it.
const DefaultMaxPush = 1

// Pool is one rolled dice pool: an ordered list of dice plus the push
// budget. A Pool is rolled exactly once at construction and may then be
// pushed until Pushable reports false, after which it is frozen.
//
// Pool carries an opaque identity so external caches can key on it; the
// engine itself never interprets the ID.
//
// Not safe for concurrent mutation; callers must serialize Push on a given
// Pool. All read-only derivations are safe once mutation has stopped.
type Pool struct {
	// ID is the stable opaque identity of this pool instance.
	ID uuid.UUID
	// Game is the ruleset this pool was built for.
	Game Game
	// Dice is the ordered list of rolled dice.
	Dice []*Die
	// PushCount is how many times the whole pool has been pushed.
	PushCount int
	// MaxPush is the push ceiling. Invariant: PushCount <= MaxPush.
	MaxPush int

	src dice.Source
}

// Option configures a Pool at construction time.
type Option func(*Pool)

// WithMaxPush overrides the default push ceiling.
//
// Precondition: n >= 0.
func WithMaxPush(n int) Option {
	return func(p *Pool) { p.MaxPush = n }
}

// WithSource injects the randomness source, replacing the crypto default.
// Tests and replay tooling pass a seeded source here.
func WithSource(src dice.Source) Option {
	return func(p *Pool) { p.src = src }
}

// NewPool validates game and quantities, instantiates the dice, and rolls
// the pool once.
//
// Dice are instantiated in the game's legal die-type order, so pools built
// from equal Quantities are structurally identical regardless of map
// iteration order.
//
// Postcondition: on success every die has exactly one active result. On
// failure (ErrUnknownGame, ErrUnknownDieType, ErrInvalidPoolState) no pool
// is returned; construction is all-or-nothing.
func NewPool(game Game, qty Quantities, opts ...Option) (*Pool, error) {
	legal, err := GameDice(game)
	if err != nil {
		return nil, err
	}
	for id, n := range qty {
		if n < 0 {
			return nil, fmt.Errorf("die type %q has negative quantity %d: %w", id, n, ErrInvalidPoolState)
		}
		if n > 0 && !legalFor(game, id) {
			return nil, fmt.Errorf("die type %q not legal for game %q (legal: %s): %w",
				id, game, typeList(legal), ErrUnknownDieType)
		}
	}
	if game == GameTwilight2000 {
		ladderCount := 0
		for _, id := range ladderRanks {
			ladderCount += qty[id]
		}
		if ladderCount > maxLadderDice {
			return nil, fmt.Errorf("%d ladder dice exceeds the %d-die cap: %w",
				ladderCount, maxLadderDice, ErrInvalidPoolState)
		}
	}

	p := &Pool{
		ID:      uuid.New(),
		Game:    game,
		MaxPush: DefaultMaxPush,
		src:     dice.NewCryptoSource(),
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, id := range legal {
		n := qty[id]
		if n <= 0 {
			continue
		}
		t, err := TypeByID(id)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			p.Dice = append(p.Dice, NewDie(t))
		}
	}

	for _, d := range p.Dice {
		d.Roll(p.src)
	}
	return p, nil
}

// Push rerolls every pushable die in the pool and increments PushCount.
// When the pool is not pushable this is a silent no-op: trying to push a
// spent or locked pool is allowed at the table, it just does nothing.
//
// Postcondition: PushCount grows by at most 1 and never exceeds MaxPush.
func (p *Pool) Push() {
	if !p.Pushable() {
		return
	}
	for _, d := range p.Dice {
		if d.Pushable() {
			d.Push(p.src)
		}
	}
	p.PushCount++
}

// Pushable reports whether the pool can still be pushed: push budget left,
// at least one pushable die, and no mishap.
func (p *Pool) Pushable() bool {
	if p.PushCount >= p.MaxPush {
		return false
	}
	if p.Mishap() {
		return false
	}
	for _, d := range p.Dice {
		if d.Pushable() {
			return true
		}
	}
	return false
}

// Pushed reports whether the pool has been pushed at least once.
func (p *Pool) Pushed() bool {
	return p.PushCount > 0
}

// Size returns the pool's nominal die count.
func (p *Pool) Size() int {
	return len(p.Dice)
}

// Successes returns the pool's success total, summed over success-counting
// die types only. Hit-location dice never contribute.
func (p *Pool) Successes() int {
	total := 0
	for _, d := range p.Dice {
		if d.Type.CountsSuccesses() {
			total += d.TotalSuccesses()
		}
	}
	return total
}

// Banes returns the count of active 1s across banable die types.
func (p *Pool) Banes() int {
	n := 0
	for _, d := range p.Dice {
		if d.Type.Banable {
			n += d.Count(1)
		}
	}
	return n
}

// AttributeTrauma returns the count of active 1s on base dice.
func (p *Pool) AttributeTrauma() int {
	return p.countOnes(TypeBase)
}

// GearDamage returns the count of active 1s on gear dice.
func (p *Pool) GearDamage() int {
	return p.countOnes(TypeGear)
}

// Stress returns the number of stress dice in the pool.
func (p *Pool) Stress() int {
	n := 0
	for _, d := range p.Dice {
		if d.Type.ID == TypeStress {
			n++
		}
	}
	return n
}

// Panic returns the count of active 1s on stress dice.
func (p *Pool) Panic() int {
	return p.countOnes(TypeStress)
}

// Mishap reports the Twilight 2000 catastrophe state: two or more banes,
// or banes matching the pool size. Always false for other games. A mishap
// permanently blocks further pushes regardless of remaining push budget.
func (p *Pool) Mishap() bool {
	if p.Game != GameTwilight2000 {
		return false
	}
	banes := p.Banes()
	return banes >= 2 || (p.Size() > 0 && banes >= p.Size())
}

// countOnes counts active 1s restricted to one die type.
func (p *Pool) countOnes(id TypeID) int {
	n := 0
	for _, d := range p.Dice {
		if d.Type.ID == id {
			n += d.Count(1)
		}
	}
	return n
}
