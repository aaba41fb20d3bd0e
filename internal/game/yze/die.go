package yze

import (
	"github.com/cory-johannsen/yearzero/internal/game/dice"
)

// Result is one rolled face in a die's history. Pushing never rewrites
// history: the superseded record stays in place with Active=false and
// Discarded=true, and the replacement is appended with Pushed=true.
//
// Invariant: a record is Discarded iff it was deactivated to be pushed.
// Only records with Active && !Discarded contribute to counts and totals.
type Result struct {
	// Value is the rolled face, in [1, Faces].
	Value int
	// Active is false once the record has been superseded by a reroll.
	Active bool
	// Discarded is true once the record was marked for reroll.
	Discarded bool
	// Pushed is true when this record was produced by a push.
	Pushed bool
	// Successes is the success contribution of Value under the owning
	// die's success rule, fixed at roll time.
	Successes int
	// Label is the resolved result label ("success", "bane", a hit zone,
	// or "").
	Label string
}

// Die is one rolled die of a given type. It owns the full ordered history
// of its results so hosts can render the push trail.
//
// Invariant: pushing only appends records; history is never truncated.
type Die struct {
	// Type is the immutable variant descriptor.
	Type DieType
	// Results is the ordered roll history, oldest first.
	Results []Result
}

// NewDie returns an un-rolled die of type t.
func NewDie(t DieType) *Die {
	return &Die{Type: t}
}

// Roll appends one new active result drawn from src.
//
// Precondition: src must be non-nil.
// Postcondition: len(d.Results) grows by one; the new record is active,
// not discarded, with Successes and Label resolved from the die type.
func (d *Die) Roll(src dice.Source) Result {
	return d.roll(src, false)
}

// roll appends a record, marking it pushed when it replaces a discarded one.
func (d *Die) roll(src dice.Source, pushed bool) Result {
	value := dice.RollFace(src, d.Type.Faces)
	r := Result{
		Value:     value,
		Active:    true,
		Pushed:    pushed,
		Successes: d.Type.Successes(value),
		Label:     d.Type.Label(value),
	}
	d.Results = append(d.Results, r)
	return r
}

// Push rerolls every active, non-discarded result whose value is not locked
// for this die type, and returns how many replacements were rolled. A die
// whose active results are all locked is a no-op returning 0.
//
// Postcondition: each discarded record has Active=false, Discarded=true,
// Pushed=true; one replacement record is appended per discarded record.
// A locked result is never discarded, so its contribution is permanent.
func (d *Die) Push(src dice.Source) int {
	pushed := 0
	for i := range d.Results {
		r := &d.Results[i]
		if !r.Active || r.Discarded {
			continue
		}
		if d.Type.LockedValue(r.Value) {
			continue
		}
		r.Active = false
		r.Discarded = true
		r.Pushed = true
		pushed++
	}
	for i := 0; i < pushed; i++ {
		d.roll(src, true)
	}
	return pushed
}

// Pushable reports whether at least one active, non-discarded result holds
// a value outside the type's locked set.
func (d *Die) Pushable() bool {
	for _, r := range d.Results {
		if r.Active && !r.Discarded && !d.Type.LockedValue(r.Value) {
			return true
		}
	}
	return false
}

// Count returns the number of active, non-discarded results equal to value.
func (d *Die) Count(value int) int {
	n := 0
	for _, r := range d.Results {
		if r.Active && !r.Discarded && r.Value == value {
			n++
		}
	}
	return n
}

// TotalSuccesses sums Successes over active, non-discarded results.
func (d *Die) TotalSuccesses() int {
	total := 0
	for _, r := range d.Results {
		if r.Active && !r.Discarded {
			total += r.Successes
		}
	}
	return total
}
