package yze

import (
	"fmt"
	"strings"
)

// TypeID identifies one die-type variant in the registry.
type TypeID string

// Registered die types.
const (
	TypeBase        TypeID = "base"
	TypeSkill       TypeID = "skill"
	TypeGear        TypeID = "gear"
	TypeNeg         TypeID = "neg"
	TypeStress      TypeID = "stress"
	TypeArtifactD8  TypeID = "artifactD8"
	TypeArtifactD10 TypeID = "artifactD10"
	TypeArtifactD12 TypeID = "artifactD12"
	TypeT2KD6       TypeID = "t2kD6"
	TypeT2KD8       TypeID = "t2kD8"
	TypeT2KD10      TypeID = "t2kD10"
	TypeT2KD12      TypeID = "t2kD12"
	TypeAmmo        TypeID = "ammo"
	TypeLocation    TypeID = "loc"
)

// DieType is the immutable descriptor for one die-type variant: its
// denomination, face count, locked values, success semantics, and result
// labels. Variants are data, not subclasses; a Die carries its DieType by
// value and never dispatches virtually.
//
// Invariant: when Table is non-nil, len(Table) == Faces+1 and Table is
// indexed directly by face value (index 0 unused). When Table is nil,
// success counting uses Threshold and Sign; Threshold == 0 means the type
// counts no successes at all.
type DieType struct {
	// ID is the registry identifier.
	ID TypeID
	// Denomination is the symbolic code shown to hosts ("b", "s", "g", ...).
	// The four Twilight 2000 ladder dice use "d" < "c" < "b" < "a",
	// weakest to strongest.
	Denomination string
	// Faces is the number of faces, always positive.
	Faces int
	// Locked holds face values that, once rolled and active, are never
	// rerolled by a push.
	Locked []int
	// Table is the per-face success lookup for table-based types; nil for
	// threshold-based types.
	Table []int
	// Threshold is the minimum face counting as a success for
	// threshold-based types; 0 disables success counting.
	Threshold int
	// Sign is +1 or -1 and applies to threshold successes. Negative dice
	// (the skill-die penalty variant) carry -1.
	Sign int
	// Banable marks types whose rolled 1s count as banes.
	Banable bool
	// Labels optionally maps faces to zone labels (the hit-location die);
	// nil for every other type.
	Labels map[int]string
}

// Successes returns the success contribution of a single face value.
//
// Precondition: 1 <= value <= t.Faces.
func (t DieType) Successes(value int) int {
	if t.Table != nil {
		return t.Table[value]
	}
	if t.Threshold > 0 && value >= t.Threshold {
		return t.Sign
	}
	return 0
}

// CountsSuccesses reports whether this type contributes to a pool's success
// total at all. The hit-location die does not.
func (t DieType) CountsSuccesses() bool {
	return t.Table != nil || t.Threshold > 0
}

// LockedValue reports whether value is locked for this type.
func (t DieType) LockedValue(value int) bool {
	for _, v := range t.Locked {
		if v == value {
			return true
		}
	}
	return false
}

// Label resolves the result label for a face: the zone name for location
// dice, "bane" for a banable 1, "success" for any face with a positive
// success contribution, "" otherwise.
func (t DieType) Label(value int) string {
	if t.Labels != nil {
		return t.Labels[value]
	}
	if value == 1 && t.Banable {
		return "bane"
	}
	if t.Successes(value) > 0 {
		return "success"
	}
	return ""
}

// lockedSixUp returns 6..faces, the locked set shared by artifact dice.
func lockedSixUp(faces int) []int {
	vals := make([]int, 0, faces-5)
	for v := 6; v <= faces; v++ {
		vals = append(vals, v)
	}
	return vals
}

// lockedOneAndSixUp returns {1, 6..faces}, the locked set shared by the
// Twilight 2000 ladder dice: a rolled 1 is a kept bane, 6+ a kept success.
func lockedOneAndSixUp(faces int) []int {
	return append([]int{1}, lockedSixUp(faces)...)
}

// registry is the fixed die-type table. Never mutated after init.
var registry = map[TypeID]DieType{
	TypeBase: {
		ID: TypeBase, Denomination: "b", Faces: 6,
		Locked: []int{1, 6}, Threshold: 6, Sign: 1, Banable: true,
	},
	TypeSkill: {
		ID: TypeSkill, Denomination: "s", Faces: 6,
		Locked: []int{6}, Threshold: 6, Sign: 1,
	},
	TypeGear: {
		ID: TypeGear, Denomination: "g", Faces: 6,
		Locked: []int{1, 6}, Threshold: 6, Sign: 1, Banable: true,
	},
	TypeNeg: {
		ID: TypeNeg, Denomination: "n", Faces: 6,
		Locked: []int{6}, Threshold: 6, Sign: -1,
	},
	TypeStress: {
		ID: TypeStress, Denomination: "s", Faces: 6,
		Locked: []int{1, 6}, Threshold: 6, Sign: 1, Banable: true,
	},
	TypeArtifactD8: {
		ID: TypeArtifactD8, Denomination: "8", Faces: 8,
		Locked: lockedSixUp(8),
		Table:  []int{0, 0, 0, 0, 0, 0, 1, 1, 2},
	},
	TypeArtifactD10: {
		ID: TypeArtifactD10, Denomination: "10", Faces: 10,
		Locked: lockedSixUp(10),
		Table:  []int{0, 0, 0, 0, 0, 0, 1, 1, 2, 2, 3},
	},
	TypeArtifactD12: {
		ID: TypeArtifactD12, Denomination: "12", Faces: 12,
		Locked: lockedSixUp(12),
		Table:  []int{0, 0, 0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4},
	},
	TypeT2KD6: {
		ID: TypeT2KD6, Denomination: "d", Faces: 6,
		Locked: lockedOneAndSixUp(6), Banable: true,
		Table: []int{0, 0, 0, 0, 0, 0, 1},
	},
	TypeT2KD8: {
		ID: TypeT2KD8, Denomination: "c", Faces: 8,
		Locked: lockedOneAndSixUp(8), Banable: true,
		Table: []int{0, 0, 0, 0, 0, 0, 1, 1, 1},
	},
	TypeT2KD10: {
		ID: TypeT2KD10, Denomination: "b", Faces: 10,
		Locked: lockedOneAndSixUp(10), Banable: true,
		Table: []int{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2},
	},
	TypeT2KD12: {
		ID: TypeT2KD12, Denomination: "a", Faces: 12,
		Locked: lockedOneAndSixUp(12), Banable: true,
		Table: []int{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2},
	},
	TypeAmmo: {
		ID: TypeAmmo, Denomination: "m", Faces: 6,
		Threshold: 6, Sign: 1, Banable: true,
	},
	TypeLocation: {
		// Location dice resolve where a hit lands; they never reroll and
		// never count successes.
		ID: TypeLocation, Denomination: "l", Faces: 6,
		Locked: []int{1, 2, 3, 4, 5, 6},
		Labels: map[int]string{
			1: "legs", 2: "torso", 3: "torso", 4: "torso", 5: "arms", 6: "head",
		},
	},
}

// typeOrder fixes the ordering of Types().
var typeOrder = []TypeID{
	TypeBase, TypeSkill, TypeGear, TypeNeg, TypeStress,
	TypeArtifactD8, TypeArtifactD10, TypeArtifactD12,
	TypeT2KD12, TypeT2KD10, TypeT2KD8, TypeT2KD6,
	TypeAmmo, TypeLocation,
}

// TypeByID returns the die-type descriptor for id.
//
// Postcondition: returns the registered DieType, or ErrUnknownDieType
// wrapped with the offending identifier and the registered alternatives.
func TypeByID(id TypeID) (DieType, error) {
	t, ok := registry[id]
	if !ok {
		return DieType{}, fmt.Errorf("die type %q (registered: %s): %w", id, typeList(typeOrder), ErrUnknownDieType)
	}
	return t, nil
}

// Types returns all registered die-type identifiers in a fixed order.
func Types() []TypeID {
	out := make([]TypeID, len(typeOrder))
	copy(out, typeOrder)
	return out
}

// typeList renders a die-type list for error messages.
func typeList(ids []TypeID) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
