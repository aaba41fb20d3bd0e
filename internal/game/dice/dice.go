// Package dice provides the randomness abstraction for the Year Zero rules
// engine. The engine itself never touches a random number generator directly;
// every roll goes through a Source so tests and replay tooling can substitute
// a deterministic implementation.
package dice

// Source is the randomness provider for die rolls.
//
// Implementations MUST be safe for concurrent use unless documented
// otherwise.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// RollFace returns a uniformly random face value in [1, faces] drawn from src.
//
// Precondition: src must be non-nil and faces > 0.
func RollFace(src Source, faces int) int {
	if faces <= 0 {
		panic("dice: RollFace called with faces <= 0")
	}
	return src.Intn(faces) + 1
}
