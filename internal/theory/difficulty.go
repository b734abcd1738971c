package theory

import "fmt"

// Difficulty selects the staff-position range questions are sampled from.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Difficulties returns all difficulty levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

// PositionRange is an inclusive range of staff positions.
type PositionRange struct {
	Min int
	Max int
}

// Contains reports whether position p lies inside the range.
func (r PositionRange) Contains(p int) bool {
	return p >= r.Min && p <= r.Max
}

// Valid reports whether d is a known difficulty level.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Range returns the staff positions legal for the difficulty. Beginner stays
// on the five staff lines and their spaces; the higher levels extend one and
// two ledger positions past each edge.
func (d Difficulty) Range() (PositionRange, bool) {
	switch d {
	case Beginner:
		return PositionRange{Min: -staffEdge, Max: staffEdge}, true
	case Intermediate:
		return PositionRange{Min: -staffEdge - 2, Max: staffEdge + 2}, true
	case Advanced:
		return PositionRange{Min: -staffEdge - 4, Max: staffEdge + 4}, true
	}
	return PositionRange{}, false
}

// ParseDifficulty converts a user-supplied string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q (want beginner, intermediate or advanced)", s)
	}
	return d, nil
}
