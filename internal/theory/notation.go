package theory

import "fmt"

// System is a pitch naming convention.
type System string

const (
	SystemLetter  System = "letter"
	SystemSolfege System = "solfege"
)

// Systems returns all notation systems in display order.
func Systems() []System {
	return []System{SystemLetter, SystemSolfege}
}

var solfegeNames = map[NoteName]string{
	C: "Do",
	D: "Re",
	E: "Mi",
	F: "Fa",
	G: "Sol",
	A: "La",
	B: "Si",
}

// Valid reports whether s is a known notation system.
func (s System) Valid() bool {
	return s == SystemLetter || s == SystemSolfege
}

// DisplayName maps a pitch letter to its name under this system.
func (s System) DisplayName(n NoteName) string {
	if s == SystemSolfege {
		return solfegeNames[n]
	}
	return string(n)
}

// ParseSystem converts a user-supplied string to a System.
func ParseSystem(s string) (System, error) {
	sys := System(s)
	if !sys.Valid() {
		return "", fmt.Errorf("unknown notation system %q (want letter or solfege)", s)
	}
	return sys, nil
}
