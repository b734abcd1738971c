package theory

import "fmt"

// NoteName is one of the seven pitch letters.
type NoteName string

const (
	C NoteName = "C"
	D NoteName = "D"
	E NoteName = "E"
	F NoteName = "F"
	G NoteName = "G"
	A NoteName = "A"
	B NoteName = "B"
)

// NoteNames returns the seven pitch letters in ascending order within an octave.
func NoteNames() []NoteName {
	return []NoteName{C, D, E, F, G, A, B}
}

// Note identifies a single pitch on the treble staff.
type Note struct {
	Name   NoteName
	Octave int
}

// Staff geometry. Position 0 is the middle line of the treble staff (B4);
// each letter step up or down moves one position. The five staff lines sit
// at even positions -4..4, so E4 (bottom line) is -4 and F5 (top line) is 4.
const (
	referenceOctave = 4
	staffEdge       = 4
)

func letterIndex(n NoteName) int {
	switch n {
	case C:
		return 0
	case D:
		return 1
	case E:
		return 2
	case F:
		return 3
	case G:
		return 4
	case A:
		return 5
	case B:
		return 6
	}
	return -1
}

// StaffPosition returns the signed letter-step offset from the middle line.
func (n Note) StaffPosition() int {
	return (n.Octave-referenceOctave)*7 + letterIndex(n.Name) - letterIndex(B)
}

// RequiresLedgerLine reports whether the note sits outside the five staff lines.
func (n Note) RequiresLedgerLine() bool {
	p := n.StaffPosition()
	if p < 0 {
		p = -p
	}
	return p > staffEdge
}

// NoteAt returns the note occupying the given staff position.
func NoteAt(position int) Note {
	steps := position + letterIndex(B)
	idx := ((steps % 7) + 7) % 7
	return Note{
		Name:   NoteNames()[idx],
		Octave: referenceOctave + (steps-idx)/7,
	}
}

// String returns scientific pitch notation, e.g. "B4".
func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Name, n.Octave)
}
