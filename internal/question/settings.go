package question

import (
	"fmt"

	"github.com/abhisek/staffhero/internal/theory"
)

// Mode selects the round format and which validator applies.
type Mode string

const (
	ModeSingleNote Mode = "single-note"
	ModeSequence   Mode = "sequence"
	ModeRhythm     Mode = "rhythm"
)

// Modes returns all game modes in display order.
func Modes() []Mode {
	return []Mode{ModeSingleNote, ModeSequence, ModeRhythm}
}

// Valid reports whether m is a known game mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeSingleNote, ModeSequence, ModeRhythm:
		return true
	}
	return false
}

// ParseMode converts a user-supplied string to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown game mode %q (want single-note, sequence or rhythm)", s)
	}
	return m, nil
}

// Settings configures a game. It is passed by value into every engine
// function; there is no settings singleton.
type Settings struct {
	Mode       Mode
	Difficulty theory.Difficulty
	Notation   theory.System

	// ShowNoteLabels is honored by the presentation layer only.
	ShowNoteLabels bool
}

// Validate fails fast on any unrecognized enum value. Silent defaulting is
// deliberately avoided here.
func (s Settings) Validate() error {
	if !s.Mode.Valid() {
		return fmt.Errorf("invalid settings: unknown game mode %q", s.Mode)
	}
	if !s.Difficulty.Valid() {
		return fmt.Errorf("invalid settings: unknown difficulty %q", s.Difficulty)
	}
	if !s.Notation.Valid() {
		return fmt.Errorf("invalid settings: unknown notation system %q", s.Notation)
	}
	return nil
}
