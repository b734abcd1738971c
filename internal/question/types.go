package question

import "github.com/abhisek/staffhero/internal/theory"

// Question represents one generated round of note identification.
type Question struct {
	// ID uniquely identifies this generation.
	ID string

	// Notes are the staff notes to identify, in presentation order.
	Notes []theory.Note

	// CorrectAnswer holds the display names of Notes in the same order.
	// Sequence-mode validation relies on that ordering.
	CorrectAnswer []string

	// Options is the shuffled multiple-choice set: every distinct correct
	// name plus generated distractors, with no duplicates.
	Options []string

	// Answered is set once the player has responded.
	Answered bool
}
