// Package answer checks player responses against a question's correct
// display names. All comparisons are exact and case-sensitive; a wrong
// answer is an ordinary result, never an error.
package answer

import "slices"

// MatchUnordered reports whether got and want contain the same display
// names as multisets, ignoring order. Used for single-note and chord style
// rounds.
func MatchUnordered(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	g := slices.Clone(got)
	w := slices.Clone(want)
	slices.Sort(g)
	slices.Sort(w)
	return slices.Equal(g, w)
}

// MatchOrdered reports whether got matches want exactly, position by
// position. A single out-of-order pair fails the whole answer.
func MatchOrdered(got, want []string) bool {
	return slices.Equal(got, want)
}

// Feedback carries positional diagnostics for sequence rounds. It never
// changes the pass/fail outcome of MatchOrdered; it only supports partial
// visual feedback.
type Feedback struct {
	// CorrectPositions are indices where the submitted name matched.
	CorrectPositions []int

	// WrongPositions are all other submitted indices.
	WrongPositions []int

	// MissedNotes are expected names that did not appear at their
	// position, deduplicated in sequence order.
	MissedNotes []string
}

// SequenceFeedback compares a submitted sequence to the expected one.
func SequenceFeedback(got, want []string) Feedback {
	var fb Feedback

	for i := range got {
		if i < len(want) && got[i] == want[i] {
			fb.CorrectPositions = append(fb.CorrectPositions, i)
		} else {
			fb.WrongPositions = append(fb.WrongPositions, i)
		}
	}

	seen := make(map[string]bool, len(want))
	for i, w := range want {
		if i < len(got) && got[i] == w {
			continue
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		fb.MissedNotes = append(fb.MissedNotes, w)
	}

	return fb
}
