package question

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/staffhero/internal/theory"
)

// Note counts per mode. The source material used slightly different random
// ranges for sequence rounds in different places; [2,4] is the canonical
// range here.
const (
	sequenceMinNotes = 2
	sequenceMaxNotes = 4
	rhythmNoteCount  = 8

	// distractorCount wrong options accompany the correct names.
	distractorCount = 3

	// maxDistractorAttempts bounds random sampling before uniqueness
	// against earlier distractors is relaxed.
	maxDistractorAttempts = 24
)

// Generate produces a question for the given settings. The RNG is
// caller-supplied so rounds are reproducible under test.
func Generate(settings Settings, rng *rand.Rand) (*Question, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	posRange, ok := settings.Difficulty.Range()
	if !ok {
		return nil, fmt.Errorf("no position range for difficulty %q", settings.Difficulty)
	}

	count := noteCount(settings.Mode, rng)
	notes := make([]theory.Note, count)
	correct := make([]string, count)
	for i := range notes {
		pos := posRange.Min + rng.IntN(posRange.Max-posRange.Min+1)
		notes[i] = theory.NoteAt(pos)
		correct[i] = settings.Notation.DisplayName(notes[i].Name)
	}

	options := appendDistractors(dedupe(correct), correct, settings.Notation, rng)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Question{
		ID:            uuid.NewString(),
		Notes:         notes,
		CorrectAnswer: correct,
		Options:       options,
	}, nil
}

func noteCount(mode Mode, rng *rand.Rand) int {
	switch mode {
	case ModeSequence:
		return sequenceMinNotes + rng.IntN(sequenceMaxNotes-sequenceMinNotes+1)
	case ModeRhythm:
		return rhythmNoteCount
	default:
		return 1
	}
}

// appendDistractors adds up to distractorCount wrong display names to
// options. It samples randomly for a bounded number of attempts, then
// falls back to a deterministic sweep over names not in the correct set so
// exhaustion can never loop. When every pitch name is already correct the
// option set is simply the correct names.
func appendDistractors(options, correct []string, sys theory.System, rng *rand.Rand) []string {
	used := make(map[string]bool, len(options))
	for _, o := range options {
		used[o] = true
	}
	inCorrect := make(map[string]bool, len(correct))
	for _, c := range correct {
		inCorrect[c] = true
	}

	names := theory.NoteNames()
	added := 0
	for attempts := 0; added < distractorCount && attempts < maxDistractorAttempts; attempts++ {
		name := sys.DisplayName(names[rng.IntN(len(names))])
		if used[name] {
			continue
		}
		used[name] = true
		options = append(options, name)
		added++
	}

	for i := 0; added < distractorCount && i < len(names); i++ {
		name := sys.DisplayName(names[i])
		if inCorrect[name] || used[name] {
			continue
		}
		used[name] = true
		options = append(options, name)
		added++
	}

	return options
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
