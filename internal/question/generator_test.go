package question

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/abhisek/staffhero/internal/theory"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func beginnerSettings(mode Mode) Settings {
	return Settings{
		Mode:       mode,
		Difficulty: theory.Beginner,
		Notation:   theory.SystemLetter,
	}
}

func TestGenerate_SingleNote(t *testing.T) {
	q, err := Generate(beginnerSettings(ModeSingleNote), testRNG(1))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(q.Notes) != 1 {
		t.Errorf("len(Notes) = %d, want 1", len(q.Notes))
	}
	if len(q.CorrectAnswer) != 1 {
		t.Errorf("len(CorrectAnswer) = %d, want 1", len(q.CorrectAnswer))
	}
	if len(q.Options) != 4 {
		t.Errorf("len(Options) = %d, want 4", len(q.Options))
	}
	if !slices.Contains(q.Options, q.CorrectAnswer[0]) {
		t.Errorf("Options %v missing correct answer %q", q.Options, q.CorrectAnswer[0])
	}
	if q.ID == "" {
		t.Error("empty question ID")
	}
	if q.Answered {
		t.Error("new question already answered")
	}
}

func TestGenerate_SequenceNoteCount(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		q, err := Generate(beginnerSettings(ModeSequence), testRNG(seed))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(q.Notes) < sequenceMinNotes || len(q.Notes) > sequenceMaxNotes {
			t.Fatalf("seed %d: len(Notes) = %d, want %d..%d",
				seed, len(q.Notes), sequenceMinNotes, sequenceMaxNotes)
		}
		if len(q.CorrectAnswer) != len(q.Notes) {
			t.Fatalf("seed %d: answer/notes length mismatch", seed)
		}
	}
}

func TestGenerate_RhythmNoteCount(t *testing.T) {
	q, err := Generate(beginnerSettings(ModeRhythm), testRNG(3))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(q.Notes) != rhythmNoteCount {
		t.Errorf("len(Notes) = %d, want %d", len(q.Notes), rhythmNoteCount)
	}
}

func TestGenerate_CorrectAnswerPreservesNoteOrder(t *testing.T) {
	q, err := Generate(beginnerSettings(ModeSequence), testRNG(7))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, n := range q.Notes {
		want := theory.SystemLetter.DisplayName(n.Name)
		if q.CorrectAnswer[i] != want {
			t.Errorf("CorrectAnswer[%d] = %q, want %q", i, q.CorrectAnswer[i], want)
		}
	}
}

func TestGenerate_OptionsAreASet(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		for _, mode := range Modes() {
			q, err := Generate(beginnerSettings(mode), testRNG(seed))
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}

			seen := make(map[string]bool)
			for _, o := range q.Options {
				if seen[o] {
					t.Fatalf("seed %d mode %s: duplicate option %q in %v", seed, mode, o, q.Options)
				}
				seen[o] = true
			}
			for _, c := range q.CorrectAnswer {
				if !seen[c] {
					t.Fatalf("seed %d mode %s: options %v missing correct %q", seed, mode, q.Options, c)
				}
			}
		}
	}
}

func TestGenerate_NotesWithinDifficultyRange(t *testing.T) {
	for _, d := range theory.Difficulties() {
		r, _ := d.Range()
		for seed := uint64(0); seed < 30; seed++ {
			s := beginnerSettings(ModeRhythm)
			s.Difficulty = d
			q, err := Generate(s, testRNG(seed))
			if err != nil {
				t.Fatalf("Generate(%s): %v", d, err)
			}
			for _, n := range q.Notes {
				if !r.Contains(n.StaffPosition()) {
					t.Fatalf("%s: note %s at position %d outside %+v", d, n, n.StaffPosition(), r)
				}
			}
		}
	}
}

func TestGenerate_SolfegeOptions(t *testing.T) {
	s := beginnerSettings(ModeSingleNote)
	s.Notation = theory.SystemSolfege
	q, err := Generate(s, testRNG(11))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	letters := map[string]bool{"A": true, "B": true, "C": true, "D": true, "E": true, "F": true, "G": true}
	for _, o := range q.Options {
		if letters[o] {
			t.Errorf("solfege question contains letter option %q", o)
		}
	}
}

func TestGenerate_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
	}{
		{"bad mode", Settings{Mode: "chord", Difficulty: theory.Beginner, Notation: theory.SystemLetter}},
		{"bad difficulty", Settings{Mode: ModeSingleNote, Difficulty: "expert", Notation: theory.SystemLetter}},
		{"bad notation", Settings{Mode: ModeSingleNote, Difficulty: theory.Beginner, Notation: "german"}},
		{"zero value", Settings{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(tt.s, testRNG(1)); err == nil {
				t.Error("Generate accepted invalid settings")
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(beginnerSettings(ModeSequence), testRNG(42))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(beginnerSettings(ModeSequence), testRNG(42))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !slices.Equal(a.CorrectAnswer, b.CorrectAnswer) {
		t.Errorf("same seed produced different answers: %v vs %v", a.CorrectAnswer, b.CorrectAnswer)
	}
	if !slices.Equal(a.Options, b.Options) {
		t.Errorf("same seed produced different options: %v vs %v", a.Options, b.Options)
	}
	if a.ID == b.ID {
		t.Error("question IDs should be unique per generation")
	}
}

func TestDistractors_ExhaustionStops(t *testing.T) {
	// A correct set covering all seven names leaves no distractor pool.
	correct := make([]string, 0, 7)
	for _, n := range theory.NoteNames() {
		correct = append(correct, string(n))
	}

	options := appendDistractors(dedupe(correct), correct, theory.SystemLetter, testRNG(5))
	if len(options) != 7 {
		t.Errorf("len(options) = %d, want 7 (correct names only)", len(options))
	}
}
