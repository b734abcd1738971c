package answer

import (
	"slices"
	"testing"
)

func TestMatchUnordered_AllPermutations(t *testing.T) {
	want := []string{"C", "E", "G"}
	perms := [][]string{
		{"C", "E", "G"},
		{"C", "G", "E"},
		{"E", "C", "G"},
		{"E", "G", "C"},
		{"G", "C", "E"},
		{"G", "E", "C"},
	}

	for _, p := range perms {
		if !MatchUnordered(p, want) {
			t.Errorf("MatchUnordered(%v, %v) = false, want true", p, want)
		}
	}
}

func TestMatchUnordered_Multiset(t *testing.T) {
	tests := []struct {
		got  []string
		want []string
		ok   bool
	}{
		{[]string{"C", "C", "G"}, []string{"G", "C", "C"}, true},
		{[]string{"C", "G"}, []string{"C", "C", "G"}, false},     // missing a repeat
		{[]string{"C", "G", "G"}, []string{"C", "C", "G"}, false}, // wrong multiplicity
		{[]string{}, []string{}, true},
		{[]string{"c"}, []string{"C"}, false}, // case-sensitive
		{[]string{"Do"}, []string{"Do"}, true},
	}

	for _, tt := range tests {
		if got := MatchUnordered(tt.got, tt.want); got != tt.ok {
			t.Errorf("MatchUnordered(%v, %v) = %v, want %v", tt.got, tt.want, got, tt.ok)
		}
	}
}

func TestMatchUnordered_DoesNotMutateInput(t *testing.T) {
	got := []string{"G", "C", "E"}
	MatchUnordered(got, []string{"C", "E", "G"})
	if !slices.Equal(got, []string{"G", "C", "E"}) {
		t.Errorf("input mutated: %v", got)
	}
}

func TestMatchOrdered(t *testing.T) {
	tests := []struct {
		got  []string
		want []string
		ok   bool
	}{
		{[]string{"A", "B", "C"}, []string{"A", "B", "C"}, true},
		{[]string{"A", "C", "B"}, []string{"A", "B", "C"}, false},
		{[]string{"A", "B"}, []string{"A", "B", "C"}, false},
		{[]string{"A", "B", "C", "D"}, []string{"A", "B", "C"}, false},
		{[]string{}, []string{}, true},
	}

	for _, tt := range tests {
		if got := MatchOrdered(tt.got, tt.want); got != tt.ok {
			t.Errorf("MatchOrdered(%v, %v) = %v, want %v", tt.got, tt.want, got, tt.ok)
		}
	}
}

func TestMatchOrdered_ReversalFailsUnlessPalindrome(t *testing.T) {
	sequences := [][]string{
		{"A", "B", "C"},
		{"C", "E", "G", "B"},
		{"Do", "Re"},
		{"A", "B", "A"}, // palindrome
	}

	for _, seq := range sequences {
		rev := slices.Clone(seq)
		slices.Reverse(rev)
		palindrome := slices.Equal(rev, seq)
		if got := MatchOrdered(rev, seq); got != palindrome {
			t.Errorf("MatchOrdered(reverse(%v), %v) = %v, want %v", seq, seq, got, palindrome)
		}
	}
}

func TestSequenceFeedback_AllCorrect(t *testing.T) {
	fb := SequenceFeedback([]string{"A", "B", "C"}, []string{"A", "B", "C"})

	if !slices.Equal(fb.CorrectPositions, []int{0, 1, 2}) {
		t.Errorf("CorrectPositions = %v, want [0 1 2]", fb.CorrectPositions)
	}
	if len(fb.WrongPositions) != 0 {
		t.Errorf("WrongPositions = %v, want empty", fb.WrongPositions)
	}
	if len(fb.MissedNotes) != 0 {
		t.Errorf("MissedNotes = %v, want empty", fb.MissedNotes)
	}
}

func TestSequenceFeedback_PartiallyWrong(t *testing.T) {
	fb := SequenceFeedback([]string{"A", "C", "B"}, []string{"A", "B", "C"})

	if !slices.Equal(fb.CorrectPositions, []int{0}) {
		t.Errorf("CorrectPositions = %v, want [0]", fb.CorrectPositions)
	}
	if !slices.Equal(fb.WrongPositions, []int{1, 2}) {
		t.Errorf("WrongPositions = %v, want [1 2]", fb.WrongPositions)
	}
	if !slices.Equal(fb.MissedNotes, []string{"B", "C"}) {
		t.Errorf("MissedNotes = %v, want [B C]", fb.MissedNotes)
	}
}

func TestSequenceFeedback_ShortAnswerAndRepeats(t *testing.T) {
	fb := SequenceFeedback([]string{"C"}, []string{"C", "G", "G"})

	if !slices.Equal(fb.CorrectPositions, []int{0}) {
		t.Errorf("CorrectPositions = %v, want [0]", fb.CorrectPositions)
	}
	if len(fb.WrongPositions) != 0 {
		t.Errorf("WrongPositions = %v, want empty", fb.WrongPositions)
	}
	// The two unmatched Gs collapse to one missed entry.
	if !slices.Equal(fb.MissedNotes, []string{"G"}) {
		t.Errorf("MissedNotes = %v, want [G]", fb.MissedNotes)
	}
}
