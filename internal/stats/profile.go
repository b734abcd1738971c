// Package stats folds finished game sessions into a cumulative profile and
// unlocks achievements by threshold rules.
package stats

import (
	"time"

	"github.com/abhisek/staffhero/internal/game"
	"github.com/abhisek/staffhero/internal/question"
	"github.com/abhisek/staffhero/internal/theory"
)

// HistoryCap bounds the in-memory session log.
const HistoryCap = 20

// Profile is the cumulative record across all completed games.
type Profile struct {
	TotalGames int
	TotalScore int

	// BestStreak is the maximum MaxStreak over all sessions.
	BestStreak int

	// AverageAccuracy is maintained incrementally as sessions arrive.
	AverageAccuracy float64

	ByMode       map[question.Mode]int
	ByNotation   map[theory.System]int
	ByDifficulty map[theory.Difficulty]int

	// History holds the most recent sessions, newest first, capped at
	// HistoryCap.
	History []game.Session

	achievements []*Achievement
}

// NewProfile returns an empty profile with all achievements locked.
func NewProfile() *Profile {
	return &Profile{
		ByMode:       make(map[question.Mode]int),
		ByNotation:   make(map[theory.System]int),
		ByDifficulty: make(map[theory.Difficulty]int),
		achievements: defaultAchievements(),
	}
}

// Achievements returns all achievements in display order.
func (p *Profile) Achievements() []*Achievement {
	return p.achievements
}

// RestoreUnlock marks an achievement unlocked at a recorded time, for
// rebuilding a profile from persisted state. Already-unlocked achievements
// are left untouched.
func (p *Profile) RestoreUnlock(id string, at time.Time) {
	p.unlock(id, at)
}

// Record folds one finished session into the profile and returns the
// achievements it newly unlocked. The in-memory update is unconditional;
// persistence happens elsewhere and its failure never rolls this back.
func (p *Profile) Record(s game.Session, now time.Time) []*Achievement {
	p.TotalGames++
	p.TotalScore += s.Score
	if s.MaxStreak > p.BestStreak {
		p.BestStreak = s.MaxStreak
	}
	p.ByMode[s.Mode]++
	p.ByNotation[s.Notation]++
	p.ByDifficulty[s.Difficulty]++

	n := float64(p.TotalGames)
	p.AverageAccuracy = (p.AverageAccuracy*(n-1) + float64(s.Accuracy)) / n

	p.History = append([]game.Session{s}, p.History...)
	if len(p.History) > HistoryCap {
		p.History = p.History[:HistoryCap]
	}

	return p.evaluate(s, now)
}

func (p *Profile) evaluate(s game.Session, now time.Time) []*Achievement {
	var unlocked []*Achievement

	check := func(id string, satisfied bool) {
		if satisfied {
			if a := p.unlock(id, now); a != nil {
				unlocked = append(unlocked, a)
			}
		}
	}

	check(AchFirstGame, p.TotalGames == 1)
	check(AchStreak5, s.MaxStreak >= 5)
	check(AchStreak10, s.MaxStreak >= 10)
	check(AchPerfectGame, s.Accuracy == 100)
	check(AchNotationMaster,
		p.ByNotation[theory.SystemLetter] >= 1 && p.ByNotation[theory.SystemSolfege] >= 1)
	check(AchDedicatedPlayer, p.TotalGames >= dedicatedGames)

	return unlocked
}

// unlock flips an achievement once. Re-unlocking is a no-op returning nil.
func (p *Profile) unlock(id string, at time.Time) *Achievement {
	for _, a := range p.achievements {
		if a.ID != id {
			continue
		}
		if a.Unlocked {
			return nil
		}
		a.Unlocked = true
		a.UnlockedAt = at
		return a
	}
	return nil
}
