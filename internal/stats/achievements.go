package stats

import "time"

// Achievement IDs.
const (
	AchFirstGame       = "first_game"
	AchStreak5         = "streak_5"
	AchStreak10        = "streak_10"
	AchPerfectGame     = "perfect_game"
	AchNotationMaster  = "notation_master"
	AchDedicatedPlayer = "dedicated_player"
)

// dedicatedGames is the game count required for dedicated_player.
const dedicatedGames = 50

// Achievement is a named milestone. Unlocking is one-way: once Unlocked is
// set, UnlockedAt never changes.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Unlocked    bool
	UnlockedAt  time.Time
}

func defaultAchievements() []*Achievement {
	return []*Achievement{
		{ID: AchFirstGame, Name: "First Steps", Description: "Finish your first game"},
		{ID: AchStreak5, Name: "Warming Up", Description: "Reach a 5-answer streak"},
		{ID: AchStreak10, Name: "On Fire", Description: "Reach a 10-answer streak"},
		{ID: AchPerfectGame, Name: "Flawless", Description: "Finish a game at 100% accuracy"},
		{ID: AchNotationMaster, Name: "Bilingual", Description: "Play in both notation systems"},
		{ID: AchDedicatedPlayer, Name: "Dedicated", Description: "Finish 50 games"},
	}
}
