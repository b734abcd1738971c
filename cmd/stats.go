package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/staffhero/internal/stats"
	"github.com/abhisek/staffhero/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show playing statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		profile, err := loadProfile(cmd.Context(), st)
		if err != nil {
			return err
		}
		printProfile(profile)

		progress, err := st.Challenges().Progress(cmd.Context())
		if err != nil {
			return fmt.Errorf("load challenge progress: %w", err)
		}
		printChallenges(progress)
		return nil
	},
}

// loadProfile rebuilds the cumulative profile by replaying stored sessions
// oldest first, then restoring persisted unlock times over the replayed ones.
func loadProfile(ctx context.Context, st *store.Store) (*stats.Profile, error) {
	sessions, err := st.Sessions().Recent(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	profile := stats.NewProfile()
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		profile.Record(s, s.Timestamp)
	}

	unlocked, err := st.Achievements().Unlocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}
	for id, at := range unlocked {
		profile.RestoreUnlock(id, at)
	}

	return profile, nil
}

func printProfile(p *stats.Profile) {
	fmt.Println("Staff Hero statistics")
	fmt.Println()

	if p.TotalGames == 0 {
		fmt.Println("No games played yet. Run `staffhero play` to start.")
		return
	}

	fmt.Printf("Games played      %d\n", p.TotalGames)
	fmt.Printf("Total score       %d\n", p.TotalScore)
	fmt.Printf("Best streak       %d\n", p.BestStreak)
	fmt.Printf("Average accuracy  %.0f%%\n", p.AverageAccuracy)
	fmt.Println()

	fmt.Println("By mode:")
	for mode, count := range p.ByMode {
		fmt.Printf("  %-12s %d\n", mode, count)
	}
	fmt.Println()

	fmt.Println("Achievements:")
	for _, a := range p.Achievements() {
		mark := " "
		if a.Unlocked {
			mark = "★"
		}
		fmt.Printf("  %s %-18s %s\n", mark, a.Name, a.Description)
	}

	if len(p.History) > 0 {
		fmt.Println()
		fmt.Println("Recent games:")
		for _, s := range p.History {
			fmt.Printf("  %s  %-12s score %-5d accuracy %d%%\n",
				s.Timestamp.Format("2006-01-02 15:04"), s.Mode, s.Score, s.Accuracy)
		}
	}
}

func printChallenges(progress map[string]int) {
	if len(progress) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Lifetime totals:")
	fmt.Printf("  Games played     %d\n", progress[store.ChallengeGamesPlayed])
	fmt.Printf("  Correct answers  %d\n", progress[store.ChallengeCorrectAnswers])
	fmt.Printf("  Score earned     %d\n", progress[store.ChallengeScoreEarned])
}
