package cmd

import (
	"fmt"

	"github.com/abhisek/staffhero/internal/app"
	"github.com/abhisek/staffhero/internal/question"
	"github.com/abhisek/staffhero/internal/store"
	"github.com/abhisek/staffhero/internal/theory"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().String("mode", string(question.ModeSingleNote), "Game mode: single-note, sequence, rhythm")
	playCmd.Flags().String("difficulty", string(theory.Beginner), "Difficulty: beginner, intermediate, advanced")
	playCmd.Flags().String("notation", string(theory.SystemLetter), "Notation system: letter, solfege")
	playCmd.Flags().Bool("labels", false, "Show note names under the staff")
}

func runPlay(cmd *cobra.Command) error {
	settings, err := settingsFromFlags(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Settings:     settings,
		Sessions:     st.Sessions(),
		Achievements: st.Achievements(),
		Challenges:   st.Challenges(),
	})
}

// settingsFromFlags builds game settings from play's flags. The root command
// shares this path and falls back to each flag's default.
func settingsFromFlags(cmd *cobra.Command) (question.Settings, error) {
	settings := question.Settings{
		Mode:       question.ModeSingleNote,
		Difficulty: theory.Beginner,
		Notation:   theory.SystemLetter,
	}

	if v, err := cmd.Flags().GetString("mode"); err == nil && v != "" {
		mode, err := question.ParseMode(v)
		if err != nil {
			return question.Settings{}, err
		}
		settings.Mode = mode
	}
	if v, err := cmd.Flags().GetString("difficulty"); err == nil && v != "" {
		diff, err := theory.ParseDifficulty(v)
		if err != nil {
			return question.Settings{}, err
		}
		settings.Difficulty = diff
	}
	if v, err := cmd.Flags().GetString("notation"); err == nil && v != "" {
		sys, err := theory.ParseSystem(v)
		if err != nil {
			return question.Settings{}, err
		}
		settings.Notation = sys
	}
	if v, err := cmd.Flags().GetBool("labels"); err == nil {
		settings.ShowNoteLabels = v
	}

	return settings, settings.Validate()
}
