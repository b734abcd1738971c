package play

import (
	"time"

	"github.com/abhisek/staffhero/internal/question"
	"github.com/abhisek/staffhero/internal/stats"
)

// profileReadyMsg is sent when the stored profile has been loaded.
type profileReadyMsg struct {
	Profile *stats.Profile
	Err     error
}

// questionMsg is sent when the next question has been generated.
type questionMsg struct {
	Question *question.Question
	Err      error
}

// advanceMsg is sent when the feedback display period ends.
type advanceMsg struct{}

// laneTickMsg drives rhythm lane animation and round-end detection.
type laneTickMsg time.Time

// sessionSavedMsg confirms the end-of-game persistence attempt.
type sessionSavedMsg struct {
	Err error
}
