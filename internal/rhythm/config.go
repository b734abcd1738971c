package rhythm

import "time"

// Config holds the timing and geometry parameters for a rhythm round.
// Positions are in abstract horizontal units: notes spawn just past the
// right edge and travel left through the target line.
type Config struct {
	// ScreenWidth is the visible lane width.
	ScreenWidth float64

	// NoteInterval separates consecutive note spawns.
	NoteInterval time.Duration

	// NoteSpeed is the full transit time from spawn to despawn.
	NoteSpeed time.Duration

	// TargetLineX is the horizontal position of the hit line.
	TargetLineX float64

	// HitZoneSize is the tolerance around the target line within which a
	// note can be hit.
	HitZoneSize float64
}

// Lane geometry margins: notes spawn spawnMargin past the right edge and
// despawn despawnMargin past the left edge, so they fully exit the screen
// before disappearing.
const (
	spawnMargin   = 50.0
	despawnMargin = 100.0
)

// targetFraction places the ideal hit instant 60% through a note's transit.
const targetFraction = 0.6

// DefaultConfig returns the standard rhythm parameters.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  360,
		NoteInterval: time.Second,
		NoteSpeed:    3 * time.Second,
		TargetLineX:  120,
		HitZoneSize:  50,
	}
}
