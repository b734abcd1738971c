// Package rhythm schedules notes across a horizontal lane and resolves
// timed hit attempts against them. In-flight notes are plain data with
// independent schedules; the engine is driven by caller-supplied
// timestamps and expects a single owner; per-note Hit/Accuracy writes are
// not synchronized.
package rhythm

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/staffhero/internal/theory"
)

// Note is a scheduled, hittable instance of a staff note.
type Note struct {
	ID          string
	Note        theory.Note
	DisplayName string

	// StartTime is when the note spawns at the right edge.
	StartTime time.Time

	// TargetTime is the ideal hit instant, 60% through the transit.
	TargetTime time.Time

	Hit bool

	// Accuracy is 0-100 and meaningful only once Hit is true.
	Accuracy float64
}

// Schedule converts a question's notes into timed rhythm notes. Note i
// spawns at start + i*NoteInterval.
func Schedule(notes []theory.Note, sys theory.System, start time.Time, cfg Config) []*Note {
	out := make([]*Note, len(notes))
	for i, n := range notes {
		spawn := start.Add(time.Duration(i) * cfg.NoteInterval)
		out[i] = &Note{
			ID:          uuid.NewString(),
			Note:        n,
			DisplayName: sys.DisplayName(n.Name),
			StartTime:   spawn,
			TargetTime:  spawn.Add(time.Duration(targetFraction * float64(cfg.NoteSpeed))),
		}
	}
	return out
}

// Position returns the note's horizontal position at time at: ScreenWidth +
// spawnMargin when the transit begins, -despawnMargin when it ends, moving
// linearly between.
func Position(n *Note, at time.Time, cfg Config) float64 {
	progress := float64(at.Sub(n.StartTime)) / float64(cfg.NoteSpeed)
	progress = math.Max(0, math.Min(1, progress))
	return cfg.ScreenWidth + spawnMargin - progress*(cfg.ScreenWidth+spawnMargin+despawnMargin)
}

// Done reports whether the note has finished its transit without being hit.
func Done(n *Note, at time.Time, cfg Config) bool {
	return !n.Hit && at.Sub(n.StartTime) >= cfg.NoteSpeed
}

// Hittable reports whether the note is inside the hit zone at time at and
// has not already been hit.
func Hittable(n *Note, at time.Time, cfg Config) bool {
	if n.Hit {
		return false
	}
	return math.Abs(Position(n, at, cfg)-cfg.TargetLineX) <= cfg.HitZoneSize
}

// HitResult reports the outcome of a hit attempt.
type HitResult struct {
	Hit      bool
	Accuracy float64

	// Note is the note that was hit, nil on a miss.
	Note *Note
}

// ResolveHit attempts to hit a note named displayName at time at. Among
// hittable candidates it picks the one closest to the target line, breaking
// ties by earlier spawn, and marks it hit exactly once. A miss mutates
// nothing; attempting a pitch with no candidates is a normal outcome.
func ResolveHit(notes []*Note, displayName string, at time.Time, cfg Config) HitResult {
	type candidate struct {
		note     *Note
		distance float64
	}

	var candidates []candidate
	for _, n := range notes {
		if n.DisplayName != displayName || !Hittable(n, at, cfg) {
			continue
		}
		candidates = append(candidates, candidate{
			note:     n,
			distance: math.Abs(Position(n, at, cfg) - cfg.TargetLineX),
		})
	}
	if len(candidates) == 0 {
		return HitResult{}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].note.StartTime.Before(candidates[j].note.StartTime)
	})

	best := candidates[0]
	best.note.Hit = true
	best.note.Accuracy = math.Max(0, 100-(best.distance/cfg.HitZoneSize)*100)
	return HitResult{Hit: true, Accuracy: best.note.Accuracy, Note: best.note}
}

// RoundScore aggregates a finished rhythm round.
type RoundScore struct {
	// Total is the sum of rounded per-hit accuracies.
	Total int

	// HitCount is the number of notes hit.
	HitCount int

	// AverageAccuracy is the rounded mean accuracy of hits, 0 with no hits.
	AverageAccuracy int

	// PerfectHits counts hits with accuracy above 90.
	PerfectHits int
}

// ScoreRound folds all hit notes into a RoundScore. Notes never hit simply
// contribute nothing.
func ScoreRound(notes []*Note) RoundScore {
	var score RoundScore
	var sum float64
	for _, n := range notes {
		if !n.Hit {
			continue
		}
		score.HitCount++
		score.Total += int(math.Round(n.Accuracy))
		sum += n.Accuracy
		if n.Accuracy > 90 {
			score.PerfectHits++
		}
	}
	if score.HitCount > 0 {
		score.AverageAccuracy = int(math.Round(sum / float64(score.HitCount)))
	}
	return score
}
