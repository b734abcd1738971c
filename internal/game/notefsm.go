package game

// NoteAnim is the display state of a note sprite. The transition table is
// pure data so any presentation layer can drive it without pulling in
// rendering concerns.
type NoteAnim int

const (
	AnimIdle NoteAnim = iota
	AnimHighlighted
	AnimCorrect
	AnimIncorrect
	AnimDestroying
)

// String returns the state name.
func (a NoteAnim) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimHighlighted:
		return "highlighted"
	case AnimCorrect:
		return "correct"
	case AnimIncorrect:
		return "incorrect"
	case AnimDestroying:
		return "destroying"
	}
	return "unknown"
}

// AnimEvent drives note animation transitions.
type AnimEvent int

const (
	EventHighlight AnimEvent = iota
	EventCorrect
	EventIncorrect
	EventDestroy
	EventReset
)

var animTransitions = map[NoteAnim]map[AnimEvent]NoteAnim{
	AnimIdle: {
		EventHighlight: AnimHighlighted,
		EventDestroy:   AnimDestroying,
	},
	AnimHighlighted: {
		EventCorrect:   AnimCorrect,
		EventIncorrect: AnimIncorrect,
		EventReset:     AnimIdle,
	},
	AnimCorrect: {
		EventDestroy: AnimDestroying,
		EventReset:   AnimIdle,
	},
	AnimIncorrect: {
		EventDestroy: AnimDestroying,
		EventReset:   AnimIdle,
	},
	AnimDestroying: {
		EventReset: AnimIdle,
	},
}

// TransitionAnim returns the state after the event. Undefined transitions
// keep the current state and report false.
func TransitionAnim(state NoteAnim, event AnimEvent) (NoteAnim, bool) {
	next, ok := animTransitions[state][event]
	if !ok {
		return state, false
	}
	return next, true
}
