package game

import "strings"

// State is the whole game state. The Controller owns the only live copy;
// everything else sees snapshots.
type State struct {
	Level           int
	Part            int
	KnowledgePoints int
	Started         bool
	AwaitingAnswer  bool
	// Typing mirrors the renderer when a snapshot is taken.
	Typing bool
}

// Phase is the state machine position derived from State.
type Phase int

const (
	NotStarted Phase = iota
	AwaitingAnswer
	AwaitingCommand
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case AwaitingAnswer:
		return "awaiting-answer"
	case AwaitingCommand:
		return "awaiting-command"
	}
	return "unknown"
}

func (s State) Phase() Phase {
	switch {
	case !s.Started:
		return NotStarted
	case s.AwaitingAnswer:
		return AwaitingAnswer
	default:
		return AwaitingCommand
	}
}

// reset puts the state at the first level of a fresh game.
func (s *State) reset() {
	s.Started = true
	s.Level = 1
	s.Part = 1
	s.KnowledgePoints = 0
}

// advance moves to the next level and awards points whether or not the last
// answer was right. It reports false once the last level has been passed.
func (s *State) advance() bool {
	s.Level++
	s.KnowledgePoints += pointsPerLevel
	if s.Level > maxLevel {
		return false
	}
	s.Part = PartFor(s.Level)
	return true
}

// Action is what a submitted input does in the current phase.
type Action int

const (
	ActionIgnore Action = iota
	ActionStart
	ActionInvalid
	ActionAnswer
	ActionNext
	ActionRetry
	ActionExit
	ActionUnknown
)

var actionNames = [...]string{
	ActionIgnore:  "ignore",
	ActionStart:   "start",
	ActionInvalid: "invalid",
	ActionAnswer:  "answer",
	ActionNext:    "next",
	ActionRetry:   "retry",
	ActionExit:    "exit",
	ActionUnknown: "unknown",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "action(?)"
}

// Normalize trims and case-folds raw input into a command word.
func Normalize(raw string) string {
	return fold(strings.TrimSpace(raw))
}

// Dispatch maps the current state and a raw input line to an Action.
// It never mutates anything.
func Dispatch(s State, raw string) Action {
	cmd := Normalize(raw)
	if cmd == "" {
		return ActionIgnore
	}
	switch s.Phase() {
	case NotStarted:
		if cmd == "start" {
			return ActionStart
		}
		return ActionInvalid
	case AwaitingAnswer:
		return ActionAnswer
	}
	switch cmd {
	case "next":
		return ActionNext
	case "retry":
		return ActionRetry
	case "exit":
		return ActionExit
	}
	return ActionUnknown
}
