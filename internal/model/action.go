package model

import "strings"

// ActionKind is the closed set of things a player can do on a turn
type ActionKind string

const (
	ActionUnknown ActionKind = "unknown"
	ActionExplore ActionKind = "explore"
	ActionFlag    ActionKind = "flag"
	ActionSave    ActionKind = "save"
	ActionLoad    ActionKind = "load"
	ActionQuit    ActionKind = "quit"
)

// Action is one parsed player command.
// Position is only meaningful for ActionExplore and ActionFlag.
type Action struct {
	Kind     ActionKind
	Position Position
}

// Explore returns an explore action at pos
func Explore(pos Position) Action {
	return Action{Kind: ActionExplore, Position: pos}
}

// Flag returns a flag action at pos
func Flag(pos Position) Action {
	return Action{Kind: ActionFlag, Position: pos}
}

// NeedsPosition returns true for actions that target a cell
func (k ActionKind) NeedsPosition() bool {
	return k == ActionExplore || k == ActionFlag
}

// ParseAction maps an action tag and optional position to an Action.
// Unrecognised tags, and explore/flag without a position, become ActionUnknown.
func ParseAction(tag string, pos *Position) Action {
	var kind ActionKind
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "e", "explore":
		kind = ActionExplore
	case "f", "flag":
		kind = ActionFlag
	case "save":
		kind = ActionSave
	case "load":
		kind = ActionLoad
	case "q", "quit":
		kind = ActionQuit
	default:
		return Action{Kind: ActionUnknown}
	}

	if kind.NeedsPosition() {
		if pos == nil {
			return Action{Kind: ActionUnknown}
		}
		return Action{Kind: kind, Position: *pos}
	}
	return Action{Kind: kind}
}
