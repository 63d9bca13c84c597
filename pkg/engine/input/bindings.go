package input

import (
	"sort"
)

// Action represents what the viewer wants the camera to do.
type Action int

const (
	ActionNone Action = iota

	// Camera movement, one chunk per press
	ActionPanNorth
	ActionPanSouth
	ActionPanWest
	ActionPanEast

	ActionCenter // back to the origin
	ActionHelp
	ActionQuit
)

// bindings maps key codes to actions. Multiple codes may point to the same
// Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	KeyArrowUp:    ActionPanNorth,
	"w":           ActionPanNorth,
	"k":           ActionPanNorth,
	KeyArrowDown:  ActionPanSouth,
	"s":           ActionPanSouth,
	"j":           ActionPanSouth,
	KeyArrowLeft:  ActionPanWest,
	"a":           ActionPanWest,
	"h":           ActionPanWest,
	KeyArrowRight: ActionPanEast,
	"d":           ActionPanEast,
	"l":           ActionPanEast,

	"0":          ActionCenter,
	"c":          ActionCenter,
	"?":          ActionHelp,
	"q":          ActionQuit,
	KeyEscape:    ActionQuit,
	KeyInterrupt: ActionQuit,
}

// ActionFor returns the action bound to a key code
func ActionFor(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionPanNorth:
		return "Pan North"
	case ActionPanSouth:
		return "Pan South"
	case ActionPanWest:
		return "Pan West"
	case ActionPanEast:
		return "Pan East"
	case ActionCenter:
		return "Center"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Direction returns the chunk step of a pan action, (0, 0) for others.
// North is +y.
func Direction(a Action) (dx, dy int) {
	switch a {
	case ActionPanNorth:
		return 0, 1
	case ActionPanSouth:
		return 0, -1
	case ActionPanWest:
		return -1, 0
	case ActionPanEast:
		return 1, 0
	default:
		return 0, 0
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so help text doesn't change.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
