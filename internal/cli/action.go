package cli

import "strings"

// Action is one menu entry.
type Action int

const (
	ActionInvalid Action = iota
	ActionCreate
	ActionEdit
	ActionDelete
	ActionList
	ActionComplete
	ActionExit
)

var actionNames = map[Action]string{
	ActionInvalid:  "invalid",
	ActionCreate:   "create",
	ActionEdit:     "edit",
	ActionDelete:   "delete",
	ActionList:     "list",
	ActionComplete: "complete",
	ActionExit:     "exit",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "invalid"
}

// ParseAction maps one input line to an action. A single trailing "\n" and
// then "\r" are stripped; anything but "1".."6" is ActionInvalid.
func ParseAction(line string) Action {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	switch line {
	case "1":
		return ActionCreate
	case "2":
		return ActionEdit
	case "3":
		return ActionDelete
	case "4":
		return ActionList
	case "5":
		return ActionComplete
	case "6":
		return ActionExit
	}
	return ActionInvalid
}

// State of the menu loop.
type State int

const (
	StateRunning State = iota
	StateExiting
)
