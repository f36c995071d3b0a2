package input

import "strings"

// Action is a keyboard-triggered board action.
type Action int

const (
	ActionNone Action = iota
	ActionPaste
	ActionUndo
	ActionRedo
	ActionExport
)

func (a Action) String() string {
	switch a {
	case ActionPaste:
		return "paste"
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	case ActionExport:
		return "export"
	}
	return "none"
}

// ShortcutAction maps Ctrl+V, Ctrl+Z, Ctrl+Y and Ctrl+E to actions.
// Keys are matched case-insensitively; everything else is ActionNone.
func ShortcutAction(ctrl bool, key string) Action {
	if !ctrl {
		return ActionNone
	}
	switch strings.ToLower(key) {
	case "v":
		return ActionPaste
	case "z":
		return ActionUndo
	case "y":
		return ActionRedo
	case "e":
		return ActionExport
	}
	return ActionNone
}
