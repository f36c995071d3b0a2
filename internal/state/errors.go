package state

import "errors"

var (
	ErrEmptyUndoStack    = errors.New("nothing to undo")
	ErrEmptyRedoStack    = errors.New("nothing to redo")
	ErrIncompleteEntry   = errors.New("entry is not fully committed")
	ErrGestureInProgress = errors.New("tool change ignored while gesturing")
	ErrUnknownTool       = errors.New("unknown tool")
)
