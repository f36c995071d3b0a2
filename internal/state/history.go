package state

import (
	"log/slog"
	"sync"
)

// Store owns the committed History and the redo buffer.
//
// History is append-only except for Undo, which moves the tail onto the
// redo buffer, and Redo, which moves it back. Any Commit empties the redo
// buffer. Reads are safe from other goroutines (the paint loop reads
// snapshots), mutations are expected on the event goroutine.
type Store struct {
	clock   Clock
	history []DrawingEntry
	redo    []DrawingEntry
	logger  *slog.Logger
	mu      sync.RWMutex
}

// NewStore creates an empty store. A nil logger discards output.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{logger: logger}
}

// Commit stamps e with a fresh ID and sequence number, appends it to
// History and clears the redo buffer. The stored path is a copy of e.Path.
func (s *Store) Commit(e DrawingEntry) (DrawingEntry, error) {
	if !e.complete() {
		return DrawingEntry{}, ErrIncompleteEntry
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e.Path = e.Path.Clone()
	e.ID = newEntryID()
	e.Seq = s.clock.Tick()
	s.history = append(s.history, e)
	dropped := len(s.redo)
	s.redo = nil

	s.logger.Debug("entry committed",
		"id", e.ID,
		"seq", e.Seq,
		"kind", string(e.Kind),
		"history", len(s.history),
		"redo_dropped", dropped,
	)
	return e, nil
}

// Undo moves the last History entry onto the redo buffer and returns the
// resulting History. On an empty History nothing changes.
func (s *Store) Undo() ([]DrawingEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.history)
	if n == 0 {
		return s.snapshotLocked(), ErrEmptyUndoStack
	}
	last := s.history[n-1]
	s.history[n-1] = DrawingEntry{}
	s.history = s.history[:n-1]
	s.redo = append(s.redo, last)

	s.logger.Debug("entry undone", "id", last.ID, "history", len(s.history), "redo", len(s.redo))
	return s.snapshotLocked(), nil
}

// Redo moves the last redo entry back onto History and returns the
// resulting History. On an empty redo buffer nothing changes.
func (s *Store) Redo() ([]DrawingEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.redo)
	if n == 0 {
		return s.snapshotLocked(), ErrEmptyRedoStack
	}
	last := s.redo[n-1]
	s.redo[n-1] = DrawingEntry{}
	s.redo = s.redo[:n-1]
	s.history = append(s.history, last)

	s.logger.Debug("entry redone", "id", last.ID, "history", len(s.history), "redo", len(s.redo))
	return s.snapshotLocked(), nil
}

// Snapshot returns History in render order. The slice is a copy.
func (s *Store) Snapshot() []DrawingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// RedoSnapshot returns the redo buffer, bottom of the stack first.
func (s *Store) RedoSnapshot() []DrawingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]DrawingEntry, len(s.redo))
	copy(out, s.redo)
	return out
}

func (s *Store) snapshotLocked() []DrawingEntry {
	out := make([]DrawingEntry, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

func (s *Store) RedoLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.redo)
}

func (s *Store) CanUndo() bool { return s.Len() > 0 }
func (s *Store) CanRedo() bool { return s.RedoLen() > 0 }
