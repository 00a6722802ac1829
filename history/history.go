package history

import "pallanguzhi/game"

// History keeps snapshots for linear undo and redo. Snapshots are stored by value,
// so later moves can never reach back into them.
type History struct {
	past   []game.GameState
	future []game.GameState
}

func New() *History {
	return &History{}
}

// Record pushes the state taken before a move and drops the redo history.
func (h *History) Record(state game.GameState) {
	h.past = append(h.past, state)
	h.future = h.future[:0]
}

// Undo returns the state before the last recorded move; current becomes redoable.
func (h *History) Undo(current game.GameState) (game.GameState, error) {
	if len(h.past) == 0 {
		return current, game.ErrEmptyHistory
	}
	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, current)
	return prev, nil
}

// Redo returns the state most recently undone; current becomes undoable again.
func (h *History) Redo(current game.GameState) (game.GameState, error) {
	if len(h.future) == 0 {
		return current, game.ErrEmptyHistory
	}
	next := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, current)
	return next, nil
}

func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// Len returns the number of undoable and redoable snapshots.
func (h *History) Len() (past, future int) {
	return len(h.past), len(h.future)
}

func (h *History) Clear() {
	h.past = nil
	h.future = nil
}
