package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoLegalMove  = errors.New("no legal moves")
	ErrEmptyHistory = errors.New("history is empty")
	ErrGameOver     = errors.New("game is over - no moves allowed")
	ErrEndlessRelay = errors.New("relay sowing never reaches an empty pit")
	ErrInvalidSeeds = errors.New("seeds per pit must be positive")
	ErrInvalidBoard = errors.New("invalid board")
)

// IllegalMoveError describes why a pit cannot be played. It matches ErrIllegalMove with errors.Is.
type IllegalMoveError struct {
	Pit    int
	Player Player
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: pit %d for player %s: %s", e.Pit, e.Player, e.Reason)
}

func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}
