package agent

import (
	"fmt"

	"pallanguzhi/game"
)

const (
	KindHeuristic = "heuristic"
	KindRandom    = "random"
)

type Agent interface {
	// FindMove picks a pit for the active player, false if there is nothing to play
	FindMove(state game.GameState) (pit int, ok bool)
}

// New builds an agent by kind. The seed is only used by randomized agents.
func New(kind string, seed uint64) (Agent, error) {
	switch kind {
	case KindHeuristic:
		return NewHeuristic(), nil
	case KindRandom:
		return NewRandom(seed), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", kind)
}
