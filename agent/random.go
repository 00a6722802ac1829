package agent

import (
	"pallanguzhi/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random playable pit. Equal seeds give equal games.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(state game.GameState) (int, bool) {
	moves := state.PlayableMoves()
	if len(moves) == 0 {
		return 0, false
	}
	return moves[r.rng.Intn(len(moves))], true
}
