package agent

import (
	"testing"

	"pallanguzhi/game"

	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	t.Run("only plays playable pits", func(t *testing.T) {
		gs, err := game.FromBoard(game.Board{1, 0, 1, 0, 1, 3, 1, 0, 1, 0, 1, 0, 1, 0}, game.PlayerA, game.Score{}, game.Classic)
		require.NoError(t, err)
		r := NewRandom(7)

		for i := 0; i < 50; i++ {
			pit, ok := r.FindMove(gs)
			require.True(t, ok)
			require.Contains(t, []int{0, 2, 4, 6}, pit)
		}
	})

	t.Run("same seed, same choices", func(t *testing.T) {
		gs, err := game.NewGameState(5, game.PlayerA, game.Classic)
		require.NoError(t, err)
		r1, r2 := NewRandom(42), NewRandom(42)

		for i := 0; i < 20; i++ {
			p1, _ := r1.FindMove(gs)
			p2, _ := r2.FindMove(gs)
			require.Equal(t, p1, p2)
		}
	})

	t.Run("nothing to play after game over", func(t *testing.T) {
		gs, err := game.FromBoard(game.Board{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0}, game.PlayerA, game.Score{}, game.Classic)
		require.NoError(t, err)

		_, ok := NewRandom(1).FindMove(gs)

		require.False(t, ok)
	})
}

func TestNew(t *testing.T) {
	t.Run("builds known kinds", func(t *testing.T) {
		a, err := New(KindHeuristic, 0)
		require.NoError(t, err)
		require.IsType(t, &Heuristic{}, a)

		a, err = New(KindRandom, 3)
		require.NoError(t, err)
		require.IsType(t, &Random{}, a)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := New("minimax", 0)
		require.Error(t, err)
	})
}
