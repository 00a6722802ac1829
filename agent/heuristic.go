package agent

import "pallanguzhi/game"

// captureWeight scales captured seeds; the extra point makes an empty capture count.
const captureWeight = 2

// Heuristic looks one move ahead: it prefers captures, then long sowings.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (h *Heuristic) FindMove(state game.GameState) (int, bool) {
	if state.Over {
		return 0, false
	}
	return h.ChooseMove(state.Board, state.Active, state.Ruleset)
}

// ChooseMove returns the best scoring legal pit for player p. Ties go to the lowest
// pit. Pits whose relay never ends are skipped.
func (h *Heuristic) ChooseMove(b game.Board, p game.Player, rs game.Ruleset) (int, bool) {
	best, bestScore := 0, -1
	for _, pit := range b.LegalMoves(p) {
		score, err := ScoreMove(b, pit, p, rs)
		if err != nil {
			continue
		}
		if score > bestScore {
			best, bestScore = pit, score
		}
	}
	return best, bestScore >= 0
}

// ScoreMove simulates pit on a copy of the board and scores the result.
func ScoreMove(b game.Board, pit int, p game.Player, rs game.Ruleset) (int, error) {
	sown := b
	landing, err := game.Sow(&sown, pit)
	if err != nil {
		return 0, err
	}

	score := b[pit]
	if c, ok := game.EvaluateCapture(&sown, landing, p, rs); ok {
		score += c.Seeds*captureWeight + 1
	}
	return score, nil
}
