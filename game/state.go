package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

type StateHash uint64

// GameState is the complete state of a game at any point. All of its fields are
// values, so a plain assignment is a deep copy.
type GameState struct {
	Board       Board   // Seeds per pit
	Active      Player  // The player to move
	Captured    Score   // Seeds captured or swept per player
	Ruleset     Ruleset // The capture rules in force
	SeedsPerPit int     // Seeds per pit at the start of the game, 0 for loaded positions
	Seeds       int     // Total seeds in play, fixed at creation
	Over        bool    // Whether the game has ended
}

// MoveResult describes how a move resolved.
type MoveResult struct {
	Player   Player
	Pit      int
	Landing  int
	Capture  Capture // Valid when Captured is set
	Captured bool
	Sweep    Sweep // Valid when Swept is set
	Swept    bool
	GameOver bool
	Winner   Outcome
}

// Sweep records the remaining seeds a player collected from their own row at game end.
type Sweep struct {
	Player Player
	Seeds  int
}

// NewGameState initializes a game with seedsPerPit seeds in every pit.
func NewGameState(seedsPerPit int, first Player, ruleset Ruleset) (GameState, error) {
	if seedsPerPit <= 0 {
		return GameState{}, fmt.Errorf("%w: got %d", ErrInvalidSeeds, seedsPerPit)
	}
	if !first.valid() {
		return GameState{}, fmt.Errorf("invalid first player %d", int(first))
	}
	return GameState{
		Board:       NewBoard(seedsPerPit),
		Active:      first,
		Ruleset:     ruleset,
		SeedsPerPit: seedsPerPit,
		Seeds:       PitCount * seedsPerPit,
	}, nil
}

// FromBoard builds a position from an arbitrary board and captured totals.
// The game is marked over if either row is already empty.
func FromBoard(b Board, active Player, captured Score, ruleset Ruleset) (GameState, error) {
	if !active.valid() {
		return GameState{}, fmt.Errorf("invalid active player %d", int(active))
	}
	for i, seeds := range b {
		if seeds < 0 {
			return GameState{}, fmt.Errorf("%w: pit %d holds %d seeds", ErrInvalidBoard, i, seeds)
		}
	}
	if captured[PlayerA] < 0 || captured[PlayerB] < 0 {
		return GameState{}, fmt.Errorf("%w: negative captured total %v", ErrInvalidBoard, captured)
	}
	gs := GameState{
		Board:    b,
		Active:   active,
		Captured: captured,
		Ruleset:  ruleset,
		Seeds:    b.Total() + captured.Total(),
	}
	if !b.HasMoves(PlayerA) || !b.HasMoves(PlayerB) {
		gs.Over = true
	}
	return gs, nil
}

func (gs GameState) LegalMoves() []int {
	if gs.Over {
		return nil
	}
	return gs.Board.LegalMoves(gs.Active)
}

// PlayableMoves returns the legal moves whose sowing comes to rest.
func (gs GameState) PlayableMoves() []int {
	moves := gs.LegalMoves()
	playable := moves[:0]
	for _, pit := range moves {
		b := gs.Board
		if _, err := Sow(&b, pit); err == nil {
			playable = append(playable, pit)
		}
	}
	return playable
}

// CheckMove reports why pit cannot be played by the active player, or nil.
func (gs GameState) CheckMove(pit int) error {
	if gs.Over {
		return ErrGameOver
	}
	reason := ""
	switch {
	case !inRange(pit):
		reason = "no such pit"
	case Owner(pit) != gs.Active:
		reason = fmt.Sprintf("pit belongs to player %s", Owner(pit))
	case gs.Board[pit] == 0:
		reason = "pit is empty"
	default:
		return nil
	}
	return &IllegalMoveError{Pit: pit, Player: gs.Active, Reason: reason}
}

// Apply plays pit for the active player: sowing, capture, end-of-game check and
// sweep, then the turn passes. On error the state is left untouched.
func (gs *GameState) Apply(pit int) (MoveResult, error) {
	if err := gs.CheckMove(pit); err != nil {
		return MoveResult{}, err
	}

	next := *gs
	landing, err := Sow(&next.Board, pit)
	if err != nil {
		return MoveResult{}, err
	}

	res := MoveResult{Player: gs.Active, Pit: pit, Landing: landing}
	if c, ok := NewRules(gs.Ruleset).EvaluateCapture(&next.Board, landing, gs.Active); ok {
		next.Captured[gs.Active] += c.Seeds
		res.Capture = c
		res.Captured = true
	}

	if !next.Board.HasMoves(PlayerA) || !next.Board.HasMoves(PlayerB) {
		res.Sweep, res.Swept = next.sweep()
		next.Over = true
		res.GameOver = true
		res.Winner = next.Winner()
	} else {
		next.Active = next.Active.Other()
	}

	*gs = next
	return res, nil
}

// Play returns the state after playing pit, leaving gs as it is.
func (gs GameState) Play(pit int) (GameState, MoveResult, error) {
	res, err := gs.Apply(pit)
	return gs, res, err
}

// sweep awards the seeds of the only non-empty row to its owner.
func (gs *GameState) sweep() (Sweep, bool) {
	remA := gs.Board.SideTotal(PlayerA)
	remB := gs.Board.SideTotal(PlayerB)

	switch {
	case remA > 0 && remB > 0:
		panic(fmt.Sprintf("sweep with seeds on both rows: %s", gs.Board))
	case remA > 0:
		gs.Captured[PlayerA] += gs.Board.clearSide(PlayerA)
		return Sweep{Player: PlayerA, Seeds: remA}, true
	case remB > 0:
		gs.Captured[PlayerB] += gs.Board.clearSide(PlayerB)
		return Sweep{Player: PlayerB, Seeds: remB}, true
	}
	return Sweep{}, false
}

// Winner compares captured totals once the game is over.
func (gs GameState) Winner() Outcome {
	if !gs.Over {
		return OutcomeNone
	}
	a, b := gs.Captured[PlayerA], gs.Captured[PlayerB]
	switch {
	case a > b:
		return outcomeFor(PlayerA)
	case b > a:
		return outcomeFor(PlayerB)
	default:
		return OutcomeDraw
	}
}

// Conserved reports whether no seed has been created or destroyed.
func (gs GameState) Conserved() bool {
	return gs.Board.Total()+gs.Captured.Total() == gs.Seeds
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Active))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Ruleset))
	for _, seeds := range gs.Board {
		binary.Write(hasher, binary.LittleEndian, int64(seeds))
	}
	for _, captured := range gs.Captured {
		binary.Write(hasher, binary.LittleEndian, int64(captured))
	}
	over := int64(0)
	if gs.Over {
		over = 1
	}
	binary.Write(hasher, binary.LittleEndian, over)

	return StateHash(hasher.Sum64())
}
