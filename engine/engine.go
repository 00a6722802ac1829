package engine

import (
	"errors"
	"fmt"

	"pallanguzhi/agent"
	"pallanguzhi/game"
	"pallanguzhi/history"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrMoveInFlight rejects commands issued while a move is still resolving.
var ErrMoveInFlight = errors.New("a move is already being resolved")

type Status int

const (
	Accepted Status = iota
	Rejected
	GameOver
)

func (s Status) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is what a UI gets back from a move: accepted, rejected with a reason,
// or accepted and finishing the game with a winner.
type Outcome struct {
	Status Status
	Reason error
	Winner game.Outcome
	Result game.MoveResult
}

type Option func(e *Engine)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.baseLogger = logger
	}
}

// WithStepObserver receives every sowing step of accepted moves, in order, before
// the move is committed. It is meant for animation.
func WithStepObserver(observer func(game.Step)) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

// WithSelector replaces the heuristic used by RequestAiMove.
func WithSelector(selector agent.Agent) Option {
	return func(e *Engine) {
		if selector != nil {
			e.selector = selector
		}
	}
}

// Engine owns the live game state. It is not safe for concurrent use; callers
// serialize commands, and commands issued from a step observer are rejected.
type Engine struct {
	state      game.GameState
	history    *history.History
	selector   agent.Agent
	observer   func(game.Step)
	baseLogger zerolog.Logger
	logger     zerolog.Logger
	gameID     uuid.UUID
	resolving  bool
}

func build(options []Option) *Engine {
	e := &Engine{
		history:    history.New(),
		selector:   agent.NewHeuristic(),
		baseLogger: log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// New returns an engine with a fresh classic game, 5 seeds per pit, A to move.
func New(options ...Option) *Engine {
	e := build(options)
	if err := e.NewGame(game.DefaultSeedsPerPit, game.PlayerA, game.Classic); err != nil {
		panic(err)
	}
	return e
}

// Start returns an engine whose first game uses the given settings.
func Start(seedsPerPit int, first game.Player, ruleset game.Ruleset, options ...Option) (*Engine, error) {
	e := build(options)
	if err := e.NewGame(seedsPerPit, first, ruleset); err != nil {
		return nil, err
	}
	return e, nil
}

// NewGame discards the current game and its history.
func (e *Engine) NewGame(seedsPerPit int, first game.Player, ruleset game.Ruleset) error {
	state, err := game.NewGameState(seedsPerPit, first, ruleset)
	if err != nil {
		return err
	}
	return e.reset(state)
}

// Load starts a game from an arbitrary position.
func (e *Engine) Load(state game.GameState) error {
	loaded, err := game.FromBoard(state.Board, state.Active, state.Captured, state.Ruleset)
	if err != nil {
		return err
	}
	loaded.SeedsPerPit = state.SeedsPerPit
	return e.reset(loaded)
}

func (e *Engine) reset(state game.GameState) error {
	if e.resolving {
		return ErrMoveInFlight
	}
	e.state = state
	e.history.Clear()
	e.gameID = uuid.New()
	e.logger = e.baseLogger.With().Str("game_id", e.gameID.String()).Logger()
	e.logger.Info().
		Int("seeds_per_pit", state.SeedsPerPit).
		Stringer("first", state.Active).
		Stringer("ruleset", state.Ruleset).
		Msg("new game")
	return nil
}

// PlayMove plays pit for the active player. Rejected moves change nothing.
func (e *Engine) PlayMove(pit int) Outcome {
	if e.resolving {
		return Outcome{Status: Rejected, Reason: ErrMoveInFlight}
	}
	e.resolving = true
	defer func() { e.resolving = false }()

	next := e.state
	res, err := next.Apply(pit)
	if err != nil {
		e.logger.Debug().Err(err).Int("pit", pit).Stringer("player", e.state.Active).Msg("move rejected")
		return Outcome{Status: Rejected, Reason: err}
	}

	if e.observer != nil {
		for step := range game.Steps(e.state.Board, pit) {
			e.observer(step)
		}
	}

	e.history.Record(e.state)
	e.state = next

	event := e.logger.Debug().
		Stringer("player", res.Player).
		Int("pit", res.Pit).
		Int("landing", res.Landing)
	if res.Captured {
		event = event.Int("captured", res.Capture.Seeds).Int("captured_pit", res.Capture.Pit)
	}
	event.Msg("move played")

	if res.GameOver {
		e.logger.Info().
			Stringer("winner", res.Winner).
			Int("captured_a", e.state.Captured[game.PlayerA]).
			Int("captured_b", e.state.Captured[game.PlayerB]).
			Msg("game over")
		return Outcome{Status: GameOver, Winner: res.Winner, Result: res}
	}
	return Outcome{Status: Accepted, Result: res}
}

// Undo steps back one move. It returns false when there is nothing to undo.
func (e *Engine) Undo() bool {
	if e.resolving {
		return false
	}
	prev, err := e.history.Undo(e.state)
	if err != nil {
		return false
	}
	e.state = prev
	return true
}

// Redo replays the last undone move. It returns false when there is nothing to redo.
func (e *Engine) Redo() bool {
	if e.resolving {
		return false
	}
	next, err := e.history.Redo(e.state)
	if err != nil {
		return false
	}
	e.state = next
	return true
}

// RequestAiMove asks the selector for a move for the active player without playing it.
func (e *Engine) RequestAiMove() (int, bool) {
	return e.selector.FindMove(e.state)
}

// PlayAiMove plays the selector's move for the active player.
func (e *Engine) PlayAiMove() Outcome {
	pit, ok := e.RequestAiMove()
	if !ok {
		reason := game.ErrNoLegalMove
		if e.state.Over {
			reason = game.ErrGameOver
		}
		return Outcome{Status: Rejected, Reason: reason}
	}
	return e.PlayMove(pit)
}

func (e *Engine) Pits() []int {
	pits := e.state.Board
	return pits[:]
}

func (e *Engine) ActivePlayer() game.Player {
	return e.state.Active
}

func (e *Engine) Captured() game.Score {
	return e.state.Captured
}

func (e *Engine) IsGameOver() bool {
	return e.state.Over
}

func (e *Engine) Winner() game.Outcome {
	return e.state.Winner()
}

// State returns a copy of the live state.
func (e *Engine) State() game.GameState {
	return e.state
}

func (e *Engine) GameID() uuid.UUID {
	return e.gameID
}

func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}
