package metrics

import (
	"time"

	"pallanguzhi/game"

	"github.com/google/uuid"
)

type AgentConfig struct {
	ID   int
	Kind string
	Seed uint64
}

type MoveMetric struct {
	Step     int
	Player   game.Player
	Pit      int
	Landing  int
	Captured int // Seeds taken by a capture, 0 if none fired
	Swept    int // Seeds collected at game end
	Hash     game.StateHash
	Duration time.Duration // Time the agent took to choose
}

type GameMetric struct {
	ID             uuid.UUID
	StartingPlayer game.Player
	Winner         game.Outcome
	CapturedA      int
	CapturedB      int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Aborted        bool // Ended by the turn limit or an agent without a move
}

type Collector interface {
	Start(id uuid.UUID, first game.Player)
	AddMove(move MoveMetric)
	Complete(final game.GameState, aborted bool) (GameMetric, []MoveMetric)
}

type collector struct {
	id        uuid.UUID
	first     game.Player
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(id uuid.UUID, first game.Player) {
	c.id = id
	c.first = first
	c.startTime = time.Now()
	c.moves = nil
}

func (c *collector) AddMove(move MoveMetric) {
	c.moves = append(c.moves, move)
}

func (c *collector) Complete(final game.GameState, aborted bool) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		ID:             c.id,
		StartingPlayer: c.first,
		Winner:         final.Winner(),
		CapturedA:      final.Captured[game.PlayerA],
		CapturedB:      final.Captured[game.PlayerB],
		StartTime:      c.startTime,
		EndTime:        end,
		Duration:       end.Sub(c.startTime),
		TotalMoves:     len(c.moves),
		Aborted:        aborted,
	}, c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(uuid.UUID, game.Player) {}
func (c *dummyCollector) AddMove(MoveMetric)           {}
func (c *dummyCollector) Complete(game.GameState, bool) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
