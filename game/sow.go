package game

import (
	"fmt"
	"iter"
)

type StepKind int

const (
	StepPickup StepKind = iota // seeds lifted from the starting pit
	StepDeposit
	StepRelay // seeds lifted from a pit that was not empty before the last deposit
	StepLand
)

func (k StepKind) String() string {
	switch k {
	case StepPickup:
		return "pickup"
	case StepDeposit:
		return "deposit"
	case StepRelay:
		return "relay"
	case StepLand:
		return "land"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is one observable moment of a sowing, with the board as it stands after it.
type Step struct {
	Kind  StepKind
	Pit   int
	Hand  int // seeds still in hand after the step
	Board Board
}

// MaxRelays bounds the relay pickups of one sowing. Relays that terminate in
// practice need a few hundred pickups; anything past the bound is treated as
// endless.
const MaxRelays = 1 << 16

type relayState struct {
	board Board
	pit   int
}

type sower struct {
	board   Board
	pos     int
	hand    int
	started bool
	done    bool
	err     error

	// Brent's cycle detection over the relay states
	relays int
	saved  relayState
	power  int
	lambda int
}

func newSower(b Board, start int) *sower {
	return &sower{board: b, pos: start, power: 1}
}

// endless reports whether the relay about to be picked up at s.pos repeats a
// saved state or exceeds MaxRelays.
func (s *sower) endless() error {
	current := relayState{board: s.board, pit: s.pos}
	if s.relays > 0 && current == s.saved {
		return ErrEndlessRelay
	}
	s.relays++
	if s.relays > MaxRelays {
		return fmt.Errorf("%w: more than %d relays", ErrEndlessRelay, MaxRelays)
	}
	if s.relays == 1 || s.lambda == s.power {
		s.saved = current
		s.power *= 2
		s.lambda = 0
	}
	s.lambda++
	return nil
}

// step advances the sowing by one pickup, deposit or landing. It returns false once
// the sowing has landed or has been found to relay forever.
func (s *sower) step() (Step, bool) {
	if s.done {
		return Step{}, false
	}

	switch {
	case !s.started:
		s.started = true
		s.hand = s.board[s.pos]
		s.board[s.pos] = 0
		return s.emit(StepPickup), true

	case s.hand > 0:
		s.pos = Next(s.pos)
		s.board[s.pos]++
		s.hand--
		return s.emit(StepDeposit), true

	case s.board[s.pos] > 1:
		if err := s.endless(); err != nil {
			s.done = true
			s.err = err
			return Step{}, false
		}
		s.hand = s.board[s.pos]
		s.board[s.pos] = 0
		return s.emit(StepRelay), true

	default:
		s.done = true
		return s.emit(StepLand), true
	}
}

func (s *sower) emit(kind StepKind) Step {
	return Step{Kind: kind, Pit: s.pos, Hand: s.hand, Board: s.board}
}

func (s *sower) run() (int, error) {
	for {
		if _, ok := s.step(); !ok {
			break
		}
	}
	if s.err != nil {
		return 0, s.err
	}
	return s.pos, nil
}

func checkStart(b *Board, start int) error {
	if !inRange(start) {
		return fmt.Errorf("%w: pit %d out of range", ErrIllegalMove, start)
	}
	if b[start] == 0 {
		return fmt.Errorf("%w: pit %d is empty", ErrIllegalMove, start)
	}
	return nil
}

// Sow distributes the seeds of pit start with relay continuation and returns the
// landing pit. The board is only modified when sowing succeeds.
func Sow(b *Board, start int) (int, error) {
	if err := checkStart(b, start); err != nil {
		return 0, err
	}
	s := newSower(*b, start)
	landing, err := s.run()
	if err != nil {
		return 0, fmt.Errorf("sowing pit %d of %s: %w", start, b, err)
	}
	*b = s.board
	return landing, nil
}

// Steps yields every step of sowing pit start on a copy of b. Each range over the
// sequence replays the sowing from the beginning. The sequence is empty for an
// empty or out-of-range pit and stops early if the relay never ends.
func Steps(b Board, start int) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		if checkStart(&b, start) != nil {
			return
		}
		s := newSower(b, start)
		for {
			st, ok := s.step()
			if !ok || !yield(st) {
				return
			}
		}
	}
}
