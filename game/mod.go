package game

import "fmt"

const (
	PitCount    = 14
	PitsPerSide = PitCount / 2

	DefaultSeedsPerPit = 5
)

// Player identifies one side of the board. Player A owns pits 0-6, player B owns pits 7-13.
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

func (p Player) Other() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

func (p Player) valid() bool {
	return p == PlayerA || p == PlayerB
}

func ParsePlayer(s string) (Player, error) {
	switch s {
	case "A", "a":
		return PlayerA, nil
	case "B", "b":
		return PlayerB, nil
	}
	return PlayerA, fmt.Errorf("unknown player %q", s)
}

type Ruleset int

const (
	Classic Ruleset = iota
	// Southern is selectable but currently never captures.
	Southern
)

func (r Ruleset) String() string {
	switch r {
	case Classic:
		return "classic"
	case Southern:
		return "southern"
	default:
		return fmt.Sprintf("Ruleset(%d)", int(r))
	}
}

func ParseRuleset(s string) (Ruleset, error) {
	switch s {
	case "classic":
		return Classic, nil
	case "southern":
		return Southern, nil
	}
	return Classic, fmt.Errorf("unknown ruleset %q", s)
}

// Outcome is the result of a game: no result yet, a win for either player, or a draw.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeA
	OutcomeB
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeA:
		return "A"
	case OutcomeB:
		return "B"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// Winner returns the winning player, false for a draw or an unfinished game.
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case OutcomeA:
		return PlayerA, true
	case OutcomeB:
		return PlayerB, true
	}
	return PlayerA, false
}

func outcomeFor(p Player) Outcome {
	if p == PlayerA {
		return OutcomeA
	}
	return OutcomeB
}

// Score holds the captured seed totals indexed by Player.
type Score [2]int

func (s Score) Total() int {
	return s[PlayerA] + s[PlayerB]
}
