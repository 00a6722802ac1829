package game

// Capture records the opposite pit emptied by a capture and how many seeds it held.
type Capture struct {
	Pit   int
	Seeds int
}

type Rules interface {
	Ruleset() Ruleset
	// EvaluateCapture applies the capture rule after a sowing landed on pit landing.
	// It clears the captured pit on the board; crediting the seeds is up to the caller.
	EvaluateCapture(b *Board, landing int, p Player) (Capture, bool)
}

// NewRules returns the rules for a ruleset, falling back to classic.
func NewRules(r Ruleset) Rules {
	if r == Southern {
		return SouthernRules{}
	}
	return ClassicRules{}
}

type ClassicRules struct{}

func (ClassicRules) Ruleset() Ruleset {
	return Classic
}

// EvaluateCapture fires when the last seed lands in an empty pit of the mover's row.
// An empty opposite pit still counts as a capture of zero seeds.
func (ClassicRules) EvaluateCapture(b *Board, landing int, p Player) (Capture, bool) {
	if !inRange(landing) || Owner(landing) != p || b[landing] != 1 {
		return Capture{}, false
	}
	opp := Opposite(landing)
	c := Capture{Pit: opp, Seeds: b[opp]}
	b[opp] = 0
	return c, true
}

type SouthernRules struct{}

func (SouthernRules) Ruleset() Ruleset {
	return Southern
}

func (SouthernRules) EvaluateCapture(*Board, int, Player) (Capture, bool) {
	return Capture{}, false
}

// EvaluateCapture applies the capture rule of ruleset rs.
func EvaluateCapture(b *Board, landing int, p Player, rs Ruleset) (Capture, bool) {
	return NewRules(rs).EvaluateCapture(b, landing, p)
}
