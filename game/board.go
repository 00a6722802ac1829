package game

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Board holds the seed count of every pit in circular sowing order.
// It is an array, so assigning a Board copies it.
type Board [PitCount]int

var boardRepr = regexp.MustCompile(`^\s*<\s*(-?\d+(\s*,\s*-?\d+)*)\s*>\s*$`)

// NewBoard creates a board with seeds in every pit.
func NewBoard(seeds int) Board {
	var b Board
	for i := range b {
		b[i] = seeds
	}
	return b
}

// ParseBoard reads the <p0,p1,...,p13> representation produced by Board.String.
func ParseBoard(s string) (Board, error) {
	var b Board
	match := boardRepr.FindStringSubmatch(s)
	if match == nil {
		return b, fmt.Errorf("%w: cannot parse %q", ErrInvalidBoard, s)
	}

	parts := strings.Split(match[1], ",")
	if len(parts) != PitCount {
		return b, fmt.Errorf("%w: expected %d pits, got %d", ErrInvalidBoard, PitCount, len(parts))
	}
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return b, fmt.Errorf("%w: pit %d: %v", ErrInvalidBoard, i, err)
		}
		if n < 0 {
			return b, fmt.Errorf("%w: pit %d holds %d seeds", ErrInvalidBoard, i, n)
		}
		b[i] = n
	}
	return b, nil
}

func (b Board) String() string {
	var buf bytes.Buffer
	buf.WriteByte('<')
	for i, seeds := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(seeds))
	}
	buf.WriteByte('>')
	return buf.String()
}

// Owner returns the player owning pit i.
func Owner(i int) Player {
	if i < PitsPerSide {
		return PlayerA
	}
	return PlayerB
}

// Opposite returns the pit facing pit i across the board.
func Opposite(i int) int {
	return PitCount - 1 - i
}

// Next returns the pit after i in sowing order.
func Next(i int) int {
	return (i + 1) % PitCount
}

func inRange(i int) bool {
	return i >= 0 && i < PitCount
}

// side returns the first pit and the end (exclusive) of the player's row.
func side(p Player) (start, end int) {
	if p == PlayerA {
		return 0, PitsPerSide
	}
	return PitsPerSide, PitCount
}

func (b Board) IsLegal(i int, p Player) bool {
	return inRange(i) && Owner(i) == p && b[i] > 0
}

// LegalMoves returns the player's non-empty pits in ascending order.
func (b Board) LegalMoves(p Player) []int {
	start, end := side(p)
	moves := make([]int, 0, PitsPerSide)
	for i := start; i < end; i++ {
		if b[i] > 0 {
			moves = append(moves, i)
		}
	}
	return moves
}

func (b Board) HasMoves(p Player) bool {
	return b.SideTotal(p) > 0
}

// SideTotal sums the seeds left in the player's row.
func (b Board) SideTotal(p Player) int {
	start, end := side(p)
	total := 0
	for _, seeds := range b[start:end] {
		total += seeds
	}
	return total
}

func (b Board) Total() int {
	return b.SideTotal(PlayerA) + b.SideTotal(PlayerB)
}

// clearSide empties the player's row and returns the seeds removed.
func (b *Board) clearSide(p Player) int {
	start, end := side(p)
	removed := 0
	for i := start; i < end; i++ {
		removed += b[i]
		b[i] = 0
	}
	return removed
}

// PitLabel numbers a pit 1-7 from its owner's point of view: A counts left to right
// along the bottom row, B counts right to left along the top row.
func PitLabel(i int) int {
	if Owner(i) == PlayerA {
		return i + 1
	}
	return PitCount - i
}

// PitForLabel maps a 1-7 pit label back to the board index for the player.
func PitForLabel(p Player, label int) (int, error) {
	if label < 1 || label > PitsPerSide {
		return 0, fmt.Errorf("pit label %d out of range 1-%d", label, PitsPerSide)
	}
	if p == PlayerA {
		return label - 1, nil
	}
	return PitCount - label, nil
}
