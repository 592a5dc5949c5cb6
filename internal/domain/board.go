package domain

import (
	"errors"
	"strings"
)

// Size is the width and height of the board.
const Size = 4

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	Cookie
	Milk
)

// ErrInvalidMarker is returned for team names other than cookie or milk,
// and when Empty is used as a marker.
var ErrInvalidMarker = errors.New("invalid marker")

// ParseMarker maps a team name to its marker.
func ParseMarker(team string) (Cell, error) {
	switch team {
	case "cookie":
		return Cookie, nil
	case "milk":
		return Milk, nil
	default:
		return Empty, ErrInvalidMarker
	}
}

// Glyph returns the single-character depiction of the cell.
func (c Cell) Glyph() string {
	switch c {
	case Cookie:
		return "🍪"
	case Milk:
		return "🥛"
	default:
		return "⬛"
	}
}

func (c Cell) String() string {
	switch c {
	case Cookie:
		return "cookie"
	case Milk:
		return "milk"
	default:
		return "empty"
	}
}

// Board is a fixed 4x4 grid indexed [column][row]; row 0 is the bottom.
type Board [Size][Size]Cell

// Get returns the cell at column c, row r. Both must be in [0, Size).
func (b *Board) Get(c, r int) Cell {
	return b[c][r]
}

// Full reports whether no cell is Empty.
func (b *Board) Full() bool {
	for c := range b {
		for r := range b[c] {
			if b[c][r] == Empty {
				return false
			}
		}
	}
	return true
}

// Outcome classifies a game as running or finished.
type Outcome uint8

const (
	InProgress Outcome = iota
	CookieWins
	MilkWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case CookieWins:
		return "cookie"
	case MilkWins:
		return "milk"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Snapshot is a value copy of a game, safe to hand out after the lock is released.
type Snapshot struct {
	Board  Board
	Winner Cell
	Over   bool
}

// Outcome derives the game classification from Over and Winner.
func (s Snapshot) Outcome() Outcome {
	switch {
	case !s.Over:
		return InProgress
	case s.Winner == Cookie:
		return CookieWins
	case s.Winner == Milk:
		return MilkWins
	default:
		return Draw
	}
}

const wall = "⬜"

// Render draws the board top row first, walled on all sides, followed by the
// result line once the game is over.
func Render(s Snapshot) string {
	var sb strings.Builder
	for r := Size - 1; r >= 0; r-- {
		sb.WriteString(wall)
		for c := 0; c < Size; c++ {
			sb.WriteString(s.Board.Get(c, r).Glyph())
		}
		sb.WriteString(wall)
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat(wall, Size+2))
	sb.WriteByte('\n')

	switch s.Outcome() {
	case CookieWins, MilkWins:
		sb.WriteString(s.Winner.Glyph())
		sb.WriteString(" wins!\n")
	case Draw:
		sb.WriteString("No winner.\n")
	}
	return sb.String()
}
