package domain

import (
	"errors"

	"github.com/jaminalder/cookies-and-milk/internal/randutil"
)

// Game holds the board, the result flags and the seeded generator used for
// random boards.
type Game struct {
	Board  Board
	Winner Cell
	Over   bool

	seed uint64
	rng  *randutil.StdRand
}

// Errors returned by domain operations.
var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrColumnFull  = errors.New("column full")
	ErrGameOver    = errors.New("game over")
)

// New returns an empty game seeded with randutil.GameSeed.
func New() *Game {
	return NewWithSeed(randutil.GameSeed)
}

// NewWithSeed returns an empty game whose random boards follow seed.
func NewWithSeed(seed uint64) *Game {
	return &Game{seed: seed, rng: randutil.NewStdRand(seed)}
}

// Reset clears the board and rewinds the generator to the original seed.
func (g *Game) Reset() {
	g.Board = Board{}
	g.Winner = Empty
	g.Over = false
	g.rng.Seed(g.seed)
}

// Snapshot returns a copy of the board and result.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{Board: g.Board, Winner: g.Winner, Over: g.Over}
}

// Drop lets marker fall into column (0..3) and returns the row it landed on.
func (g *Game) Drop(column int, marker Cell) (int, error) {
	if g.Over {
		return 0, ErrGameOver
	}
	if column < 0 || column >= Size {
		return 0, ErrOutOfBounds
	}
	if marker != Cookie && marker != Milk {
		return 0, ErrInvalidMarker
	}

	row := -1
	for r := 0; r < Size; r++ {
		if g.Board[column][r] == Empty {
			row = r
			break
		}
	}
	if row < 0 {
		return 0, ErrColumnFull
	}
	g.Board[column][row] = marker

	// A move that fills the board and completes a line is a win, not a draw.
	if g.Board.Full() {
		g.Over = true
		g.Winner = Empty
	}
	if lineWins(&g.Board, column, row) {
		g.Over = true
		g.Winner = marker
	}
	return row, nil
}

// Randomize fills every cell with a coin-flipped marker and settles the
// result. The first winning cell in column-then-row order decides the winner.
func (g *Game) Randomize() {
	for r := Size - 1; r >= 0; r-- {
		for c := 0; c < Size; c++ {
			if g.rng.Bool() {
				g.Board[c][r] = Cookie
			} else {
				g.Board[c][r] = Milk
			}
		}
	}

	g.Over = true
	g.Winner = Empty
	for c := 0; c < Size; c++ {
		for r := 0; r < Size; r++ {
			if lineWins(&g.Board, c, r) {
				g.Winner = g.Board[c][r]
				return
			}
		}
	}
}

var (
	mainDiagonal = [Size][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	antiDiagonal = [Size][2]int{{0, 3}, {1, 2}, {2, 1}, {3, 0}}
)

// lineWins reports whether any full line through (c, r) holds only the
// marker at (c, r).
func lineWins(b *Board, c, r int) bool {
	m := b.Get(c, r)
	if m == Empty {
		return false
	}
	var col, row [Size][2]int
	for i := 0; i < Size; i++ {
		col[i] = [2]int{c, i}
		row[i] = [2]int{i, r}
	}
	candidates := [][Size][2]int{col, row}
	if c == r {
		candidates = append(candidates, mainDiagonal)
	}
	if c+r == Size-1 {
		candidates = append(candidates, antiDiagonal)
	}
	for _, ln := range candidates {
		if sameMarker(b, ln, m) {
			return true
		}
	}
	return false
}

func sameMarker(b *Board, ln [Size][2]int, m Cell) bool {
	for _, p := range ln {
		if b.Get(p[0], p[1]) != m {
			return false
		}
	}
	return true
}
