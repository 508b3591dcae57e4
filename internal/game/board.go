package game

import "fmt"

type Cell byte

const (
	Empty Cell = '-'
	X     Cell = 'X'
	O     Cell = 'O'
)

func (c Cell) String() string {
	return string([]byte{byte(c)})
}

func (c Cell) Other() Cell {
	if c == X {
		return O
	}
	return X
}

// Board is a 3x3 grid in row-major order.
type Board [9]Cell

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func NewBoard() Board {
	var b Board
	for i := range b {
		b[i] = Empty
	}
	return b
}

// ParseBoard reads the stored nine-character form.
func ParseBoard(s string) (Board, error) {
	var b Board
	if len(s) != len(b) {
		return b, fmt.Errorf("board must have %d cells, got %d", len(b), len(s))
	}
	for i := 0; i < len(s); i++ {
		switch c := Cell(s[i]); c {
		case Empty, X, O:
			b[i] = c
		default:
			return b, fmt.Errorf("invalid cell %q at %d", s[i], i)
		}
	}
	return b, nil
}

func (b Board) String() string {
	buf := make([]byte, len(b))
	for i, c := range b {
		buf[i] = byte(c)
	}
	return string(buf)
}

// Winner returns the symbol holding a complete line, or Empty.
func (b Board) Winner() Cell {
	for _, l := range lines {
		if c := b[l[0]]; c != Empty && c == b[l[1]] && c == b[l[2]] {
			return c
		}
	}
	return Empty
}

func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

func (b Board) Filled() int {
	n := 0
	for _, c := range b {
		if c != Empty {
			n++
		}
	}
	return n
}

func ParseCell(s string) (Cell, error) {
	if len(s) == 1 {
		switch c := Cell(s[0]); c {
		case X, O:
			return c, nil
		}
	}
	return Empty, fmt.Errorf("invalid turn %q", s)
}
