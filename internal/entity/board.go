package entity

import (
	"errors"
	"fmt"
	"strconv"
)

const Size = 3

var ErrInvalidCell = errors.New("invalid cell index")

// Cell - a single board position, either empty (shown by its label) or marked by a player.
type Cell struct {
	Label int    `json:"label"`
	Mark  string `json:"mark,omitempty"`
}

func (that Cell) IsMarked() bool {
	return that.Mark == PlayerX || that.Mark == PlayerO
}

func (that Cell) String() string {
	if that.IsMarked() {
		return that.Mark
	}
	return strconv.Itoa(that.Label)
}

type Board struct {
	Cells [Size][Size]Cell `json:"cells"`
}

// NewBoard - returns a board with every cell empty and labeled 1-9 in scan order.
func NewBoard() *Board {
	board := &Board{}
	for row := range Size {
		for col := range Size {
			board.Cells[row][col] = Cell{Label: 1 + row*Size + col}
		}
	}
	return board
}

func (that *Board) Get(row, col int) (Cell, error) {
	if !inBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: row %d col %d", ErrInvalidCell, row, col)
	}
	return that.Cells[row][col], nil
}

// Set - marks the cell. Occupancy is the caller's concern.
func (that *Board) Set(row, col int, mark string) error {
	if !inBounds(row, col) {
		return fmt.Errorf("%w: row %d col %d", ErrInvalidCell, row, col)
	}
	that.Cells[row][col].Mark = mark
	return nil
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
