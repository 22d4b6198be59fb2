package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every cell is empty and labeled in scan order
	for row := range Size {
		for col := range Size {
			cell, err := board.Get(row, col)
			require.NoError(t, err)

			assert.False(t, cell.IsMarked())
			assert.Equal(t, 1+row*Size+col, cell.Label)
		}
	}
}

func TestBoard_Get(t *testing.T) {
	t.Run("Returns the label for an empty cell", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: reading the center cell
		cell, err := board.Get(1, 1)

		// Then: it shows its label
		require.NoError(t, err)
		assert.Equal(t, "5", cell.String())
	})

	t.Run("Error on out of range coordinates", func(t *testing.T) {
		board := NewBoard()

		_, err := board.Get(3, 0)
		require.ErrorIs(t, err, ErrInvalidCell)

		_, err = board.Get(0, -1)
		require.ErrorIs(t, err, ErrInvalidCell)
	})
}

func TestBoard_Set(t *testing.T) {
	t.Run("Marks only the chosen cell", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()
		before := *board

		// When: player O marks the bottom-left cell
		err := board.Set(2, 0, PlayerO)
		require.NoError(t, err)

		// Then: that cell holds O and all others are untouched
		for row := range Size {
			for col := range Size {
				if row == 2 && col == 0 {
					assert.Equal(t, PlayerO, board.Cells[row][col].String())
					continue
				}
				assert.Equal(t, before.Cells[row][col], board.Cells[row][col])
			}
		}
	})

	t.Run("Error on out of range coordinates", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()
		before := *board

		// When: setting outside the grid
		err := board.Set(0, 3, PlayerX)

		// Then: the board is unchanged
		require.ErrorIs(t, err, ErrInvalidCell)
		assert.Equal(t, before, *board)
	})
}

func TestOther(t *testing.T) {
	assert.Equal(t, PlayerO, Other(PlayerX))
	assert.Equal(t, PlayerX, Other(PlayerO))
}
