package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	MinMove = 1
	MaxMove = entity.Size * entity.Size
)

// WinCombos - the 8 lines of the board as (row, col) triples: rows, columns, diagonals.
var WinCombos = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Outcome int

const (
	InProgress Outcome = iota
	Win
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// MoveToCell - converts a 1-9 move into board coordinates.
func MoveToCell(move int) (int, int, error) {
	if move < MinMove || move > MaxMove {
		return 0, 0, fmt.Errorf("%w: %d", apperror.ErrOutOfRange, move)
	}
	return (move - 1) / entity.Size, (move - 1) % entity.Size, nil
}

// IsOccupied - coordinates outside the board report false, so callers check bounds first (MoveToCell does).
func IsOccupied(board *entity.Board, row, col int) bool {
	cell, err := board.Get(row, col)
	if err != nil {
		return false
	}
	return cell.IsMarked()
}

func CheckWin(board *entity.Board, mark string) bool {
	for _, combo := range WinCombos {
		if board.Cells[combo[0][0]][combo[0][1]].Mark == mark &&
			board.Cells[combo[1][0]][combo[1][1]].Mark == mark &&
			board.Cells[combo[2][0]][combo[2][1]].Mark == mark {
			return true
		}
	}
	return false
}

// CheckDraw - reports a full board. Only meaningful once CheckWin is false.
func CheckDraw(board *entity.Board) bool {
	for row := range entity.Size {
		for col := range entity.Size {
			if !board.Cells[row][col].IsMarked() {
				return false
			}
		}
	}
	return true
}

// Evaluate - outcome of the board after lastMark has moved. Win takes precedence over draw.
func Evaluate(board *entity.Board, lastMark string) Outcome {
	if CheckWin(board, lastMark) {
		return Win
	}
	if CheckDraw(board) {
		return Draw
	}
	return InProgress
}

// ValidateMove - checks that the move is in range and the cell is free, without touching the board.
func ValidateMove(board *entity.Board, move int) (int, int, error) {
	row, col, err := MoveToCell(move)
	if err != nil {
		return 0, 0, err
	}

	if IsOccupied(board, row, col) {
		return 0, 0, fmt.Errorf("%w: %d", apperror.ErrCellOccupied, move)
	}

	return row, col, nil
}

// MakeTurn - applies the move for player and updates the game status.
func MakeTurn(gameInstance *entity.Game, player string, move int) (Outcome, error) {
	if gameInstance.IsFinished() {
		return InProgress, apperror.ErrGameFinished
	}

	if gameInstance.Turn != player {
		return InProgress, apperror.ErrNotYourTurn
	}

	row, col, err := ValidateMove(gameInstance.Board, move)
	if err != nil {
		return InProgress, fmt.Errorf("invalid turn: %w", err)
	}

	if err = gameInstance.Board.Set(row, col, player); err != nil {
		return InProgress, fmt.Errorf("invalid turn: %w", err)
	}
	gameInstance.MoveCount++

	return updateGameStatus(gameInstance, player), nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, player string) Outcome {
	outcome := Evaluate(gameInstance.Board, player)

	switch outcome {
	case Win:
		gameInstance.Winner = player
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = ""
	case Draw:
		gameInstance.Winner = entity.PlayerTie
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = ""
	default:
		gameInstance.Turn = entity.Other(player)
	}

	return outcome
}
