package entity

import (
	"fmt"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"
)

type Game struct {
	ID        string `json:"id"`
	Board     *Board `json:"board"`
	Winner    string `json:"winner"`
	Status    string `json:"status"`
	Turn      string `json:"player_turn"`
	MoveCount int    `json:"move_count"`
}

// NewGame - X always moves first.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(),
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

// Result - the message shown once the game is over.
func (that *Game) Result() string {
	if that.IsDraw() {
		return "It's a draw!"
	}
	return fmt.Sprintf("Player %s wins!", that.Winner)
}
