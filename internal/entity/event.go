package entity

const (
	EventGameStarted  = "game_started"
	EventMoveAccepted = "move_accepted"
	EventGameFinished = "game_finished"
)

// Event - a notification about game progress sent to local observers.
type Event struct {
	Type   string `json:"type"`
	GameID string `json:"game_id"`
	Player string `json:"player,omitempty"`
	Move   int    `json:"move,omitempty"`
	Winner string `json:"winner,omitempty"`
	Game   *Game  `json:"game"`
}
