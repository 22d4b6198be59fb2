package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type gameConsole interface {
	Welcome()
	RenderBoard(board *entity.Board)
	Prompt(player string)
	ReadMove() (int, error)
	Reject(err error)
	Result(game *entity.Game)
}

// EventPublisher - receives game progress for optional observers.
type EventPublisher interface {
	Publish(ctx context.Context, event *entity.Event) error
}

// GameLoop - runs one game from the first prompt to a win or a draw.
// Turns are strictly sequential: each move is applied before the next prompt.
type GameLoop struct {
	logger    *slog.Logger
	console   gameConsole
	publisher EventPublisher
}

func NewGameLoop(logger *slog.Logger, console gameConsole, publisher EventPublisher) *GameLoop {
	return &GameLoop{
		logger:    logger.With("component", "game_loop"),
		console:   console,
		publisher: publisher,
	}
}

func (that *GameLoop) Run(ctx context.Context, gameID string) (*entity.Game, error) {
	log := that.logger.With("game_id", gameID)

	game := entity.NewGame(gameID)
	that.publish(ctx, &entity.Event{Type: entity.EventGameStarted, GameID: game.ID, Game: game})

	that.console.Welcome()
	that.console.RenderBoard(game.Board)

	for game.IsOngoing() {
		player := game.Turn

		move, outcome, err := that.PlayTurn(game)
		if err != nil {
			return game, fmt.Errorf("failed to play turn: %w", err)
		}

		log.Debug("move accepted", "player", player, "move", move, "outcome", outcome.String())

		that.console.RenderBoard(game.Board)
		that.publish(ctx, &entity.Event{
			Type:   entity.EventMoveAccepted,
			GameID: game.ID,
			Player: player,
			Move:   move,
			Game:   game,
		})
	}

	that.console.Result(game)
	that.publish(ctx, &entity.Event{Type: entity.EventGameFinished, GameID: game.ID, Winner: game.Winner, Game: game})

	log.Info("game finished", "winner", game.Winner, "moves", game.MoveCount)

	return game, nil
}

// PlayTurn - prompts the current player until a legal move is entered and applies it.
// Rejected input is reported to the player and never changes the board.
func (that *GameLoop) PlayTurn(game *entity.Game) (int, tictactoe.Outcome, error) {
	player := game.Turn

	for {
		that.console.Prompt(player)

		move, err := that.console.ReadMove()
		if errors.Is(err, apperror.ErrMalformedInput) {
			that.reject(player, err)
			continue
		}

		if err != nil {
			return 0, tictactoe.InProgress, fmt.Errorf("failed to read move: %w", err)
		}

		outcome, err := tictactoe.MakeTurn(game, player, move)
		if errors.Is(err, apperror.ErrOutOfRange) || errors.Is(err, apperror.ErrCellOccupied) {
			that.reject(player, err)
			continue
		}

		if err != nil {
			return 0, tictactoe.InProgress, fmt.Errorf("failed to make turn: %w", err)
		}

		return move, outcome, nil
	}
}

func (that *GameLoop) reject(player string, err error) {
	that.logger.Debug("move rejected", "player", player, "error", err)
	that.console.Reject(err)
}

// publish - observers are optional, so a failed publish never stops the game.
func (that *GameLoop) publish(ctx context.Context, event *entity.Event) {
	if err := that.publisher.Publish(ctx, event); err != nil {
		that.logger.Warn("failed to publish event", "type", event.Type, "error", err)
	}
}
