package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

type publisher interface {
	usecase.EventPublisher
	Close() error
}

// RunApp - plays one game on the given console streams.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := newPublisher(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not start event publisher: %w", err)
	}

	defer func() {
		if err = events.Close(); err != nil {
			log.Error("could not close event publisher", "error", err)
		}
	}()

	gameLoop := usecase.NewGameLoop(logger, console.New(in, out, conf.Color), events)

	gameID := uuid.NewString()
	log.Info("Starting game", "game_id", gameID)

	if _, err = gameLoop.Run(ctx, gameID); err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	return nil
}

func newPublisher(ctx context.Context, conf *config.Config) (publisher, error) {
	if !conf.Events.Enabled {
		return redis.Nop{}, nil
	}

	events, err := redis.New(ctx, conf.Events.GetRedisAddr(), conf.Events.Channel)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return events, nil
}
