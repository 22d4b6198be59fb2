package application

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel: "error",
		Color:    false,
		Events:   config.Events{Enabled: false},
	}
}

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Plays a full game on the console streams", func(t *testing.T) {
		// Given: input for a game X wins
		out := &bytes.Buffer{}

		// When: the app runs
		err := RunApp(logger, testConfig(), strings.NewReader("1 2 4 5 7\n"), out)

		// Then: the game ends normally
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.String(), "Welcome to Tic-Tac-Toe!\n"))
		assert.True(t, strings.HasSuffix(out.String(), "Player X wins!\n"))
	})

	t.Run("Closed input aborts the game", func(t *testing.T) {
		err := RunApp(logger, testConfig(), strings.NewReader(""), &bytes.Buffer{})

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Unreachable event channel fails before the game starts", func(t *testing.T) {
		// Given: events enabled on a port nothing listens on
		conf := testConfig()
		conf.Events = config.Events{Enabled: true, Host: "127.0.0.1", Port: "1", Channel: "tictactoe:events"}
		out := &bytes.Buffer{}

		// When: the app runs
		err := RunApp(logger, conf, strings.NewReader("1 2 4 5 7\n"), out)

		// Then: nothing was played
		require.Error(t, err)
		assert.Empty(t, out.String())
	})
}
