package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

const testChannel = "tictactoe:test"

func TestPublisher_Publish(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}

	ctx, st := suite.New(t)

	// Given: a subscriber on the channel
	sub := st.Storage.Subscribe(ctx, testChannel)
	t.Cleanup(func() { _ = sub.Close() })

	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	publisher := NewWithClient(st.Storage, testChannel)

	// When: an accepted move is published
	game := entity.NewGame("123")
	require.NoError(t, game.Board.Set(1, 1, entity.PlayerX))

	err = publisher.Publish(ctx, &entity.Event{
		Type:   entity.EventMoveAccepted,
		GameID: game.ID,
		Player: entity.PlayerX,
		Move:   5,
		Game:   game,
	})
	require.NoError(t, err)

	// Then: the subscriber receives the same event
	select {
	case msg := <-sub.Channel():
		var received entity.Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &received))

		assert.Equal(t, entity.EventMoveAccepted, received.Type)
		assert.Equal(t, "123", received.GameID)
		assert.Equal(t, 5, received.Move)
		assert.Equal(t, game.Board, received.Game.Board)
	case <-time.After(10 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestNop_Publish(t *testing.T) {
	var publisher Nop

	require.NoError(t, publisher.Publish(context.Background(), &entity.Event{Type: entity.EventGameStarted}))
	require.NoError(t, publisher.Close())
}
