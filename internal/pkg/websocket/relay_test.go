package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRelay(t *testing.T, mr *miniredis.Miniredis, registry *Registry) *Relay {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	relay := NewRelay(client, "edupath:notifications:test", registry, zerolog.Nop())
	require.NoError(t, relay.Start(context.Background()))
	t.Cleanup(func() { relay.Close() })
	return relay
}

func TestRelayDeliversToOtherInstance(t *testing.T) {
	mr := miniredis.RunT(t)

	local, remote := NewRegistry(), NewRegistry()
	publisher := newTestRelay(t, mr, local)
	newTestRelay(t, mr, remote)

	onLocal, onRemote := &fakeChannel{}, &fakeChannel{}
	local.Register(5, onLocal)
	remote.Register(5, onRemote)

	require.NoError(t, publisher.Publish(context.Background(), 5, "Your document \"SSC Transcript\" has been approved."))

	require.Eventually(t, func() bool { return len(onRemote.Sent()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, NewNotification("Your document \"SSC Transcript\" has been approved."), onRemote.Sent()[0])

	// the publishing instance ignores its own envelope
	assert.Empty(t, onLocal.Sent())
}

func TestRelaySkipsUsersWithoutChannel(t *testing.T) {
	mr := miniredis.RunT(t)

	remote := NewRegistry()
	publisher := newTestRelay(t, mr, NewRegistry())
	newTestRelay(t, mr, remote)

	closed := &fakeChannel{closed: true}
	remote.Register(8, closed)
	open := &fakeChannel{}
	remote.Register(9, open)

	require.NoError(t, publisher.Publish(context.Background(), 8, "ignored"))
	require.NoError(t, publisher.Publish(context.Background(), 404, "ignored"))
	require.NoError(t, publisher.Publish(context.Background(), 9, "delivered"))

	require.Eventually(t, func() bool { return len(open.Sent()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, closed.Sent())
}

func TestRelayStartFailsWithoutServer(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	relay := NewRelay(client, "edupath:notifications:test", NewRegistry(), zerolog.Nop())
	assert.Error(t, relay.Start(ctx))
	assert.NoError(t, relay.Close())
}
