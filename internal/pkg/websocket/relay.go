package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Envelope is what instances exchange over the relay channel.
type Envelope struct {
	Origin  string `json:"origin"`
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
}

// Relay forwards notifications between instances over Redis pub/sub so a user
// connected to another instance still receives the push.
type Relay struct {
	client   redis.UniversalClient
	channel  string
	origin   string
	registry *Registry
	logger   zerolog.Logger

	mu     sync.Mutex
	pubsub *redis.PubSub
	wg     sync.WaitGroup
}

// NewRelay creates a relay bound to the local registry.
func NewRelay(client redis.UniversalClient, channel string, registry *Registry, logger zerolog.Logger) *Relay {
	return &Relay{
		client:   client,
		channel:  channel,
		origin:   uuid.New().String(),
		registry: registry,
		logger:   logger.With().Str("component", "relay").Logger(),
	}
}

// Origin returns this instance's identity on the relay.
func (r *Relay) Origin() string {
	return r.origin
}

// Start subscribes to the relay channel and begins delivering envelopes from
// other instances. It returns once the subscription is confirmed.
func (r *Relay) Start(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}

	r.mu.Lock()
	r.pubsub = pubsub
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for msg := range pubsub.Channel() {
			r.handle(msg.Payload)
		}
	}()

	r.logger.Info().Str("channel", r.channel).Str("origin", r.origin).Msg("Notification relay started")
	return nil
}

// Publish hands a notification to the other instances.
func (r *Relay) Publish(ctx context.Context, userID int64, message string) error {
	payload, err := json.Marshal(Envelope{Origin: r.origin, UserID: userID, Message: message})
	if err != nil {
		return fmt.Errorf("failed to encode relay envelope: %w", err)
	}

	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish relay envelope: %w", err)
	}
	return nil
}

// Close stops the subscription and waits for the delivery loop to exit.
func (r *Relay) Close() error {
	r.mu.Lock()
	pubsub := r.pubsub
	r.pubsub = nil
	r.mu.Unlock()

	if pubsub == nil {
		return nil
	}
	err := pubsub.Close()
	r.wg.Wait()
	return err
}

func (r *Relay) handle(payload string) {
	var env Envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		r.logger.Warn().Err(err).Msg("Dropping malformed relay envelope")
		return
	}

	if env.Origin == r.origin {
		return
	}

	ch, ok := r.registry.Lookup(env.UserID)
	if !ok || !ch.IsOpen() {
		return
	}

	if err := ch.Send(NewNotification(env.Message)); err != nil {
		r.logger.Warn().
			Err(err).
			Int64("userID", env.UserID).
			Str("origin", env.Origin).
			Msg("Failed to deliver relayed notification")
		return
	}

	r.logger.Debug().
		Int64("userID", env.UserID).
		Str("origin", env.Origin).
		Msg("Relayed notification delivered")
}
