package broadcast

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/board-service/internal/model"
)

// Deliverer is the local side of a relay: it hands encoded frames to the
// sessions connected to this instance.
type Deliverer interface {
	Broadcast(data []byte)
	SendTo(sessionKey string, data []byte)
}

// envelope is what travels over the Redis channel. An empty Target means
// every session.
type envelope struct {
	Target string          `json:"target,omitempty"`
	Frame  json.RawMessage `json:"frame"`
}

// Relay pushes events through a Redis pub/sub channel so every instance
// behind the load balancer delivers them to its own sessions.
type Relay struct {
	client  *redis.Client
	channel string
	local   Deliverer
	logger  logger_lib.LoggerInterface
}

func NewRelay(client *redis.Client, channel string, local Deliverer, logger logger_lib.LoggerInterface) *Relay {
	return &Relay{
		client:  client,
		channel: channel,
		local:   local,
		logger:  logger,
	}
}

func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

func (r *Relay) Publish(ctx context.Context, event model.Event) {
	r.publish(ctx, "", event)
}

func (r *Relay) PublishTo(ctx context.Context, sessionKey string, event model.Event) {
	r.publish(ctx, sessionKey, event)
}

func (r *Relay) publish(ctx context.Context, target string, event model.Event) {
	frame, err := json.Marshal(event)
	if err != nil {
		r.logger.Error(fmt.Sprintf("failed to marshal %s event: %v", event.Type, err))
		return
	}

	env := envelope{Target: target, Frame: frame}
	payload, err := json.Marshal(env)
	if err != nil {
		r.logger.Error(fmt.Sprintf("failed to marshal relay envelope: %v", err))
		return
	}

	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		r.logger.Warn(fmt.Sprintf("redis publish of %s failed, delivering locally: %v", event.Type, err))
		r.deliver(env)
	}
}

// Run consumes the channel until ctx is done.
func (r *Relay) Run(ctx context.Context) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close() //nolint:errcheck // .

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.handle(msg.Payload)
		}
	}
}

func (r *Relay) handle(payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		r.logger.Error(fmt.Sprintf("failed to decode relay envelope: %v", err))
		return
	}

	r.deliver(env)
}

func (r *Relay) deliver(env envelope) {
	if env.Target == "" {
		r.local.Broadcast(env.Frame)
		return
	}
	r.local.SendTo(env.Target, env.Frame)
}
