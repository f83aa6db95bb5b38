package broadcast

import (
	"context"
	"errors"
	"fmt"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/board-service/internal/client/centrifugo"
	"github.com/s21platform/board-service/internal/model"
)

type CentrifugoPublisher interface {
	Broadcast(ctx context.Context, event model.Event) error
	Send(ctx context.Context, sessionKey string, event model.Event) error
}

// CentrifugoSink bounds each Centrifugo call with a timeout and logs
// failures instead of returning them.
type CentrifugoSink struct {
	client  CentrifugoPublisher
	timeout time.Duration
	logger  logger_lib.LoggerInterface
}

func NewCentrifugoSink(client CentrifugoPublisher, timeout time.Duration, logger logger_lib.LoggerInterface) *CentrifugoSink {
	return &CentrifugoSink{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

func (c *CentrifugoSink) Publish(ctx context.Context, event model.Event) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	c.report(event, model.BroadcastChannel, c.client.Broadcast(ctx, event))
}

func (c *CentrifugoSink) PublishTo(ctx context.Context, sessionKey string, event model.Event) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	c.report(event, sessionKey, c.client.Send(ctx, sessionKey, event))
}

func (c *CentrifugoSink) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return ctx, func() {}
}

func (c *CentrifugoSink) report(event model.Event, channel string, err error) {
	if err == nil {
		return
	}

	var apiErr *centrifugo.APIError
	if errors.As(err, &apiErr) {
		c.logger.Error(fmt.Sprintf("centrifugo rejected %s on channel %s: code %d: %s", event.Type, channel, apiErr.Code, apiErr.Message))
		return
	}
	c.logger.Error(fmt.Sprintf("failed to publish %s to centrifugo channel %s: %v", event.Type, channel, err))
}
