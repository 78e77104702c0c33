package ctrl

import (
	"context"
	"errors"

	"github.com/Shaktikantpadhi/sharedqueue/internal/queue"
	"github.com/rs/zerolog"
)

type ConsumerController struct {
	id        int
	queue     MessageSource
	processor MessageProcessor
	logger    zerolog.Logger
}

func NewConsumerController(id int, queue MessageSource, processor MessageProcessor, logger *zerolog.Logger) *ConsumerController {
	return &ConsumerController{
		id:        id,
		queue:     queue,
		processor: processor,
		logger:    logger.With().Str("controller", "consumer").Int("consumer", id).Logger(),
	}
}

// Run takes one message at a time off the queue and hands it to the
// processor until ctx is cancelled. Messages still queued at that point are
// left in place. A processing failure is logged and the message is not retried.
func (c *ConsumerController) Run(ctx context.Context) error {
	var processed uint64
	defer func() {
		c.logger.Info().Uint64("processed", processed).Msg("consumer stopped")
	}()

	for {
		// Dequeue does not fail while items are ready, so check first
		if ctx.Err() != nil {
			return nil
		}

		msg, err := c.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, queue.ErrCancelled) {
				return nil
			}

			c.logger.Error().Err(err).Msg("failed to dequeue message")
			return err
		}
		processed++

		if err := c.processor.Process(ctx, c.id, msg); err != nil {
			c.logger.Error().Err(err).Str("message", msg.Label()).Msg("failed to process message")
		}
	}
}
