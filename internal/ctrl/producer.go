package ctrl

import (
	"context"
	"errors"
	"time"

	"github.com/Shaktikantpadhi/sharedqueue/internal/config"
	"github.com/Shaktikantpadhi/sharedqueue/internal/entity"
	"github.com/Shaktikantpadhi/sharedqueue/internal/queue"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type ProducerController struct {
	queue    MessageSink
	interval time.Duration
	count    int
	prefix   string
	logger   zerolog.Logger
}

func NewProducerController(config *config.Config, queue MessageSink, logger *zerolog.Logger) *ProducerController {
	return &ProducerController{
		queue:    queue,
		interval: config.Producer.Interval,
		count:    config.Producer.Count,
		prefix:   config.Producer.Prefix,
		logger:   logger.With().Str("controller", "producer").Logger(),
	}
}

// Run enqueues sequentially labeled messages, one per interval, until the
// configured count is reached or ctx is cancelled. A full queue holds the
// producer back.
func (c *ProducerController) Run(ctx context.Context) error {
	limiter := rate.NewLimiter(rate.Every(c.interval), 1)

	var produced uint64
	defer func() {
		c.logger.Info().Uint64("produced", produced).Msg("producer stopped")
	}()

	c.logger.Info().Dur("interval", c.interval).Int("count", c.count).Msg("producer started")

	for c.count == 0 || produced < uint64(c.count) {
		if err := waitToken(ctx, limiter); err != nil {
			c.logger.Debug().Err(err).Msg("producer wait interrupted")
			return nil
		}

		msg := entity.NewMessage(c.prefix, produced+1)
		if err := c.queue.Enqueue(ctx, msg); err != nil {
			if errors.Is(err, queue.ErrCancelled) {
				return nil
			}

			c.logger.Error().Err(err).Str("message", msg.Label()).Msg("failed to enqueue message")
			return err
		}
		produced++

		c.logger.Info().Uint64("seq", msg.Seq()).Msgf("producer added: %s", msg.Label())
	}

	return nil
}

// waitToken blocks until limiter grants a token or ctx is done. Unlike
// rate.Limiter.Wait it does not fail early when the token lies beyond the
// deadline of ctx, so the producer runs until ctx actually ends.
func waitToken(ctx context.Context, limiter *rate.Limiter) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r := limiter.Reserve()
	delay := r.Delay()
	if delay == 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
