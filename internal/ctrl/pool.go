package ctrl

import (
	"context"

	"github.com/Shaktikantpadhi/sharedqueue/internal/config"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ConsumerPool runs competing consumers against one queue; every message is
// delivered to exactly one of them.
type ConsumerPool struct {
	workers   int
	queue     MessageSource
	processor MessageProcessor
	logger    *zerolog.Logger
}

func NewConsumerPool(config *config.Config, queue MessageSource, processor MessageProcessor, logger *zerolog.Logger) *ConsumerPool {
	return &ConsumerPool{
		workers:   config.Consumer.Workers,
		queue:     queue,
		processor: processor,
		logger:    logger,
	}
}

func (p *ConsumerPool) Workers() int {
	return p.workers
}

// Run blocks until every consumer has stopped.
func (p *ConsumerPool) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for id := 1; id <= p.workers; id++ {
		consumer := NewConsumerController(id, p.queue, p.processor, p.logger)
		g.Go(func() error {
			return consumer.Run(ctx)
		})
	}

	return g.Wait()
}
