package ctrl

import (
	"context"
	"time"

	"github.com/Shaktikantpadhi/sharedqueue/internal/config"
	"github.com/rs/zerolog"
)

type MonitorController struct {
	queue    QueueStats
	interval time.Duration
	logger   zerolog.Logger
}

func NewMonitorController(config *config.Config, queue QueueStats, logger *zerolog.Logger) *MonitorController {
	return &MonitorController{
		queue:    queue,
		interval: config.Monitor.Interval,
		logger:   logger.With().Str("controller", "monitor").Logger(),
	}
}

func (c *MonitorController) Run(ctx context.Context) {
	if c.interval <= 0 {
		c.logger.Debug().Msg("queue monitor disabled")
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Report()
		}
	}
}

func (c *MonitorController) Report() {
	c.logger.Info().
		Int("len", c.queue.Len()).
		Int("cap", c.queue.Cap()).
		Msg("queue depth")
}
