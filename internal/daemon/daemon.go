package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Shaktikantpadhi/sharedqueue/internal/config"
	"github.com/Shaktikantpadhi/sharedqueue/internal/ctrl"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Daemon struct {
	config   *config.Config
	producer *ctrl.ProducerController
	pool     *ctrl.ConsumerPool
	monitor  *ctrl.MonitorController
	logger   zerolog.Logger
}

func New(
	config *config.Config,
	producer *ctrl.ProducerController,
	pool *ctrl.ConsumerPool,
	monitor *ctrl.MonitorController,
	logger *zerolog.Logger) *Daemon {
	return &Daemon{
		config:   config,
		producer: producer,
		pool:     pool,
		monitor:  monitor,
		logger:   logger.With().Str("component", "daemon").Logger(),
	}
}

// Run starts the producer, the consumer pool and the queue monitor, and
// blocks until ctx is cancelled or the process receives SIGINT/SIGTERM.
func (d *Daemon) Run(ctx context.Context) error {
	daemonCtx, cancel := context.WithCancel(ctx)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	defer func() {
		signal.Stop(signalChan)
		close(signalChan)
		cancel()
	}()

	g, groupCtx := errgroup.WithContext(daemonCtx)

	g.Go(func() error {
		return d.pool.Run(groupCtx)
	})
	g.Go(func() error {
		return d.producer.Run(groupCtx)
	})
	g.Go(func() error {
		d.monitor.Run(groupCtx)
		return nil
	})

	d.logger.Info().
		Int("capacity", d.config.Queue.Capacity).
		Int("workers", d.config.Consumer.Workers).
		Dur("interval", d.config.Producer.Interval).
		Msg("daemon started")

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	var err error
	select {
	case err = <-done:
	case sig := <-signalChan:
		d.logger.Info().Str("signal", sig.String()).Msg("received signal")
		cancel()
		err = <-done
	}

	if err != nil {
		d.logger.Error().Err(err).Msg("daemon stopped with error")
		return err
	}

	d.logger.Info().Msg("shutting down")
	return nil
}
