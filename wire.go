//go:build wireinject
// +build wireinject

package main

import (
	"github.com/Shaktikantpadhi/sharedqueue/internal/config"
	"github.com/Shaktikantpadhi/sharedqueue/internal/ctrl"
	"github.com/Shaktikantpadhi/sharedqueue/internal/daemon"
	"github.com/Shaktikantpadhi/sharedqueue/internal/entity"
	"github.com/Shaktikantpadhi/sharedqueue/internal/logger"
	"github.com/Shaktikantpadhi/sharedqueue/internal/processor"
	"github.com/Shaktikantpadhi/sharedqueue/internal/queue"
	"github.com/google/wire"
)

func setup() (*daemon.Daemon, error) {
	wire.Build(
		config.Load,
		logger.DefaultSet,
		provideMessageQueue,
		wire.Bind(new(ctrl.MessageSink), new(*queue.Queue[entity.Message])),
		wire.Bind(new(ctrl.MessageSource), new(*queue.Queue[entity.Message])),
		wire.Bind(new(ctrl.QueueStats), new(*queue.Queue[entity.Message])),
		processor.DefaultSet,
		ctrl.DefaultSet,
		daemon.New,
	)

	return nil, nil
}
