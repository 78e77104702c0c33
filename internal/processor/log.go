package processor

import (
	"context"

	"github.com/Shaktikantpadhi/sharedqueue/internal/ctrl"
	"github.com/Shaktikantpadhi/sharedqueue/internal/entity"
	"github.com/rs/zerolog"
)

var _ ctrl.MessageProcessor = &LogProcessor{}

type LogProcessor struct {
	logger zerolog.Logger
}

func NewLogProcessor(logger *zerolog.Logger) *LogProcessor {
	return &LogProcessor{
		logger: logger.With().Str("processor", TypeLog).Logger(),
	}
}

func (p *LogProcessor) Process(ctx context.Context, consumerId int, msg entity.Message) error {
	p.logger.Info().
		Int("consumer", consumerId).
		Uint64("seq", msg.Seq()).
		Msgf("consumer %d processed: %s", consumerId, msg.Label())

	return nil
}
