package processor

import (
	"fmt"

	"github.com/Shaktikantpadhi/sharedqueue/internal/config"
	"github.com/Shaktikantpadhi/sharedqueue/internal/ctrl"
	"github.com/google/wire"
	"github.com/rs/zerolog"
)

var DefaultSet = wire.NewSet(
	New,
)

const (
	TypeLog   = "log"
	TypeExec  = "exec"
	TypeShell = "shell"
)

// Options holds the type-specific settings of a processor definition.
type Options map[string]interface{}

// New builds the processor selected by the processor section of the config.
func New(config *config.Config, logger *zerolog.Logger) (ctrl.MessageProcessor, error) {
	return NewProcessor(config.Processor.Type, config.Processor.Options, logger)
}

func NewProcessor(kind string, options Options, logger *zerolog.Logger) (ctrl.MessageProcessor, error) {
	switch kind {
	case "", TypeLog:
		return NewLogProcessor(logger), nil
	case TypeExec:
		return NewExecProcessor(options, logger)
	case TypeShell:
		return NewShellProcessor(options, logger)
	default:
		return nil, fmt.Errorf("unsupported processor type: %s", kind)
	}
}
