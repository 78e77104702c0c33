package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/Shaktikantpadhi/sharedqueue/internal/ctrl"
	"github.com/Shaktikantpadhi/sharedqueue/internal/entity"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
)

var _ ctrl.MessageProcessor = &ExecProcessor{}

type ExecConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// ExecRequest is written as JSON to the command's stdin, one per message.
type ExecRequest struct {
	Consumer int    `json:"consumer"`
	Seq      uint64 `json:"seq"`
	Label    string `json:"label"`
}

// ExecResponse is read as JSON from the command's stdout.
type ExecResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ExecProcessor runs an external command for every message.
type ExecProcessor struct {
	command string
	args    []string
	logger  zerolog.Logger
}

func NewExecProcessor(options Options, logger *zerolog.Logger) (*ExecProcessor, error) {
	var cfg ExecConfig
	if err := mapstructure.Decode(options, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode exec config: %w", err)
	}

	if cfg.Command == "" {
		return nil, fmt.Errorf("command is required for exec processor")
	}

	return &ExecProcessor{
		command: cfg.Command,
		args:    cfg.Args,
		logger:  logger.With().Str("processor", TypeExec).Logger(),
	}, nil
}

func (p *ExecProcessor) Process(ctx context.Context, consumerId int, msg entity.Message) error {
	request := ExecRequest{
		Consumer: consumerId,
		Seq:      msg.Seq(),
		Label:    msg.Label(),
	}

	response, err := p.executeCommand(ctx, request)
	if err != nil {
		return err
	}

	if !response.Success {
		return fmt.Errorf("exec processor error: %s", response.Error)
	}

	p.logger.Debug().Int("consumer", consumerId).Str("message", msg.Label()).Msg("message processed by command")
	return nil
}

func (p *ExecProcessor) executeCommand(ctx context.Context, request ExecRequest) (*ExecResponse, error) {
	cmd := exec.CommandContext(ctx, p.command, p.args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdin pipe: %w", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start command: %w", err)
	}

	encoder := json.NewEncoder(stdin)
	if err := encoder.Encode(request); err != nil {
		_ = stdin.Close()
		_ = cmd.Wait()
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	if err := stdin.Close(); err != nil {
		_ = cmd.Wait()
		return nil, fmt.Errorf("failed to close stdin: %w", err)
	}

	var response ExecResponse
	decoder := json.NewDecoder(stdout)
	if err := decoder.Decode(&response); err != nil {
		_ = cmd.Wait()
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if err := cmd.Wait(); err != nil {
		if response.Error != "" {
			return nil, fmt.Errorf("command execution failed: %w (processor error: %s)", err, response.Error)
		}
		return nil, fmt.Errorf("command execution failed: %w", err)
	}

	return &response, nil
}
