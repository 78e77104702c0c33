package processor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Shaktikantpadhi/sharedqueue/internal/ctrl"
	"github.com/Shaktikantpadhi/sharedqueue/internal/entity"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
)

var _ ctrl.MessageProcessor = &ShellProcessor{}

type ShellConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// ShellProcessor feeds each message to a command as shell variable
// assignments on stdin. A non-zero exit status fails the message.
type ShellProcessor struct {
	command string
	args    []string
	logger  zerolog.Logger
}

func NewShellProcessor(options Options, logger *zerolog.Logger) (*ShellProcessor, error) {
	var cfg ShellConfig
	if err := mapstructure.Decode(options, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode shell config: %w", err)
	}

	if cfg.Command == "" {
		return nil, fmt.Errorf("command is required for shell processor")
	}

	return &ShellProcessor{
		command: cfg.Command,
		args:    cfg.Args,
		logger:  logger.With().Str("processor", TypeShell).Logger(),
	}, nil
}

func (p *ShellProcessor) Process(ctx context.Context, consumerId int, msg entity.Message) error {
	stdout, stderr, err := p.executeCommand(ctx, consumerId, msg)
	if err != nil {
		if stderr != "" {
			return fmt.Errorf("%w (stderr: %s)", err, stderr)
		}
		return err
	}

	if stderr != "" {
		p.logger.Debug().Str("stderr", stderr).Msg("shell processor stderr")
	}

	p.logger.Debug().
		Int("consumer", consumerId).
		Str("message", msg.Label()).
		Str("stdout", stdout).
		Msg("message processed by shell")
	return nil
}

func (p *ShellProcessor) executeCommand(ctx context.Context, consumerId int, msg entity.Message) (string, string, error) {
	cmd := exec.CommandContext(ctx, p.command, p.args...)

	var stdinBuf bytes.Buffer
	stdinBuf.WriteString(fmt.Sprintf("SHAREDQUEUE_CONSUMER=%d\n", consumerId))
	stdinBuf.WriteString(fmt.Sprintf("SHAREDQUEUE_SEQ=%d\n", msg.Seq()))
	stdinBuf.WriteString(fmt.Sprintf("SHAREDQUEUE_LABEL=%s\n", shellQuote(msg.Label())))
	cmd.Stdin = &stdinBuf

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		return "", strings.TrimSpace(stderrBuf.String()), fmt.Errorf("command execution failed: %w", err)
	}

	return strings.TrimSpace(stdoutBuf.String()), strings.TrimSpace(stderrBuf.String()), nil
}

// shellQuote wraps s in single quotes so that eval yields s unchanged.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
