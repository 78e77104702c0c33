package logger

import (
	"io"
	"os"

	"github.com/Shaktikantpadhi/sharedqueue/internal/config"
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var DefaultSet = wire.NewSet(
	NewLogger,
)

var LevelMap = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

func NewLogger(config *config.Config) *zerolog.Logger {
	return newLogger(os.Stdout, config)
}

func newLogger(out io.Writer, config *config.Config) *zerolog.Logger {
	var writer io.Writer = zerolog.ConsoleWriter{Out: out}

	// log.file adds a rotated JSON log next to the console output
	if config.Log.File != "" {
		writer = zerolog.MultiLevelWriter(writer, &lumberjack.Logger{
			Filename:   config.Log.File,
			MaxSize:    config.Log.MaxSize,
			MaxBackups: config.Log.MaxBackups,
			MaxAge:     config.Log.MaxAge,
			Compress:   config.Log.Compress,
		})
	}

	logger := zerolog.New(writer).With().Timestamp().Logger()

	if level, ok := LevelMap[config.Log.Level]; ok {
		logger = logger.Level(level)
	}

	return &logger
}
