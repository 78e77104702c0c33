package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const Name = "config"

var Paths []string = []string{
	"/etc/sharedqueue",
	"$HOME/.sharedqueue",
	".",
}

var (
	ErrBindEnv         = errors.New("failed to bind env")
	ErrReadConfig      = errors.New("failed to read config")
	ErrUnmarshalConfig = errors.New("failed to unmarshal config")
	ErrInvalidConfig   = errors.New("invalid config")
)

var envs = map[string][]string{
	"queue.capacity":    {"QUEUE_CAPACITY"},
	"producer.interval": {"PRODUCER_INTERVAL"},
	"producer.count":    {"PRODUCER_COUNT"},
	"producer.prefix":   {"PRODUCER_PREFIX"},
	"consumer.workers":  {"CONSUMER_WORKERS"},
	"monitor.interval":  {"MONITOR_INTERVAL"},
	"processor.type":    {"PROCESSOR_TYPE"},
	"log.level":         {"LOG_LEVEL"},
	"log.file":          {"LOG_FILE"},
}

var defaults = map[string]any{
	"queue.capacity":    10,
	"producer.interval": 200 * time.Millisecond,
	"producer.count":    0,
	"producer.prefix":   "Message",
	"consumer.workers":  5,
	"monitor.interval":  10 * time.Second,
	"processor.type":    "log",
	"log.level":         "info",
	"log.max_size":      100,
	"log.max_backups":   3,
	"log.max_age":       28,
	"log.compress":      false,
}

type Queue struct {
	Capacity int `mapstructure:"capacity"`
}

type Producer struct {
	Interval time.Duration `mapstructure:"interval"`
	// Count limits the number of messages produced; 0 means unbounded.
	Count  int    `mapstructure:"count"`
	Prefix string `mapstructure:"prefix"`
}

type Consumer struct {
	Workers int `mapstructure:"workers"`
}

type Monitor struct {
	// Interval between queue depth reports; 0 disables reporting.
	Interval time.Duration `mapstructure:"interval"`
}

// Processor selects what consumers do with each message. Options holds the
// remaining keys of the section and is decoded by the chosen processor.
type Processor struct {
	Type    string         `mapstructure:"type"`
	Options map[string]any `mapstructure:",remain"`
}

type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type Config struct {
	Queue     Queue     `mapstructure:"queue"`
	Producer  Producer  `mapstructure:"producer"`
	Consumer  Consumer  `mapstructure:"consumer"`
	Monitor   Monitor   `mapstructure:"monitor"`
	Processor Processor `mapstructure:"processor"`
	Log       Log       `mapstructure:"log"`
}

func Load() (*Config, error) {
	viper.SetConfigName(Name)
	for _, path := range Paths {
		viper.AddConfigPath(path)
	}
	viper.AutomaticEnv()

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	for envName, keys := range envs {
		binding := []string{envName}
		binding = append(binding, keys...)

		if err := viper.BindEnv(binding...); err != nil {
			return nil, errors.Join(ErrBindEnv, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Join(ErrReadConfig, err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := viper.Unmarshal(&cfg, hook); err != nil {
		return nil, errors.Join(ErrUnmarshalConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func (c *Config) Validate() error {
	if c.Queue.Capacity <= 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("queue.capacity must be positive, got %d", c.Queue.Capacity))
	}

	if c.Producer.Interval <= 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("producer.interval must be positive, got %s", c.Producer.Interval))
	}

	if c.Producer.Count < 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("producer.count must not be negative, got %d", c.Producer.Count))
	}

	if c.Consumer.Workers <= 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("consumer.workers must be positive, got %d", c.Consumer.Workers))
	}

	if c.Monitor.Interval < 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("monitor.interval must not be negative, got %s", c.Monitor.Interval))
	}

	if c.Log.Level != "" && !validLogLevels[c.Log.Level] {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("unknown log.level %q", c.Log.Level))
	}

	return nil
}
