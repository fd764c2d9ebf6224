package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/imdario/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	interaction "github.com/oklahomer/go-sarah-interaction"
)

// Environment variables read by LoadConfiguration. They take precedence over configuration files.
const (
	EnvToken           = "BOT_TOKEN"
	EnvApplicationID   = "APPLICATION_ID"
	EnvGuildID         = "GUILD_ID"
	EnvLogChannelID    = "LOG_CHANNEL_ID"
	EnvLogLevel        = "LOG_LEVEL"
	EnvMetricsAddress  = "METRICS_ADDRESS"
	EnvMetricsInterval = "METRICS_INTERVAL"
)

// Configuration is the template bot's configuration.
type Configuration struct {
	Token         string `yaml:"token" validate:"required"`
	ApplicationID string `yaml:"application_id" validate:"omitempty,numeric"`
	GuildID       string `yaml:"guild_id" validate:"omitempty,numeric"`

	// LogChannelID is the channel errors are reported to. Errors are only logged locally when empty.
	LogChannelID string `yaml:"log_channel_id" validate:"omitempty,numeric"`
	LogLevel     string `yaml:"log_level" validate:"oneof=debug info warn error"`

	ErrorReply       string `yaml:"error_reply" validate:"required,max=2000"`
	TrackLastMessage bool   `yaml:"track_last_message"`

	Metrics MetricsConfiguration `yaml:"metrics"`
}

type MetricsConfiguration struct {
	// Address is where /metrics is served, e.g. ":9090". The server is not started when empty.
	Address string `yaml:"address" validate:"omitempty,hostname_port"`

	// Interval is how often the heartbeat latency is sampled.
	Interval time.Duration `yaml:"interval" validate:"min=1s"`
}

// NewConfiguration returns a Configuration with default values.
func NewConfiguration() *Configuration {
	return &Configuration{
		LogLevel:   "info",
		ErrorReply: interaction.DefaultErrorReply,
		Metrics: MetricsConfiguration{
			Interval: 15 * time.Second,
		},
	}
}

// AdapterConfig converts the configuration to the interaction adapter's configuration.
func (c *Configuration) AdapterConfig() *interaction.Config {
	config := interaction.NewConfig()
	config.Token = c.Token
	config.ApplicationID = c.ApplicationID
	config.GuildID = c.GuildID
	config.TrackLastMessage = c.TrackLastMessage
	config.ErrorReply = c.ErrorReply
	return config
}

// LoadConfiguration builds the configuration from the defaults, the given YAML files and the environment.
//
// Files are merged in order, so later files override earlier ones.
// The env file is loaded into the environment first when it exists; variables already set are kept.
// The result is validated before it is returned.
func LoadConfiguration(files []string, envFile string) (*Configuration, error) {
	config := NewConfiguration()

	for _, file := range files {
		if err := mergeFile(config, file); err != nil {
			return nil, err
		}
	}

	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := applyEnv(config, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := ValidateConfiguration(config); err != nil {
		return nil, err
	}

	return config, nil
}

func mergeFile(config *Configuration, file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", file, err)
	}

	// yaml replaces nested structs as a whole, so each file is decoded on its own and deep merged.
	fileConfig := &Configuration{}
	if err := yaml.UnmarshalStrict(content, fileConfig); err != nil {
		return fmt.Errorf("failed to parse configuration file %s: %w", file, err)
	}

	if err := mergo.Merge(config, fileConfig, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge configuration file %s: %w", file, err)
	}

	return nil
}

func applyEnv(config *Configuration, lookup func(string) (string, bool)) error {
	fields := map[string]*string{
		EnvToken:          &config.Token,
		EnvApplicationID:  &config.ApplicationID,
		EnvGuildID:        &config.GuildID,
		EnvLogChannelID:   &config.LogChannelID,
		EnvLogLevel:       &config.LogLevel,
		EnvMetricsAddress: &config.Metrics.Address,
	}
	for key, field := range fields {
		if value, ok := lookup(key); ok {
			*field = value
		}
	}

	if value, ok := lookup(EnvMetricsInterval); ok {
		interval, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMetricsInterval, value, err)
		}
		config.Metrics.Interval = interval
	}

	return nil
}

// ValidateConfiguration validates the configuration against its validate tags.
func ValidateConfiguration(config *Configuration) error {
	err := validator.New().Struct(config)
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("could not validate configuration: %w", err)
	}
	return err
}
