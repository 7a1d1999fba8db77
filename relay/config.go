package relay

import (
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Environment variables read by LoadConfig.
const (
	EnvQueueURL    = "QUEUE_URL"
	EnvRegion      = "AWS_REGION"
	EnvEndpoint    = "RELAY_ENDPOINT"
	EnvSendTimeout = "RELAY_SEND_TIMEOUT"
	EnvAckMode     = "RELAY_ACK_MODE"
	EnvLogLevel    = "RELAY_LOG_LEVEL"
	EnvLogEvents   = "RELAY_LOG_EVENTS"
	EnvHTTPPath    = "RELAY_HTTP_PATH"
)

// DefaultSendTimeout bounds a single SendMessage call.
const DefaultSendTimeout = 10 * time.Second

// AckMode selects what the Acknowledgment reports back to the caller.
type AckMode string

const (
	// AckFixed always acknowledges a successful send with {"statusCode": 200}
	// and does not inspect the sqs response.
	AckFixed AckMode = "fixed"

	// AckDownstream checks the sqs response (message id and body md5) and
	// includes the message id in the Acknowledgment.
	AckDownstream AckMode = "downstream"
)

// Config is the process wide relay configuration. It is built once at startup
// and shared read-only by every invocation.
type Config struct {
	QueueURL    string        `mapstructure:"queue_url"`
	Region      string        `mapstructure:"aws_region"`
	Endpoint    string        `mapstructure:"relay_endpoint"`
	SendTimeout time.Duration `mapstructure:"relay_send_timeout"`
	AckMode     AckMode       `mapstructure:"relay_ack_mode"`
	LogLevel    string        `mapstructure:"relay_log_level"`
	LogEvents   bool          `mapstructure:"relay_log_events"`
	HTTPPath    string        `mapstructure:"relay_http_path"`
}

// LoadConfig reads the relay configuration from the environment.
//
// A missing QUEUE_URL is not reported here; it surfaces as a
// ConfigurationError on the first invocation so the runtime sees the failure
// per event rather than as a crashed init.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("queue_url", "")
	v.SetDefault("aws_region", "")
	v.SetDefault("relay_endpoint", "")
	v.SetDefault("relay_send_timeout", DefaultSendTimeout)
	v.SetDefault("relay_ack_mode", string(AckFixed))
	v.SetDefault("relay_log_level", "info")
	v.SetDefault("relay_log_events", true)
	v.SetDefault("relay_http_path", "/events")

	v.AutomaticEnv()

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &ConfigurationError{Key: "environment", Err: errors.Wrap(err, "failed to unmarshal config")}
	}

	cfg.QueueURL = strings.TrimSpace(cfg.QueueURL)
	cfg.AckMode = AckMode(strings.ToLower(string(cfg.AckMode)))

	if err := cfg.check(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// check validates the optional settings. The queue url is left to Validate.
func (cfg *Config) check() error {
	switch cfg.AckMode {
	case AckFixed, AckDownstream:
	default:
		return &ConfigurationError{Key: EnvAckMode, Err: errors.Errorf("unknown ack mode %q", cfg.AckMode)}
	}

	if cfg.SendTimeout <= 0 {
		return &ConfigurationError{Key: EnvSendTimeout, Err: errors.Errorf("timeout must be positive, got %v", cfg.SendTimeout)}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return &ConfigurationError{Key: EnvLogLevel, Err: err}
	}

	return nil
}

// Validate reports a ConfigurationError when no destination queue is set.
func (cfg *Config) Validate() error {
	if cfg == nil || cfg.QueueURL == "" {
		return &ConfigurationError{Key: EnvQueueURL, Err: errors.New("destination queue url is required")}
	}

	return nil
}

// Level returns the configured log level, falling back to info.
func (cfg *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// timeout returns the send timeout, using the default when unset.
func (cfg *Config) timeout() time.Duration {
	if cfg.SendTimeout <= 0 {
		return DefaultSendTimeout
	}

	return cfg.SendTimeout
}

// ackMode returns the ack mode, using AckFixed when unset.
func (cfg *Config) ackMode() AckMode {
	if cfg.AckMode == "" {
		return AckFixed
	}

	return cfg.AckMode
}
