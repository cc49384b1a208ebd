package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trafficsim/trafficlight-go/internal/cycle"
	"github.com/trafficsim/trafficlight-go/internal/entity"
)

const Name = "config"

var Paths []string = []string{
	"/etc/trafficlight",
	"$HOME/.trafficlight",
	".",
}

var (
	ErrBindEnv         = errors.New("failed to bind env")
	ErrBindFlag        = errors.New("failed to bind flag")
	ErrReadConfig      = errors.New("failed to read config")
	ErrUnmarshalConfig = errors.New("failed to unmarshal config")
	ErrInvalidConfig   = errors.New("invalid config")
)

var envs = map[string][]string{
	"log.level":       {"LOG_LEVEL", "TRAFFICLIGHT_LOG_LEVEL"},
	"log.format":      {"LOG_FORMAT", "TRAFFICLIGHT_LOG_FORMAT"},
	"lights":          {"TRAFFICLIGHT_LIGHTS"},
	"observers":       {"TRAFFICLIGHT_OBSERVERS"},
	"poll_interval":   {"TRAFFICLIGHT_POLL_INTERVAL"},
	"wait_pause":      {"TRAFFICLIGHT_WAIT_PAUSE"},
	"status_interval": {"TRAFFICLIGHT_STATUS_INTERVAL"},
	"oneshot":         {"TRAFFICLIGHT_ONESHOT"},
	"oneshot_phase":   {"TRAFFICLIGHT_ONESHOT_PHASE"},
}

var defaults = map[string]any{
	"log.level":       "info",
	"log.format":      "console",
	"lights":          1,
	"observers":       1,
	"poll_interval":   "1ms",
	"wait_pause":      "0s",
	"status_interval": "5s",
	"oneshot":         false,
	"oneshot_phase":   "green",
	"cycle.type":      cycle.TypeUniform,
	"cycle.min":       cycle.DefaultMin.String(),
	"cycle.max":       cycle.DefaultMax.String(),
	"cycle.step":      cycle.DefaultStep.String(),
}

// Flags holds the command line flags. Flags that were not set on the command
// line do not override the config file or environment.
var Flags = NewFlagSet()

var flagKeys = map[string]string{
	"log-level":     "log.level",
	"lights":        "lights",
	"observers":     "observers",
	"oneshot":       "oneshot",
	"oneshot-phase": "oneshot_phase",
}

func NewFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("trafficlight", pflag.ContinueOnError)
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int("lights", 1, "number of independent traffic lights")
	flags.Int("observers", 1, "observers waiting on each light")
	flags.Bool("oneshot", false, "exit once every light has reached the oneshot phase")
	flags.String("oneshot-phase", "green", "phase oneshot mode waits for (red, green)")

	return flags
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Log            Log            `mapstructure:"log"`
	Lights         int            `mapstructure:"lights"`
	Observers      int            `mapstructure:"observers"`
	PollInterval   time.Duration  `mapstructure:"poll_interval"`
	WaitPause      time.Duration  `mapstructure:"wait_pause"`
	StatusInterval time.Duration  `mapstructure:"status_interval"`
	Oneshot        bool           `mapstructure:"oneshot"`
	OneshotPhase   string         `mapstructure:"oneshot_phase"`
	Cycle          map[string]any `mapstructure:"cycle"`
}

func (c *Config) CycleConfig() cycle.Config {
	return cycle.Config(c.Cycle)
}

// TargetPhase is the phase oneshot mode waits for. Empty means green.
func (c *Config) TargetPhase() (entity.Phase, error) {
	if c.OneshotPhase == "" {
		return entity.PhaseGreen, nil
	}

	return entity.ParsePhase(c.OneshotPhase)
}

func (c *Config) Validate() error {
	if c.Lights < 1 {
		return fmt.Errorf("%w: lights must be at least 1, got %d", ErrInvalidConfig, c.Lights)
	}

	if c.Observers < 0 {
		return fmt.Errorf("%w: observers must not be negative, got %d", ErrInvalidConfig, c.Observers)
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll_interval must be positive, got %s", ErrInvalidConfig, c.PollInterval)
	}

	if c.WaitPause < 0 {
		return fmt.Errorf("%w: wait_pause must not be negative, got %s", ErrInvalidConfig, c.WaitPause)
	}

	if c.StatusInterval < 0 {
		return fmt.Errorf("%w: status_interval must not be negative, got %s", ErrInvalidConfig, c.StatusInterval)
	}

	if _, err := c.TargetPhase(); err != nil {
		return fmt.Errorf("%w: oneshot_phase: %w", ErrInvalidConfig, err)
	}

	return nil
}

func Load() (*Config, error) {
	return load(Flags)
}

func load(flags *pflag.FlagSet) (*Config, error) {
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

	for flagName, key := range flagKeys {
		if err := viper.BindPFlag(key, flags.Lookup(flagName)); err != nil {
			return nil, errors.Join(ErrBindFlag, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Join(ErrReadConfig, err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Join(ErrUnmarshalConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
