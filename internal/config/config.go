package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "LAZY"

	FormatConsole = "console"
	FormatJSON    = "json"

	defaultFirstName = "John"
	defaultLogLevel  = "info"
)

var (
	ErrInvalidFormat = errors.New("log format must be console or json")
	ErrEmptyName     = errors.New("first name must be set")
)

// Config holds the settings of the lazy command.
type Config struct {
	// Input is a YAML file of employees. The sample employees are used when empty.
	Input string `mapstructure:"input"`
	// Graph is the DOT file receiving the pipeline graph. Nothing is drawn when empty.
	Graph     string    `mapstructure:"graph"`
	FirstName string    `mapstructure:"first_name"`
	Log       LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks the values that cannot be fixed by defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return ErrEmptyName
	}

	if c.Log.Format != FormatConsole && c.Log.Format != FormatJSON {
		return errors.Wrapf(ErrInvalidFormat, "got %q", c.Log.Format)
	}

	_, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", c.Log.Level)
	}

	return nil
}

// New returns a viper instance reading LAZY_* environment variables, with defaults set.
// When configFile is not empty it is read as well.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("input", "")
	v.SetDefault("graph", "")
	v.SetDefault("first_name", defaultFirstName)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.format", FormatConsole)

	if configFile != "" {
		v.SetConfigFile(configFile)

		err := v.ReadInConfig()
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %s", configFile)
		}
	}

	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	err := v.Unmarshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal config")
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
