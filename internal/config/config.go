package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	cerr "github.com/saeidalz13/battleship-exercises/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	EnvStage        = "STAGE"
	EnvLogLevel     = "LOG_LEVEL"
	EnvScenarioFile = "SCENARIO_FILE"
	EnvNoColor      = "NO_COLOR"
)

type Config struct {
	Stage        string
	LogLevel     string
	ScenarioFile string
	NoColor      bool
}

type Option func(*Config) error

func New(optFuncs ...Option) (Config, error) {
	cfg := Config{
		Stage:    StageDev,
		LogLevel: "info",
	}
	for _, opt := range optFuncs {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func WithStage(stage string) Option {
	return func(c *Config) error {
		if stage == "" {
			return nil
		}
		if stage != StageProd && stage != StageDev {
			return cerr.ErrInvalidStage(stage)
		}
		c.Stage = stage
		return nil
	}
}

func WithLogLevel(level string) Option {
	return func(c *Config) error {
		if level != "" {
			c.LogLevel = strings.ToLower(level)
		}
		return nil
	}
}

func WithScenarioFile(path string) Option {
	return func(c *Config) error {
		c.ScenarioFile = path
		return nil
	}
}

func WithNoColor(noColor bool) Option {
	return func(c *Config) error {
		c.NoColor = noColor
		return nil
	}
}

// LoadDotEnv loads envFile unless STAGE is prod. A missing
// file is fine; it reports whether one was loaded.
func LoadDotEnv(envFile string) (bool, error) {
	if os.Getenv(EnvStage) == StageProd {
		return false, nil
	}

	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FromEnv builds the config from the process environment.
func FromEnv() (Config, error) {
	return New(
		WithStage(os.Getenv(EnvStage)),
		WithLogLevel(os.Getenv(EnvLogLevel)),
		WithScenarioFile(os.Getenv(EnvScenarioFile)),
		WithNoColor(os.Getenv(EnvNoColor) != ""),
	)
}
