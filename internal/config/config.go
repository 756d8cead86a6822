package config

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidSymbol = errors.New("player symbol must be a single character")
	ErrSameSymbols   = errors.New("players must have different symbols")
	ErrUnknownOutput = errors.New("unknown output format")
)

type OutputFormat string

const (
	TextOutput = OutputFormat("text")
	JsonOutput = OutputFormat("json")
)

type PlayerConfig struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type config struct {
	Player1 PlayerConfig `yaml:"player1"`
	Player2 PlayerConfig `yaml:"player2"`
	Output  OutputFormat `yaml:"output"`
	Log     LogConfig    `yaml:"log"`
}

func Default() config {
	return config{
		Player1: PlayerConfig{Name: "Player 1", Symbol: "X"},
		Player2: PlayerConfig{Name: "Player 2", Symbol: "O"},
		Output:  TextOutput,
		Log:     LogConfig{Level: "info"},
	}
}

// New reads the config file, a missing file leaves the defaults in place.
func New(cfgPath string) (config, error) {
	file, err := os.Open(cfgPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return Default(), nil
	case err != nil:
		return config{}, errors.WithMessagef(err, "open config '%s'", cfgPath)
	}
	defer func() {
		_ = file.Close()
	}()
	return Decode(file)
}

func Decode(r io.Reader) (config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, errors.WithMessage(err, "decode yaml")
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	for _, p := range []PlayerConfig{c.Player1, c.Player2} {
		if utf8.RuneCountInString(p.Symbol) != 1 {
			return errors.WithMessagef(ErrInvalidSymbol, "got '%s'", p.Symbol)
		}
	}
	if c.Player1.Symbol == c.Player2.Symbol {
		return ErrSameSymbols
	}
	switch c.Output {
	case TextOutput, JsonOutput:
	default:
		return errors.WithMessagef(ErrUnknownOutput, "got '%s'", c.Output)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.WithMessage(err, "parse log level")
	}
	return nil
}

// Logger builds a production logger writing to stderr so it never mixes with the board output.
func (c config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.WithMessage(err, "parse log level")
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.WithMessage(err, "build logger")
	}
	return logger, nil
}
