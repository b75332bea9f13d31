package game

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidTries      = errors.New("invalid number of tries")
)

type GameConfig struct {
	Width, Height int
	Tries         int
	Shuffle       ShuffleMode

	// Seed for card placement; zero seeds from the clock
	Seed int64

	// Log every arrangement and selection at debug level
	Debug  bool
	Logger logrus.FieldLogger
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:   4,
		Height:  4,
		Tries:   8,
		Shuffle: ShuffleUniform,
		Seed:    0,
		Debug:   false,
		Logger:  nil,
	}
}

// Option customizes a GameConfig before a Model is built from it
type Option func(*GameConfig)

func WithSeed(seed int64) Option {
	return func(config *GameConfig) {
		config.Seed = seed
	}
}

func WithShuffle(mode ShuffleMode) Option {
	return func(config *GameConfig) {
		config.Shuffle = mode
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(config *GameConfig) {
		config.Logger = logger
	}
}

func WithDebug(debug bool) Option {
	return func(config *GameConfig) {
		config.Debug = debug
	}
}

func (config GameConfig) Validate() error {
	if config.Width <= 0 || config.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d: width and height must be positive", config.Width, config.Height)
	}
	if (config.Width*config.Height)%2 != 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d: cell count must be even to form pairs", config.Width, config.Height)
	}
	if config.Tries < 0 {
		return errors.Wrapf(ErrInvalidTries, "%d", config.Tries)
	}
	return nil
}

// NewModel validates the config and builds a freshly shuffled Model from it
func (config GameConfig) NewModel() (*Model, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	model := config.newModel()
	model.Reset()
	return model, nil
}

func (config GameConfig) seed() int64 {
	if config.Seed == 0 {
		return time.Now().UnixNano()
	}
	return config.Seed
}

func (config GameConfig) logger() logrus.FieldLogger {
	if config.Logger != nil {
		return config.Logger
	}

	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}
