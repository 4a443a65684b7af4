package config

import (
	"fmt"
	"os"
	"time"

	"dama/meta"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

type Config struct {
	LogLevel   string           `yaml:"logLevel"`
	Server     ServerConfig     `yaml:"server"`
	Game       GameConfig       `yaml:"game"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	AllowOrigins string        `yaml:"allowOrigins"`
	ThinkDelay   time.Duration `yaml:"thinkDelay"`
}

type GameConfig struct {
	Depths          map[Difficulty]int `yaml:"depths"`
	TimeLimit       time.Duration      `yaml:"timeLimit"`
	RepetitionLimit int                `yaml:"repetitionLimit"`
	MaxTurns        int                `yaml:"maxTurns"`
}

type ExperimentConfig struct {
	Games        int          `yaml:"games"` // per matchup
	OpeningPlies int          `yaml:"openingPlies"`
	Seed         uint64       `yaml:"seed"`
	OutputDir    string       `yaml:"outputDir"`
	Difficulties []Difficulty `yaml:"difficulties"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Server: ServerConfig{
			Addr:         meta.LISTEN_ADDR,
			AllowOrigins: "*",
			ThinkDelay:   meta.THINK_DELAY,
		},
		Game: GameConfig{
			Depths: map[Difficulty]int{
				Easy:   meta.EASY_DEPTH,
				Medium: meta.MEDIUM_DEPTH,
				Hard:   meta.HARD_DEPTH,
			},
			TimeLimit:       meta.PLAYER_TIME_LIMIT,
			RepetitionLimit: meta.REPETITION_LIMIT,
			MaxTurns:        meta.MAX_TURNS,
		},
		Experiment: ExperimentConfig{
			Games:        10,
			OpeningPlies: 4,
			Seed:         1,
			OutputDir:    "experiments/results",
			Difficulties: []Difficulty{Easy, Medium},
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.WithMessagef(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate reports every problem of the configuration at once.
func (c Config) Validate() error {
	var errs *multierror.Error

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("logLevel: %w", err))
	}
	if c.Server.Addr == "" {
		errs = multierror.Append(errs, errors.New("server.addr must not be empty"))
	}
	if c.Server.ThinkDelay < 0 {
		errs = multierror.Append(errs, errors.Errorf("server.thinkDelay must not be negative, got %s", c.Server.ThinkDelay))
	}
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if depth, ok := c.Game.Depths[d]; !ok || depth < 1 {
			errs = multierror.Append(errs, errors.Errorf("game.depths.%s must be at least 1", d))
		}
	}
	if c.Game.TimeLimit <= 0 {
		errs = multierror.Append(errs, errors.Errorf("game.timeLimit must be positive, got %s", c.Game.TimeLimit))
	}
	if c.Game.RepetitionLimit < 0 {
		errs = multierror.Append(errs, errors.New("game.repetitionLimit must not be negative"))
	}
	if c.Game.MaxTurns < 1 {
		errs = multierror.Append(errs, errors.New("game.maxTurns must be at least 1"))
	}
	if c.Experiment.Games < 0 {
		errs = multierror.Append(errs, errors.New("experiment.games must not be negative"))
	}
	if c.Experiment.OpeningPlies < 0 {
		errs = multierror.Append(errs, errors.New("experiment.openingPlies must not be negative"))
	}
	for _, d := range c.Experiment.Difficulties {
		if _, ok := c.Game.Depths[d]; !ok {
			errs = multierror.Append(errs, errors.Errorf("experiment.difficulties: unknown difficulty %q", d))
		}
	}

	return errs.ErrorOrNil()
}

// Depth returns the search depth of a difficulty.
func (c Config) Depth(d Difficulty) (int, error) {
	depth, ok := c.Game.Depths[d]
	if !ok {
		return 0, fmt.Errorf("unknown difficulty %q", d)
	}
	return depth, nil
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
