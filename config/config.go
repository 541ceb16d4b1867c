package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"isolation/agent"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var (
	ErrPlayerCount = errors.New("exactly two players are required")
	ErrUnknownKind = errors.New("unknown player kind")
)

const (
	KindSearch = "search"
	KindRandom = "random"
)

// Player describes one agent. Zero values fall back to the defaults in meta.
type Player struct {
	Kind        string `yaml:"kind"` // search (default) or random
	SearchDepth int    `yaml:"search_depth"`
	Evaluator   string `yaml:"evaluator"`
	Iterative   *bool  `yaml:"iterative"`
	Method      string `yaml:"method"`
	TimeoutMs   *int   `yaml:"timeout_ms"`
	MaxDepth    int    `yaml:"max_depth"`
	Metrics     bool   `yaml:"metrics"`
	Seed        uint64 `yaml:"seed"`
}

type Config struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	MoveTimeMs int      `yaml:"move_time_ms"`
	Players    []Player `yaml:"players"`
}

// Default is a standard board with two default search agents.
func Default() *Config {
	return &Config{
		Width:      meta.DefaultBoardSize,
		Height:     meta.DefaultBoardSize,
		MoveTimeMs: int(meta.DefaultMoveTime / time.Millisecond),
		Players:    []Player{{}, {}},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse reads a YAML configuration on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(c.Players) != 2 {
		return nil, fmt.Errorf("%d players: %w", len(c.Players), ErrPlayerCount)
	}
	return c, nil
}

func (c *Config) MoveTime() time.Duration {
	return time.Duration(c.MoveTimeMs) * time.Millisecond
}

func (c *Config) Board() (*game.Board, error) {
	return game.NewBoard(c.Width, c.Height)
}

// Agents builds the agent of each player, in playing order.
func (c *Config) Agents() ([2]agent.Agent, error) {
	var agents [2]agent.Agent
	if len(c.Players) != 2 {
		return agents, fmt.Errorf("%d players: %w", len(c.Players), ErrPlayerCount)
	}
	for i, p := range c.Players {
		a, err := p.Agent()
		if err != nil {
			return agents, fmt.Errorf("player %d: %w", i+1, err)
		}
		agents[i] = a
	}
	return agents, nil
}

func (p Player) Agent() (agent.Agent, error) {
	switch p.Kind {
	case "", KindSearch:
	case KindRandom:
		return agent.NewRandomAgent(p.Seed), nil
	default:
		return nil, fmt.Errorf("%q: %w", p.Kind, ErrUnknownKind)
	}

	options := []agent.Option{}

	if p.SearchDepth != 0 {
		options = append(options, agent.WithSearchDepth(p.SearchDepth))
	}
	evaluator, err := game.ParseEvaluator(lo.Ternary(p.Evaluator == "", meta.DefaultEvaluator, p.Evaluator))
	if err != nil {
		return nil, err
	}
	options = append(options, agent.WithEvaluator(evaluator))

	method, err := searcher.ParseMethod(lo.Ternary(p.Method == "", meta.DefaultMethod, p.Method))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", agent.ErrInvalidMethod, err)
	}
	options = append(options, agent.WithMethod(method))

	if p.Iterative != nil {
		options = append(options, agent.WithIterative(*p.Iterative))
	}
	if p.TimeoutMs != nil {
		options = append(options, agent.WithTimeout(time.Duration(*p.TimeoutMs)*time.Millisecond))
	}
	if p.MaxDepth != 0 {
		options = append(options, agent.WithMaxDepth(p.MaxDepth))
	}
	if p.Metrics {
		options = append(options, agent.WithMetrics())
	}

	return agent.New(options...)
}
