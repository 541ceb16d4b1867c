package searcher

import (
	"errors"
	"fmt"
	"time"

	"isolation/game"
	"isolation/meta"
)

// ErrSearchTimeout aborts a search once the remaining time reaches the
// threshold. Every level of the recursion returns it unchanged.
var ErrSearchTimeout = errors.New("search timeout")

// Method selects the tree walk used for a fixed-depth search.
type Method int

const (
	Minimax Method = iota
	AlphaBeta
)

func (m Method) String() string {
	switch m {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

func ParseMethod(name string) (Method, error) {
	switch name {
	case "minimax":
		return Minimax, nil
	case "alphabeta", "alpha-beta":
		return AlphaBeta, nil
	default:
		return 0, fmt.Errorf("unknown search method %q", name)
	}
}

type Option func(s *Searcher)

// WithMethod sets the tree walk used by Search and Deepen.
func WithMethod(method Method) Option {
	return func(s *Searcher) {
		s.method = method
	}
}

// WithTimeout sets the remaining time at or below which a search aborts.
func WithTimeout(threshold time.Duration) Option {
	return func(s *Searcher) {
		if threshold >= 0 {
			s.threshold = threshold
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewMetricsCollector()
	}
}

// Searcher walks the game tree from the point of view of the player to move
// at the root. Without metrics it keeps no state between calls; with metrics
// it must not be shared between goroutines.
type Searcher struct {
	evaluator game.Evaluator
	method    Method
	threshold time.Duration
	metrics   MetricsCollector
}

func NewSearcher(evaluator game.Evaluator, options ...Option) *Searcher {
	if evaluator == nil {
		panic("searcher needs an evaluator")
	}
	s := &Searcher{ // Default values
		evaluator: evaluator,
		method:    AlphaBeta,
		threshold: meta.DefaultTimeout,
		metrics:   NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Method() Method            { return s.method }
func (s *Searcher) Threshold() time.Duration  { return s.threshold }
func (s *Searcher) Metrics() MetricsCollector { return s.metrics }

// Search runs a single fixed-depth search with the configured method.
func (s *Searcher) Search(state game.State, depth int, timeLeft TimeLeft) (game.Position, error) {
	if s.method == Minimax {
		return s.Minimax(state, depth, timeLeft)
	}
	return s.AlphaBeta(state, depth, timeLeft)
}

// search holds what a single tree walk needs besides the nodes themselves.
type search struct {
	evaluator game.Evaluator
	threshold time.Duration
	timeLeft  TimeLeft
	player    game.Player // maximizing player
	metrics   MetricsCollector
	horizon   bool // some leaf was cut off by the depth limit
}

func (s *Searcher) newSearch(state game.State, timeLeft TimeLeft) *search {
	if timeLeft == nil {
		timeLeft = Unlimited
	}
	return &search{
		evaluator: s.evaluator,
		threshold: s.threshold,
		timeLeft:  timeLeft,
		player:    state.ActivePlayer(),
		metrics:   s.metrics,
	}
}

// enter is called first thing at every node.
func (r *search) enter() error {
	if r.timeLeft() <= r.threshold {
		return ErrSearchTimeout
	}
	r.metrics.AddNode()
	return nil
}

func (r *search) evaluate(state game.State) float64 {
	return r.evaluator.Evaluate(state, r.player)
}

func (r *search) leaf(state game.State) float64 {
	r.horizon = true
	return r.evaluate(state)
}
