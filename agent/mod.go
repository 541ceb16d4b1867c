package agent

import (
	"errors"
	"fmt"
	"time"

	"isolation/game"
	"isolation/meta"
	"isolation/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var (
	ErrInvalidDepth   = errors.New("search depth must be at least 1")
	ErrNoEvaluator    = errors.New("agent needs an evaluator")
	ErrInvalidTimeout = errors.New("timeout must not be negative")
	ErrInvalidMethod  = errors.New("unknown search method")
)

type Agent interface {
	// FindMove returns the move to play, or NoPosition when there is none,
	// along with the metrics of the search behind it (if collected)
	FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Position, searcher.SearchMetrics)
}

type settings struct {
	depth     int
	evaluator game.Evaluator
	iterative bool
	method    searcher.Method
	timeout   time.Duration
	maxDepth  int
	metrics   bool
}

type Option func(s *settings)

// WithSearchDepth sets the depth of a fixed-depth search. It is ignored when
// deepening iteratively.
func WithSearchDepth(depth int) Option {
	return func(s *settings) {
		s.depth = depth
	}
}

func WithEvaluator(evaluator game.Evaluator) Option {
	return func(s *settings) {
		s.evaluator = evaluator
	}
}

// WithIterative switches between iterative deepening and a single
// fixed-depth search.
func WithIterative(iterative bool) Option {
	return func(s *settings) {
		s.iterative = iterative
	}
}

func WithMethod(method searcher.Method) Option {
	return func(s *settings) {
		s.method = method
	}
}

// WithTimeout sets the remaining time at or below which a search gives up.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithMaxDepth caps iterative deepening. Zero means no cap.
func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		s.maxDepth = depth
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = true
	}
}

// SearchAgent picks moves by game tree search. It holds no game state
// between calls.
type SearchAgent struct {
	searcher  *searcher.Searcher
	depth     int
	iterative bool
	maxDepth  int
}

// New returns an agent that deepens iteratively with alpha-beta and the
// border balance heuristic unless told otherwise.
func New(options ...Option) (*SearchAgent, error) {
	s := settings{ // Default values
		depth:     meta.DefaultSearchDepth,
		evaluator: game.BorderBalance,
		iterative: true,
		method:    searcher.AlphaBeta,
		timeout:   meta.DefaultTimeout,
	}
	for _, option := range options {
		option(&s)
	}

	if s.evaluator == nil {
		return nil, ErrNoEvaluator
	}
	if !s.iterative && s.depth < 1 {
		return nil, fmt.Errorf("depth %d: %w", s.depth, ErrInvalidDepth)
	}
	if s.maxDepth < 0 {
		return nil, fmt.Errorf("max depth %d: %w", s.maxDepth, ErrInvalidDepth)
	}
	if s.timeout < 0 {
		return nil, fmt.Errorf("%v: %w", s.timeout, ErrInvalidTimeout)
	}
	if s.method != searcher.Minimax && s.method != searcher.AlphaBeta {
		return nil, fmt.Errorf("%v: %w", s.method, ErrInvalidMethod)
	}

	searcherOptions := []searcher.Option{searcher.WithMethod(s.method), searcher.WithTimeout(s.timeout)}
	if s.metrics {
		searcherOptions = append(searcherOptions, searcher.WithMetrics())
	}

	return &SearchAgent{
		searcher:  searcher.NewSearcher(s.evaluator, searcherOptions...),
		depth:     s.depth,
		iterative: s.iterative,
		maxDepth:  s.maxDepth,
	}, nil
}

func (a *SearchAgent) FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Position, searcher.SearchMetrics) {
	metrics := a.searcher.Metrics()
	metrics.Start()

	move := a.decide(state, timeLeft)

	result := metrics.Complete()
	log.Debug().
		Str("player", state.ActivePlayer().String()).
		Str("move", move.String()).
		Int("depth", result.Depth).
		Int64("nodes", result.Nodes).
		Bool("timed-out", result.TimedOut).
		Msg("move-found")
	return move, result
}

func (a *SearchAgent) decide(state game.State, timeLeft searcher.TimeLeft) game.Position {
	moves := state.Moves()
	switch len(moves) {
	case 0:
		return game.NoPosition
	case 1:
		return moves[0]
	}

	if state.Location(state.ActivePlayer()) == game.NoPosition {
		if move, ok := opening(state); ok {
			return move
		}
	}

	if a.iterative {
		return a.searcher.Deepen(state, a.maxDepth, timeLeft)
	}

	move, err := a.searcher.Search(state, a.depth, timeLeft)
	if err != nil {
		if !errors.Is(err, searcher.ErrSearchTimeout) {
			log.Err(err).Int("depth", a.depth).Msg("search-failed")
		}
		a.searcher.Metrics().TimedOut()
		return game.NoPosition
	}
	a.searcher.Metrics().CompleteDepth(a.depth)
	return move
}

// opening places the agent on the centre cell, or next to it when taken.
func opening(state game.State) (game.Position, bool) {
	col, row := state.Width()/2, state.Height()/2
	candidates := []game.Position{
		{Col: col, Row: row},
		{Col: col - 1, Row: row},
		{Col: col, Row: row - 1},
		{Col: col + 1, Row: row},
		{Col: col, Row: row + 1},
	}
	return lo.Find(candidates, state.MoveIsLegal)
}
