package searcher

import (
	"errors"

	"isolation/game"

	"github.com/rs/zerolog/log"
)

// Deepen searches depth 1, 2, 3, ... with the configured method until the
// clock runs out, and returns the move of the deepest search that finished.
// It returns NoPosition when not even depth 1 finished in time. A positive
// maxDepth caps the deepening; the loop also ends once a search reached
// every terminal position, since deeper searches cannot see anything new.
//
// Deepen is the only place where ErrSearchTimeout is absorbed.
func (s *Searcher) Deepen(state game.State, maxDepth int, timeLeft TimeLeft) game.Position {
	best := game.NoPosition

	for depth := 1; maxDepth <= 0 || depth <= maxDepth; depth++ {
		r := s.newSearch(state, timeLeft)

		var move game.Position
		var err error
		if s.method == Minimax {
			move, err = r.minimaxRoot(state, depth)
		} else {
			move, err = r.alphaBetaRoot(state, depth)
		}

		if err != nil {
			if !errors.Is(err, ErrSearchTimeout) {
				log.Err(err).Int("depth", depth).Msg("search-failed")
			}
			s.metrics.TimedOut()
			log.Debug().Int("depth", depth).Str("best", best.String()).Msg("search-timeout")
			return best
		}

		best = move
		s.metrics.CompleteDepth(depth)
		log.Debug().Int("depth", depth).Str("best", best.String()).Str("method", s.method.String()).Msg("deepening-iteratively")

		if !r.horizon {
			break
		}
	}
	return best
}
