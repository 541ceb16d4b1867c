package searcher

import (
	"math"

	"isolation/game"
)

// AlphaBeta returns the same move as Minimax while skipping subtrees that
// cannot change the result.
//
// At the root a move is adopted only when its value is strictly greater than
// alpha, which is then raised to that value. Children searched after alpha
// has risen come back as bounds at or below alpha whenever they are no
// better, so they can never displace an earlier move of equal value.
func (s *Searcher) AlphaBeta(state game.State, depth int, timeLeft TimeLeft) (game.Position, error) {
	return s.newSearch(state, timeLeft).alphaBetaRoot(state, depth)
}

func (r *search) alphaBetaRoot(state game.State, depth int) (game.Position, error) {
	if err := r.enter(); err != nil {
		return game.NoPosition, err
	}

	moves := state.Moves()
	if len(moves) == 0 {
		return game.NoPosition, nil
	}

	alpha, beta := math.Inf(-1), math.Inf(1)
	bestMove := moves[0]
	for _, move := range moves {
		score, err := r.minValue(state.Play(move), depth-1, alpha, beta)
		if err != nil {
			return game.NoPosition, err
		}
		if score > alpha {
			bestMove = move
			alpha = score
		}
	}
	return bestMove, nil
}

func (r *search) maxValue(state game.State, depth int, alpha, beta float64) (float64, error) {
	if err := r.enter(); err != nil {
		return 0, err
	}

	if depth <= 0 {
		return r.leaf(state), nil
	}

	moves := state.Moves()
	if len(moves) == 0 {
		return r.evaluate(state), nil
	}

	best := math.Inf(-1)
	for _, move := range moves {
		score, err := r.minValue(state.Play(move), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = math.Max(best, score)
		if best >= beta {
			r.metrics.AddCutoff()
			return best, nil
		}
		alpha = math.Max(alpha, best)
	}
	return best, nil
}

func (r *search) minValue(state game.State, depth int, alpha, beta float64) (float64, error) {
	if err := r.enter(); err != nil {
		return 0, err
	}

	if depth <= 0 {
		return r.leaf(state), nil
	}

	moves := state.Moves()
	if len(moves) == 0 {
		return r.evaluate(state), nil
	}

	best := math.Inf(1)
	for _, move := range moves {
		score, err := r.maxValue(state.Play(move), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = math.Min(best, score)
		if best <= alpha {
			r.metrics.AddCutoff()
			return best, nil
		}
		beta = math.Min(beta, best)
	}
	return best, nil
}
