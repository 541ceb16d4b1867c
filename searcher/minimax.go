package searcher

import (
	"math"

	"isolation/game"
)

// Minimax returns the move leading to the best value a depth-limited minimax
// search finds for the player to move, or NoPosition if there is no legal
// move. Ties go to the first move found.
func (s *Searcher) Minimax(state game.State, depth int, timeLeft TimeLeft) (game.Position, error) {
	return s.newSearch(state, timeLeft).minimaxRoot(state, depth)
}

func (r *search) minimaxRoot(state game.State, depth int) (game.Position, error) {
	if err := r.enter(); err != nil {
		return game.NoPosition, err
	}

	moves := state.Moves()
	if len(moves) == 0 {
		return game.NoPosition, nil
	}

	// Start from the first move so that a lost position still yields a legal move
	bestMove := moves[0]
	bestScore := math.Inf(-1)
	for _, move := range moves {
		score, err := r.minimax(state.Play(move), depth-1, false)
		if err != nil {
			return game.NoPosition, err
		}
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}
	return bestMove, nil
}

func (r *search) minimax(state game.State, depth int, maximizing bool) (float64, error) {
	if err := r.enter(); err != nil {
		return 0, err
	}

	if depth <= 0 {
		return r.leaf(state), nil
	}

	moves := state.Moves()
	if len(moves) == 0 { // Game over: the evaluator reports the win or loss
		return r.evaluate(state), nil
	}

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, move := range moves {
		score, err := r.minimax(state.Play(move), depth-1, !maximizing)
		if err != nil {
			return 0, err
		}
		// Strictly better only, the first move found keeps ties
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}
	return best, nil
}
