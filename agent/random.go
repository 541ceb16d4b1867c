package agent

import (
	"isolation/game"
	"isolation/searcher"

	"golang.org/x/exp/rand"
)

// RandomAgent plays a uniformly random legal move. It is the baseline
// opponent for games and tests.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Position, searcher.SearchMetrics) {
	moves := state.Moves()
	if len(moves) == 0 {
		return game.NoPosition, searcher.SearchMetrics{}
	}
	return moves[a.rng.Intn(len(moves))], searcher.SearchMetrics{}
}
