package searcher

import (
	"math"
	"testing"
	"time"

	"isolation/game"

	"github.com/stretchr/testify/require"
)

func TestMinimax(t *testing.T) {
	t.Run("picks the move with the best guaranteed value", func(t *testing.T) {
		evaluator := &countingEvaluator{}
		s := NewSearcher(evaluator, WithMethod(Minimax))

		got, err := s.Minimax(aimaTree(), 2, Unlimited)
		require.NoError(t, err)
		require.Equal(t, move(0), got)
		require.Equal(t, 9, evaluator.calls, "Minimax should evaluate every leaf")
	})

	t.Run("ties keep the first move", func(t *testing.T) {
		tree := mockState{node: branch(0, leaf(1), leaf(5), leaf(5), leaf(2))}
		s := NewSearcher(&countingEvaluator{}, WithMethod(Minimax))

		got, err := s.Minimax(tree, 1, Unlimited)
		require.NoError(t, err)
		require.Equal(t, move(1), got)
	})

	t.Run("lost position still returns a legal move", func(t *testing.T) {
		tree := mockState{node: branch(0, leaf(math.Inf(-1)), leaf(math.Inf(-1)))}
		s := NewSearcher(&countingEvaluator{}, WithMethod(Minimax))

		got, err := s.Minimax(tree, 1, Unlimited)
		require.NoError(t, err)
		require.Equal(t, move(0), got)
	})

	t.Run("no legal move", func(t *testing.T) {
		s := NewSearcher(&countingEvaluator{}, WithMethod(Minimax))

		got, err := s.Minimax(mockState{node: leaf(7)}, 3, Unlimited)
		require.NoError(t, err)
		require.Equal(t, game.NoPosition, got)
	})

	t.Run("terminal positions are evaluated above the depth limit", func(t *testing.T) {
		// The first move ends the game at once, the second leads to a worse leaf.
		tree := mockState{node: branch(0,
			leaf(4),
			branch(0, branch(0, leaf(1))),
		)}
		s := NewSearcher(&countingEvaluator{}, WithMethod(Minimax))

		got, err := s.Minimax(tree, 3, Unlimited)
		require.NoError(t, err)
		require.Equal(t, move(0), got)
	})

	t.Run("timeout aborts the whole search", func(t *testing.T) {
		evaluator := &countingEvaluator{}
		s := NewSearcher(evaluator, WithMethod(Minimax))
		clock, calls := budget(2)

		got, err := s.Minimax(aimaTree(), 2, clock)
		require.ErrorIs(t, err, ErrSearchTimeout)
		require.Equal(t, game.NoPosition, got)
		require.Equal(t, 3, *calls, "No node should be entered after the clock ran out")
		require.Zero(t, evaluator.calls)
	})

	t.Run("time left equal to the threshold is a timeout", func(t *testing.T) {
		s := NewSearcher(&countingEvaluator{}, WithMethod(Minimax), WithTimeout(5*time.Millisecond))

		_, err := s.Minimax(aimaTree(), 2, func() time.Duration { return 5 * time.Millisecond })
		require.ErrorIs(t, err, ErrSearchTimeout)

		got, err := s.Minimax(aimaTree(), 2, func() time.Duration { return 6 * time.Millisecond })
		require.NoError(t, err)
		require.Equal(t, move(0), got)
	})
}

func TestMinimaxOnBoard(t *testing.T) {
	t.Run("depth one maximizes the evaluation of the next position", func(t *testing.T) {
		b, err := game.NewBoard(7, 7,
			game.WithLocation(game.First, game.Position{Col: 3, Row: 3}),
			game.WithLocation(game.Second, game.Position{Col: 0, Row: 0}),
		)
		require.NoError(t, err)
		s := NewSearcher(game.BorderBalance, WithMethod(Minimax))

		got, err := s.Minimax(b, 1, Unlimited)
		require.NoError(t, err)
		require.True(t, b.MoveIsLegal(got))

		best := math.Inf(-1)
		bestMove := game.NoPosition
		for _, m := range b.Moves() {
			if score := game.BorderBalance.Evaluate(b.Play(m), game.First); score > best {
				best = score
				bestMove = m
			}
		}
		require.Equal(t, bestMove, got)
	})

	t.Run("takes the only winning move", func(t *testing.T) {
		// Moving to (2,1) leaves Second in the corner without a move.
		b, err := game.NewBoard(5, 5,
			game.WithLocation(game.First, game.Position{Col: 0, Row: 2}),
			game.WithLocation(game.Second, game.Position{Col: 0, Row: 0}),
			game.WithBlocked(game.Position{Col: 1, Row: 2}),
		)
		require.NoError(t, err)
		require.Contains(t, b.Moves(), game.Position{Col: 2, Row: 1})

		for _, evaluator := range []game.Evaluator{game.Mobility, game.BorderBalance, game.CornerOpponent, game.AvoidBorder} {
			s := NewSearcher(evaluator, WithMethod(Minimax))

			got, err := s.Minimax(b, 2, Unlimited)
			require.NoError(t, err)
			require.Equal(t, game.Position{Col: 2, Row: 1}, got)
		}
	})
}
