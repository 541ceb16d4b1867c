package searcher

import (
	"math"
	"testing"

	"isolation/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestAlphaBeta(t *testing.T) {
	t.Run("prunes without changing the decision", func(t *testing.T) {
		evaluator := &countingEvaluator{}
		s := NewSearcher(evaluator, WithMethod(AlphaBeta), WithMetrics())

		got, err := s.AlphaBeta(aimaTree(), 2, Unlimited)
		require.NoError(t, err)
		require.Equal(t, move(0), got)
		require.Equal(t, 7, evaluator.calls, "The second subtree should be cut off after its first leaf")

		metrics := s.Metrics().Complete()
		require.Equal(t, int64(11), metrics.Nodes)
		require.Equal(t, int64(2), metrics.Cutoffs)
	})

	t.Run("ties keep the first move", func(t *testing.T) {
		tree := mockState{node: branch(0, leaf(4), leaf(7), leaf(7))}
		s := NewSearcher(&countingEvaluator{})

		got, err := s.AlphaBeta(tree, 1, Unlimited)
		require.NoError(t, err)
		require.Equal(t, move(1), got)
	})

	t.Run("a later move equal to alpha is not adopted", func(t *testing.T) {
		// The second subtree is cut off at 5, which only matches the first.
		tree := mockState{node: branch(0,
			branch(0, leaf(5), leaf(9)),
			branch(0, leaf(5), leaf(8)),
		)}
		s := NewSearcher(&countingEvaluator{})

		got, err := s.AlphaBeta(tree, 2, Unlimited)
		require.NoError(t, err)
		require.Equal(t, move(0), got)
	})

	t.Run("lost position still returns a legal move", func(t *testing.T) {
		tree := mockState{node: branch(0, leaf(math.Inf(-1)), leaf(math.Inf(-1)))}
		s := NewSearcher(&countingEvaluator{})

		got, err := s.AlphaBeta(tree, 1, Unlimited)
		require.NoError(t, err)
		require.Equal(t, move(0), got)
	})

	t.Run("no legal move", func(t *testing.T) {
		s := NewSearcher(&countingEvaluator{})

		got, err := s.AlphaBeta(mockState{node: leaf(7)}, 3, Unlimited)
		require.NoError(t, err)
		require.Equal(t, game.NoPosition, got)
	})

	t.Run("timeout aborts the whole search", func(t *testing.T) {
		evaluator := &countingEvaluator{}
		s := NewSearcher(evaluator)
		clock, calls := budget(5)

		// root, A, 3, 12, 8 are entered; B is refused.
		got, err := s.AlphaBeta(aimaTree(), 2, clock)
		require.ErrorIs(t, err, ErrSearchTimeout)
		require.Equal(t, game.NoPosition, got)
		require.Equal(t, 6, *calls)
		require.Equal(t, 3, evaluator.calls)
	})
}

// randomTree builds a tree with small integer values so that ties are common.
func randomTree(r *rand.Rand, depth int) *node {
	value := float64(r.Intn(7) - 3)
	if depth == 0 || r.Intn(6) == 0 {
		if r.Intn(10) == 0 {
			value = math.Inf(2*r.Intn(2) - 1)
		}
		return leaf(value)
	}
	children := make([]*node, 1+r.Intn(4))
	for i := range children {
		children[i] = randomTree(r, depth-1)
	}
	return branch(value, children...)
}

func TestAlphaBetaAgreesWithMinimax(t *testing.T) {
	t.Run("random trees", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		minimax := NewSearcher(&countingEvaluator{}, WithMethod(Minimax))
		alphaBeta := NewSearcher(&countingEvaluator{}, WithMethod(AlphaBeta))

		for i := 0; i < 300; i++ {
			tree := mockState{node: randomTree(r, 5)}
			for depth := 1; depth <= 5; depth++ {
				want, err := minimax.Search(tree, depth, Unlimited)
				require.NoError(t, err)
				got, err := alphaBeta.Search(tree, depth, Unlimited)
				require.NoError(t, err)
				require.Equal(t, want, got, "tree %d at depth %d", i, depth)
			}
		}
	})

	t.Run("boards", func(t *testing.T) {
		empty3, err := game.NewBoard(3, 3)
		require.NoError(t, err)
		empty4, err := game.NewBoard(4, 4)
		require.NoError(t, err)
		placed5, err := game.NewBoard(5, 5,
			game.WithLocation(game.First, game.Position{Col: 2, Row: 2}),
			game.WithLocation(game.Second, game.Position{Col: 0, Row: 1}),
			game.WithBlocked(game.Position{Col: 3, Row: 0}, game.Position{Col: 4, Row: 4}),
		)
		require.NoError(t, err)

		cases := []struct {
			name     string
			board    *game.Board
			maxDepth int
		}{
			{"3x3 from scratch", empty3, 6},
			{"4x4 from scratch", empty4, 3},
			{"5x5 midgame", placed5, 5},
		}
		evaluators := []game.Evaluator{game.Mobility, game.BorderBalance, game.CornerOpponent, game.AvoidBorder}

		for _, c := range cases {
			for _, evaluator := range evaluators {
				minimax := NewSearcher(evaluator, WithMethod(Minimax))
				alphaBeta := NewSearcher(evaluator, WithMethod(AlphaBeta))
				for depth := 1; depth <= c.maxDepth; depth++ {
					want, err := minimax.Search(c.board, depth, Unlimited)
					require.NoError(t, err)
					got, err := alphaBeta.Search(c.board, depth, Unlimited)
					require.NoError(t, err)
					require.Equal(t, want, got, "%s at depth %d", c.name, depth)
					require.True(t, c.board.MoveIsLegal(got), "%s at depth %d", c.name, depth)
				}
			}
		}
	})
}
