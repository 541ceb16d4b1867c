package game

import (
	"fmt"
	"math"
	"sort"

	"isolation/utils"

	"github.com/samber/lo"
)

// Loss and Win bound every heuristic score: a player that has already lost
// scores Loss, one that has already won scores Win.
var (
	Loss = math.Inf(-1)
	Win  = math.Inf(1)
)

// borderReach is how close to an edge a cell must be to count as near the border.
const borderReach = 2

// Evaluator scores a state from the point of view of player. Implementations
// must be pure and defined for every reachable state.
type Evaluator interface {
	Evaluate(state State, player Player) float64
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(state State, player Player) float64

func (f EvaluatorFunc) Evaluate(state State, player Player) float64 {
	return f(state, player)
}

// Mobility is the player's legal move count minus the opponent's.
var Mobility = heuristic(func(s State, p Player, own, opp int) float64 {
	return float64(own - opp)
})

// BorderBalance rewards cornering the opponent while keeping the player away
// from the edges.
var BorderBalance = heuristic(func(s State, p Player, own, opp int) float64 {
	return float64(own-opp) + Border(s, s.Opponent(p)) - Border(s, p)
})

// CornerOpponent rewards pushing the opponent toward the edges.
var CornerOpponent = heuristic(func(s State, p Player, own, opp int) float64 {
	return float64(own-opp) + Border(s, s.Opponent(p))
})

// AvoidBorder penalises the player for standing near the edges.
var AvoidBorder = heuristic(func(s State, p Player, own, opp int) float64 {
	return float64(own-opp) - Border(s, p)
})

var evaluators = map[string]Evaluator{
	"mobility":        Mobility,
	"border_balance":  BorderBalance,
	"corner_opponent": CornerOpponent,
	"avoid_border":    AvoidBorder,
}

// EvaluatorNames lists the names accepted by ParseEvaluator, sorted.
func EvaluatorNames() []string {
	names := lo.Keys(evaluators)
	sort.Strings(names)
	return names
}

// ParseEvaluator returns the heuristic registered under name.
func ParseEvaluator(name string) (Evaluator, error) {
	evaluator, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q (want one of %v)", name, EvaluatorNames())
	}
	return evaluator, nil
}

// heuristic wraps a scoring formula with the win/loss checks shared by every
// variant. The formula only sees states where both players can still move.
func heuristic(score func(s State, p Player, own, opp int) float64) EvaluatorFunc {
	return func(s State, p Player) float64 {
		if s.IsLoser(p) {
			return Loss
		}
		if s.IsWinner(p) {
			return Win
		}

		own := len(s.LegalMoves(p))
		if own == 0 { // Stranded: loses on its next turn
			return Loss
		}
		opp := len(s.LegalMoves(s.Opponent(p)))
		if opp == 0 {
			return Win
		}

		return score(s, p, own, opp)
	}
}

// Border measures how close a player stands to the edges of the board. Each
// edge closer than two cells contributes the shortfall, so a corner scores 4
// and any cell at least two cells from every edge scores 0.
func Border(s State, p Player) float64 {
	location := s.Location(p)
	if location == NoPosition {
		return 0
	}
	return float64(edgeShortfall(location.Col, s.Width()) + edgeShortfall(location.Row, s.Height()))
}

func edgeShortfall(coord, size int) int {
	near := coord
	far := size - 1 - coord
	return utils.Clamp(borderReach-near, 0, borderReach) + utils.Clamp(borderReach-far, 0, borderReach)
}
