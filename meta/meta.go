// meta/meta.go
package meta

import "time"

// DefaultSearchDepth is the fixed search depth used when iterative deepening is off.
const DefaultSearchDepth = 3

// DefaultTimeout is the remaining time below which a search aborts.
const DefaultTimeout = 10 * time.Millisecond

// DefaultMoveTime is the time granted to an agent for each move.
const DefaultMoveTime = 150 * time.Millisecond

// DefaultBoardSize is the width and height of a standard board.
const DefaultBoardSize = 7

// DefaultEvaluator names the heuristic used when none is configured.
const DefaultEvaluator = "border_balance"

// DefaultMethod names the search method used when none is configured.
const DefaultMethod = "alphabeta"
