package engine

import (
	"time"

	"isolation/agent"
	"isolation/game"
	"isolation/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Engine struct {
	Board    *game.Board
	Agents   [2]agent.Agent // Indexed by game.Player
	MoveTime time.Duration

	clock func(budget time.Duration) searcher.TimeLeft
}

func LocalEngine(agents [2]agent.Agent, board *game.Board, moveTime time.Duration) *Engine {
	if agents[game.First] == nil || agents[game.Second] == nil {
		panic("need an agent for each player")
	}
	if board == nil {
		panic("need a board to play on")
	}

	return &Engine{
		Board:    board,
		Agents:   agents,
		MoveTime: moveTime,
		clock:    searcher.Countdown,
	}
}

// Run plays the game to the end. Each turn the active agent gets a fresh
// clock of MoveTime; it loses if it returns late or with a move it cannot play.
func (e *Engine) Run() Outcome {
	outcome := Outcome{}
	log.Info().Str("starting", e.Board.ActivePlayer().String()).Msg("game-started")

	for step := 1; ; step++ {
		player := e.Board.ActivePlayer()
		legal := e.Board.Moves()
		if len(legal) == 0 {
			return e.finish(outcome, player, NoMoves)
		}

		timeLeft := e.clock(e.MoveTime)
		move, metrics := e.Agents[player].FindMove(e.Board, timeLeft)
		remaining := timeLeft()

		outcome.Metrics = append(outcome.Metrics, MoveMetrics{
			Step:          step,
			Player:        player,
			Move:          move,
			SearchMetrics: metrics,
		})

		if remaining < 0 {
			return e.finish(outcome, player, Timeout)
		}
		if !lo.Contains(legal, move) {
			return e.finish(outcome, player, IllegalMove)
		}

		log.Debug().
			Int("step", step).
			Str("player", player.String()).
			Str("move", move.String()).
			Dur("remaining", remaining).
			Msg("move-played")

		e.Board = e.Board.Play(move).(*game.Board)
		outcome.Moves = append(outcome.Moves, move)
	}
}

func (e *Engine) finish(outcome Outcome, loser game.Player, reason Reason) Outcome {
	outcome.Loser = loser
	outcome.Winner = loser.Opponent()
	outcome.Reason = reason
	outcome.Board = e.Board

	log.Info().
		Str("winner", outcome.Winner.String()).
		Str("reason", reason.String()).
		Int("moves", len(outcome.Moves)).
		Msg("game-over")
	return outcome
}
