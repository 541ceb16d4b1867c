package experiments

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"isolation/engine"
	"isolation/game"

	"github.com/samber/lo"
)

type Summary struct {
	Winner     string        `json:"winner"`
	Loser      string        `json:"loser"`
	Reason     string        `json:"reason"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	MoveTime   time.Duration `json:"moveTime"`
	TotalMoves int           `json:"totalMoves"`
	Moves      []string      `json:"moves"`
	Board      string        `json:"board"` // Final position
	WrittenAt  time.Time     `json:"writtenAt"`
}

// Writer stores game records under a directory named by the time it was created.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteGame writes the summary of a game and the metrics of every decision in it.
func (w *Writer) WriteGame(id int, outcome engine.Outcome, moveTime time.Duration) error {
	if err := w.WriteSummary(id, outcome, moveTime); err != nil {
		return err
	}
	return w.WriteMetrics(id, outcome.Metrics)
}

func (w *Writer) WriteSummary(id int, outcome engine.Outcome, moveTime time.Duration) error {
	summary := Summary{
		Winner:     outcome.Winner.String(),
		Loser:      outcome.Loser.String(),
		Reason:     outcome.Reason.String(),
		MoveTime:   moveTime,
		TotalMoves: len(outcome.Moves),
		Moves:      lo.Map(outcome.Moves, func(move game.Position, _ int) string { return move.String() }),
		WrittenAt:  time.Now().UTC(),
	}
	if outcome.Board != nil {
		summary.Width = outcome.Board.Width()
		summary.Height = outcome.Board.Height()
		summary.Board = outcome.Board.String()
	}

	path := filepath.Join(w.baseDir, fmt.Sprintf("game%d.json", id))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file for game %d: %w", id, err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}

func (w *Writer) WriteMetrics(id int, metrics []engine.MoveMetrics) error {
	path := filepath.Join(w.baseDir, fmt.Sprintf("game%d.csv", id))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file for game %d: %w", id, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"step", "player", "move", "duration", "nodes", "cutoffs", "depth", "timedOut"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write metrics header: %w", err)
	}

	for _, moveMetric := range metrics {
		record := []string{
			strconv.Itoa(moveMetric.Step),
			moveMetric.Player.String(),
			moveMetric.Move.String(),
			moveMetric.Duration.String(),
			strconv.FormatInt(moveMetric.Nodes, 10),
			strconv.FormatInt(moveMetric.Cutoffs, 10),
			strconv.Itoa(moveMetric.Depth),
			strconv.FormatBool(moveMetric.TimedOut),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write metric: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush metrics: %w", err)
	}
	return nil
}
