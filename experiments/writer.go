package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gamesmith/engine"
)

// GameRecord summarizes one completed game of a matchup.
type GameRecord struct {
	Game     int // 1-based across the whole experiment
	Agent1   int // AgentConfig.ID playing first
	Agent2   int // AgentConfig.ID playing second
	Winner   string
	Moves    int
	Duration time.Duration
}

// MoveRecord ties an engine move record to its game.
type MoveRecord struct {
	Game int
	engine.MoveRecord
}

// Writer persists experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(outDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outDir, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory the writer outputs into.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.FormatFloat(config.CSquared, 'f', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	header := []string{"id", "kind", "c_squared", "seed"}
	return w.writeFile("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Winner,
			strconv.Itoa(record.Moves),
			record.Duration.String(),
		})
	}
	header := []string{"game", "agent1", "agent2", "winner", "moves", "duration"}
	return w.writeFile("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Agent,
			strconv.FormatInt(record.Playouts, 10),
			strconv.FormatInt(record.Expansions, 10),
			record.SearchMetrics.Duration.String(),
			strconv.FormatBool(record.TreeReused),
			strconv.Itoa(record.TreeDepth),
		})
	}
	header := []string{"game", "step", "player", "agent", "playouts", "expansions", "duration", "tree_reused", "tree_depth"}
	return w.writeFile("move_records.csv", header, rows)
}

func (w *Writer) writeFile(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}
