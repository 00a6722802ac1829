package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	Agent1 int // AgentConfig.ID playing A
	Agent2 int // AgentConfig.ID playing B
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

type Writer struct {
	baseDir string
	create  func(path string) (io.WriteCloser, error)
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// NewWriter creates <root>/<name>/<timestamp> to hold one experiment's records.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
		create:  createFile,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", []string{"id", "kind", "seed"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String(),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Winner.String(),
			strconv.Itoa(record.CapturedA),
			strconv.Itoa(record.CapturedB),
			strconv.Itoa(record.TotalMoves),
			strconv.FormatBool(record.Aborted),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "captured_a", "captured_b",
		"total_moves", "aborted", "start_time", "end_time", "duration"}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Pit),
			strconv.Itoa(record.Landing),
			strconv.Itoa(record.Captured),
			strconv.Itoa(record.Swept),
			strconv.FormatUint(uint64(record.Hash), 16),
			record.Duration.String(),
		})
	}
	header := []string{"game", "step", "player", "pit", "landing", "captured", "swept", "hash", "duration"}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := w.create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
