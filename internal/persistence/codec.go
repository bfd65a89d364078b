// Package persistence converts grids and score boards to and from the
// YAML documents kept in storage.
package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/minesweeper-go/internal/model"
)

type gridDocument struct {
	Size           int            `yaml:"size"`
	MineCount      int            `yaml:"mine_count"`
	ElapsedSeconds float64        `yaml:"elapsed_seconds"`
	Cells          []cellDocument `yaml:"cells"`
}

type cellDocument struct {
	Position positionDocument `yaml:"position,flow"`
	Mined    bool             `yaml:"mined"`
	Revealed bool             `yaml:"revealed"`
	Flagged  bool             `yaml:"flagged"`
}

type positionDocument struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

type scoreBoardDocument struct {
	Entries []scoreEntryDocument `yaml:"entries"`
}

type scoreEntryDocument struct {
	Identifier string `yaml:"identifier"`
	Score      int    `yaml:"score"`
}

// EncodeGrid serializes the full grid state
func EncodeGrid(grid *model.Grid) ([]byte, error) {
	snap := grid.Snapshot()
	doc := gridDocument{
		Size:           snap.Size,
		MineCount:      snap.MineCount,
		ElapsedSeconds: snap.Elapsed.Seconds(),
		Cells:          make([]cellDocument, 0, len(snap.Cells)),
	}
	for _, c := range snap.Cells {
		doc.Cells = append(doc.Cells, cellDocument{
			Position: positionDocument{Row: c.Position.Row, Col: c.Position.Col},
			Mined:    c.Mined,
			Revealed: c.Revealed,
			Flagged:  c.Flagged,
		})
	}
	return marshal(doc)
}

// DecodeGrid rebuilds a grid from an encoded document.
// Anything that is not a structurally valid grid yields model.ErrCorruptState.
func DecodeGrid(data []byte) (*model.Grid, error) {
	var doc gridDocument
	if err := unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if math.IsNaN(doc.ElapsedSeconds) || math.IsInf(doc.ElapsedSeconds, 0) {
		return nil, fmt.Errorf("%w: elapsed_seconds is not a number", model.ErrCorruptState)
	}

	snap := model.GridSnapshot{
		Size:      doc.Size,
		MineCount: doc.MineCount,
		Elapsed:   time.Duration(math.Round(doc.ElapsedSeconds * float64(time.Second))),
		Cells:     make([]model.CellSnapshot, 0, len(doc.Cells)),
	}
	for _, c := range doc.Cells {
		snap.Cells = append(snap.Cells, model.CellSnapshot{
			Position: model.Position{Row: c.Position.Row, Col: c.Position.Col},
			Mined:    c.Mined,
			Revealed: c.Revealed,
			Flagged:  c.Flagged,
		})
	}
	return model.RestoreGrid(snap)
}

// EncodeScoreBoard serializes a score board
func EncodeScoreBoard(board *model.ScoreBoard) ([]byte, error) {
	doc := scoreBoardDocument{Entries: make([]scoreEntryDocument, 0, len(board.Entries))}
	for _, e := range board.Entries {
		doc.Entries = append(doc.Entries, scoreEntryDocument{Identifier: e.Identifier, Score: e.Score})
	}
	return marshal(doc)
}

// DecodeScoreBoard rebuilds a score board, re-sorting its entries
func DecodeScoreBoard(data []byte) (*model.ScoreBoard, error) {
	var doc scoreBoardDocument
	if err := unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Entries) > model.ScoreBoardCapacity {
		return nil, fmt.Errorf("%w: %d score entries, at most %d allowed",
			model.ErrCorruptState, len(doc.Entries), model.ScoreBoardCapacity)
	}

	board := model.NewScoreBoard()
	for _, e := range doc.Entries {
		id, err := model.NormalizeIdentifier(e.Identifier)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrCorruptState, err)
		}
		if e.Score < 0 {
			return nil, fmt.Errorf("%w: negative score %d", model.ErrCorruptState, e.Score)
		}
		board.Entries = append(board.Entries, model.ScoreEntry{Identifier: id, Score: e.Score})
	}
	board.Sort()
	return board, nil
}

func marshal(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// unmarshal decodes a single document, rejecting unknown fields
func unmarshal(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", model.ErrCorruptState)
		}
		return fmt.Errorf("%w: %w", model.ErrCorruptState, err)
	}
	return nil
}
