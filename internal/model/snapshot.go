package model

import (
	"fmt"
	"time"
)

// GridSnapshot is the complete durable state of a Grid
type GridSnapshot struct {
	Size      int
	MineCount int
	Elapsed   time.Duration
	Cells     []CellSnapshot // One entry per position, row-major
}

// CellSnapshot is the durable state of one cell
type CellSnapshot struct {
	Position Position
	Mined    bool
	Revealed bool
	Flagged  bool
}

// Snapshot captures the grid's full state
func (g *Grid) Snapshot() GridSnapshot {
	cells := make([]CellSnapshot, 0, g.size*g.size)
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			cell := g.cells[row][col]
			cells = append(cells, CellSnapshot{
				Position: Position{Row: row, Col: col},
				Mined:    cell.mined,
				Revealed: cell.revealed,
				Flagged:  cell.flagged,
			})
		}
	}
	return GridSnapshot{
		Size:      g.size,
		MineCount: g.mineCount,
		Elapsed:   g.elapsed,
		Cells:     cells,
	}
}

// RestoreGrid rebuilds a grid from a snapshot. Any structural problem
// is reported as ErrCorruptState and no grid is returned.
func RestoreGrid(snap GridSnapshot) (*Grid, error) {
	if snap.Size < 1 {
		return nil, corrupt("size %d must be at least 1", snap.Size)
	}
	total := snap.Size * snap.Size
	if len(snap.Cells) != total {
		return nil, corrupt("%d cells for a %dx%d grid", len(snap.Cells), snap.Size, snap.Size)
	}
	if snap.MineCount < 0 || snap.MineCount >= total {
		return nil, corrupt("mine count %d invalid for a %dx%d grid", snap.MineCount, snap.Size, snap.Size)
	}
	if snap.Elapsed < 0 {
		return nil, corrupt("negative elapsed time %s", snap.Elapsed)
	}

	grid, err := NewGrid(snap.Size)
	if err != nil {
		return nil, corrupt("%v", err)
	}

	seen := make(map[Position]bool, total)
	mined := 0
	for _, cs := range snap.Cells {
		if !grid.IsValidPosition(cs.Position) {
			return nil, corrupt("cell (%s) outside the grid", cs.Position)
		}
		if seen[cs.Position] {
			return nil, corrupt("duplicate cell (%s)", cs.Position)
		}
		if cs.Revealed && cs.Flagged {
			return nil, corrupt("cell (%s) is both revealed and flagged", cs.Position)
		}
		seen[cs.Position] = true
		if cs.Mined {
			mined++
		}
		grid.cells[cs.Position.Row][cs.Position.Col] = Cell{
			mined:    cs.Mined,
			revealed: cs.Revealed,
			flagged:  cs.Flagged,
		}
	}
	if mined != snap.MineCount {
		return nil, corrupt("mine count %d does not match %d mined cells", snap.MineCount, mined)
	}

	grid.mineCount = snap.MineCount
	grid.elapsed = snap.Elapsed
	return grid, nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptState, fmt.Sprintf(format, args...))
}
