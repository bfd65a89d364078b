package model

import (
	"fmt"
	"time"
)

// Position identifies a cell on the grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// String formats the position as "row,col"
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// MineSource picks the random indices used for mine placement
type MineSource interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Grid is a square minefield
type Grid struct {
	size      int
	mineCount int
	cells     [][]Cell // Row-major: cells[row][col]
	elapsed   time.Duration
}

// NewGrid creates a grid of the given size with no mines
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d must be at least 1", ErrInvalidConfiguration, size)
	}
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Grid{
		size:  size,
		cells: cells,
	}, nil
}

// NewRandomGrid creates a grid and places mineCount mines using src
func NewRandomGrid(size, mineCount int, src MineSource) (*Grid, error) {
	grid, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	if err := grid.PlaceMines(mineCount, src); err != nil {
		return nil, err
	}
	return grid, nil
}

// PlaceMines marks count distinct cells as mined, sampling both coordinates
// from [0, size) and retrying when a sample hits an existing mine.
func (g *Grid) PlaceMines(count int, src MineSource) error {
	if err := g.checkPlacement(count); err != nil {
		return err
	}

	placed := 0
	for placed < count {
		row, col := src.Intn(g.size), src.Intn(g.size)
		cell := &g.cells[row][col]
		if cell.IsMined() {
			continue
		}
		cell.SetMined()
		placed++
	}
	g.mineCount = count
	return nil
}

// PlaceMinesAt marks exactly the given positions as mined
func (g *Grid) PlaceMinesAt(positions ...Position) error {
	if err := g.checkPlacement(len(positions)); err != nil {
		return err
	}

	seen := make(map[Position]bool, len(positions))
	for _, pos := range positions {
		if !g.IsValidPosition(pos) {
			return g.outOfBounds(pos)
		}
		if seen[pos] {
			return fmt.Errorf("%w: duplicate mine at %s", ErrInvalidConfiguration, pos)
		}
		seen[pos] = true
	}

	for _, pos := range positions {
		g.cells[pos.Row][pos.Col].SetMined()
	}
	g.mineCount = len(positions)
	return nil
}

// checkPlacement rejects counts that could never be satisfied and
// placement after the layout is fixed
func (g *Grid) checkPlacement(count int) error {
	if count < 0 || count >= g.size*g.size {
		return fmt.Errorf("%w: %d mines on a %dx%d grid", ErrInvalidConfiguration, count, g.size, g.size)
	}
	if g.mineCount > 0 || g.RevealedCount() > 0 {
		return ErrMinesAlreadyPlaced
	}
	return nil
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// MineCount returns the number of mined cells
func (g *Grid) MineCount() int {
	return g.mineCount
}

// Elapsed returns the accumulated play time
func (g *Grid) Elapsed() time.Duration {
	return g.elapsed
}

// AddElapsed accumulates play time; negative durations are ignored
func (g *Grid) AddElapsed(d time.Duration) {
	if d > 0 {
		g.elapsed += d
	}
}

// IsValidPosition returns true if the position is within bounds
func (g *Grid) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.size && pos.Col >= 0 && pos.Col < g.size
}

// Cell returns a copy of the cell at pos
func (g *Grid) Cell(pos Position) (Cell, bool) {
	if !g.IsValidPosition(pos) {
		return Cell{}, false
	}
	return g.cells[pos.Row][pos.Col], true
}

// Neighbors returns the in-bounds positions at Chebyshev distance 1
func (g *Grid) Neighbors(pos Position) []Position {
	neighbors := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Position{Row: pos.Row + dr, Col: pos.Col + dc}
			if g.IsValidPosition(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// AdjacentMineCount returns the number of mined neighbors of pos
func (g *Grid) AdjacentMineCount(pos Position) int {
	count := 0
	for _, n := range g.Neighbors(pos) {
		if g.cells[n.Row][n.Col].IsMined() {
			count++
		}
	}
	return count
}

// Reveal uncovers the cell at pos and returns every position it uncovered.
// A mined cell stops there. A cell with no adjacent mines opens its
// neighbors, and each of those that also has no adjacent mines keeps going.
// Revealing an already revealed cell changes nothing.
func (g *Grid) Reveal(pos Position) ([]Position, error) {
	if !g.IsValidPosition(pos) {
		return nil, g.outOfBounds(pos)
	}

	start := &g.cells[pos.Row][pos.Col]
	if start.IsRevealed() {
		return nil, nil
	}
	start.Reveal()
	revealed := []Position{pos}
	if start.IsMined() {
		return revealed, nil
	}

	// Neighbors of a zero-count cell are never mined, and each cell is
	// queued at most once because it is revealed before being queued.
	queue := []Position{pos}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if g.AdjacentMineCount(current) != 0 {
			continue
		}
		for _, n := range g.Neighbors(current) {
			cell := &g.cells[n.Row][n.Col]
			if cell.IsRevealed() {
				continue
			}
			cell.Reveal()
			revealed = append(revealed, n)
			queue = append(queue, n)
		}
	}

	return revealed, nil
}

// ToggleFlag flips the flag at pos. Flags on revealed cells are ignored.
func (g *Grid) ToggleFlag(pos Position) error {
	if !g.IsValidPosition(pos) {
		return g.outOfBounds(pos)
	}
	g.cells[pos.Row][pos.Col].ToggleFlag()
	return nil
}

// SetFlag sets the flag at pos. Flags on revealed cells are ignored.
func (g *Grid) SetFlag(pos Position, flagged bool) error {
	if !g.IsValidPosition(pos) {
		return g.outOfBounds(pos)
	}
	g.cells[pos.Row][pos.Col].SetFlagged(flagged)
	return nil
}

// IsWon returns true if every safe cell is revealed and no mine is
func (g *Grid) IsWon() bool {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			cell := g.cells[row][col]
			if !cell.IsMined() && !cell.IsRevealed() {
				return false
			}
		}
	}
	return !g.IsLost()
}

// IsLost returns true if any mined cell is revealed
func (g *Grid) IsLost() bool {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			cell := g.cells[row][col]
			if cell.IsMined() && cell.IsRevealed() {
				return true
			}
		}
	}
	return false
}

// FlaggedCount returns the number of flagged cells
func (g *Grid) FlaggedCount() int {
	return g.count(Cell.IsFlagged)
}

// RevealedCount returns the number of revealed cells
func (g *Grid) RevealedCount() int {
	return g.count(Cell.IsRevealed)
}

func (g *Grid) count(pred func(Cell) bool) int {
	count := 0
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if pred(g.cells[row][col]) {
				count++
			}
		}
	}
	return count
}

// View returns what the player can see of every cell, row-major
func (g *Grid) View() [][]CellView {
	view := make([][]CellView, g.size)
	for row := 0; row < g.size; row++ {
		view[row] = make([]CellView, g.size)
		for col := 0; col < g.size; col++ {
			cell := g.cells[row][col]
			switch {
			case cell.IsFlagged():
				view[row][col] = CellView{State: CellFlagged}
			case !cell.IsRevealed():
				view[row][col] = CellView{State: CellHidden}
			case cell.IsMined():
				view[row][col] = CellView{State: CellRevealedMine}
			default:
				view[row][col] = CellView{
					State: CellRevealedCount,
					Count: g.AdjacentMineCount(Position{Row: row, Col: col}),
				}
			}
		}
	}
	return view
}

func (g *Grid) outOfBounds(pos Position) error {
	return fmt.Errorf("%w: (%s) on a %dx%d grid", ErrOutOfBounds, pos, g.size, g.size)
}
