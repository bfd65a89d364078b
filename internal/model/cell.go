package model

// Cell holds the state of a single grid position.
// It carries no neighbor information; the owning Grid derives counts.
type Cell struct {
	mined    bool
	revealed bool
	flagged  bool
}

// SetMined marks the cell as holding a mine. Only called during placement.
func (c *Cell) SetMined() {
	c.mined = true
}

// Reveal uncovers the cell. Revealing twice is a no-op.
// A revealed cell never keeps its flag.
func (c *Cell) Reveal() {
	c.revealed = true
	c.flagged = false
}

// SetFlagged sets the flag; ignored once the cell is revealed
func (c *Cell) SetFlagged(flagged bool) {
	if c.revealed {
		return
	}
	c.flagged = flagged
}

// ToggleFlag flips the flag; ignored once the cell is revealed
func (c *Cell) ToggleFlag() {
	c.SetFlagged(!c.flagged)
}

// IsMined returns true if the cell holds a mine
func (c Cell) IsMined() bool {
	return c.mined
}

// IsRevealed returns true if the cell has been uncovered
func (c Cell) IsRevealed() bool {
	return c.revealed
}

// IsFlagged returns true if the player has flagged the cell
func (c Cell) IsFlagged() bool {
	return c.flagged
}

// CellState is what a player can see of a cell
type CellState string

const (
	CellHidden        CellState = "hidden"
	CellFlagged       CellState = "flagged"
	CellRevealedMine  CellState = "mine"
	CellRevealedCount CellState = "count"
)

// CellView is the read-only rendering projection of one cell.
// Count is only meaningful when State is CellRevealedCount.
type CellView struct {
	State CellState
	Count int
}
