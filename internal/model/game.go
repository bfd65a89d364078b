package model

import "time"

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress" // Player still uncovering cells
	GameStateWon        GameState = "won"         // Every safe cell revealed
	GameStateLost       GameState = "lost"        // A mine was revealed
)

// IsTerminal returns true for states that accept no further turns
func (s GameState) IsTerminal() bool {
	return s == GameStateWon || s == GameStateLost
}

// Game is a single play session over one grid
type Game struct {
	Grid  *Grid
	State GameState
	Moves int // Counted explore/flag turns

	StartedAt time.Time
}

// NewGame wraps a grid in a fresh session
func NewGame(grid *Grid, startedAt time.Time) *Game {
	game := &Game{
		Grid:      grid,
		StartedAt: startedAt,
	}
	game.Evaluate()
	return game
}

// Evaluate recomputes the state from the grid
func (g *Game) Evaluate() GameState {
	switch {
	case g.Grid.IsLost():
		g.State = GameStateLost
	case g.Grid.IsWon():
		g.State = GameStateWon
	default:
		g.State = GameStateInProgress
	}
	return g.State
}

// IsComplete returns true once the game has been won or lost
func (g *Game) IsComplete() bool {
	return g.State.IsTerminal()
}

// Score returns the score for a finished game: elapsed whole seconds
func (g *Game) Score() int {
	return int(g.Grid.Elapsed() / time.Second)
}
