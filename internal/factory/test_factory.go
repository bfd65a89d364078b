package factory

import (
	"time"

	"github.com/mcoot/minesweeper-go/internal/dependencies/mocks"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/storage/memory"
	"github.com/mcoot/minesweeper-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// StartFixedGame starts a game with mines exactly at the given positions
func (t *TestApp) StartFixedGame(size int, mines ...model.Position) (*model.Game, error) {
	grid, err := model.NewGrid(size)
	if err != nil {
		return nil, err
	}
	if err := grid.PlaceMinesAt(mines...); err != nil {
		return nil, err
	}
	return t.GameController.StartGame(grid), nil
}
