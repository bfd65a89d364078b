package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/minesweeper-go/internal/model"
)

var testTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestParseAction(t *testing.T) {
	p := pos(1, 2)

	cases := []struct {
		tag  string
		pos  *model.Position
		want model.Action
	}{
		{"e", &p, model.Explore(p)},
		{"explore", &p, model.Explore(p)},
		{"F", &p, model.Flag(p)},
		{"flag", &p, model.Flag(p)},
		{"save", nil, model.Action{Kind: model.ActionSave}},
		{"load", &p, model.Action{Kind: model.ActionLoad}},
		{"quit", nil, model.Action{Kind: model.ActionQuit}},
		{"e", nil, model.Action{Kind: model.ActionUnknown}},
		{"dance", &p, model.Action{Kind: model.ActionUnknown}},
		{"", nil, model.Action{Kind: model.ActionUnknown}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, model.ParseAction(tc.tag, tc.pos), "tag %q", tc.tag)
	}
}

func TestGameEvaluate(t *testing.T) {
	grid, err := model.NewGrid(2)
	assert.NoError(t, err)
	assert.NoError(t, grid.PlaceMinesAt(pos(0, 0)))

	game := model.NewGame(grid, testTime)
	assert.Equal(t, model.GameStateInProgress, game.State)

	for _, p := range []model.Position{pos(0, 1), pos(1, 0), pos(1, 1)} {
		_, _ = grid.Reveal(p)
	}
	assert.Equal(t, model.GameStateWon, game.Evaluate())
	assert.True(t, game.IsComplete())
}
