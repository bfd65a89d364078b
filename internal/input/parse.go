// Package input turns terminal lines into player actions.
package input

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/mcoot/minesweeper-go/internal/model"
)

// ParseLine maps a command line such as "e 1,2", "flag 3,4", "save" or
// "quit" to an Action. Anything unrecognised becomes ActionUnknown.
func ParseLine(line string) model.Action {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return model.Action{Kind: model.ActionUnknown}
	}

	var pos *model.Position
	if len(fields) > 1 {
		if p, ok := parsePosition(strings.Join(fields[1:], " ")); ok {
			pos = &p
		}
	}
	return model.ParseAction(fields[0], pos)
}

// parsePosition accepts "row,col", "row, col" or "row col"
func parsePosition(s string) (model.Position, bool) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(parts) != 2 {
		return model.Position{}, false
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return model.Position{}, false
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return model.Position{}, false
	}
	return model.Position{Row: row, Col: col}, true
}
