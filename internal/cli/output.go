package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/services/game"
)

// Output handles formatting output based on the configured format.
// It is the Display for interactive play.
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Ensure Output implements Display
var _ game.Display = (*Output)(nil)

// ShowStatus prints the board and counters
func (o *Output) ShowStatus(status game.Status) {
	o.Print(newBoardView(status))
}

// ShowError reports a rejected turn or failed operation
func (o *Output) ShowError(err error) {
	o.PrintError(err)
}

// ShowResult prints the end-of-game message
func (o *Output) ShowResult(result game.Result) {
	o.Print(ResultView{
		State:          string(result.State),
		Moves:          result.Moves,
		ElapsedSeconds: int(result.Elapsed.Seconds()),
		Score:          result.Score,
	})
}

// ShowScores prints the scoreboard after a win
func (o *Output) ShowScores(report game.ScoreReport) {
	o.Print(ScoresView{Recorded: report.Recorded, Lines: report.Lines})
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case BoardView:
		o.printBoard(v)
	case ResultView:
		o.printResult(v)
	case ScoresView:
		o.printScores(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// BoardView is the rendered session status
type BoardView struct {
	State          string     `json:"state"`
	Size           int        `json:"size"`
	Mines          int        `json:"mines"`
	FlagsPlaced    int        `json:"flags_placed"`
	Moves          int        `json:"moves"`
	ElapsedSeconds int        `json:"elapsed_seconds"`
	Cells          [][]string `json:"cells"`
}

// ResultView is the end-of-game summary
type ResultView struct {
	State          string `json:"state"`
	Moves          int    `json:"moves"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
	Score          int    `json:"score,omitempty"`
}

// ScoresView is the scoreboard listing
type ScoresView struct {
	Recorded bool     `json:"recorded"`
	Lines    []string `json:"lines"`
}

// Cell symbols
const (
	symbolHidden  = "*"
	symbolFlagged = "F"
	symbolMine    = "B"
	symbolEmpty   = "."
)

func newBoardView(status game.Status) BoardView {
	cells := make([][]string, len(status.Cells))
	for r, row := range status.Cells {
		cells[r] = make([]string, len(row))
		for c, view := range row {
			cells[r][c] = cellSymbol(view)
		}
	}
	return BoardView{
		State:          string(status.State),
		Size:           status.Size,
		Mines:          status.MineCount,
		FlagsPlaced:    status.FlagsPlaced,
		Moves:          status.Moves,
		ElapsedSeconds: int(status.Elapsed.Seconds()),
		Cells:          cells,
	}
}

func cellSymbol(view model.CellView) string {
	switch view.State {
	case model.CellFlagged:
		return symbolFlagged
	case model.CellRevealedMine:
		return symbolMine
	case model.CellRevealedCount:
		if view.Count == 0 {
			return symbolEmpty
		}
		return strconv.Itoa(view.Count)
	default:
		return symbolHidden
	}
}

func (o *Output) printBoard(b BoardView) {
	fmt.Fprintf(o.w, "%d mines. %d flags placed. %d moves. %ds elapsed.\n",
		b.Mines, b.FlagsPlaced, b.Moves, b.ElapsedSeconds)

	size := len(b.Cells)
	if size == 0 {
		return
	}

	// Print column headers
	fmt.Fprint(o.w, "    ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(o.w, "%3d", col)
	}
	fmt.Fprintln(o.w)

	// Print top border
	fmt.Fprint(o.w, "    +")
	for col := 0; col < size; col++ {
		fmt.Fprint(o.w, "---")
	}
	fmt.Fprintln(o.w, "+")

	// Print rows
	for row := 0; row < size; row++ {
		fmt.Fprintf(o.w, "%3d |", row)
		for col := 0; col < size; col++ {
			fmt.Fprintf(o.w, " %s ", b.Cells[row][col])
		}
		fmt.Fprintln(o.w, "|")
	}

	// Print bottom border
	fmt.Fprint(o.w, "    +")
	for col := 0; col < size; col++ {
		fmt.Fprint(o.w, "---")
	}
	fmt.Fprintln(o.w, "+")
}

func (o *Output) printResult(r ResultView) {
	switch model.GameState(r.State) {
	case model.GameStateWon:
		fmt.Fprintf(o.w, "You won in %d seconds.\n", r.Score)
	case model.GameStateLost:
		fmt.Fprintln(o.w, "You lose. Better luck next time.")
	}
}

func (o *Output) printScores(s ScoresView) {
	if s.Recorded {
		fmt.Fprintln(o.w, "Your score made the board!")
	}
	if len(s.Lines) == 0 {
		fmt.Fprintln(o.w, "No high scores yet.")
		return
	}
	fmt.Fprintln(o.w, "High scores:")
	for i, line := range s.Lines {
		fmt.Fprintf(o.w, "%2d. %s seconds\n", i+1, line)
	}
}
