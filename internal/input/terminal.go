package input

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/mcoot/minesweeper-go/internal/model"
)

const (
	actionPrompt     = "Flag or explore a location (e.g. 'e 1,2' to explore (1,2), 'f 1,2' to flag it), or save / load / quit: "
	identifierPrompt = "You have a new high score! Enter your initials: "
)

// TerminalInput reads player decisions one line at a time
type TerminalInput struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewTerminalInput reads lines from r and writes prompts to prompt
func NewTerminalInput(r io.Reader, prompt io.Writer) *TerminalInput {
	return &TerminalInput{
		scanner: bufio.NewScanner(r),
		prompt:  prompt,
	}
}

// NextAction prompts for and parses one line. End of input quits.
func (t *TerminalInput) NextAction(ctx context.Context) (model.Action, error) {
	line, err := t.readLine(ctx, actionPrompt)
	if err == io.EOF {
		return model.Action{Kind: model.ActionQuit}, nil
	}
	if err != nil {
		return model.Action{}, err
	}
	return ParseLine(line), nil
}

// Identifier prompts for the player's initials
func (t *TerminalInput) Identifier(ctx context.Context) (string, error) {
	return t.readLine(ctx, identifierPrompt)
}

func (t *TerminalInput) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(t.prompt, prompt)

	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return t.scanner.Text(), nil
}
