package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

// Prompter asks the player for decisions one line at a time
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a prompter reading answers from in and writing questions to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// RequestAction asks which action to take on a hand and returns the raw answer
func (p *Prompter) RequestAction(ctx context.Context, handIndex int, _ blackjack.TableView) (string, error) {
	fmt.Fprintf(p.out, "Hand %d: Do you want to (h)it, (s)tand, (d)ouble down, or s(p)lit? ", handIndex+1)
	return p.readLine(ctx)
}

// Confirm asks a yes/no question. Anything other than y or yes is a no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s (y/n) ", question)
	answer, err := p.readLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", types.WrapError(types.ErrInputClosed, "prompt cancelled", err)
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", types.WrapError(types.ErrInternalError, "failed to read input", err)
		}
		return "", types.WrapError(types.ErrInputClosed, "input closed", io.EOF)
	}
	return p.scanner.Text(), nil
}

// Terminal is the interactive table: it shows the game and asks the player
type Terminal struct {
	*Display
	*Prompter
}

// NewTerminal wires a display and a prompter to the same streams
func NewTerminal(in io.Reader, out io.Writer, noColor bool) *Terminal {
	return &Terminal{
		Display:  NewDisplay(out, noColor),
		Prompter: NewPrompter(in, out),
	}
}
