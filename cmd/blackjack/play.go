package main

import (
	"context"
	"fmt"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

// table is the part of *blackjack.Game the round loop needs
type table interface {
	PlayRound(ctx context.Context, source blackjack.ActionSource) (*blackjack.RoundSummary, error)
}

// player answers the game's prompts and is asked whether to keep going
type player interface {
	blackjack.ActionSource
	Announce(message string)
	Confirm(ctx context.Context, question string) (bool, error)
}

// playRounds plays until the round limit is reached, the player declines
// another round or input runs out. A limit of zero means ask every time.
func playRounds(ctx context.Context, t table, p player, limit int, logger *logging.Logger) error {
	played := 0
	for limit == 0 || played < limit {
		summary, err := t.PlayRound(ctx, p)
		if err != nil {
			if types.IsGameError(err, types.ErrInputClosed) {
				logger.Info("Input closed, leaving the table")
				break
			}
			return err
		}
		played++
		logger.Debug("Round %d (%s) finished in state %s", summary.Number, summary.RoundID, summary.State)

		if limit != 0 {
			continue
		}

		again, err := p.Confirm(ctx, "Play another round?")
		if err != nil {
			if types.IsGameError(err, types.ErrInputClosed) {
				break
			}
			return err
		}
		if !again {
			break
		}
	}

	p.Announce(fmt.Sprintf("Thanks for playing. Rounds played: %d.", played))
	return nil
}
