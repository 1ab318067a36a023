// Package blackjack implements a single-table blackjack round against the dealer.
//
// A Game owns a Shoe, the dealer's hand and the player's hands. Each call to
// PlayRound deals, asks an ActionSource for decisions, plays the dealer and
// resolves every hand:
//
//	game, err := blackjack.NewGame(6, blackjack.WithDisplay(display))
//	if err != nil {
//	    return err
//	}
//	summary, err := game.PlayRound(ctx, source)
//
// # Deterministic Testing
//
// Pass a seeded source with WithRand, or stack known cards on top of the
// shoe with NewStackedShoe and WithShoe.
package blackjack
