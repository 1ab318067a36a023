package blackjack

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_blackjack

// HiddenCard is shown in place of the dealer's hole card
const HiddenCard = "??"

// ActionSource supplies the player's next decision for a hand. It blocks
// until a token arrives; unrecognized tokens are re-requested by the Game.
type ActionSource interface {
	RequestAction(ctx context.Context, handIndex int, view TableView) (string, error)
}

// Display shows the table and round events to the player
type Display interface {
	// Render draws the dealer and player hands
	Render(view TableView)

	// Announce shows a one-line event such as a bust or a reshuffle
	Announce(message string)
}

// HandView is the visible state of one hand
type HandView struct {
	Cards []string
	Value int
}

// DealerView is the visible state of the dealer. Until Revealed, the hole
// card is replaced by HiddenCard and Value is meaningless.
type DealerView struct {
	Cards    []string
	Value    int
	Revealed bool
}

// TableView is everything the player is allowed to see
type TableView struct {
	Dealer     DealerView
	Players    []HandView
	ActiveHand int
}

type noopDisplay struct{}

func (noopDisplay) Render(TableView) {}

func (noopDisplay) Announce(string) {}
