package blackjack

import (
	"math/rand"

	"github.com/fadedpez/blackjack/pkg/entities"
)

const (
	ReshuffleThreshold = 20 // Rebuild the shoe when fewer cards than this remain
	BlackjackValue     = 21
	DealerStandValue   = 17 // Dealer stands on this total or higher
	aceSoftening       = 10 // Difference between an Ace counted as 11 and as 1
)

// HandValue returns the best total for the cards. Every Ace starts at 11 and
// is dropped to 1, one at a time, while the total is over 21.
func HandValue(cards []entities.Card) int {
	total, _ := evaluate(cards)
	return total
}

// IsSoft reports whether the best total still counts an Ace as 11
func IsSoft(cards []entities.Card) bool {
	_, softAces := evaluate(cards)
	return softAces > 0
}

func evaluate(cards []entities.Card) (total int, softAces int) {
	for _, card := range cards {
		total += card.Value
		if card.IsAce {
			softAces++
		}
	}

	for total > BlackjackValue && softAces > 0 {
		total -= aceSoftening
		softAces--
	}

	return total, softAces
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []entities.Card) bool {
	return HandValue(cards) > BlackjackValue
}

// IsBlackjack checks for a two-card 21
func IsBlackjack(cards []entities.Card) bool {
	return len(cards) == 2 && HandValue(cards) == BlackjackValue
}

// CompareTotals judges a live player total against the dealer's total
func CompareTotals(player, dealer int) entities.Outcome {
	if player > dealer {
		return entities.OutcomeWin
	} else if player < dealer {
		return entities.OutcomeLose
	}
	return entities.OutcomePush
}

// BuildShoe creates numberOfDecks standard decks and shuffles them with r
func BuildShoe(numberOfDecks int, r *rand.Rand) *entities.Deck {
	shoe := &entities.Deck{Cards: make([]entities.Card, 0, 52*numberOfDecks)}
	for i := 0; i < numberOfDecks; i++ {
		shoe.Cards = append(shoe.Cards, entities.NewStandardDeck().Cards...)
	}

	shoe.Shuffle(r)
	return shoe
}
