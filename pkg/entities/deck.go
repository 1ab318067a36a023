package entities

import "math/rand"

// Deck is an ordered pile of cards. The end of Cards is the top of the pile.
type Deck struct {
	Cards []Card
}

// NewStandardDeck creates a new deck of 52 cards, each rank repeated once per suit
func NewStandardDeck() *Deck {
	cards := make([]Card, 0, 52)
	for suit := 0; suit < 4; suit++ {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank))
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle permutes the deck uniformly using the given random source
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Pop removes and returns the top card. ok is false when the deck is empty.
func (d *Deck) Pop() (card Card, ok bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	last := len(d.Cards) - 1
	card = d.Cards[last]
	d.Cards = d.Cards[:last]
	return card, true
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.Cards)
}
