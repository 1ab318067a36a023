package blackjack

import (
	"github.com/fadedpez/blackjack/pkg/entities"
)

// Hand represents the cards held by the dealer or one player seat

type Hand struct {
	Cards []entities.Card
}

// NewHand creates a new blackjack hand
func NewHand(cards ...entities.Card) *Hand {
	h := &Hand{
		Cards: make([]entities.Card, 0, 4),
	}
	h.Cards = append(h.Cards, cards...)
	return h
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card entities.Card) {
	h.Cards = append(h.Cards, card)
}

// Value returns the best possible score for the hand
func (h *Hand) Value() int {
	return HandValue(h.Cards)
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.Cards)
}

// IsBust checks if the hand is over 21
func (h *Hand) IsBust() bool {
	return IsBust(h.Cards)
}

// IsSoft reports whether an Ace in the hand is still counted as 11
func (h *Hand) IsSoft() bool {
	return IsSoft(h.Cards)
}

// CanDouble reports whether the hand may double down
func (h *Hand) CanDouble() bool {
	return len(h.Cards) == 2
}

// CanSplit reports whether the hand is a pair. Whether a split is still
// allowed this round is tracked by the Game.
func (h *Hand) CanSplit() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}

// Ranks returns the rank of each card in order
func (h *Hand) Ranks() []string {
	ranks := make([]string, len(h.Cards))
	for i, card := range h.Cards {
		ranks[i] = card.String()
	}
	return ranks
}

// removeLast takes the last card out of the hand
func (h *Hand) removeLast() entities.Card {
	last := len(h.Cards) - 1
	card := h.Cards[last]
	h.Cards = h.Cards[:last]
	return card
}

func (h *Hand) clone() []entities.Card {
	cards := make([]entities.Card, len(h.Cards))
	copy(cards, h.Cards)
	return cards
}
