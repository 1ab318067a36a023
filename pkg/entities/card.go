package entities

import "strconv"

// Rank represents a card rank

type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Ranks lists every rank in shoe-building order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Card represents a playing card. Suits never affect play so they are not tracked.

type Card struct {
	Rank  Rank
	Value int
	IsAce bool
}

// NewCard creates a card with its base value for the given rank.
// An Ace starts at 11 and is softened to 1 during hand evaluation.
func NewCard(rank Rank) Card {
	return Card{
		Rank:  rank,
		Value: baseValue(rank),
		IsAce: rank == Ace,
	}
}

func baseValue(rank Rank) int {
	switch rank {
	case Ace:
		return 11
	case Jack, Queen, King:
		return 10
	default:
		val, _ := strconv.Atoi(string(rank))
		return val
	}
}

// String returns the string representation of the card

func (c Card) String() string {
	return string(c.Rank)
}
