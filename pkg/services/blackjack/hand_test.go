package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadedpez/blackjack/pkg/entities"
)

func TestHandPreconditions(t *testing.T) {
	testCases := []struct {
		name      string
		cards     []entities.Card
		canDouble bool
		canSplit  bool
	}{
		{"pair of eights", cardsOf(entities.Eight, entities.Eight), true, true},
		{"ten and king", cardsOf(entities.Ten, entities.King), true, false},
		{"three cards", cardsOf(entities.Two, entities.Two, entities.Two), false, false},
		{"single card", cardsOf(entities.Ace), false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hand := NewHand(tc.cards...)
			assert.Equal(t, tc.canDouble, hand.CanDouble())
			assert.Equal(t, tc.canSplit, hand.CanSplit())
		})
	}
}

func TestHandRemoveLast(t *testing.T) {
	hand := NewHand(cardsOf(entities.Nine, entities.Four)...)

	card := hand.removeLast()

	assert.Equal(t, entities.Four, card.Rank)
	assert.Equal(t, []string{"9"}, hand.Ranks())
	assert.Equal(t, 9, hand.Value())
}
