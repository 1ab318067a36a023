package blackjack

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

// Shoe serves cards from one or more shuffled decks. It is rebuilt from
// scratch whenever it runs low, so cards already in hands are not tracked.
type Shoe struct {
	deck        *entities.Deck
	decks       int
	rng         *rand.Rand
	reshuffled  bool
	onReshuffle func()
	logger      *logging.Logger
}

// NewShoe builds and shuffles a shoe of numberOfDecks decks. A nil rng is
// replaced by a time-seeded source.
func NewShoe(numberOfDecks int, rng *rand.Rand) (*Shoe, error) {
	if numberOfDecks < 1 {
		return nil, types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("number of decks must be at least 1, got %d", numberOfDecks))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Shoe{
		deck:   BuildShoe(numberOfDecks, rng),
		decks:  numberOfDecks,
		rng:    rng,
		logger: logging.Default,
	}, nil
}

// NewStackedShoe builds a shoe whose next deals are exactly top, in order,
// followed by a normally shuffled shoe.
func NewStackedShoe(numberOfDecks int, rng *rand.Rand, top ...entities.Card) (*Shoe, error) {
	shoe, err := NewShoe(numberOfDecks, rng)
	if err != nil {
		return nil, err
	}

	for i := len(top) - 1; i >= 0; i-- {
		shoe.deck.Cards = append(shoe.deck.Cards, top[i])
	}
	return shoe, nil
}

// Deal moves the top card of the shoe into hand, rebuilding the shoe first
// if it has dropped below ReshuffleThreshold.
func (s *Shoe) Deal(hand *Hand) {
	if s.deck.Len() < ReshuffleThreshold {
		s.Reshuffle()
	}

	card, ok := s.deck.Pop()
	if !ok {
		// Unreachable while ReshuffleThreshold is positive
		s.logger.Error("Shoe empty after reshuffle check")
		return
	}
	hand.AddCard(card)
}

// Reshuffle discards whatever is left and builds a fresh shoe
func (s *Shoe) Reshuffle() {
	s.deck = BuildShoe(s.decks, s.rng)
	s.reshuffled = true
	s.logger.Info("Shoe reshuffled. %d cards from %d deck(s)", s.deck.Len(), s.decks)
	if s.onReshuffle != nil {
		s.onReshuffle()
	}
}

// Remaining returns the number of cards left to deal
func (s *Shoe) Remaining() int {
	return s.deck.Len()
}

// Decks returns how many decks the shoe is built from
func (s *Shoe) Decks() int {
	return s.decks
}

// WasReshuffled returns true if the shoe was rebuilt since the last call
func (s *Shoe) WasReshuffled() bool {
	wasReshuffled := s.reshuffled
	s.reshuffled = false // Reset the flag
	return wasReshuffled
}
