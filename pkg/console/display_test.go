package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

type DisplayTestSuite struct {
	suite.Suite
	out     *bytes.Buffer
	display *Display
}

func TestDisplaySuite(t *testing.T) {
	suite.Run(t, new(DisplayTestSuite))
}

func (s *DisplayTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.display = NewDisplay(s.out, true)
}

func (s *DisplayTestSuite) TestRenderHidesDealerValue() {
	// Setup
	view := blackjack.TableView{
		Dealer: blackjack.DealerView{Cards: []string{"K", blackjack.HiddenCard}},
		Players: []blackjack.HandView{
			{Cards: []string{"8", "8"}, Value: 16},
		},
	}

	// Execute
	s.display.Render(view)

	// Assert
	s.Equal("Dealer: [K, ??] Value: ?\nPlayer Hand 1: [8, 8] Value: 16\n", s.out.String())
}

func (s *DisplayTestSuite) TestRenderRevealed() {
	// Setup
	view := blackjack.TableView{
		Dealer: blackjack.DealerView{Cards: []string{"9", "K"}, Value: 19, Revealed: true},
		Players: []blackjack.HandView{
			{Cards: []string{"8", "3", "K"}, Value: 21},
			{Cards: []string{"8", "A"}, Value: 19},
		},
		ActiveHand: 1,
	}

	// Execute
	s.display.Render(view)

	// Assert
	s.Equal(
		"Dealer: [9, K] Value: 19\n"+
			"Player Hand 1: [8, 3, K] Value: 21\n"+
			"Player Hand 2: [8, A] Value: 19\n",
		s.out.String())
}

func (s *DisplayTestSuite) TestRenderEmptyTable() {
	// Execute
	s.display.Render(blackjack.TableView{})

	// Assert
	s.Equal("Dealer: [] Value: ?\n", s.out.String())
}

func (s *DisplayTestSuite) TestAnnounce() {
	// Execute
	s.display.Announce("Shoe reshuffled.")
	s.display.Announce("Player Hand 1 wins.")

	// Assert
	s.Equal("Shoe reshuffled.\nPlayer Hand 1 wins.\n", s.out.String())
}
