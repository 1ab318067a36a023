package blackjack

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

const invalidActionMessage = "Invalid action. Please choose 'h', 's', 'd', or 'sp'."

// Effect tells whether an action changed the round
type Effect int

const (
	NoEffect Effect = iota
	Applied
)

func (e Effect) String() string {
	if e == Applied {
		return "APPLIED"
	}
	return "NO_EFFECT"
}

// ActionResult describes what a player action did
type ActionResult struct {
	Action   entities.Action
	Effect   Effect
	TurnOver bool // The hand takes no more actions
	Busted   bool
}

// HandResult stores the result of one player hand
type HandResult struct {
	HandIndex int
	Cards     []entities.Card
	Value     int
	Busted    bool
	Outcome   entities.Outcome
}

// RoundSummary is the final record of a played round
type RoundSummary struct {
	RoundID     string
	Number      int
	State       entities.RoundState
	DealerCards []entities.Card
	DealerValue int
	Results     []HandResult
}

// Game holds one table: the shoe persists across rounds, everything else is
// reset when a round ends. A Game is not safe for concurrent use.
type Game struct {
	ID           string // Identifies the current round
	Shoe         *Shoe
	Dealer       *Hand
	Players      []*Hand
	State        entities.RoundState
	SplitAllowed bool
	CurrentHand  int

	rounds  int
	display Display
	logger  *logging.Logger
}

type gameOptions struct {
	rng     *rand.Rand
	shoe    *Shoe
	display Display
	logger  *logging.Logger
}

// Option configures a Game
type Option func(*gameOptions)

// WithRand sets the random source used to shuffle the shoe
func WithRand(r *rand.Rand) Option {
	return func(o *gameOptions) {
		o.rng = r
	}
}

// WithShoe uses an already built shoe instead of building one
func WithShoe(shoe *Shoe) Option {
	return func(o *gameOptions) {
		o.shoe = shoe
	}
}

// WithDisplay sets where table state and round events are shown
func WithDisplay(display Display) Option {
	return func(o *gameOptions) {
		o.display = display
	}
}

// WithLogger sets the logger used by the game and its shoe
func WithLogger(logger *logging.Logger) Option {
	return func(o *gameOptions) {
		o.logger = logger
	}
}

// NewGame creates a table with a fresh shoe of numberOfDecks decks
func NewGame(numberOfDecks int, opts ...Option) (*Game, error) {
	o := &gameOptions{
		display: noopDisplay{},
		logger:  logging.Default,
	}
	for _, opt := range opts {
		opt(o)
	}

	shoe := o.shoe
	if shoe == nil {
		var err error
		shoe, err = NewShoe(numberOfDecks, o.rng)
		if err != nil {
			return nil, err
		}
	} else if numberOfDecks < 1 {
		return nil, types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("number of decks must be at least 1, got %d", numberOfDecks))
	}

	g := &Game{
		Shoe:    shoe,
		display: o.display,
		logger:  o.logger,
	}
	g.Shoe.logger = o.logger
	g.Shoe.onReshuffle = func() {
		g.display.Announce("Shoe reshuffled.")
	}
	g.Reset()

	return g, nil
}

// Rounds returns how many rounds have been played on this table
func (g *Game) Rounds() int {
	return g.rounds
}

// Reset clears the hands for a new round. The shoe is kept.
func (g *Game) Reset() {
	g.ID = uuid.New().String()
	g.Players = []*Hand{NewHand()}
	g.Dealer = NewHand()
	g.State = entities.StatePlaying
	g.SplitAllowed = true
	g.CurrentHand = 0
}

func (g *Game) inProgress() bool {
	return g.Dealer.Len() > 0 || len(g.Players) != 1 || g.Players[0].Len() > 0
}

// PlayRound runs a whole round: deal, blackjack check, player turn, dealer
// turn and resolution. The table is reset afterwards, including when the
// action source fails.
func (g *Game) PlayRound(ctx context.Context, source ActionSource) (*RoundSummary, error) {
	if g.inProgress() {
		return nil, types.NewGameError(types.ErrInvalidState, "a round is already in progress")
	}
	defer g.Reset()

	g.rounds++
	log := g.logger.With("round_id", g.ID, "round", g.rounds)
	log.Debug("Round started with %d cards in the shoe", g.Shoe.Remaining())

	g.DealInitial()

	if state := g.CheckForBlackjack(); state.IsTerminal() {
		log.Debug("Blackjack check ended the action phase: %s", state)
	}

	if g.State == entities.StatePlaying {
		if err := g.PlayerTurn(ctx, source); err != nil {
			log.LogError(err)
			return nil, err
		}
	}

	g.DealerTurn()

	results := g.Resolve()
	g.announceResults(results)

	g.display.Render(g.View(true))

	summary := &RoundSummary{
		RoundID:     g.ID,
		Number:      g.rounds,
		State:       g.State,
		DealerCards: g.Dealer.clone(),
		DealerValue: g.Dealer.Value(),
		Results:     results,
	}
	log.Debug("Round finished: state=%s dealer=%d hands=%d", summary.State, summary.DealerValue, len(results))

	return summary, nil
}

// DealInitial deals two cards each, alternating player and dealer
func (g *Game) DealInitial() {
	hand := g.Players[0]
	g.Shoe.Deal(hand)
	g.Shoe.Deal(g.Dealer)
	g.Shoe.Deal(hand)
	g.Shoe.Deal(g.Dealer)
}

// CheckForBlackjack ends the action phase when the dealer or a player hand
// opens on 21 and returns the resulting state
func (g *Game) CheckForBlackjack() entities.RoundState {
	dealerBlackjack := g.Dealer.Value() == BlackjackValue
	playerBlackjack := false
	for _, hand := range g.Players {
		if hand.Value() == BlackjackValue {
			playerBlackjack = true
			break
		}
	}

	switch {
	case dealerBlackjack && playerBlackjack:
		g.State = entities.StatePush
	case playerBlackjack:
		g.State = entities.StatePlayerWin
	case dealerBlackjack:
		g.State = entities.StateDealerWin
	}

	return g.State
}

// PlayerTurn asks source for actions on each hand in order. Hands created
// by a split are appended and visited after the hands before them.
func (g *Game) PlayerTurn(ctx context.Context, source ActionSource) error {
	for i := 0; i < len(g.Players) && g.State == entities.StatePlaying; i++ {
		g.CurrentHand = i

		for g.State == entities.StatePlaying {
			if err := ctx.Err(); err != nil {
				return types.WrapError(types.ErrInputClosed, "player turn cancelled", err)
			}

			view := g.View(false)
			g.display.Render(view)

			token, err := source.RequestAction(ctx, i, view)
			if err != nil {
				return err
			}

			action, ok := entities.ParseAction(token)
			if !ok {
				g.logger.Debug("Rejected action %q for hand %d", token, i+1)
				g.display.Announce(invalidActionMessage)
				continue
			}

			result, err := g.ApplyAction(action, i)
			if err != nil {
				return err
			}
			if result.Effect == NoEffect {
				g.display.Announce(fmt.Sprintf("Cannot %s on Hand %d.", action, i+1))
				continue
			}
			if result.TurnOver {
				break
			}
		}
	}

	return nil
}

// ApplyAction performs one action on the hand at handIndex. Actions whose
// preconditions do not hold return a NoEffect result and change nothing.
func (g *Game) ApplyAction(action entities.Action, handIndex int) (ActionResult, error) {
	result := ActionResult{Action: action, Effect: NoEffect}

	if handIndex < 0 || handIndex >= len(g.Players) {
		return result, types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("no player hand %d", handIndex+1))
	}
	if g.State != entities.StatePlaying {
		return result, types.NewGameError(types.ErrInvalidState, fmt.Sprintf("round is %s", g.State))
	}

	hand := g.Players[handIndex]
	g.CurrentHand = handIndex

	switch action {
	case entities.ActionHit:
		g.Shoe.Deal(hand)
		result.Effect = Applied
		if hand.IsBust() {
			result.Busted = true
			result.TurnOver = true
			g.handBusted(handIndex)
		}

	case entities.ActionStand:
		result.Effect = Applied
		result.TurnOver = true

	case entities.ActionDouble:
		if !hand.CanDouble() {
			return result, nil
		}
		g.Shoe.Deal(hand)
		g.display.Announce(fmt.Sprintf("Player doubles down on Hand %d.", handIndex+1))
		result.Effect = Applied
		result.TurnOver = true
		if hand.IsBust() {
			result.Busted = true
			g.handBusted(handIndex)
		}

	case entities.ActionSplit:
		if !g.SplitAllowed || !hand.CanSplit() {
			return result, nil
		}
		split := NewHand(hand.removeLast())
		g.Players = append(g.Players, split)
		g.Shoe.Deal(hand)
		g.Shoe.Deal(split)
		g.SplitAllowed = false
		g.display.Announce(fmt.Sprintf("Player splits Hand %d.", handIndex+1))
		result.Effect = Applied
		result.TurnOver = true

	default:
		return result, nil
	}

	g.logger.Debug("Hand %d %s: %v value=%d", handIndex+1, action, hand.Ranks(), hand.Value())
	return result, nil
}

// handBusted reports a bust and ends the round's action phase when the
// busted hand is the last one.
func (g *Game) handBusted(handIndex int) {
	g.display.Announce(fmt.Sprintf("Player Hand %d busts.", handIndex+1))
	if handIndex == len(g.Players)-1 {
		g.State = entities.StatePlayerBust
	}
}

// DealerTurn draws for the dealer until 17 or more, only while the round
// is still being played
func (g *Game) DealerTurn() {
	if g.State != entities.StatePlaying {
		return
	}

	for g.Dealer.Value() < DealerStandValue {
		g.Shoe.Deal(g.Dealer)
	}

	if g.Dealer.IsBust() {
		g.State = entities.StateDealerBust
		g.display.Announce("Dealer busts.")
	}
}

// Resolve judges every player hand on its own. A busted hand always loses,
// even when its sibling hand is still live.
func (g *Game) Resolve() []HandResult {
	dealerValue := g.Dealer.Value()
	dealerBust := g.Dealer.IsBust()

	results := make([]HandResult, 0, len(g.Players))
	for i, hand := range g.Players {
		result := HandResult{
			HandIndex: i,
			Cards:     hand.clone(),
			Value:     hand.Value(),
			Busted:    hand.IsBust(),
		}

		switch {
		case g.State == entities.StatePush:
			result.Outcome = entities.OutcomePush
		case g.State == entities.StatePlayerWin:
			result.Outcome = entities.OutcomeWin
		case g.State == entities.StateDealerWin:
			result.Outcome = entities.OutcomeLose
		case result.Busted:
			result.Outcome = entities.OutcomeLose
		case dealerBust:
			result.Outcome = entities.OutcomeWin
		default:
			result.Outcome = CompareTotals(result.Value, dealerValue)
		}

		results = append(results, result)
	}

	return results
}

func (g *Game) announceResults(results []HandResult) {
	for _, result := range results {
		var verb string
		switch result.Outcome {
		case entities.OutcomeWin:
			verb = "wins"
		case entities.OutcomeLose:
			verb = "loses"
		default:
			verb = "pushes"
		}
		g.display.Announce(fmt.Sprintf("Player Hand %d %s.", result.HandIndex+1, verb))
	}
}

// View returns what the player may see. Unless reveal is set the dealer's
// hole card is hidden and the dealer total is withheld.
func (g *Game) View(reveal bool) TableView {
	view := TableView{
		Dealer:     DealerView{Revealed: reveal},
		Players:    make([]HandView, len(g.Players)),
		ActiveHand: g.CurrentHand,
	}

	if reveal {
		view.Dealer.Cards = g.Dealer.Ranks()
		view.Dealer.Value = g.Dealer.Value()
	} else if g.Dealer.Len() > 0 {
		ranks := g.Dealer.Ranks()
		view.Dealer.Cards = append(ranks[1:], HiddenCard)
	}

	for i, hand := range g.Players {
		view.Players[i] = HandView{
			Cards: hand.Ranks(),
			Value: hand.Value(),
		}
	}

	return view
}
