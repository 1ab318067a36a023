package entities

import "strings"

// RoundState is the status of a blackjack round
type RoundState string

const (
	StatePlaying    RoundState = "PLAYING"
	StatePlayerBust RoundState = "PLAYER_BUST"
	StateDealerBust RoundState = "DEALER_BUST"
	StatePlayerWin  RoundState = "PLAYER_WIN"
	StateDealerWin  RoundState = "DEALER_WIN"
	StatePush       RoundState = "PUSH"
)

// IsTerminal returns true once the round's action phase is over
func (s RoundState) IsTerminal() bool {
	return s != StatePlaying
}

func (s RoundState) String() string {
	return string(s)
}

// Action is a player decision for a single hand
type Action string

const (
	ActionHit     Action = "hit"
	ActionStand   Action = "stand"
	ActionDouble  Action = "double"
	ActionSplit   Action = "split"
	ActionInvalid Action = ""
)

var actionAliases = map[string]Action{
	"hit":    ActionHit,
	"h":      ActionHit,
	"stand":  ActionStand,
	"s":      ActionStand,
	"double": ActionDouble,
	"d":      ActionDouble,
	"split":  ActionSplit,
	"sp":     ActionSplit,
	"p":      ActionSplit,
}

// ParseAction maps a user token to an Action. Matching ignores case and surrounding space.
func ParseAction(token string) (Action, bool) {
	action, ok := actionAliases[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return ActionInvalid, false
	}
	return action, true
}

// Outcome represents the result of one player hand against the dealer
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLose Outcome = "LOSE"
	OutcomePush Outcome = "PUSH"
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// IsWin returns true if this outcome represents a win
func (o Outcome) IsWin() bool {
	return o == OutcomeWin
}
