package types

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *GameError
		expected string
	}{
		{
			name:     "bad deck count",
			err:      NewGameError(ErrInvalidArgument, "number of decks must be at least 1"),
			expected: "INVALID_ARGUMENT: number of decks must be at least 1",
		},
		{
			name:     "action after the round ended",
			err:      NewGameError(ErrInvalidState, "round is not in play"),
			expected: "INVALID_STATE: round is not in play",
		},
		{
			name:     "closed input keeps the cause",
			err:      WrapError(ErrInputClosed, "input closed", io.EOF),
			expected: "INPUT_CLOSED: input closed (EOF)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorTestSuite) TestWrapErrorUnwraps() {
	// Setup
	cause := context.Canceled

	// Execute
	err := WrapError(ErrInputClosed, "prompt cancelled", cause)

	// Assert
	s.Equal(ErrInputClosed, err.Code)
	s.Equal("prompt cancelled", err.Message)
	s.ErrorIs(err, context.Canceled, "errors.Is should reach the cause")
	s.Nil(NewGameError(ErrInternalError, "shoe empty").Unwrap())
}

func (s *ErrorTestSuite) TestIsGameError() {
	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{"matching code", NewGameError(ErrInvalidArgument, "hand index 3 out of range"), ErrInvalidArgument, true},
		{"other code", NewGameError(ErrInvalidArgument, "hand index 3 out of range"), ErrInvalidState, false},
		{"plain error", errors.New("boom"), ErrInternalError, false},
		{"nil", nil, ErrInternalError, false},
		{"wrapped with %w", fmt.Errorf("round aborted: %w", WrapError(ErrInputClosed, "input closed", io.EOF)), ErrInputClosed, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, IsGameError(tc.err, tc.code))
		})
	}
}

func (s *ErrorTestSuite) TestAsFindsGameErrorInChain() {
	// Setup
	inner := WrapError(ErrInputClosed, "input closed", io.EOF)
	wrapped := fmt.Errorf("player turn: %w", inner)

	// Execute
	var target *GameError
	found := As(wrapped, &target)

	// Assert
	s.True(found)
	s.Same(inner, target)
}

func (s *ErrorTestSuite) TestAsWithoutGameError() {
	var target *GameError
	s.False(As(errors.New("plain"), &target))
	s.Nil(target)
}
