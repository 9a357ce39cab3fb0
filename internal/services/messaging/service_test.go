package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/scoretracker/internal/services/game"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Rand: rand.New(rand.NewSource(42))})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNewService_NilConfig() {
	_, err := NewService(nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetTurnResultMessage() {
	testCases := []struct {
		name      string
		input     *GetTurnResultMessageInput
		wantTone  MessageTone
		wantInMsg string
	}{
		{
			name:      "win",
			input:     &GetTurnResultMessageInput{PlayerName: "Ann", Total: 30, Won: true, WinnerName: "Red"},
			wantTone:  ToneCelebration,
			wantInMsg: "Red",
		},
		{
			name:      "overshoot",
			input:     &GetTurnResultMessageInput{PlayerName: "Ann", Total: 60, Score: 0, Remaining: 50, IsExcessTurn: true, ExcessScore: 10},
			wantTone:  ToneFunny,
			wantInMsg: "Ann",
		},
		{
			name:      "skip",
			input:     &GetTurnResultMessageInput{PlayerName: "Bob", Remaining: 40, Skipped: true},
			wantTone:  ToneNeutral,
			wantInMsg: "Bob",
		},
		{
			name:      "penalty",
			input:     &GetTurnResultMessageInput{PlayerName: "Cid", Total: -5, Score: -5, Remaining: 105},
			wantTone:  ToneFunny,
			wantInMsg: "Cid",
		},
		{
			name:      "close",
			input:     &GetTurnResultMessageInput{PlayerName: "Dee", Total: 20, Score: 95, Remaining: 5},
			wantTone:  ToneEncouraging,
			wantInMsg: "Dee",
		},
		{
			name:      "plain",
			input:     &GetTurnResultMessageInput{PlayerName: "Eve", Total: 20, Score: 20, Remaining: 80},
			wantTone:  ToneNeutral,
			wantInMsg: "Eve",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.service.GetTurnResultMessage(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Equal(tc.wantTone, out.Tone)
			s.NotEmpty(out.Title)
			s.Contains(out.Message, tc.wantInMsg)
		})
	}

	_, err := s.service.GetTurnResultMessage(s.ctx, nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetGameStatusMessage() {
	out, err := s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{Started: true, CurrentPlayerName: "Ann", CurrentRemaining: 42})
	s.Require().NoError(err)
	s.Contains(out.Message, "Ann")
	s.Contains(out.Message, "42")

	out, err = s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{Started: true, Ended: true, WinnerName: "Bob"})
	s.Require().NoError(err)
	s.Contains(out.Message, "Bob")

	out, err = s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{})
	s.Require().NoError(err)
	s.NotEmpty(out.Message)
}

func (s *MessagingServiceTestSuite) TestGetLeaderboardMessage() {
	for _, input := range []*GetLeaderboardMessageInput{
		{Name: "Ann", Rank: 1, TotalEntries: 3, IsWinner: true},
		{Name: "Ann", Rank: 1, TotalEntries: 3, Remaining: 10},
		{Name: "Ann", Rank: 2, TotalEntries: 3, Remaining: 20},
		{Name: "Ann", Rank: 3, TotalEntries: 3, Remaining: 30},
	} {
		out, err := s.service.GetLeaderboardMessage(s.ctx, input)
		s.Require().NoError(err)
		s.Contains(out.Message, "Ann")
	}
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	known := []error{
		game.ErrGameNotStarted,
		game.ErrGameEnded,
		game.ErrNotEnoughPlayers,
		game.ErrInvalidTargetScore,
		game.ErrInvalidScores,
		game.ErrTurnFull,
		game.ErrTurnInProgress,
		game.ErrPlayerNotFound,
		game.ErrHistoryEntryNotFound,
		game.ErrHistorySnapshotUnavailable,
		fmt.Errorf("%w: bad json", game.ErrInvalidGameFile),
		game.ErrImportDeclined,
		game.ErrFilePickerUnsupported,
	}

	for _, err := range known {
		out, mErr := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: err})
		s.Require().NoError(mErr)
		s.Equal(ToneFunny, out.Tone, err.Error())
		s.NotContains(out.Message, "Something went wrong", err.Error())
	}

	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: errors.New("disk on fire")})
	s.Require().NoError(err)
	s.Equal(ToneNeutral, out.Tone)
	s.Contains(out.Message, "disk on fire")
}
