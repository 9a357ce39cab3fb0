package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/KirkDiggler/scoretracker/internal/services/game"
	gameMocks "github.com/KirkDiggler/scoretracker/internal/services/game/mocks"
	"github.com/KirkDiggler/scoretracker/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/scoretracker/internal/services/messaging/mocks"
	"github.com/KirkDiggler/scoretracker/internal/services/persistence"
	persistenceMocks "github.com/KirkDiggler/scoretracker/internal/services/persistence/mocks"
)

type RenderTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockGame        *gameMocks.MockService
	mockMessages    *messagingMocks.MockService
	mockPersistence *persistenceMocks.MockService
	out             *bytes.Buffer
	app             *App
	state           models.GameState
	notices         []persistence.Notice
}

func (s *RenderTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGame = gameMocks.NewMockService(s.mockCtrl)
	s.mockMessages = messagingMocks.NewMockService(s.mockCtrl)
	s.mockPersistence = persistenceMocks.NewMockService(s.mockCtrl)
	s.out = &bytes.Buffer{}

	s.state = models.GameState{
		Players: []models.Player{
			{ID: "player-0", Name: "Ann", Score: 20},
			{ID: "player-1", Name: "Bob", Score: 35},
		},
		TargetScore: 50,
		GameStarted: true,
		GameMode:    models.GameModeIndividual,
	}

	// every command runs the save worker and flushes before exiting
	s.mockPersistence.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}).AnyTimes()
	s.mockPersistence.EXPECT().Flush(gomock.Any()).Return(nil).AnyTimes()
	s.notices = nil
	s.mockPersistence.EXPECT().Notices().DoAndReturn(func() []persistence.Notice {
		return s.notices
	}).AnyTimes()

	app, err := New(&Config{
		Bootstrap: func(context.Context, Options) (*Services, error) {
			return &Services{Game: s.mockGame, Persistence: s.mockPersistence}, nil
		},
		Messages: s.mockMessages,
		In:       strings.NewReader(""),
		Out:      s.out,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	s.app = app
}

func (s *RenderTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRenderTestSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) run(args ...string) error {
	return s.app.Run(context.Background(), append([]string{"tracker"}, args...))
}

func (s *RenderTestSuite) expectResume(state models.GameState) {
	s.mockGame.EXPECT().Resume(gomock.Any()).Return(&game.ResumeOutput{State: state, Found: true}, nil)
	s.mockGame.EXPECT().GetState(gomock.Any(), gomock.Any()).Return(&game.GetStateOutput{State: state}, nil)
}

func (s *RenderTestSuite) TestSkipPrintsTurnResultAndStatus() {
	s.expectResume(s.state)

	after := s.state.Clone()
	after.CurrentPlayerIndex = 1
	turn := models.Turn{Scores: []int{0, 0, 0}, TurnNumber: 1}

	s.mockGame.EXPECT().SkipTurn(gomock.Any(), &game.SkipTurnInput{PlayerID: "player-0"}).
		Return(&game.SubmitTurnOutput{State: after, Player: after.Players[0], Turn: turn}, nil)
	s.mockMessages.EXPECT().GetTurnResultMessage(gomock.Any(), &messaging.GetTurnResultMessageInput{
		PlayerName: "Ann",
		Score:      20,
		Remaining:  30,
		Skipped:    true,
	}).Return(&messaging.GetTurnResultMessageOutput{Title: "Skipped!", Message: "Ann sits this one out."}, nil)
	s.mockMessages.EXPECT().GetGameStatusMessage(gomock.Any(), &messaging.GetGameStatusMessageInput{
		Started:           true,
		CurrentPlayerName: "Bob",
		CurrentRemaining:  15,
	}).Return(&messaging.GetGameStatusMessageOutput{Message: "Bob is up."}, nil)

	s.Require().NoError(s.run("skip"))

	s.Contains(s.out.String(), "Skipped! Ann sits this one out.")
	s.Contains(s.out.String(), "Bob is up.")
}

func (s *RenderTestSuite) TestErrorsAreFriendly() {
	ended := s.state.Clone()
	ended.GameEnded = true
	s.expectResume(ended)

	s.mockMessages.EXPECT().GetErrorMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *messaging.GetErrorMessageInput) (*messaging.GetErrorMessageOutput, error) {
			s.ErrorIs(input.Err, game.ErrGameEnded)
			return &messaging.GetErrorMessageOutput{Message: "That game is already over."}, nil
		})

	err := s.run("skip")
	s.ErrorIs(err, game.ErrGameEnded)
	s.Equal("That game is already over.\n", s.out.String())
}

func (s *RenderTestSuite) TestShowRendersLeaderboard() {
	s.expectResume(s.state)

	s.mockGame.EXPECT().GetLeaderboard(gomock.Any(), gomock.Any()).Return(&game.GetLeaderboardOutput{
		Leaderboard: models.Leaderboard{Entries: []models.LeaderboardEntry{
			{Name: "Bob", Score: 35, Remaining: 15, Rank: 1},
			{Name: "Ann", Score: 20, Remaining: 30, Rank: 2},
		}},
	}, nil)
	s.mockMessages.EXPECT().GetLeaderboardMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetLeaderboardMessageOutput{Message: "keep going"}, nil).Times(2)
	s.mockMessages.EXPECT().GetGameStatusMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetGameStatusMessageOutput{Message: "Ann is up."}, nil)
	s.mockGame.EXPECT().StorageStatus(gomock.Any(), gomock.Any()).Return(&game.StorageStatusOutput{}, nil)

	s.Require().NoError(s.run("show"))

	out := s.out.String()
	s.Contains(out, "Target 50, individual game")
	s.Contains(out, "1. Bob")
	s.Contains(out, "2. Ann")
	s.Less(strings.Index(out, "1. Bob"), strings.Index(out, "2. Ann"))
	s.Contains(out, "Ann is up.")
}

func (s *RenderTestSuite) TestNextPrintsStatus() {
	s.mockGame.EXPECT().Resume(gomock.Any()).Return(&game.ResumeOutput{State: s.state, Found: true}, nil)

	s.mockGame.EXPECT().NextTurn(gomock.Any(), gomock.Any()).Return(&game.NextTurnOutput{State: s.state}, nil)
	s.mockMessages.EXPECT().GetGameStatusMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetGameStatusMessageOutput{Message: "Ann is up."}, nil)

	s.Require().NoError(s.run("next"))
	s.Equal("Ann is up.\n", s.out.String())
}

func (s *RenderTestSuite) TestNoticesRaisedBySavesArePrinted() {
	s.mockGame.EXPECT().Resume(gomock.Any()).Return(&game.ResumeOutput{State: s.state, Found: true}, nil)
	s.mockGame.EXPECT().NextTurn(gomock.Any(), gomock.Any()).Return(&game.NextTurnOutput{State: s.state}, nil)
	s.mockMessages.EXPECT().GetGameStatusMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetGameStatusMessageOutput{Message: "Ann is up."}, nil)

	s.notices = []persistence.Notice{
		{Level: persistence.NoticeLevelInfo, Kind: persistence.NoticeSetupAutoSave, Message: "choose a file"},
		{Level: persistence.NoticeLevelError, Kind: persistence.NoticeSaveFailed, Message: "Unable to save game progress."},
	}
	s.mockPersistence.EXPECT().Status().Return(persistence.Status{})
	s.mockPersistence.EXPECT().DismissNotices().Do(func() { s.notices = nil })

	s.Require().NoError(s.run("next"))

	s.Equal("Ann is up.\n"+msgSetupTip+"\n[ERROR] Unable to save game progress.\n", s.out.String())
	s.Nil(s.notices)
}

func (s *RenderTestSuite) TestSetupTipHiddenWhileAutoSaving() {
	s.mockGame.EXPECT().Resume(gomock.Any()).Return(&game.ResumeOutput{State: s.state, Found: true}, nil)
	s.mockGame.EXPECT().NextTurn(gomock.Any(), gomock.Any()).Return(&game.NextTurnOutput{State: s.state}, nil)
	s.mockMessages.EXPECT().GetGameStatusMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetGameStatusMessageOutput{Message: "Ann is up."}, nil)

	s.notices = []persistence.Notice{
		{Level: persistence.NoticeLevelInfo, Kind: persistence.NoticeSetupAutoSave, Message: "choose a file"},
	}
	s.mockPersistence.EXPECT().Status().Return(persistence.Status{AutoSave: true, FileName: "game.json"})
	s.mockPersistence.EXPECT().DismissNotices().Do(func() { s.notices = nil })

	s.Require().NoError(s.run("next"))
	s.Equal("Ann is up.\n", s.out.String())
}
