package game

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/scoretracker/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/scoretracker/internal/common/uuid/mocks"
	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/KirkDiggler/scoretracker/internal/repositories/filehandle"
	"github.com/KirkDiggler/scoretracker/internal/scoring"
	"github.com/KirkDiggler/scoretracker/internal/services/persistence"
	persistenceMocks "github.com/KirkDiggler/scoretracker/internal/services/persistence/mocks"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockPersistence *persistenceMocks.MockService
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	gameService     Service
	ctx             context.Context

	// Test data
	testTime time.Time
	nextID   int
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPersistence = persistenceMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.nextID = 0

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.nextID++
		return fmt.Sprintf("%d", s.nextID)
	}).AnyTimes()
	s.mockPersistence.EXPECT().Notify(gomock.Any()).AnyTimes()

	svc, err := New(&Config{
		HistoryLimit:  50,
		Persistence:   s.mockPersistence,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// start begins an individual game
func (s *GameServiceTestSuite) start(target int, names ...string) models.GameState {
	out, err := s.gameService.StartGame(s.ctx, &StartGameInput{Names: names, TargetScore: target})
	s.Require().NoError(err)
	return out.State
}

// startTeams begins a team game of Ann and Bob (Red) against Cid and Dee (Blue)
func (s *GameServiceTestSuite) startTeams(target int) models.GameState {
	out, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		Names:       []string{"Ann", "Bob", "Cid", "Dee"},
		TargetScore: target,
		Mode:        models.GameModeTeam,
		Teams: []TeamInput{
			{Name: "Red", Members: []int{0, 1}},
			{Name: "Blue", Members: []int{2, 3}},
		},
	})
	s.Require().NoError(err)
	return out.State
}

func (s *GameServiceTestSuite) submit(scores ...int) *SubmitTurnOutput {
	out, err := s.gameService.SubmitTurn(s.ctx, &SubmitTurnInput{Scores: scores})
	s.Require().NoError(err)
	return out
}

func (s *GameServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilPersistence)

	_, err = New(&Config{Persistence: s.mockPersistence, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Persistence: s.mockPersistence, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *GameServiceTestSuite) TestStartGame_DropsBlankNames() {
	state := s.start(100, "Ann", "  ", "", " Bob ")

	s.Require().Len(state.Players, 2)
	s.Equal("Ann", state.Players[0].Name)
	s.Equal("Bob", state.Players[1].Name)
	s.True(state.GameStarted)
	s.Equal(models.GameModeIndividual, state.GameMode)
	s.Require().Len(state.History, 1)
	s.Equal(models.ActionStartGame, state.History[0].Action)
	s.Equal("history-1", state.History[0].ID)
}

func (s *GameServiceTestSuite) TestStartGame_Validation() {
	testCases := []struct {
		name    string
		input   *StartGameInput
		wantErr error
	}{
		{"nil input", nil, ErrNilInput},
		{"one player", &StartGameInput{Names: []string{"Ann", " "}, TargetScore: 100}, ErrNotEnoughPlayers},
		{"zero target", &StartGameInput{Names: []string{"Ann", "Bob"}}, ErrInvalidTargetScore},
		{"negative target", &StartGameInput{Names: []string{"Ann", "Bob"}, TargetScore: -5}, ErrInvalidTargetScore},
		{"unknown mode", &StartGameInput{Names: []string{"Ann", "Bob"}, TargetScore: 100, Mode: "solo"}, ErrInvalidGameMode},
		{"member out of range", &StartGameInput{
			Names: []string{"Ann", "Bob"}, TargetScore: 100, Mode: models.GameModeTeam,
			Teams: []TeamInput{{Name: "Red", Members: []int{0}}, {Name: "Blue", Members: []int{5}}},
		}, ErrInvalidTeam},
		{"member in two teams", &StartGameInput{
			Names: []string{"Ann", "Bob"}, TargetScore: 100, Mode: models.GameModeTeam,
			Teams: []TeamInput{{Name: "Red", Members: []int{0}}, {Name: "Blue", Members: []int{0, 1}}},
		}, ErrInvalidTeam},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.gameService.StartGame(s.ctx, tc.input)
			s.ErrorIs(err, tc.wantErr)
		})
	}

	got, err := s.gameService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.False(got.State.GameStarted)
}

func (s *GameServiceTestSuite) TestStartGame_TeamMembersFollowKeptNames() {
	out, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		Names:       []string{"Ann", "", "Bob", "Cid", "Dee"},
		TargetScore: 100,
		Mode:        models.GameModeTeam,
		Teams: []TeamInput{
			{Name: "Red", Members: []int{0, 2}},
			{Members: []int{3, 4}},
		},
	})
	s.Require().NoError(err)

	state := out.State
	s.Require().Len(state.Players, 4)
	s.Require().Len(state.Teams, 2)
	s.Equal("Team 2", state.Teams[1].Name)
	s.Equal(state.Teams[0].ID, state.Players[0].TeamID)
	s.Equal(state.Teams[0].ID, state.Players[1].TeamID)
	s.Equal(state.Teams[1].ID, state.Players[2].TeamID)
	s.Equal(state.Teams[1].ID, state.Players[3].TeamID)

	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{
		Names:       []string{"Ann", "", "Bob"},
		TargetScore: 100,
		Mode:        models.GameModeTeam,
		Teams:       []TeamInput{{Name: "Red", Members: []int{0}}, {Name: "Blue", Members: []int{1}}},
	})
	s.ErrorIs(err, ErrInvalidTeam)
}

func (s *GameServiceTestSuite) TestStartGame_IndividualIgnoresTeams() {
	out, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		Names:       []string{"Ann", "Bob"},
		TargetScore: 100,
		Teams:       []TeamInput{{Name: "Red", Members: []int{7}}},
	})
	s.Require().NoError(err)
	s.Empty(out.State.Teams)
	s.Empty(out.State.Players[0].TeamID)
}

func (s *GameServiceTestSuite) TestOperations_RequireStartedGame() {
	_, err := s.gameService.AddScore(s.ctx, &AddScoreInput{PlayerID: "player-0", Value: 5})
	s.ErrorIs(err, ErrGameNotStarted)

	_, err = s.gameService.SubmitTurn(s.ctx, &SubmitTurnInput{Scores: []int{1, 2, 3}})
	s.ErrorIs(err, ErrGameNotStarted)

	_, err = s.gameService.NextTurn(s.ctx, &NextTurnInput{})
	s.ErrorIs(err, ErrGameNotStarted)

	_, err = s.gameService.RestartGame(s.ctx, &RestartGameInput{})
	s.ErrorIs(err, ErrGameNotStarted)

	_, err = s.gameService.UpdateTargetScore(s.ctx, &UpdateTargetScoreInput{TargetScore: 50})
	s.ErrorIs(err, ErrGameNotStarted)

	_, err = s.gameService.EditTurnScore(s.ctx, &EditTurnScoreInput{PlayerID: "player-0", Scores: []int{1, 2, 3}})
	s.ErrorIs(err, ErrGameNotStarted)

	_, err = s.gameService.AssignTeam(s.ctx, &AssignTeamInput{PlayerID: "player-0"})
	s.ErrorIs(err, ErrGameNotStarted)
}

func (s *GameServiceTestSuite) TestAddScoreAndCompleteTurn() {
	s.start(100, "Ann", "Bob")

	_, err := s.gameService.CompleteTurn(s.ctx, &CompleteTurnInput{PlayerID: "player-0"})
	s.ErrorIs(err, ErrTurnIncomplete)

	for i, v := range []int{10, 20, 5} {
		out, err := s.gameService.AddScore(s.ctx, &AddScoreInput{PlayerID: "player-0", Value: v})
		s.Require().NoError(err)
		s.Equal(i == 2, out.TurnReady)
	}

	_, err = s.gameService.AddScore(s.ctx, &AddScoreInput{PlayerID: "player-0", Value: 1})
	s.ErrorIs(err, ErrTurnFull)

	_, err = s.gameService.AddScore(s.ctx, &AddScoreInput{PlayerID: "nobody", Value: 1})
	s.ErrorIs(err, ErrPlayerNotFound)

	out, err := s.gameService.CompleteTurn(s.ctx, &CompleteTurnInput{PlayerID: "player-0"})
	s.Require().NoError(err)
	s.Equal(35, out.Turn.Total)
	s.Equal(1, out.Turn.TurnNumber)
	s.Equal(35, out.State.Players[0].Score)
	s.Empty(out.State.Players[0].CurrentTurnScores)
	s.False(out.GameEnded)

	// completing does not move play on
	s.Equal(0, out.State.CurrentPlayerIndex)

	next, err := s.gameService.NextTurn(s.ctx, &NextTurnInput{})
	s.Require().NoError(err)
	s.Equal("Bob", next.CurrentPlayer.Name)
	s.Equal(1, next.State.CurrentPlayerIndex)
}

func (s *GameServiceTestSuite) TestSubmitTurn_AdvancesPlay() {
	s.start(100, "Ann", "Bob")

	out := s.submit(10, 20, 30)
	s.Equal("Ann", out.Player.Name)
	s.Equal(60, out.Player.Score)
	s.Equal(60, out.Turn.Total)
	s.False(out.GameEnded)
	s.Equal(1, out.State.CurrentPlayerIndex)

	out = s.submit(1, 1, 1)
	s.Equal("Bob", out.Player.Name)
	s.Equal(0, out.State.CurrentPlayerIndex)
	s.Len(out.State.History, 3)
}

func (s *GameServiceTestSuite) TestSubmitTurn_Overshoot() {
	s.start(50, "Ann", "Bob")

	out := s.submit(20, 20, 20)
	s.True(out.Turn.IsExcessTurn)
	s.Equal(10, out.Turn.ExcessScore)
	s.Equal(0, out.Player.Score)
	s.Equal(1, out.State.CurrentPlayerIndex)
}

func (s *GameServiceTestSuite) TestSubmitTurn_WinStopsPlay() {
	s.start(50, "Ann", "Bob")

	out := s.submit(10, 20, 20)
	s.True(out.GameEnded)
	s.True(out.State.GameEnded)
	s.Require().NotNil(out.State.Winner)
	s.Equal("Ann", out.State.Winner.Name)
	s.Equal(0, out.State.CurrentPlayerIndex)

	_, err := s.gameService.SubmitTurn(s.ctx, &SubmitTurnInput{Scores: []int{1, 2, 3}})
	s.ErrorIs(err, ErrGameEnded)

	_, err = s.gameService.SkipTurn(s.ctx, &SkipTurnInput{})
	s.ErrorIs(err, ErrGameEnded)

	_, err = s.gameService.NextTurn(s.ctx, &NextTurnInput{})
	s.ErrorIs(err, ErrGameEnded)
}

func (s *GameServiceTestSuite) TestSubmitTurn_Validation() {
	s.start(100, "Ann", "Bob")

	_, err := s.gameService.SubmitTurn(s.ctx, &SubmitTurnInput{Scores: []int{1, 2}})
	s.ErrorIs(err, ErrInvalidScores)

	_, err = s.gameService.SubmitTurn(s.ctx, &SubmitTurnInput{PlayerID: "nobody", Scores: []int{1, 2, 3}})
	s.ErrorIs(err, ErrPlayerNotFound)

	_, err = s.gameService.AddScore(s.ctx, &AddScoreInput{PlayerID: "player-0", Value: 4})
	s.Require().NoError(err)

	_, err = s.gameService.SubmitTurn(s.ctx, &SubmitTurnInput{Scores: []int{1, 2, 3}})
	s.ErrorIs(err, ErrTurnInProgress)
}

func (s *GameServiceTestSuite) TestSubmitTurn_ExplicitPlayer() {
	s.start(100, "Ann", "Bob", "Cid")

	out, err := s.gameService.SubmitTurn(s.ctx, &SubmitTurnInput{PlayerID: "player-2", Scores: []int{5, 5, 5}})
	s.Require().NoError(err)
	s.Equal("Cid", out.Player.Name)
	s.Equal(15, out.State.Players[2].Score)
	s.Equal(1, out.State.CurrentPlayerIndex)
}

func (s *GameServiceTestSuite) TestSkipTurn() {
	s.start(100, "Ann", "Bob")

	out, err := s.gameService.SkipTurn(s.ctx, &SkipTurnInput{})
	s.Require().NoError(err)
	s.Equal([]int{0, 0, 0}, out.Turn.Scores)
	s.Equal(0, out.Player.Score)
	s.Len(out.Player.Turns, 1)
	s.Equal(1, out.State.CurrentPlayerIndex)
}

func (s *GameServiceTestSuite) TestRestartGame() {
	s.start(100, "Ann", "Bob")
	s.submit(10, 10, 10)

	out, err := s.gameService.RestartGame(s.ctx, &RestartGameInput{})
	s.Require().NoError(err)
	s.True(out.State.GameStarted)
	s.Equal(100, out.State.TargetScore)
	s.Equal(0, out.State.CurrentPlayerIndex)
	for _, p := range out.State.Players {
		s.Zero(p.Score)
		s.Empty(p.Turns)
	}
}

func (s *GameServiceTestSuite) TestResetGame_PurgesStorage() {
	s.start(100, "Ann", "Bob")

	s.mockPersistence.EXPECT().Purge(gomock.Any()).Return(nil)

	out, err := s.gameService.ResetGame(s.ctx, &ResetGameInput{})
	s.Require().NoError(err)
	s.Empty(cmp.Diff(models.NewGameState(), out.State))
}

func (s *GameServiceTestSuite) TestResetGame_PurgeFailureIsNotAnError() {
	s.mockPersistence.EXPECT().Purge(gomock.Any()).Return(errors.New("disk gone"))

	out, err := s.gameService.ResetGame(s.ctx, &ResetGameInput{})
	s.Require().NoError(err)
	s.False(out.State.GameStarted)
}

func (s *GameServiceTestSuite) TestUpdateTargetScore_CanEndGame() {
	s.start(100, "Ann", "Bob")
	s.submit(10, 10, 10)

	_, err := s.gameService.UpdateTargetScore(s.ctx, &UpdateTargetScoreInput{TargetScore: 0})
	s.ErrorIs(err, ErrInvalidTargetScore)

	out, err := s.gameService.UpdateTargetScore(s.ctx, &UpdateTargetScoreInput{TargetScore: 30})
	s.Require().NoError(err)
	s.Equal(30, out.State.TargetScore)
	s.True(out.State.GameEnded)
	s.Require().NotNil(out.State.Winner)
	s.Equal("Ann", out.State.Winner.Name)
}

func (s *GameServiceTestSuite) TestEditTurnScore() {
	s.start(100, "Ann", "Bob")
	s.submit(10, 10, 10)

	_, err := s.gameService.EditTurnScore(s.ctx, &EditTurnScoreInput{PlayerID: "player-0", TurnIndex: 1, Scores: []int{1, 1, 1}})
	s.ErrorIs(err, ErrTurnNotFound)

	_, err = s.gameService.EditTurnScore(s.ctx, &EditTurnScoreInput{PlayerID: "player-0", Scores: []int{1, 1}})
	s.ErrorIs(err, ErrInvalidScores)

	_, err = s.gameService.EditTurnScore(s.ctx, &EditTurnScoreInput{PlayerID: "nobody", Scores: []int{1, 1, 1}})
	s.ErrorIs(err, ErrPlayerNotFound)

	out, err := s.gameService.EditTurnScore(s.ctx, &EditTurnScoreInput{PlayerID: "player-0", Scores: []int{20, 20, 5}})
	s.Require().NoError(err)
	s.Equal(45, out.State.Players[0].Score)
	s.Equal(45, out.State.Players[0].Turns[0].Total)
}

func (s *GameServiceTestSuite) TestAssignTeam() {
	s.start(100, "Ann", "Bob")
	_, err := s.gameService.AssignTeam(s.ctx, &AssignTeamInput{PlayerID: "player-0"})
	s.ErrorIs(err, ErrNotTeamGame)

	state := s.startTeams(100)
	s.submit(10, 10, 10)

	_, err = s.gameService.AssignTeam(s.ctx, &AssignTeamInput{PlayerID: "player-0", TeamID: "team-9"})
	s.ErrorIs(err, ErrTeamNotFound)

	_, err = s.gameService.AssignTeam(s.ctx, &AssignTeamInput{PlayerID: "nobody", TeamID: state.Teams[1].ID})
	s.ErrorIs(err, ErrPlayerNotFound)

	out, err := s.gameService.AssignTeam(s.ctx, &AssignTeamInput{PlayerID: "player-0", TeamID: state.Teams[1].ID})
	s.Require().NoError(err)
	s.Equal(0, out.State.Teams[0].Score)
	s.Equal(30, out.State.Teams[1].Score)
}

func (s *GameServiceTestSuite) TestTeamGame_TeamsAddedAfterStart() {
	out, err := s.gameService.StartGame(s.ctx, &StartGameInput{
		Names:       []string{"Ann", "Bob"},
		TargetScore: 30,
		Mode:        models.GameModeTeam,
	})
	s.Require().NoError(err)
	s.Empty(out.State.Teams)

	// nobody can win while no team covers the scorer
	submitted := s.submit(10, 10, 10)
	s.False(submitted.GameEnded)

	_, err = s.gameService.AddTeam(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	red, err := s.gameService.AddTeam(s.ctx, &AddTeamInput{Name: " Red "})
	s.Require().NoError(err)
	s.Equal("Red", red.Team.Name)
	s.NotEmpty(red.Team.Color)

	blue, err := s.gameService.AddTeam(s.ctx, &AddTeamInput{})
	s.Require().NoError(err)
	s.Equal("Team 2", blue.Team.Name)
	s.NotEqual(red.Team.ID, blue.Team.ID)
	s.Len(blue.State.Teams, 2)

	assigned, err := s.gameService.AssignTeam(s.ctx, &AssignTeamInput{PlayerID: "player-0", TeamID: red.Team.ID})
	s.Require().NoError(err)
	s.Equal(30, assigned.State.Teams[0].Score)
	s.True(assigned.State.GameEnded)
	s.Require().NotNil(assigned.State.WinningTeam)
	s.Equal("Red", assigned.State.WinningTeam.Name)
}

func (s *GameServiceTestSuite) TestAddTeam_NeedsTeamGame() {
	_, err := s.gameService.AddTeam(s.ctx, &AddTeamInput{Name: "Red"})
	s.ErrorIs(err, ErrGameNotStarted)

	s.start(100, "Ann", "Bob")
	_, err = s.gameService.AddTeam(s.ctx, &AddTeamInput{Name: "Red"})
	s.ErrorIs(err, ErrNotTeamGame)
}

func (s *GameServiceTestSuite) TestTeamGame_WinningTeam() {
	s.startTeams(60)
	s.submit(10, 10, 10) // Ann, Red 30
	s.submit(5, 5, 5)    // Bob, Red 45
	s.submit(1, 1, 1)    // Cid, Blue 3
	s.submit(1, 1, 1)    // Dee, Blue 6

	out := s.submit(5, 5, 5) // Ann, Red 60
	s.True(out.GameEnded)
	s.Require().NotNil(out.State.WinningTeam)
	s.Equal("Red", out.State.WinningTeam.Name)
	s.Nil(out.State.Winner)
}

func (s *GameServiceTestSuite) TestTravelToHistory() {
	s.start(100, "Ann", "Bob")
	s.submit(10, 0, 0)
	s.submit(5, 0, 0)

	_, err := s.gameService.TravelToHistory(s.ctx, &TravelToHistoryInput{EntryID: "history-99"})
	s.ErrorIs(err, ErrHistoryEntryNotFound)

	out, err := s.gameService.TravelToHistory(s.ctx, &TravelToHistoryInput{EntryID: "history-2"})
	s.Require().NoError(err)
	s.Equal("history-2", out.Entry.ID)
	s.Equal(10, out.State.Players[0].Score)
	s.Equal(0, out.State.Players[1].Score)
	s.Len(out.State.History, 3)

	// later entries stay reachable
	out, err = s.gameService.TravelToHistory(s.ctx, &TravelToHistoryInput{EntryID: "history-3"})
	s.Require().NoError(err)
	s.Equal(5, out.State.Players[1].Score)
}

func (s *GameServiceTestSuite) TestTravelToHistory_EntryWithoutSnapshot() {
	doc := `{"schemaVersion":1,"players":[
		{"id":"player-0","name":"Ann","score":0,"turns":[],"currentTurnScores":[]},
		{"id":"player-1","name":"Bob","score":0,"turns":[],"currentTurnScores":[]}],
		"targetScore":50,"gameStarted":true,"gameMode":"individual",
		"history":[{"id":"h-1","timestamp":1,"action":"START_GAME","description":"Game started","turnNumber":0,
		"gameState":{"players":[]}}]}`

	_, err := s.gameService.LoadGame(s.ctx, &LoadGameInput{Data: []byte(doc)})
	s.Require().NoError(err)

	_, err = s.gameService.TravelToHistory(s.ctx, &TravelToHistoryInput{EntryID: "h-1"})
	s.ErrorIs(err, ErrHistorySnapshotUnavailable)
}

func (s *GameServiceTestSuite) TestClearHistory() {
	s.start(100, "Ann", "Bob")
	s.submit(1, 2, 3)

	out, err := s.gameService.ClearHistory(s.ctx, &ClearHistoryInput{})
	s.Require().NoError(err)
	s.Empty(out.State.History)
	s.Equal(6, out.State.Players[0].Score)
}

func (s *GameServiceTestSuite) TestLoadGame() {
	_, err := s.gameService.LoadGame(s.ctx, &LoadGameInput{Data: []byte("not json")})
	s.ErrorIs(err, ErrInvalidGameFile)

	doc := `{"players":[{"id":"a","name":"Ann","score":40,"turns":[{"scores":[20,10,10],"total":40,"turnNumber":1}],"currentTurnScores":[]},
		{"id":"b","name":"Bob","score":0,"turns":[],"currentTurnScores":[]}],
		"targetScore":40,"currentPlayerIndex":1,"gameStarted":true,"gameEnded":true,"winner":{"id":"a","name":"Ann"},"history":[]}`

	out, err := s.gameService.LoadGame(s.ctx, &LoadGameInput{Data: []byte(doc)})
	s.Require().NoError(err)
	s.Equal(models.GameModeIndividual, out.State.GameMode)
	s.Equal(1, out.State.CurrentPlayerIndex)
	s.True(out.State.GameEnded)
	s.Empty(out.State.Teams)
}

func (s *GameServiceTestSuite) TestResume() {
	saved := s.start(100, "Ann", "Bob")

	s.mockPersistence.EXPECT().Load(gomock.Any()).Return(&persistence.LoadOutput{
		State:          saved,
		Found:          true,
		NeedsFileSetup: true,
	}, nil)

	svc, err := New(&Config{
		Persistence:   s.mockPersistence,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	out, err := svc.Resume(s.ctx)
	s.Require().NoError(err)
	s.True(out.Found)
	s.True(out.NeedsFileSetup)
	s.Empty(cmp.Diff(saved, out.State))
}

func (s *GameServiceTestSuite) TestResume_NothingSaved() {
	s.mockPersistence.EXPECT().Load(gomock.Any()).Return(&persistence.LoadOutput{State: models.NewGameState()}, nil)

	out, err := s.gameService.Resume(s.ctx)
	s.Require().NoError(err)
	s.False(out.Found)
	s.False(out.State.GameStarted)
}

func (s *GameServiceTestSuite) TestGetState_ReturnsCopy() {
	s.start(100, "Ann", "Bob")

	out, err := s.gameService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	out.State.Players[0].Name = "changed"

	again, err := s.gameService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Equal("Ann", again.State.Players[0].Name)
}

func (s *GameServiceTestSuite) TestGetLeaderboard_SharedRanks() {
	s.start(100, "Ann", "Bob", "Cid")
	s.submit(10, 10, 10)
	s.submit(20, 20, 10)
	s.submit(15, 15, 0)

	out, err := s.gameService.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)

	expected := []models.LeaderboardEntry{
		{Rank: 1, ID: "player-1", Name: "Bob", Score: 50, Remaining: 50, TurnsPlayed: 1},
		{Rank: 2, ID: "player-0", Name: "Ann", Score: 30, Remaining: 70, TurnsPlayed: 1},
		{Rank: 2, ID: "player-2", Name: "Cid", Score: 30, Remaining: 70, TurnsPlayed: 1},
	}
	s.Empty(cmp.Diff(expected, out.Leaderboard.Entries))
	s.Equal(models.GameModeIndividual, out.Leaderboard.Mode)
	s.Equal(100, out.Leaderboard.TargetScore)
}

func (s *GameServiceTestSuite) TestGetLeaderboard_Teams() {
	s.startTeams(100)
	s.submit(10, 10, 10) // Ann
	s.submit(10, 5, 5)   // Bob
	s.submit(20, 20, 20) // Cid

	out, err := s.gameService.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)

	entries := out.Leaderboard.Entries
	s.Require().Len(entries, 2)
	s.Equal("Blue", entries[0].Name)
	s.Equal(60, entries[0].Score)
	s.Equal(1, entries[0].TurnsPlayed)
	s.Equal("Red", entries[1].Name)
	s.Equal(50, entries[1].Score)
	s.Equal(2, entries[1].TurnsPlayed)
	s.Equal(2, entries[1].Rank)
}

func (s *GameServiceTestSuite) TestExportData() {
	s.start(100, "Ann", "Bob")

	s.mockPersistence.EXPECT().Export(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, state models.GameState) (*persistence.ExportOutput, error) {
			s.Len(state.Players, 2)
			return &persistence.ExportOutput{FileName: "game-score-tracker-2025-04-19.json"}, nil
		})

	out, err := s.gameService.ExportData(s.ctx, &ExportDataInput{})
	s.Require().NoError(err)
	s.Equal("game-score-tracker-2025-04-19.json", out.FileName)
}

func (s *GameServiceTestSuite) TestImportFromFile() {
	imported := models.NewGameState()
	imported.Players = []models.Player{
		{ID: "a", Name: "Ann", Turns: []models.Turn{}, CurrentTurnScores: []int{}},
		{ID: "b", Name: "Bob", Turns: []models.Turn{}, CurrentTurnScores: []int{}},
	}
	imported.TargetScore = 75
	imported.GameStarted = true

	s.mockPersistence.EXPECT().Import(gomock.Any()).Return(&imported, nil)

	out, err := s.gameService.ImportFromFile(s.ctx, &ImportFromFileInput{})
	s.Require().NoError(err)
	s.Equal(75, out.State.TargetScore)
	s.Len(out.State.Players, 2)
}

func (s *GameServiceTestSuite) TestImportFromFile_Errors() {
	testCases := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"declined", filehandle.ErrDeclined, ErrImportDeclined},
		{"unsupported", filehandle.ErrUnsupported, ErrFilePickerUnsupported},
		{"invalid", fmt.Errorf("%w: bad", persistence.ErrInvalidImport), ErrInvalidGameFile},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockPersistence.EXPECT().Import(gomock.Any()).Return(nil, tc.err)

			_, err := s.gameService.ImportFromFile(s.ctx, &ImportFromFileInput{})
			s.ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *GameServiceTestSuite) TestSetupAutoSave() {
	s.start(100, "Ann", "Bob")

	s.mockPersistence.EXPECT().SetupAutoSave(gomock.Any(), gomock.Any()).
		Return(&persistence.SetupAutoSaveOutput{Enabled: true, FileName: "game.json"}, nil)

	out, err := s.gameService.SetupAutoSave(s.ctx, &SetupAutoSaveInput{})
	s.Require().NoError(err)
	s.True(out.Enabled)
	s.Equal("game.json", out.FileName)
}

func (s *GameServiceTestSuite) TestStorageStatus() {
	notices := []persistence.Notice{{Level: persistence.NoticeLevelInfo, Kind: persistence.NoticeSetupAutoSave, Message: "pick a file"}}
	s.mockPersistence.EXPECT().Status().Return(persistence.Status{NeedsFileSetup: true})
	s.mockPersistence.EXPECT().Notices().Return(notices)

	out, err := s.gameService.StorageStatus(s.ctx, &StorageStatusInput{})
	s.Require().NoError(err)
	s.True(out.Status.NeedsFileSetup)
	s.Equal(notices, out.Notices)
}

// TestRandomGames plays random turns and checks the scoring invariants after each
func (s *GameServiceTestSuite) TestRandomGames() {
	for seed := uint64(1); seed <= 20; seed++ {
		faker := gofakeit.New(seed)
		target := faker.Number(20, 120)
		names := []string{faker.FirstName(), faker.FirstName(), faker.FirstName()}

		s.start(target, names...)
		for turn := 0; turn < 60; turn++ {
			scores := []int{faker.Number(-5, 25), faker.Number(-5, 25), faker.Number(-5, 25)}
			out := s.submit(scores...)

			for _, p := range out.State.Players {
				s.Equal(scoring.RecomputeFromTurns(p.Turns, target), p.Score, "seed %d", seed)
				s.LessOrEqual(p.Score, target, "seed %d", seed)
			}
			if out.GameEnded {
				s.Require().NotNil(out.State.Winner)
				s.Equal(target, out.State.Winner.Score)
				break
			}
		}
	}
}
