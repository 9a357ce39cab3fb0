package history

import (
	"fmt"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/scoretracker/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/scoretracker/internal/common/uuid/mocks"
	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HistoryTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	manager   *Manager
	testTime  time.Time
	state     models.GameState
}

func (s *HistoryTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.manager = New(&Config{
		Limit:         3,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})

	s.state = models.GameState{
		Players: []models.Player{
			{ID: "player-0", Name: "Ann", Score: 10, Turns: []models.Turn{{Scores: []int{5, 5, 0}, Total: 10, TurnNumber: 1}}},
			{ID: "player-1", Name: "Bob"},
		},
		Teams:       []models.Team{},
		TargetScore: 100,
		GameStarted: true,
		GameMode:    models.GameModeIndividual,
	}
}

func (s *HistoryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHistoryTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryTestSuite))
}

func (s *HistoryTestSuite) TestRecord_SnapshotIsIndependent() {
	s.mockUUID.EXPECT().NewUUID().Return("abc")

	recorded := s.manager.Record(s.state, models.ActionCompleteTurn, "Ann completed turn 1", 1)

	s.Require().Len(recorded.History, 1)
	entry := recorded.History[0]
	s.Equal("history-abc", entry.ID)
	s.Equal(s.testTime.UnixMilli(), entry.Timestamp)
	s.Equal(models.ActionCompleteTurn, entry.Action)
	s.Equal(1, entry.TurnNumber)
	s.Nil(entry.GameState.History)

	// mutate the live state after recording
	recorded.Players[0].Score = 55
	recorded.Players[0].Turns[0].Scores[0] = 99
	s.state.Players[1].Name = "Changed"

	s.Equal(10, entry.GameState.Players[0].Score)
	s.Equal(5, entry.GameState.Players[0].Turns[0].Scores[0])
	s.Equal("Bob", entry.GameState.Players[1].Name)
}

func (s *HistoryTestSuite) TestRecord_EvictsOldest() {
	state := s.state
	for i := 0; i < 5; i++ {
		s.mockUUID.EXPECT().NewUUID().Return(fmt.Sprintf("%d", i))
		state = s.manager.Record(state, models.ActionCompleteTurn, "turn", i)
	}

	s.Require().Len(state.History, 3)
	s.Equal("history-2", state.History[0].ID)
	s.Equal("history-4", state.History[2].ID)
}

func (s *HistoryTestSuite) TestRecord_DoesNotShareBackingArray() {
	s.mockUUID.EXPECT().NewUUID().Return("a")
	s.mockUUID.EXPECT().NewUUID().Return("b")
	s.mockUUID.EXPECT().NewUUID().Return("c")

	base := s.manager.Record(s.state, models.ActionStartGame, "start", 0)
	left := s.manager.Record(base, models.ActionCompleteTurn, "left", 1)
	right := s.manager.Record(base, models.ActionCompleteTurn, "right", 1)

	s.Len(base.History, 1)
	s.Equal("left", left.History[1].Description)
	s.Equal("right", right.History[1].Description)
}

func (s *HistoryTestSuite) TestFindAndRestore() {
	s.mockUUID.EXPECT().NewUUID().Return("first")
	s.mockUUID.EXPECT().NewUUID().Return("second")

	state := s.manager.Record(s.state, models.ActionStartGame, "start", 0)
	state.Players[0].Score = 40
	state = s.manager.Record(state, models.ActionCompleteTurn, "turn", 2)

	entry, ok := Find(state.History, "history-first")
	s.Require().True(ok)

	restored := Restore(entry, state.History)

	s.Equal(10, restored.Players[0].Score)
	s.Len(restored.History, 2)

	restored.Players[0].Score = 1
	s.Equal(10, entry.GameState.Players[0].Score)

	_, ok = Find(state.History, "missing")
	s.False(ok)
}

func (s *HistoryTestSuite) TestClear() {
	s.mockUUID.EXPECT().NewUUID().Return("x")
	state := s.manager.Record(s.state, models.ActionStartGame, "start", 0)

	cleared := Clear(state)

	s.Empty(cleared.History)
	s.Len(state.History, 1)
}

func (s *HistoryTestSuite) TestNew_Defaults() {
	m := New(nil)
	s.Equal(DefaultLimit, m.Limit())
	s.Equal(DefaultLimit, New(&Config{Limit: -1}).Limit())
}
