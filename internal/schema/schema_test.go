package schema

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

type SchemaTestSuite struct {
	suite.Suite
	state models.GameState
}

func (s *SchemaTestSuite) SetupTest() {
	ann := models.Player{
		ID:    "player-0",
		Name:  "Ann",
		Score: 30,
		Turns: []models.Turn{
			{Scores: []int{10, 10, 10}, Total: 30, TurnNumber: 1},
			{Scores: []int{40, 20, 20}, Total: 80, TurnNumber: 2, IsExcessTurn: true, ExcessScore: 10},
		},
		CurrentTurnScores: []int{5},
		TeamID:            "team-0",
	}
	bob := models.Player{ID: "player-1", Name: "Bob", Turns: []models.Turn{}, CurrentTurnScores: []int{}, TeamID: "team-0"}

	s.state = models.GameState{
		Players:            []models.Player{ann, bob},
		Teams:              []models.Team{{ID: "team-0", Name: "Red", Color: "#ef4444", Score: 30}},
		TargetScore:        100,
		CurrentPlayerIndex: 1,
		GameStarted:        true,
		GameMode:           models.GameModeTeam,
		History: []models.HistoryEntry{
			{
				ID:          "history-1",
				Timestamp:   1745064000000,
				Action:      models.ActionStartGame,
				Description: "Team game started with 2 players in 1 teams, target score: 100",
				GameState: models.GameState{
					Players:     []models.Player{{ID: "player-0", Name: "Ann", Turns: []models.Turn{}, CurrentTurnScores: []int{}}},
					Teams:       []models.Team{},
					TargetScore: 100,
					GameStarted: true,
					GameMode:    models.GameModeTeam,
				},
			},
		},
	}
}

func TestSchemaTestSuite(t *testing.T) {
	suite.Run(t, new(SchemaTestSuite))
}

func (s *SchemaTestSuite) TestRoundTrip() {
	data, err := Encode(s.state)
	s.Require().NoError(err)

	decoded, err := Decode(data)
	s.Require().NoError(err)

	s.Empty(cmp.Diff(s.state, *decoded))
}

func (s *SchemaTestSuite) TestEncode_WritesVersionAndFields() {
	data, err := Encode(s.state)
	s.Require().NoError(err)

	var raw map[string]any
	s.Require().NoError(json.Unmarshal(data, &raw))

	s.EqualValues(VersionCurrent, raw["schemaVersion"])
	for _, key := range []string{"players", "teams", "targetScore", "currentPlayerIndex", "gameStarted", "gameEnded", "winner", "winningTeam", "gameMode", "history"} {
		s.Contains(raw, key)
	}
	s.Contains(string(data), "\n  \"players\"", "document is indented")
}

func (s *SchemaTestSuite) TestDecode_LegacyDocument() {
	legacy := `{
		"players": [
			{"id": "player-0", "name": "Ann", "score": 90,
			 "turns": [{"scores": [30, 30, 30], "total": 90, "turnNumber": 1}],
			 "currentTurnScores": []}
		],
		"targetScore": 100,
		"currentPlayerIndex": 0,
		"gameStarted": true,
		"gameEnded": false,
		"winner": null
	}`

	state, err := Decode([]byte(legacy))
	s.Require().NoError(err)

	s.Equal(models.GameModeIndividual, state.GameMode)
	s.NotNil(state.Teams)
	s.Empty(state.Teams)
	s.NotNil(state.History)
	s.Nil(state.WinningTeam)
	s.False(state.Players[0].Turns[0].IsExcessTurn)
	s.Zero(state.Players[0].Turns[0].ExcessScore)
	s.Equal(90, state.Players[0].Score)
}

func (s *SchemaTestSuite) TestDecode_Corrupt() {
	for _, input := range []string{"", "not json", "[1,2]", `{"players": [`, `{"targetScore": 10}`} {
		_, err := Decode([]byte(input))
		s.ErrorIs(err, ErrCorruptDocument, input)
	}
}

func (s *SchemaTestSuite) TestDecode_FutureVersion() {
	_, err := Decode([]byte(`{"schemaVersion": 9, "players": []}`))
	s.ErrorIs(err, ErrUnsupportedVersion)
}
