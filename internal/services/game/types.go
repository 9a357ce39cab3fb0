package game

import (
	"log/slog"

	"github.com/KirkDiggler/scoretracker/internal/common/clock"
	"github.com/KirkDiggler/scoretracker/internal/common/uuid"
	"github.com/KirkDiggler/scoretracker/internal/metrics"
	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/KirkDiggler/scoretracker/internal/services/persistence"
)

// Config holds configuration for the game service
type Config struct {
	// HistoryLimit caps the number of history entries kept
	HistoryLimit int

	// Service dependencies
	Persistence   persistence.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger defaults to slog.Default
	Logger *slog.Logger

	// Metrics may be nil
	Metrics *metrics.Metrics
}

// TeamInput describes one team of a team game
type TeamInput struct {
	Name  string
	Color string

	// Members are indexes into StartGameInput.Names
	Members []int
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// Names in turn order; blank names are dropped
	Names []string

	TargetScore int

	// Mode defaults to individual
	Mode models.GameMode

	// Teams are ignored in individual mode
	Teams []TeamInput
}

// StartGameOutput contains the new game
type StartGameOutput struct {
	State models.GameState
}

// AddScoreInput contains parameters for entering one score
type AddScoreInput struct {
	PlayerID string
	Value    int
}

// AddScoreOutput contains the result of entering one score
type AddScoreOutput struct {
	State models.GameState

	// TurnReady is set once the turn holds three entries
	TurnReady bool
}

// CompleteTurnInput contains parameters for completing a turn
type CompleteTurnInput struct {
	PlayerID string
}

// CompleteTurnOutput contains the recorded turn
type CompleteTurnOutput struct {
	State models.GameState
	Turn  models.Turn

	// GameEnded is set when this turn produced a winner
	GameEnded bool
}

// NextTurnInput contains parameters for advancing play
type NextTurnInput struct{}

// NextTurnOutput contains the player now up
type NextTurnOutput struct {
	State         models.GameState
	CurrentPlayer models.Player
}

// SubmitTurnInput contains parameters for submitting a whole turn
type SubmitTurnInput struct {
	// PlayerID defaults to the current player
	PlayerID string

	// Scores must hold exactly three entries
	Scores []int
}

// SubmitTurnOutput contains the result of a submitted turn
type SubmitTurnOutput struct {
	State  models.GameState
	Player models.Player
	Turn   models.Turn

	// GameEnded is set when this turn produced a winner; play does not advance
	GameEnded bool
}

// SkipTurnInput contains parameters for skipping a turn
type SkipTurnInput struct {
	// PlayerID defaults to the current player
	PlayerID string
}

type RestartGameInput struct{}

type RestartGameOutput struct {
	State models.GameState
}

type ResetGameInput struct{}

type ResetGameOutput struct {
	State models.GameState
}

type UpdateTargetScoreInput struct {
	TargetScore int
}

type UpdateTargetScoreOutput struct {
	State models.GameState
}

// EditTurnScoreInput contains parameters for correcting a completed turn
type EditTurnScoreInput struct {
	PlayerID string

	// TurnIndex is 0-based into the player's turns
	TurnIndex int

	Scores []int
}

type EditTurnScoreOutput struct {
	State models.GameState
}

// AddTeamInput contains parameters for creating a team after the start
type AddTeamInput struct {
	// Name defaults to "Team N"
	Name string

	// Color defaults to the next palette color
	Color string
}

type AddTeamOutput struct {
	State models.GameState
	Team  models.Team
}

// AssignTeamInput contains parameters for moving a player between teams
type AssignTeamInput struct {
	PlayerID string

	// TeamID may be empty to leave every team
	TeamID string
}

type AssignTeamOutput struct {
	State models.GameState
}

type TravelToHistoryInput struct {
	EntryID string
}

type TravelToHistoryOutput struct {
	State models.GameState
	Entry models.HistoryEntry
}

type ClearHistoryInput struct{}

type ClearHistoryOutput struct {
	State models.GameState
}

// LoadGameInput contains a game document to load
type LoadGameInput struct {
	Data []byte
}

type LoadGameOutput struct {
	State models.GameState
}

type ResumeOutput struct {
	State models.GameState

	// Found is false when no saved game existed
	Found bool

	// NeedsFileSetup asks the user to pick an auto-save file
	NeedsFileSetup bool
}

type GetStateInput struct{}

type GetStateOutput struct {
	State models.GameState
}

type GetLeaderboardInput struct{}

type GetLeaderboardOutput struct {
	Leaderboard models.Leaderboard
}

type ExportDataInput struct{}

type ExportDataOutput struct {
	FileName string
}

type ImportFromFileInput struct{}

type ImportFromFileOutput struct {
	State models.GameState
}

type SetupAutoSaveInput struct{}

type SetupAutoSaveOutput struct {
	Enabled  bool
	FileName string
}

type StorageStatusInput struct{}

type StorageStatusOutput struct {
	Status  persistence.Status
	Notices []persistence.Notice
}
