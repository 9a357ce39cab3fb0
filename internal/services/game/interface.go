package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/scoretracker/internal/services/game Service

import (
	"context"
)

// Service owns the current game and applies every action to it in order
type Service interface {
	// Resume restores the saved game at startup
	Resume(ctx context.Context) (*ResumeOutput, error)

	// StartGame begins a new game, replacing any current one
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// AddScore appends one entry to a player's turn in progress
	AddScore(ctx context.Context, input *AddScoreInput) (*AddScoreOutput, error)

	// CompleteTurn finalizes a player's three-entry turn
	CompleteTurn(ctx context.Context, input *CompleteTurnInput) (*CompleteTurnOutput, error)

	// NextTurn moves play to the next player
	NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error)

	// SubmitTurn enters three scores, completes the turn and advances play
	// unless the game ended
	SubmitTurn(ctx context.Context, input *SubmitTurnInput) (*SubmitTurnOutput, error)

	// SkipTurn submits a turn of three zeros
	SkipTurn(ctx context.Context, input *SkipTurnInput) (*SubmitTurnOutput, error)

	// RestartGame zeroes all scores and keeps players, teams and target
	RestartGame(ctx context.Context, input *RestartGameInput) (*RestartGameOutput, error)

	// ResetGame discards the game and every saved copy of it
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// UpdateTargetScore changes the target and re-checks the winner
	UpdateTargetScore(ctx context.Context, input *UpdateTargetScoreInput) (*UpdateTargetScoreOutput, error)

	// EditTurnScore replaces the entries of a completed turn
	EditTurnScore(ctx context.Context, input *EditTurnScoreInput) (*EditTurnScoreOutput, error)

	// AddTeam creates an empty team in a team game
	AddTeam(ctx context.Context, input *AddTeamInput) (*AddTeamOutput, error)

	// AssignTeam moves a player between teams in a team game
	AssignTeam(ctx context.Context, input *AssignTeamInput) (*AssignTeamOutput, error)

	// TravelToHistory previews the state stored in a history entry
	TravelToHistory(ctx context.Context, input *TravelToHistoryInput) (*TravelToHistoryOutput, error)

	// ClearHistory empties the history
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)

	// LoadGame replaces the game with a game document
	LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error)

	// GetState returns a copy of the current game
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// GetLeaderboard ranks players, or teams in a team game
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// ExportData writes a dated copy of the game for the user
	ExportData(ctx context.Context, input *ExportDataInput) (*ExportDataOutput, error)

	// ImportFromFile loads a game from a file the user picks
	ImportFromFile(ctx context.Context, input *ImportFromFileInput) (*ImportFromFileOutput, error)

	// SetupAutoSave picks a file to keep the game saved in
	SetupAutoSave(ctx context.Context, input *SetupAutoSaveInput) (*SetupAutoSaveOutput, error)

	// StorageStatus reports where the game is saved and any storage notices
	StorageStatus(ctx context.Context, input *StorageStatusInput) (*StorageStatusOutput, error)
}
