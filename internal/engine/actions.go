package engine

import "github.com/KirkDiggler/scoretracker/internal/models"

// Action is one of the closed set of state transitions below.
// The unexported marker keeps the set closed to this package.
type Action interface {
	action()
}

// TeamSpec describes a team at game start
type TeamSpec struct {
	Name  string
	Color string

	// Members are indexes into StartGame.Names
	Members []int
}

// StartGame creates fresh players and teams and resets history
type StartGame struct {
	Names       []string
	TargetScore int
	Mode        models.GameMode
	Teams       []TeamSpec
}

// AddScoreEntry appends one entry to a player's turn in progress
type AddScoreEntry struct {
	PlayerID string
	Value    int
}

// CompleteTurn finalizes a player's three-entry turn
type CompleteTurn struct {
	PlayerID string
}

// AdvanceTurn rotates to the next player
type AdvanceTurn struct{}

// RestartGame zeroes scores but keeps players, teams and target
type RestartGame struct{}

// ResetGame returns to the empty setup state
type ResetGame struct{}

// LoadGame replaces the state with an externally loaded one
type LoadGame struct {
	State models.GameState
}

// UpdateTargetScore changes the target and re-evaluates the winner
type UpdateTargetScore struct {
	TargetScore int
}

// EditTurnScore replaces the entries of a completed turn
type EditTurnScore struct {
	PlayerID  string
	TurnIndex int
	Scores    []int
}

// AddTeam creates an empty team in a team game
type AddTeam struct {
	Name  string
	Color string
}

// AssignTeam moves a player into a team, or out of all teams when TeamID is empty
type AssignTeam struct {
	PlayerID string
	TeamID   string
}

// TravelToHistory previews the snapshot of a history entry
type TravelToHistory struct {
	EntryID string
}

// ClearHistory empties the history
type ClearHistory struct{}

func (StartGame) action()         {}
func (AddScoreEntry) action()     {}
func (CompleteTurn) action()      {}
func (AdvanceTurn) action()       {}
func (RestartGame) action()       {}
func (ResetGame) action()         {}
func (LoadGame) action()          {}
func (UpdateTargetScore) action() {}
func (EditTurnScore) action()     {}
func (AddTeam) action()           {}
func (AssignTeam) action()        {}
func (TravelToHistory) action()   {}
func (ClearHistory) action()      {}
