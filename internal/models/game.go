package models

// GameMode selects whether winners are individual players or teams
type GameMode string

const (
	// GameModeIndividual ranks and wins by player score
	GameModeIndividual GameMode = "individual"

	// GameModeTeam ranks and wins by team score
	GameModeTeam GameMode = "team"
)

// IsTeam reports whether the mode is team play
func (m GameMode) IsTeam() bool {
	return m == GameModeTeam
}

// GameState is the aggregate root of a tracked game
type GameState struct {
	// Players in turn order
	Players []Player `json:"players"`

	// Teams are groupings of players, only meaningful in team mode
	Teams []Team `json:"teams"`

	// TargetScore is the exact score needed to win
	TargetScore int `json:"targetScore"`

	// CurrentPlayerIndex points at the player whose turn it is
	CurrentPlayerIndex int `json:"currentPlayerIndex"`

	GameStarted bool `json:"gameStarted"`
	GameEnded   bool `json:"gameEnded"`

	// Winner is set in individual mode when a player hits the target exactly
	Winner *Player `json:"winner"`

	// WinningTeam is set in team mode when a team hits the target exactly
	WinningTeam *Team `json:"winningTeam"`

	GameMode GameMode `json:"gameMode"`

	// History holds snapshots taken after every recorded action
	History []HistoryEntry `json:"history"`
}

// NewGameState returns the empty setup state
func NewGameState() GameState {
	return GameState{
		Players:  []Player{},
		Teams:    []Team{},
		GameMode: GameModeIndividual,
		History:  []HistoryEntry{},
	}
}

// CurrentPlayer returns the player whose turn it is, or nil when there are no players
func (g *GameState) CurrentPlayer() *Player {
	if len(g.Players) == 0 || g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Players) {
		return nil
	}
	return &g.Players[g.CurrentPlayerIndex]
}

// PlayerIndex returns the index of the player with the given ID or -1
func (g *GameState) PlayerIndex(playerID string) int {
	for i := range g.Players {
		if g.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}

// TeamIndex returns the index of the team with the given ID or -1
func (g *GameState) TeamIndex(teamID string) int {
	for i := range g.Teams {
		if g.Teams[i].ID == teamID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the state, history included.
// Nothing in the copy aliases memory owned by g.
func (g GameState) Clone() GameState {
	out := g.Snapshot()
	if g.History != nil {
		out.History = make([]HistoryEntry, len(g.History))
		for i := range g.History {
			out.History[i] = g.History[i].Clone()
		}
	}
	return out
}

// Snapshot returns a deep copy of the state without its history.
// History entries store snapshots so that entries never nest.
func (g GameState) Snapshot() GameState {
	out := g
	out.History = nil

	if g.Players != nil {
		out.Players = make([]Player, len(g.Players))
		for i := range g.Players {
			out.Players[i] = g.Players[i].Clone()
		}
	}

	if g.Teams != nil {
		out.Teams = make([]Team, len(g.Teams))
		copy(out.Teams, g.Teams)
	}

	if g.Winner != nil {
		w := g.Winner.Clone()
		out.Winner = &w
	}

	if g.WinningTeam != nil {
		t := *g.WinningTeam
		out.WinningTeam = &t
	}

	return out
}
