// Package engine is the game state reducer. Reduce never mutates its input
// and never fails: input validation happens before an action is dispatched.
package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/scoretracker/internal/history"
	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/KirkDiggler/scoretracker/internal/scoring"
)

// DefaultTeamColors are assigned to teams created without a color
var DefaultTeamColors = []string{"#ef4444", "#3b82f6", "#22c55e", "#eab308", "#a855f7", "#f97316"}

// Config holds configuration for the engine
type Config struct {
	History *history.Manager
}

// Engine applies actions to game states
type Engine struct {
	history *history.Manager
}

// New creates an engine; a nil config gets a default history manager
func New(cfg *Config) *Engine {
	e := &Engine{}
	if cfg != nil && cfg.History != nil {
		e.history = cfg.History
	} else {
		e.history = history.New(nil)
	}
	return e
}

// Reduce returns the state that results from applying action to state
func (e *Engine) Reduce(state models.GameState, action Action) models.GameState {
	switch a := action.(type) {
	case StartGame:
		return e.startGame(a)
	case AddScoreEntry:
		return addScoreEntry(state, a)
	case CompleteTurn:
		return e.completeTurn(state, a)
	case AdvanceTurn:
		return advanceTurn(state)
	case RestartGame:
		return restartGame(state)
	case ResetGame:
		return models.NewGameState()
	case LoadGame:
		return loadGame(a)
	case UpdateTargetScore:
		return updateTargetScore(state, a)
	case EditTurnScore:
		return editTurnScore(state, a)
	case AddTeam:
		return addTeam(state, a)
	case AssignTeam:
		return assignTeam(state, a)
	case TravelToHistory:
		return travelToHistory(state, a)
	case ClearHistory:
		return history.Clear(working(state))
	default:
		panic(fmt.Sprintf("engine: unhandled action %T", action))
	}
}

// working copies everything but history, which is only ever replaced
func working(state models.GameState) models.GameState {
	next := state.Snapshot()
	next.History = state.History
	return next
}

// settle recomputes derived team scores and the winner for the mode
func settle(state *models.GameState) {
	state.Teams = scoring.TeamScores(state.Players, state.Teams)

	if state.GameMode.IsTeam() {
		state.Winner = nil
		state.WinningTeam = scoring.FindWinningTeam(state.Teams, state.TargetScore)
		state.GameEnded = state.WinningTeam != nil
		return
	}

	state.WinningTeam = nil
	state.Winner = scoring.FindWinner(state.Players, state.TargetScore)
	state.GameEnded = state.Winner != nil
}

func (e *Engine) startGame(a StartGame) models.GameState {
	state := models.NewGameState()
	state.TargetScore = a.TargetScore
	state.GameStarted = true
	state.GameMode = a.Mode
	if state.GameMode == "" {
		state.GameMode = models.GameModeIndividual
	}

	for i, name := range a.Names {
		state.Players = append(state.Players, models.Player{
			ID:                fmt.Sprintf("player-%d", i),
			Name:              strings.TrimSpace(name),
			Turns:             []models.Turn{},
			CurrentTurnScores: []int{},
		})
	}

	for i, spec := range a.Teams {
		color := spec.Color
		if color == "" {
			color = DefaultTeamColors[i%len(DefaultTeamColors)]
		}
		team := models.Team{
			ID:    fmt.Sprintf("team-%d", i),
			Name:  strings.TrimSpace(spec.Name),
			Color: color,
		}
		for _, idx := range spec.Members {
			if idx >= 0 && idx < len(state.Players) {
				state.Players[idx].TeamID = team.ID
			}
		}
		state.Teams = append(state.Teams, team)
	}

	settle(&state)

	description := fmt.Sprintf("Game started with %d players, target score: %d", len(state.Players), state.TargetScore)
	if state.GameMode.IsTeam() {
		description = fmt.Sprintf("Team game started with %d players in %d teams, target score: %d",
			len(state.Players), len(state.Teams), state.TargetScore)
	}

	return e.history.Record(state, models.ActionStartGame, description, 0)
}

func addScoreEntry(state models.GameState, a AddScoreEntry) models.GameState {
	idx := state.PlayerIndex(a.PlayerID)
	if idx < 0 || len(state.Players[idx].CurrentTurnScores) >= models.TurnSize {
		return state
	}

	next := working(state)
	p := &next.Players[idx]
	p.CurrentTurnScores = append(p.CurrentTurnScores, a.Value)
	return next
}

func (e *Engine) completeTurn(state models.GameState, a CompleteTurn) models.GameState {
	idx := state.PlayerIndex(a.PlayerID)
	if idx < 0 || !state.Players[idx].TurnReady() {
		return state
	}

	next := working(state)
	updated, turn := scoring.ApplyTurn(next.Players[idx], next.Players[idx].CurrentTurnScores, next.TargetScore)
	next.Players[idx] = updated
	settle(&next)

	description := fmt.Sprintf("%s completed turn %d", updated.Name, turn.TurnNumber)
	if turn.IsExcessTurn {
		description = fmt.Sprintf("%s (exceeded by %d)", description, turn.ExcessScore)
	}

	return e.history.Record(next, models.ActionCompleteTurn, description, turn.TurnNumber)
}

func advanceTurn(state models.GameState) models.GameState {
	if len(state.Players) == 0 {
		return state
	}
	next := working(state)
	next.CurrentPlayerIndex = (state.CurrentPlayerIndex + 1) % len(state.Players)
	if next.CurrentPlayerIndex < 0 {
		next.CurrentPlayerIndex = 0
	}
	return next
}

func restartGame(state models.GameState) models.GameState {
	next := working(state)
	for i := range next.Players {
		next.Players[i].Score = 0
		next.Players[i].Turns = []models.Turn{}
		next.Players[i].CurrentTurnScores = []int{}
	}
	next.CurrentPlayerIndex = 0
	settle(&next)
	return next
}

func loadGame(a LoadGame) models.GameState {
	next := a.State.Clone()
	if next.Players == nil {
		next.Players = []models.Player{}
	}
	if next.Teams == nil {
		next.Teams = []models.Team{}
	}
	if next.History == nil {
		next.History = []models.HistoryEntry{}
	}
	if next.CurrentPlayerIndex < 0 || next.CurrentPlayerIndex >= len(next.Players) {
		next.CurrentPlayerIndex = 0
	}
	next.Teams = scoring.TeamScores(next.Players, next.Teams)
	return next
}

func updateTargetScore(state models.GameState, a UpdateTargetScore) models.GameState {
	next := working(state)
	next.TargetScore = a.TargetScore
	settle(&next)
	return next
}

func editTurnScore(state models.GameState, a EditTurnScore) models.GameState {
	idx := state.PlayerIndex(a.PlayerID)
	if idx < 0 || a.TurnIndex < 0 || a.TurnIndex >= len(state.Players[idx].Turns) {
		return state
	}

	next := working(state)
	p := &next.Players[idx]
	p.Turns[a.TurnIndex].Scores = append([]int{}, a.Scores...)
	p.Turns, p.Score = scoring.ReplayTurns(p.Turns, next.TargetScore)
	settle(&next)
	return next
}

func addTeam(state models.GameState, a AddTeam) models.GameState {
	next := working(state)

	n := len(next.Teams)
	for next.TeamIndex(fmt.Sprintf("team-%d", n)) >= 0 {
		n++
	}
	color := a.Color
	if color == "" {
		color = DefaultTeamColors[len(next.Teams)%len(DefaultTeamColors)]
	}
	name := strings.TrimSpace(a.Name)
	if name == "" {
		name = fmt.Sprintf("Team %d", len(next.Teams)+1)
	}

	next.Teams = append(next.Teams, models.Team{
		ID:    fmt.Sprintf("team-%d", n),
		Name:  name,
		Color: color,
	})
	settle(&next)
	return next
}

func assignTeam(state models.GameState, a AssignTeam) models.GameState {
	idx := state.PlayerIndex(a.PlayerID)
	if idx < 0 || (a.TeamID != "" && state.TeamIndex(a.TeamID) < 0) {
		return state
	}

	next := working(state)
	next.Players[idx].TeamID = a.TeamID
	settle(&next)
	return next
}

func travelToHistory(state models.GameState, a TravelToHistory) models.GameState {
	entry, ok := history.Find(state.History, a.EntryID)
	if !ok || !entry.HasSnapshot() {
		return state
	}
	return history.Restore(entry, state.History)
}
