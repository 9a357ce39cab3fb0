package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/scoretracker/internal/engine"
	"github.com/KirkDiggler/scoretracker/internal/history"
	"github.com/KirkDiggler/scoretracker/internal/metrics"
	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/KirkDiggler/scoretracker/internal/repositories/filehandle"
	"github.com/KirkDiggler/scoretracker/internal/schema"
	"github.com/KirkDiggler/scoretracker/internal/services/persistence"
)

// Metric labels for dispatched actions
const (
	actionStartGame     = "start_game"
	actionAddScore      = "add_score"
	actionCompleteTurn  = "complete_turn"
	actionNextTurn      = "next_turn"
	actionRestartGame   = "restart_game"
	actionResetGame     = "reset_game"
	actionLoadGame      = "load_game"
	actionUpdateTarget  = "update_target_score"
	actionEditTurnScore = "edit_turn_score"
	actionAddTeam       = "add_team"
	actionAssignTeam    = "assign_team"
	actionTravel        = "travel_to_history"
	actionClearHistory  = "clear_history"
)

type service struct {
	mu     sync.Mutex
	state  models.GameState
	engine *engine.Engine

	persistence persistence.Service
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// New creates a game service holding the empty setup state
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Persistence == nil {
		return nil, ErrNilPersistence
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		state: models.NewGameState(),
		engine: engine.New(&engine.Config{
			History: history.New(&history.Config{
				Limit:         cfg.HistoryLimit,
				Clock:         cfg.Clock,
				UUIDGenerator: cfg.UUIDGenerator,
			}),
		}),
		persistence: cfg.Persistence,
		logger:      logger,
		metrics:     cfg.Metrics,
	}, nil
}

// dispatch applies an action and queues the result for saving. Callers hold s.mu.
func (s *service) dispatch(ctx context.Context, name string, action engine.Action) {
	s.state = s.engine.Reduce(s.state, action)
	s.metrics.RecordAction(name)
	s.metrics.SetHistorySize(len(s.state.History))
	s.persistence.Notify(s.state)
	s.logger.DebugContext(ctx, "Applied action",
		slog.String("action", name),
		slog.Int("history", len(s.state.History)),
		slog.Bool("ended", s.state.GameEnded))
}

// requirePlaying checks that a game is running and has no winner yet
func (s *service) requirePlaying() error {
	if !s.state.GameStarted {
		return ErrGameNotStarted
	}
	if s.state.GameEnded {
		return ErrGameEnded
	}
	return nil
}

func (s *service) requirePlayer(playerID string) (int, error) {
	idx := s.state.PlayerIndex(playerID)
	if idx < 0 {
		return -1, ErrPlayerNotFound
	}
	return idx, nil
}

// Resume restores the saved game at startup. Storage trouble is reported by
// the persistence service as notices and leaves the setup state in place.
func (s *service) Resume(ctx context.Context) (*ResumeOutput, error) {
	out, err := s.persistence.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved game: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if out.Found {
		s.state = s.engine.Reduce(s.state, engine.LoadGame{State: out.State})
		s.metrics.SetHistorySize(len(s.state.History))
		s.logger.InfoContext(ctx, "Resumed saved game",
			slog.Int("players", len(s.state.Players)),
			slog.Bool("started", s.state.GameStarted))
	}

	return &ResumeOutput{
		State:          s.state.Clone(),
		Found:          out.Found,
		NeedsFileSetup: out.NeedsFileSetup,
	}, nil
}

// StartGame begins a new game. Blank names are dropped before the player
// count is checked; team member indexes follow the names they point at.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.TargetScore <= 0 {
		return nil, ErrInvalidTargetScore
	}

	mode := input.Mode
	if mode == "" {
		mode = models.GameModeIndividual
	}
	if mode != models.GameModeIndividual && mode != models.GameModeTeam {
		return nil, ErrInvalidGameMode
	}

	names := make([]string, 0, len(input.Names))
	remap := make(map[int]int, len(input.Names))
	for i, name := range input.Names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		remap[i] = len(names)
		names = append(names, name)
	}
	if len(names) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	var teams []engine.TeamSpec
	if mode.IsTeam() {
		var err error
		teams, err = buildTeams(input.Teams, remap)
		if err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(ctx, actionStartGame, engine.StartGame{
		Names:       names,
		TargetScore: input.TargetScore,
		Mode:        mode,
		Teams:       teams,
	})

	s.logger.InfoContext(ctx, "Game started",
		slog.Int("players", len(names)),
		slog.Int("target", input.TargetScore),
		slog.String("mode", string(mode)))

	return &StartGameOutput{State: s.state.Clone()}, nil
}

// buildTeams validates team input and rewrites member indexes to the kept names.
// Teams are optional at the start; AddTeam and AssignTeam complete them later.
func buildTeams(in []TeamInput, remap map[int]int) ([]engine.TeamSpec, error) {
	assigned := make(map[int]bool)
	teams := make([]engine.TeamSpec, 0, len(in))
	for i, t := range in {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			name = fmt.Sprintf("Team %d", i+1)
		}

		spec := engine.TeamSpec{Name: name, Color: t.Color}
		for _, member := range t.Members {
			idx, ok := remap[member]
			if !ok {
				return nil, fmt.Errorf("%w: unknown member %d in %s", ErrInvalidTeam, member, name)
			}
			if assigned[idx] {
				return nil, fmt.Errorf("%w: player %d is in more than one team", ErrInvalidTeam, member)
			}
			assigned[idx] = true
			spec.Members = append(spec.Members, idx)
		}
		teams = append(teams, spec)
	}
	return teams, nil
}

// AddScore appends one entry to a player's turn in progress
func (s *service) AddScore(ctx context.Context, input *AddScoreInput) (*AddScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePlaying(); err != nil {
		return nil, err
	}
	idx, err := s.requirePlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}
	if len(s.state.Players[idx].CurrentTurnScores) >= models.TurnSize {
		return nil, ErrTurnFull
	}

	s.dispatch(ctx, actionAddScore, engine.AddScoreEntry{PlayerID: input.PlayerID, Value: input.Value})

	return &AddScoreOutput{
		State:     s.state.Clone(),
		TurnReady: s.state.Players[idx].TurnReady(),
	}, nil
}

// CompleteTurn finalizes a player's turn
func (s *service) CompleteTurn(ctx context.Context, input *CompleteTurnInput) (*CompleteTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePlaying(); err != nil {
		return nil, err
	}
	turn, err := s.completeTurn(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &CompleteTurnOutput{
		State:     s.state.Clone(),
		Turn:      turn,
		GameEnded: s.state.GameEnded,
	}, nil
}

func (s *service) completeTurn(ctx context.Context, playerID string) (models.Turn, error) {
	idx, err := s.requirePlayer(playerID)
	if err != nil {
		return models.Turn{}, err
	}
	if !s.state.Players[idx].TurnReady() {
		return models.Turn{}, ErrTurnIncomplete
	}

	s.dispatch(ctx, actionCompleteTurn, engine.CompleteTurn{PlayerID: playerID})

	p := s.state.Players[idx]
	turn := p.Turns[len(p.Turns)-1].Clone()
	s.logger.InfoContext(ctx, "Turn completed",
		slog.String("player", p.Name),
		slog.Int("turn", turn.TurnNumber),
		slog.Int("total", turn.Total),
		slog.Bool("excess", turn.IsExcessTurn),
		slog.Int("score", p.Score))
	if s.state.GameEnded {
		s.logger.InfoContext(ctx, "Game won", slog.String("winner", winnerName(s.state)))
	}
	return turn, nil
}

// NextTurn moves play to the next player
func (s *service) NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePlaying(); err != nil {
		return nil, err
	}

	s.dispatch(ctx, actionNextTurn, engine.AdvanceTurn{})

	out := &NextTurnOutput{State: s.state.Clone()}
	if p := s.state.CurrentPlayer(); p != nil {
		out.CurrentPlayer = p.Clone()
	}
	return out, nil
}

// SubmitTurn enters a whole turn at once: three scores, completion, then
// the move to the next player unless the turn won the game
func (s *service) SubmitTurn(ctx context.Context, input *SubmitTurnInput) (*SubmitTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if len(input.Scores) != models.TurnSize {
		return nil, ErrInvalidScores
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.submitTurn(ctx, input.PlayerID, input.Scores)
}

// SkipTurn submits a turn of three zeros
func (s *service) SkipTurn(ctx context.Context, input *SkipTurnInput) (*SubmitTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.submitTurn(ctx, input.PlayerID, make([]int, models.TurnSize))
}

func (s *service) submitTurn(ctx context.Context, playerID string, scores []int) (*SubmitTurnOutput, error) {
	if err := s.requirePlaying(); err != nil {
		return nil, err
	}

	if playerID == "" {
		current := s.state.CurrentPlayer()
		if current == nil {
			return nil, ErrPlayerNotFound
		}
		playerID = current.ID
	}
	idx, err := s.requirePlayer(playerID)
	if err != nil {
		return nil, err
	}
	if s.state.Players[idx].TurnInProgress() {
		return nil, ErrTurnInProgress
	}

	for _, v := range scores {
		s.dispatch(ctx, actionAddScore, engine.AddScoreEntry{PlayerID: playerID, Value: v})
	}
	turn, err := s.completeTurn(ctx, playerID)
	if err != nil {
		return nil, err
	}

	out := &SubmitTurnOutput{
		Player:    s.state.Players[idx].Clone(),
		Turn:      turn,
		GameEnded: s.state.GameEnded,
	}
	if !s.state.GameEnded {
		s.dispatch(ctx, actionNextTurn, engine.AdvanceTurn{})
	}
	out.State = s.state.Clone()
	return out, nil
}

// RestartGame zeroes every score and keeps the roster
func (s *service) RestartGame(ctx context.Context, input *RestartGameInput) (*RestartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.GameStarted {
		return nil, ErrGameNotStarted
	}

	s.dispatch(ctx, actionRestartGame, engine.RestartGame{})
	s.logger.InfoContext(ctx, "Game restarted")

	return &RestartGameOutput{State: s.state.Clone()}, nil
}

// ResetGame returns to setup and purges every saved copy. A failed purge is
// surfaced by the persistence service as a notice.
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.engine.Reduce(s.state, engine.ResetGame{})
	s.metrics.RecordAction(actionResetGame)
	s.metrics.SetHistorySize(0)

	if err := s.persistence.Purge(ctx); err != nil {
		s.logger.WarnContext(ctx, "Saved game was not fully removed", slog.Any("error", err))
	}
	s.logger.InfoContext(ctx, "Game reset")

	return &ResetGameOutput{State: s.state.Clone()}, nil
}

// UpdateTargetScore changes the target mid-game
func (s *service) UpdateTargetScore(ctx context.Context, input *UpdateTargetScoreInput) (*UpdateTargetScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.TargetScore <= 0 {
		return nil, ErrInvalidTargetScore
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.GameStarted {
		return nil, ErrGameNotStarted
	}

	s.dispatch(ctx, actionUpdateTarget, engine.UpdateTargetScore{TargetScore: input.TargetScore})

	return &UpdateTargetScoreOutput{State: s.state.Clone()}, nil
}

// EditTurnScore corrects a completed turn and replays the player's score
func (s *service) EditTurnScore(ctx context.Context, input *EditTurnScoreInput) (*EditTurnScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if len(input.Scores) != models.TurnSize {
		return nil, ErrInvalidScores
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.GameStarted {
		return nil, ErrGameNotStarted
	}
	idx, err := s.requirePlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}
	if input.TurnIndex < 0 || input.TurnIndex >= len(s.state.Players[idx].Turns) {
		return nil, ErrTurnNotFound
	}

	s.dispatch(ctx, actionEditTurnScore, engine.EditTurnScore{
		PlayerID:  input.PlayerID,
		TurnIndex: input.TurnIndex,
		Scores:    input.Scores,
	})

	return &EditTurnScoreOutput{State: s.state.Clone()}, nil
}

// AddTeam creates an empty team; players join it through AssignTeam
func (s *service) AddTeam(ctx context.Context, input *AddTeamInput) (*AddTeamOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.GameStarted {
		return nil, ErrGameNotStarted
	}
	if !s.state.GameMode.IsTeam() {
		return nil, ErrNotTeamGame
	}

	s.dispatch(ctx, actionAddTeam, engine.AddTeam{
		Name:  strings.TrimSpace(input.Name),
		Color: strings.TrimSpace(input.Color),
	})

	return &AddTeamOutput{
		State: s.state.Clone(),
		Team:  s.state.Teams[len(s.state.Teams)-1],
	}, nil
}

// AssignTeam moves a player between teams
func (s *service) AssignTeam(ctx context.Context, input *AssignTeamInput) (*AssignTeamOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.GameStarted {
		return nil, ErrGameNotStarted
	}
	if !s.state.GameMode.IsTeam() {
		return nil, ErrNotTeamGame
	}
	if _, err := s.requirePlayer(input.PlayerID); err != nil {
		return nil, err
	}
	if input.TeamID != "" && s.state.TeamIndex(input.TeamID) < 0 {
		return nil, ErrTeamNotFound
	}

	s.dispatch(ctx, actionAssignTeam, engine.AssignTeam{PlayerID: input.PlayerID, TeamID: input.TeamID})

	return &AssignTeamOutput{State: s.state.Clone()}, nil
}

// TravelToHistory previews an earlier state. History itself is kept, so
// any entry can still be reached afterwards.
func (s *service) TravelToHistory(ctx context.Context, input *TravelToHistoryInput) (*TravelToHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := history.Find(s.state.History, input.EntryID)
	if !ok {
		return nil, ErrHistoryEntryNotFound
	}
	if !entry.HasSnapshot() {
		return nil, ErrHistorySnapshotUnavailable
	}

	s.dispatch(ctx, actionTravel, engine.TravelToHistory{EntryID: input.EntryID})

	return &TravelToHistoryOutput{State: s.state.Clone(), Entry: entry.Clone()}, nil
}

// ClearHistory empties the history
func (s *service) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(ctx, actionClearHistory, engine.ClearHistory{})

	return &ClearHistoryOutput{State: s.state.Clone()}, nil
}

// LoadGame replaces the current game with a game document of any known version
func (s *service) LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	state, err := schema.Decode(input.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGameFile, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(ctx, actionLoadGame, engine.LoadGame{State: *state})

	return &LoadGameOutput{State: s.state.Clone()}, nil
}

// GetState returns a copy of the current game
func (s *service) GetState(_ context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetStateOutput{State: s.state.Clone()}, nil
}

// GetLeaderboard ranks the current game
func (s *service) GetLeaderboard(_ context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetLeaderboardOutput{Leaderboard: BuildLeaderboard(s.state)}, nil
}

// ExportData writes a dated copy of the game
func (s *service) ExportData(ctx context.Context, input *ExportDataInput) (*ExportDataOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	state := s.snapshot()
	out, err := s.persistence.Export(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to export game: %w", err)
	}
	return &ExportDataOutput{FileName: out.FileName}, nil
}

// ImportFromFile loads a game from a file the user picks
func (s *service) ImportFromFile(ctx context.Context, input *ImportFromFileInput) (*ImportFromFileOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	state, err := s.persistence.Import(ctx)
	switch {
	case errors.Is(err, filehandle.ErrDeclined):
		return nil, ErrImportDeclined
	case errors.Is(err, filehandle.ErrUnsupported):
		return nil, ErrFilePickerUnsupported
	case errors.Is(err, persistence.ErrInvalidImport):
		return nil, fmt.Errorf("%w: %w", ErrInvalidGameFile, err)
	case err != nil:
		return nil, fmt.Errorf("failed to import game: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(ctx, actionLoadGame, engine.LoadGame{State: *state})
	s.logger.InfoContext(ctx, "Imported game", slog.Int("players", len(s.state.Players)))

	return &ImportFromFileOutput{State: s.state.Clone()}, nil
}

// SetupAutoSave picks a file for auto-saving and writes the game to it
func (s *service) SetupAutoSave(ctx context.Context, input *SetupAutoSaveInput) (*SetupAutoSaveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out, err := s.persistence.SetupAutoSave(ctx, s.snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to set up auto-save: %w", err)
	}
	return &SetupAutoSaveOutput{Enabled: out.Enabled, FileName: out.FileName}, nil
}

// StorageStatus reports the storage tiers in use and pending notices
func (s *service) StorageStatus(_ context.Context, input *StorageStatusInput) (*StorageStatusOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return &StorageStatusOutput{
		Status:  s.persistence.Status(),
		Notices: s.persistence.Notices(),
	}, nil
}

// snapshot copies the state under the lock for calls that may block on the user
func (s *service) snapshot() models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func winnerName(state models.GameState) string {
	switch {
	case state.WinningTeam != nil:
		return state.WinningTeam.Name
	case state.Winner != nil:
		return state.Winner.Name
	}
	return ""
}
