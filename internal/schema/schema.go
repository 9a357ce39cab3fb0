// Package schema converts persisted game documents to and from GameState.
// Every document passes through one explicit, versioned migration step on
// the way in, so the rest of the code only ever sees the current shape.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/scoretracker/internal/models"
)

const (
	// VersionLegacy is a document written before versioning; it may lack
	// teams, gameMode, winningTeam and the per-turn excess fields.
	VersionLegacy = 0

	// VersionCurrent is the canonical document shape
	VersionCurrent = 1
)

var (
	// ErrCorruptDocument is returned for input that is not a game document
	ErrCorruptDocument = errors.New("corrupt game document")

	// ErrUnsupportedVersion is returned for documents newer than this build understands
	ErrUnsupportedVersion = errors.New("unsupported game document version")
)

// document is the persisted envelope: the game state plus its schema version
type document struct {
	SchemaVersion int `json:"schemaVersion"`
	models.GameState
}

// Encode writes the full-fidelity document as indented JSON
func Encode(state models.GameState) ([]byte, error) {
	data, err := json.MarshalIndent(document{
		SchemaVersion: VersionCurrent,
		GameState:     normalize(state),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game document: %w", err)
	}
	return data, nil
}

// Decode parses a document of any known version and migrates it to the current shape
func Decode(data []byte) (*models.GameState, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, ErrCorruptDocument
	}

	var header struct {
		SchemaVersion *int             `json:"schemaVersion"`
		Players       *json.RawMessage `json:"players"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	if header.Players == nil {
		return nil, fmt.Errorf("%w: missing players", ErrCorruptDocument)
	}

	version := VersionLegacy
	if header.SchemaVersion != nil {
		version = *header.SchemaVersion
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	state, err := migrate(version, doc.GameState)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// migrate upgrades a decoded state one version at a time
func migrate(version int, state models.GameState) (models.GameState, error) {
	switch {
	case version > VersionCurrent:
		return models.GameState{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	case version < VersionLegacy:
		return models.GameState{}, fmt.Errorf("%w: negative version %d", ErrCorruptDocument, version)
	}

	if version == VersionLegacy {
		state = fromLegacy(state)
	}

	return normalize(state), nil
}

// fromLegacy fills the fields older documents did not carry. Missing turn
// excess fields decode as false/0 already; what remains is the mode and
// the team references.
func fromLegacy(state models.GameState) models.GameState {
	if state.GameMode == "" {
		state.GameMode = models.GameModeIndividual
	}
	if !state.GameMode.IsTeam() {
		state.WinningTeam = nil
	}
	return state
}

// normalize replaces nil collections with empty ones so every document
// round-trips with the same shape
func normalize(state models.GameState) models.GameState {
	if state.GameMode == "" {
		state.GameMode = models.GameModeIndividual
	}
	if state.Players == nil {
		state.Players = []models.Player{}
	}
	if state.Teams == nil {
		state.Teams = []models.Team{}
	}
	if state.History == nil {
		state.History = []models.HistoryEntry{}
	}

	players := make([]models.Player, len(state.Players))
	for i, p := range state.Players {
		players[i] = normalizePlayer(p)
	}
	state.Players = players

	entries := make([]models.HistoryEntry, len(state.History))
	for i, e := range state.History {
		snap := e.GameState
		snap.History = nil
		if snap.GameMode == "" {
			snap.GameMode = state.GameMode
		}
		if snap.Teams == nil {
			snap.Teams = []models.Team{}
		}
		if snap.Players == nil {
			snap.Players = []models.Player{}
		}
		snapPlayers := make([]models.Player, len(snap.Players))
		for j, p := range snap.Players {
			snapPlayers[j] = normalizePlayer(p)
		}
		snap.Players = snapPlayers
		e.GameState = snap
		entries[i] = e
	}
	state.History = entries

	return state
}

func normalizePlayer(p models.Player) models.Player {
	if p.Turns == nil {
		p.Turns = []models.Turn{}
	}
	if p.CurrentTurnScores == nil {
		p.CurrentTurnScores = []int{}
	}
	return p
}
