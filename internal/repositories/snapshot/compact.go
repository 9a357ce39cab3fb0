package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/KirkDiggler/scoretracker/internal/schema"
)

// compactHistoryLimit is how many history entries survive compaction
const compactHistoryLimit = 10

// compactDocument is the reduced form kept in the key/value tier. Turns lose
// their raw entries and excess amounts, history loses its snapshots, and the
// winner is reduced to a reference.
type compactDocument struct {
	SchemaVersion      int             `json:"schemaVersion"`
	Players            []compactPlayer `json:"players"`
	Teams              []models.Team   `json:"teams"`
	TargetScore        int             `json:"targetScore"`
	CurrentPlayerIndex int             `json:"currentPlayerIndex"`
	GameStarted        bool            `json:"gameStarted"`
	GameEnded          bool            `json:"gameEnded"`
	Winner             *ref            `json:"winner"`
	WinningTeam        *ref            `json:"winningTeam"`
	GameMode           models.GameMode `json:"gameMode"`
	History            []compactEntry  `json:"history"`
}

type compactPlayer struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Score             int           `json:"score"`
	Turns             []compactTurn `json:"turns"`
	CurrentTurnScores []int         `json:"currentTurnScores"`
	TeamID            string        `json:"teamId,omitempty"`
}

// compactTurn never writes Scores; it still reads them from older records
type compactTurn struct {
	Scores       []int `json:"scores,omitempty"`
	Total        int   `json:"total"`
	TurnNumber   int   `json:"turnNumber"`
	IsExcessTurn bool  `json:"isExcessTurn"`
}

type ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type compactEntry struct {
	ID          string            `json:"id"`
	Timestamp   int64             `json:"timestamp"`
	Action      models.ActionType `json:"action"`
	Description string            `json:"description"`
	TurnNumber  int               `json:"turnNumber"`
}

// compact projects a game state onto its storage form
func compact(state models.GameState) compactDocument {
	doc := compactDocument{
		SchemaVersion:      schema.VersionCurrent,
		Players:            make([]compactPlayer, len(state.Players)),
		Teams:              append([]models.Team{}, state.Teams...),
		TargetScore:        state.TargetScore,
		CurrentPlayerIndex: state.CurrentPlayerIndex,
		GameStarted:        state.GameStarted,
		GameEnded:          state.GameEnded,
		GameMode:           state.GameMode,
	}

	for i, p := range state.Players {
		cp := compactPlayer{
			ID:                p.ID,
			Name:              p.Name,
			Score:             p.Score,
			Turns:             make([]compactTurn, len(p.Turns)),
			CurrentTurnScores: append([]int{}, p.CurrentTurnScores...),
			TeamID:            p.TeamID,
		}
		for j, t := range p.Turns {
			cp.Turns[j] = compactTurn{
				Total:        t.Total,
				TurnNumber:   t.TurnNumber,
				IsExcessTurn: t.IsExcessTurn,
			}
		}
		doc.Players[i] = cp
	}

	if state.Winner != nil {
		doc.Winner = &ref{ID: state.Winner.ID, Name: state.Winner.Name}
	}
	if state.WinningTeam != nil {
		doc.WinningTeam = &ref{ID: state.WinningTeam.ID, Name: state.WinningTeam.Name}
	}

	entries := state.History
	if len(entries) > compactHistoryLimit {
		entries = entries[len(entries)-compactHistoryLimit:]
	}
	doc.History = make([]compactEntry, len(entries))
	for i, e := range entries {
		doc.History[i] = compactEntry{
			ID:          e.ID,
			Timestamp:   e.Timestamp,
			Action:      e.Action,
			Description: e.Description,
			TurnNumber:  e.TurnNumber,
		}
	}

	return doc
}

// decodeCompact parses a stored record. Records written before versioning
// carry no schemaVersion and are read as the legacy version.
func decodeCompact(data []byte) (compactDocument, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return compactDocument{}, schema.ErrCorruptDocument
	}

	var doc compactDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return compactDocument{}, fmt.Errorf("%w: %v", schema.ErrCorruptDocument, err)
	}
	if doc.Players == nil {
		return compactDocument{}, fmt.Errorf("%w: missing players", schema.ErrCorruptDocument)
	}
	if doc.SchemaVersion > schema.VersionCurrent {
		return compactDocument{}, fmt.Errorf("%w: %d", schema.ErrUnsupportedVersion, doc.SchemaVersion)
	}
	return doc, nil
}

// expand rebuilds a full game state from the storage form. Excess amounts
// are recomputed by walking each player's turn totals; raw turn entries and
// history snapshots cannot be recovered.
func expand(doc compactDocument) models.GameState {
	state := models.NewGameState()
	state.TargetScore = doc.TargetScore
	state.CurrentPlayerIndex = doc.CurrentPlayerIndex
	state.GameStarted = doc.GameStarted
	state.GameEnded = doc.GameEnded
	if doc.GameMode != "" {
		state.GameMode = doc.GameMode
	}
	if doc.Teams != nil {
		state.Teams = append([]models.Team{}, doc.Teams...)
	}

	state.Players = make([]models.Player, len(doc.Players))
	for i, cp := range doc.Players {
		p := models.Player{
			ID:                cp.ID,
			Name:              cp.Name,
			Score:             cp.Score,
			Turns:             make([]models.Turn, len(cp.Turns)),
			CurrentTurnScores: append([]int{}, cp.CurrentTurnScores...),
			TeamID:            cp.TeamID,
		}

		running := 0
		for j, ct := range cp.Turns {
			turn := models.Turn{
				Scores:       append([]int{}, ct.Scores...),
				Total:        ct.Total,
				TurnNumber:   ct.TurnNumber,
				IsExcessTurn: ct.IsExcessTurn,
			}
			if ct.IsExcessTurn {
				if over := running + ct.Total - doc.TargetScore; over > 0 {
					turn.ExcessScore = over
				}
			} else {
				running += ct.Total
			}
			p.Turns[j] = turn
		}
		state.Players[i] = p
	}

	if doc.Winner != nil {
		if idx := state.PlayerIndex(doc.Winner.ID); idx >= 0 {
			w := state.Players[idx].Clone()
			state.Winner = &w
		} else {
			state.Winner = &models.Player{
				ID:                doc.Winner.ID,
				Name:              doc.Winner.Name,
				Turns:             []models.Turn{},
				CurrentTurnScores: []int{},
			}
		}
	}

	if doc.WinningTeam != nil {
		if idx := state.TeamIndex(doc.WinningTeam.ID); idx >= 0 {
			t := state.Teams[idx]
			state.WinningTeam = &t
		} else {
			state.WinningTeam = &models.Team{ID: doc.WinningTeam.ID, Name: doc.WinningTeam.Name}
		}
	}

	for _, e := range doc.History {
		state.History = append(state.History, models.HistoryEntry{
			ID:          e.ID,
			Timestamp:   e.Timestamp,
			Action:      e.Action,
			Description: e.Description,
			TurnNumber:  e.TurnNumber,
		})
	}

	return state
}
