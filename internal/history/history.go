// Package history records snapshots of the game state after each recorded
// action and looks them up again for time travel.
package history

import (
	"github.com/KirkDiggler/scoretracker/internal/common/clock"
	"github.com/KirkDiggler/scoretracker/internal/common/uuid"
	"github.com/KirkDiggler/scoretracker/internal/models"
)

// DefaultLimit is the number of entries kept when no limit is configured
const DefaultLimit = 50

// Config holds configuration for the history manager
type Config struct {
	// Limit caps the number of entries; the oldest are evicted first.
	// Zero or less selects DefaultLimit.
	Limit int

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// Manager appends snapshots to a game state's history
type Manager struct {
	limit int
	clock clock.Clock
	ids   uuid.UUID
}

// New creates a history manager, filling in defaults for missing dependencies
func New(cfg *Config) *Manager {
	m := &Manager{
		limit: DefaultLimit,
		clock: &clock.DefaultClock{},
		ids:   uuid.New(),
	}
	if cfg == nil {
		return m
	}
	if cfg.Limit > 0 {
		m.limit = cfg.Limit
	}
	if cfg.Clock != nil {
		m.clock = cfg.Clock
	}
	if cfg.UUIDGenerator != nil {
		m.ids = cfg.UUIDGenerator
	}
	return m
}

// Limit returns the configured entry cap
func (m *Manager) Limit() int {
	return m.limit
}

// NewEntry builds an entry holding an independent snapshot of state
func (m *Manager) NewEntry(state models.GameState, action models.ActionType, description string, turnNumber int) models.HistoryEntry {
	return models.HistoryEntry{
		ID:          uuid.Prefixed(m.ids, "history"),
		Timestamp:   clock.UnixMilli(m.clock),
		Action:      action,
		Description: description,
		TurnNumber:  turnNumber,
		GameState:   state.Snapshot(),
	}
}

// Record returns state with a new entry for it appended to its history.
// The history slice is copied, so earlier states sharing it are unaffected.
func (m *Manager) Record(state models.GameState, action models.ActionType, description string, turnNumber int) models.GameState {
	entry := m.NewEntry(state, action, description, turnNumber)
	state.History = m.Append(state.History, entry)
	return state
}

// Append returns a new slice with entry added, trimmed to the limit
func (m *Manager) Append(entries []models.HistoryEntry, entry models.HistoryEntry) []models.HistoryEntry {
	out := make([]models.HistoryEntry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, entry)
	return Trim(out, m.limit)
}

// Trim keeps only the newest limit entries
func Trim(entries []models.HistoryEntry, limit int) []models.HistoryEntry {
	if limit <= 0 || len(entries) <= limit {
		return entries
	}
	return append([]models.HistoryEntry{}, entries[len(entries)-limit:]...)
}

// Find returns the entry with the given ID
func Find(entries []models.HistoryEntry, id string) (models.HistoryEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.HistoryEntry{}, false
}

// Restore returns the entry's snapshot as a live state carrying the given
// history. The returned state shares nothing with the entry.
func Restore(entry models.HistoryEntry, current []models.HistoryEntry) models.GameState {
	state := entry.GameState.Snapshot()
	state.History = current
	return state
}

// Clear returns state with an empty history
func Clear(state models.GameState) models.GameState {
	state.History = []models.HistoryEntry{}
	return state
}
