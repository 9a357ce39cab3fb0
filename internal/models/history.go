package models

// ActionType tags what produced a history entry
type ActionType string

const (
	ActionStartGame    ActionType = "START_GAME"
	ActionCompleteTurn ActionType = "COMPLETE_TURN"
)

// HistoryEntry is an immutable record of the state after an action
type HistoryEntry struct {
	ID string `json:"id"`

	// Timestamp is milliseconds since the Unix epoch
	Timestamp int64 `json:"timestamp"`

	Action      ActionType `json:"action"`
	Description string     `json:"description"`
	TurnNumber  int        `json:"turnNumber"`

	// GameState is a snapshot; its own History is always empty
	GameState GameState `json:"gameState"`
}

// Clone returns a deep copy of the entry
func (h HistoryEntry) Clone() HistoryEntry {
	out := h
	out.GameState = h.GameState.Snapshot()
	return out
}

// HasSnapshot reports whether the entry carries a restorable state. Entries
// loaded from the compact storage form keep only their metadata.
func (h HistoryEntry) HasSnapshot() bool {
	return len(h.GameState.Players) > 0
}
