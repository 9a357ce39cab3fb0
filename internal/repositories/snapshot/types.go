package snapshot

import "github.com/KirkDiggler/scoretracker/internal/models"

// Recovery says how far quota recovery had to go before a save landed
type Recovery int

const (
	// RecoveryNone means the first attempt succeeded
	RecoveryNone Recovery = iota

	// RecoveryDeletedOwnKeys means the app's own keys were removed first
	RecoveryDeletedOwnKeys

	// RecoveryClearedOrigin means the whole storage origin was cleared first
	RecoveryClearedOrigin
)

func (r Recovery) String() string {
	switch r {
	case RecoveryDeletedOwnKeys:
		return "deleted_own_keys"
	case RecoveryClearedOrigin:
		return "cleared_origin"
	default:
		return "none"
	}
}

type SaveGameInput struct {
	State *models.GameState
}

type SaveGameOutput struct {
	// Bytes is the size of the compact document
	Bytes int

	// Chunks is zero for a single-key write
	Chunks int

	Recovery Recovery
}

type LoadGameInput struct {
}

type DeleteGameInput struct {
}

// meta describes a chunked write. It is written after the chunks, so a
// present meta key means every chunk it counts was written.
type meta struct {
	TotalChunks int   `json:"totalChunks"`
	Timestamp   int64 `json:"timestamp"`
	DataSize    int   `json:"dataSize"`
	Version     int   `json:"version"`
}
