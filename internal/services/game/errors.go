package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilPersistence   GameError = "persistence service cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrNilInput         GameError = "input cannot be nil"

	ErrNotEnoughPlayers   GameError = "at least two named players are required"
	ErrInvalidTargetScore GameError = "target score must be positive"
	ErrInvalidGameMode    GameError = "unknown game mode"
	ErrInvalidTeam        GameError = "invalid team setup"
	ErrGameNotStarted     GameError = "game has not started"
	ErrGameEnded          GameError = "game has ended"
	ErrPlayerNotFound     GameError = "player not found"
	ErrTeamNotFound       GameError = "team not found"
	ErrNotTeamGame        GameError = "game is not in team mode"
	ErrTurnFull           GameError = "turn already has three scores"
	ErrTurnIncomplete     GameError = "turn needs three scores before it can be completed"
	ErrTurnInProgress     GameError = "player has a turn in progress"
	ErrInvalidScores      GameError = "a turn needs exactly three scores"
	ErrTurnNotFound       GameError = "turn not found"

	ErrHistoryEntryNotFound       GameError = "history entry not found"
	ErrHistorySnapshotUnavailable GameError = "history entry has no saved state"

	ErrInvalidGameFile       GameError = "file is not a valid game"
	ErrImportDeclined        GameError = "import cancelled"
	ErrFilePickerUnsupported GameError = "choosing files is not supported here"
)
