package persistence

import "github.com/KirkDiggler/scoretracker/internal/models"

// NoticeLevel is the severity of a storage notice
type NoticeLevel string

const (
	NoticeLevelInfo    NoticeLevel = "info"
	NoticeLevelWarning NoticeLevel = "warning"
	NoticeLevelError   NoticeLevel = "error"
)

// NoticeKind identifies what a notice is about
type NoticeKind string

const (
	// NoticeSetupAutoSave asks the user to choose an auto-save file
	NoticeSetupAutoSave NoticeKind = "setup_auto_save"

	// NoticeAutoSaveEnabled confirms a file was chosen
	NoticeAutoSaveEnabled NoticeKind = "auto_save_enabled"

	// NoticeFileUnsupported says this host cannot pick files
	NoticeFileUnsupported NoticeKind = "file_unsupported"

	// NoticeFileUnavailable says the auto-save file can no longer be written
	NoticeFileUnavailable NoticeKind = "file_unavailable"

	// NoticeStorageCleared says other stored data was removed to make room
	NoticeStorageCleared NoticeKind = "storage_cleared"

	// NoticeSaveFailed says progress could not be saved
	NoticeSaveFailed NoticeKind = "save_failed"

	// NoticeLoadFailed says a saved game could not be read and was discarded
	NoticeLoadFailed NoticeKind = "load_failed"
)

// Notice is a user-facing storage message
type Notice struct {
	Level   NoticeLevel
	Kind    NoticeKind
	Message string
}

type LoadOutput struct {
	// State is the restored game, or the empty setup state
	State models.GameState

	// Found is false when nothing was stored
	Found bool

	// NeedsFileSetup is set when a game was restored from the fallback tier
	// and no auto-save file is held
	NeedsFileSetup bool
}

type SetupAutoSaveOutput struct {
	// Enabled is false when the user declined or the host cannot pick files
	Enabled bool

	FileName string
}

type ExportOutput struct {
	FileName string
}

// Status describes where saves go
type Status struct {
	// AutoSave is true while a file handle is held
	AutoSave bool

	// FileName of the held handle
	FileName string

	NeedsFileSetup bool

	// LastError is the most recent save failure, cleared by a good save
	LastError string
}
