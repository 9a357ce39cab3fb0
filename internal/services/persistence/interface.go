package persistence

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/scoretracker/internal/services/persistence Service

import (
	"context"

	"github.com/KirkDiggler/scoretracker/internal/models"
)

// Service keeps the current game durable across the storage tiers. Storage
// trouble is reported through notices and never fails gameplay.
type Service interface {
	// Load restores the last game from the chunked tier at startup
	Load(ctx context.Context) (*LoadOutput, error)

	// Notify queues the latest state for saving without blocking
	Notify(state models.GameState)

	// Run saves queued states until ctx is done
	Run(ctx context.Context) error

	// Flush waits until every state queued before the call is written
	Flush(ctx context.Context) error

	// SetupAutoSave picks a file to auto-save into and writes state to it
	SetupAutoSave(ctx context.Context, state models.GameState) (*SetupAutoSaveOutput, error)

	// Purge removes the saved game from every tier
	Purge(ctx context.Context) error

	// Export writes a dated full copy of state for the user
	Export(ctx context.Context, state models.GameState) (*ExportOutput, error)

	// Import reads a game file chosen by the user
	Import(ctx context.Context) (*models.GameState, error)

	// Notices returns the current notices, oldest first
	Notices() []Notice

	// DismissNotices clears the current notices
	DismissNotices()

	// Status describes the active storage tiers
	Status() Status
}
