package snapshot

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/scoretracker/internal/repositories/snapshot Repository

import (
	"context"

	"github.com/KirkDiggler/scoretracker/internal/models"
)

// Repository defines the chunked key/value tier for the current game
type Repository interface {
	// SaveGame writes a compact copy of the game, chunking it when large
	SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error)

	// LoadGame reassembles and expands the stored game
	LoadGame(ctx context.Context, input *LoadGameInput) (*models.GameState, error)

	// DeleteGame removes every key of the stored game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
