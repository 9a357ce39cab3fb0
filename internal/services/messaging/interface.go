package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/scoretracker/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetTurnResultMessage returns a message for a completed turn
	GetTurnResultMessage(ctx context.Context, input *GetTurnResultMessageInput) (*GetTurnResultMessageOutput, error)

	// GetGameStatusMessage returns a message describing where the game stands
	GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error)

	// GetLeaderboardMessage returns a one-line comment on a leaderboard row
	GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
