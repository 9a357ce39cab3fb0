package messaging

import "math/rand"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Rand picks between message variants; a time-seeded source is used when nil
	Rand *rand.Rand
}

// GetTurnResultMessageInput contains parameters for a turn result message
type GetTurnResultMessageInput struct {
	PlayerName string

	// Total is the sum of the turn's entries
	Total int

	// Score is the player's score after the turn
	Score int

	// Remaining is the distance to the target after the turn
	Remaining int

	IsExcessTurn bool
	ExcessScore  int

	// Skipped marks a turn of three zeros entered as a skip
	Skipped bool

	// Won marks the turn that ended the game
	Won bool

	// WinnerName is the winning player or team
	WinnerName string
}

// GetTurnResultMessageOutput contains the generated message
type GetTurnResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetGameStatusMessageInput contains parameters for a game status message
type GetGameStatusMessageInput struct {
	Started bool
	Ended   bool

	// CurrentPlayerName is the player up next
	CurrentPlayerName string

	// CurrentRemaining is how far the current player is from the target
	CurrentRemaining int

	WinnerName string
}

// GetGameStatusMessageOutput contains the generated message
type GetGameStatusMessageOutput struct {
	Message string
}

// GetLeaderboardMessageInput contains parameters for a leaderboard comment
type GetLeaderboardMessageInput struct {
	Name string

	// Rank is 1-based
	Rank int

	TotalEntries int
	Remaining    int
	IsWinner     bool
}

// GetLeaderboardMessageOutput contains the generated message
type GetLeaderboardMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains the error to describe
type GetErrorMessageInput struct {
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the generated message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
