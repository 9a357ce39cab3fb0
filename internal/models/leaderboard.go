package models

// LeaderboardEntry is one ranked row of the standings
type LeaderboardEntry struct {
	// Rank starts at 1; entries with equal scores share a rank
	Rank int

	// ID is a player ID in individual mode and a team ID in team mode
	ID   string
	Name string

	Score int

	// Remaining is the distance to the target score
	Remaining int

	// TurnsPlayed counts completed turns (summed over members for teams)
	TurnsPlayed int

	IsWinner bool
}

// Leaderboard represents the current standings in a game
type Leaderboard struct {
	Mode        GameMode
	TargetScore int
	Entries     []LeaderboardEntry
}
