package game

import (
	"sort"

	"github.com/KirkDiggler/scoretracker/internal/models"
)

// BuildLeaderboard ranks players by score, or teams in a team game. Equal
// scores share a rank and keep their roster order.
func BuildLeaderboard(state models.GameState) models.Leaderboard {
	board := models.Leaderboard{
		Mode:        state.GameMode,
		TargetScore: state.TargetScore,
		Entries:     []models.LeaderboardEntry{},
	}

	if state.GameMode.IsTeam() {
		for i := range state.Teams {
			team := state.Teams[i]
			turns := 0
			for _, member := range team.Members(state.Players) {
				turns += len(member.Turns)
			}
			board.Entries = append(board.Entries, models.LeaderboardEntry{
				ID:          team.ID,
				Name:        team.Name,
				Score:       team.Score,
				Remaining:   state.TargetScore - team.Score,
				TurnsPlayed: turns,
				IsWinner:    state.WinningTeam != nil && state.WinningTeam.ID == team.ID,
			})
		}
	} else {
		for _, p := range state.Players {
			board.Entries = append(board.Entries, models.LeaderboardEntry{
				ID:          p.ID,
				Name:        p.Name,
				Score:       p.Score,
				Remaining:   state.TargetScore - p.Score,
				TurnsPlayed: len(p.Turns),
				IsWinner:    state.Winner != nil && state.Winner.ID == p.ID,
			})
		}
	}

	sort.SliceStable(board.Entries, func(i, j int) bool {
		return board.Entries[i].Score > board.Entries[j].Score
	})

	for i := range board.Entries {
		if i > 0 && board.Entries[i].Score == board.Entries[i-1].Score {
			board.Entries[i].Rank = board.Entries[i-1].Rank
			continue
		}
		board.Entries[i].Rank = i + 1
	}

	return board
}
