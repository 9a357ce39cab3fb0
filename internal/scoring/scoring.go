// Package scoring holds the pure scoring rules: turn totals, the overshoot
// rule, team aggregation and exact-match winner detection.
package scoring

import (
	"fmt"

	"github.com/KirkDiggler/scoretracker/internal/models"
)

// TurnTotal sums the entries of a turn
func TurnTotal(scores []int) int {
	total := 0
	for _, s := range scores {
		total += s
	}
	return total
}

// Evaluate applies the overshoot rule to a turn total on top of a pre-turn score.
// It returns the post-turn score and the overshoot amount (0 when the turn counts).
func Evaluate(preScore, total, target int) (postScore int, excess int) {
	next := preScore + total
	if next > target {
		return preScore, next - target
	}
	return next, 0
}

// ApplyTurn finalizes a turn of exactly three entries for the player. A turn that
// would push the player past target is recorded but leaves the score unchanged.
// Passing anything other than three entries is a programming error and panics.
func ApplyTurn(player models.Player, scores []int, target int) (models.Player, models.Turn) {
	if len(scores) != models.TurnSize {
		panic(fmt.Sprintf("scoring: turn needs %d entries, got %d", models.TurnSize, len(scores)))
	}

	total := TurnTotal(scores)
	finalScore, excess := Evaluate(player.Score, total, target)

	turn := models.Turn{
		Scores:       append([]int{}, scores...),
		Total:        total,
		TurnNumber:   len(player.Turns) + 1,
		ExcessScore:  excess,
		IsExcessTurn: excess > 0,
	}

	updated := player.Clone()
	updated.Score = finalScore
	updated.Turns = append(updated.Turns, turn)
	updated.CurrentTurnScores = []int{}

	return updated, turn
}

// RecomputeFromTurns replays every turn in order under the overshoot rule and
// returns the resulting score. The running score never exceeds target.
func RecomputeFromTurns(turns []models.Turn, target int) int {
	score := 0
	for _, t := range turns {
		score, _ = Evaluate(score, t.Total, target)
	}
	return score
}

// ReplayTurns is RecomputeFromTurns that also re-derives each turn's total,
// excess flag and excess amount against the score accumulated before it.
// Turns without their three raw entries keep their stored total.
func ReplayTurns(turns []models.Turn, target int) ([]models.Turn, int) {
	out := make([]models.Turn, len(turns))
	score := 0
	for i, t := range turns {
		turn := t.Clone()
		if len(turn.Scores) == models.TurnSize {
			turn.Total = TurnTotal(turn.Scores)
		}
		var excess int
		score, excess = Evaluate(score, turn.Total, target)
		turn.ExcessScore = excess
		turn.IsExcessTurn = excess > 0
		turn.TurnNumber = i + 1
		out[i] = turn
	}
	return out, score
}

// TeamScores returns a copy of teams with every score set to the sum of its members
func TeamScores(players []models.Player, teams []models.Team) []models.Team {
	out := make([]models.Team, len(teams))
	for i, t := range teams {
		t.Score = 0
		for _, p := range players {
			if p.TeamID == t.ID {
				t.Score += p.Score
			}
		}
		out[i] = t
	}
	return out
}

// FindWinner returns a copy of the first player, in player order, whose score
// equals target exactly. Scores above target never win.
func FindWinner(players []models.Player, target int) *models.Player {
	for _, p := range players {
		if p.Score == target {
			w := p.Clone()
			return &w
		}
	}
	return nil
}

// FindWinningTeam returns a copy of the first team, in team order, whose score
// equals target exactly.
func FindWinningTeam(teams []models.Team, target int) *models.Team {
	for _, t := range teams {
		if t.Score == target {
			w := t
			return &w
		}
	}
	return nil
}
