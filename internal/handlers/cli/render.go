package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	urfavecli "github.com/urfave/cli/v2"

	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/KirkDiggler/scoretracker/internal/services/game"
	"github.com/KirkDiggler/scoretracker/internal/services/messaging"
	"github.com/KirkDiggler/scoretracker/internal/services/persistence"
)

const msgSetupTip = "Tip: pass --file or run autosave to keep this game saved in a file."

// renderState prints the scoreboard in roster order
func renderState(w io.Writer, state models.GameState) {
	if !state.GameStarted {
		fmt.Fprintln(w, "No game in progress.")
		return
	}

	fmt.Fprintf(w, "Target %d, %s game\n", state.TargetScore, state.GameMode)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tPLAYER\tSCORE\tTO GO\tTURNS\tLAST\t")
	for i, p := range state.Players {
		marker := ""
		if i == state.CurrentPlayerIndex && !state.GameEnded {
			marker = ">"
		}
		name := p.Name
		if state.GameMode.IsTeam() {
			name = fmt.Sprintf("%s (%s)", p.Name, teamName(state, p.TeamID))
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t\n", marker, name, p.Score, state.TargetScore-p.Score, len(p.Turns), lastTurn(p))
	}
	tw.Flush()

	if state.GameMode.IsTeam() {
		for _, t := range state.Teams {
			fmt.Fprintf(w, "  %s: %d\n", t.Name, t.Score)
		}
	}
}

func teamName(state models.GameState, teamID string) string {
	if idx := state.TeamIndex(teamID); idx >= 0 {
		return state.Teams[idx].Name
	}
	return "no team"
}

// lastTurn describes a player's latest turn or the entries typed so far
func lastTurn(p models.Player) string {
	if p.TurnInProgress() {
		return fmt.Sprintf("entering %v", p.CurrentTurnScores)
	}
	if len(p.Turns) == 0 {
		return "-"
	}

	t := p.Turns[len(p.Turns)-1]
	desc := fmt.Sprintf("%d", t.Total)
	if len(t.Scores) == models.TurnSize {
		desc = fmt.Sprintf("%v = %d", t.Scores, t.Total)
	}
	if t.IsExcessTurn {
		desc += fmt.Sprintf(" (over by %d)", t.ExcessScore)
	}
	return desc
}

// renderHistory lists entries oldest first with their 1-based positions
func renderHistory(w io.Writer, entries []models.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No history yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTIME\tWHAT\t")
	for i, e := range entries {
		desc := e.Description
		if !e.HasSnapshot() {
			desc += " (summary only)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", i+1, time.UnixMilli(e.Timestamp).Format(time.Kitchen), desc)
	}
	tw.Flush()
}

func (a *App) turnResult(c *urfavecli.Context, out *game.SubmitTurnOutput, skipped bool) error {
	msg, err := a.messages.GetTurnResultMessage(c.Context, &messaging.GetTurnResultMessageInput{
		PlayerName:   out.Player.Name,
		Total:        out.Turn.Total,
		Score:        out.Player.Score,
		Remaining:    out.State.TargetScore - out.Player.Score,
		IsExcessTurn: out.Turn.IsExcessTurn,
		ExcessScore:  out.Turn.ExcessScore,
		Skipped:      skipped,
		Won:          out.GameEnded,
		WinnerName:   winnerName(out.State),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %s\n", msg.Title, msg.Message)
	if out.GameEnded {
		renderState(a.out, out.State)
		return nil
	}
	return a.status(c, out.State)
}

func (a *App) status(c *urfavecli.Context, state models.GameState) error {
	input := &messaging.GetGameStatusMessageInput{
		Started:    state.GameStarted,
		Ended:      state.GameEnded,
		WinnerName: winnerName(state),
	}
	if p := state.CurrentPlayer(); p != nil {
		input.CurrentPlayerName = p.Name
		input.CurrentRemaining = state.TargetScore - p.Score
	}

	msg, err := a.messages.GetGameStatusMessage(c.Context, input)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg.Message)
	return nil
}

func (a *App) leaderboard(c *urfavecli.Context, board models.Leaderboard) error {
	fmt.Fprintln(a.out, "Standings:")
	for _, e := range board.Entries {
		msg, err := a.messages.GetLeaderboardMessage(c.Context, &messaging.GetLeaderboardMessageInput{
			Name:         e.Name,
			Rank:         e.Rank,
			TotalEntries: len(board.Entries),
			Remaining:    e.Remaining,
			IsWinner:     e.IsWinner,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "  %d. %-12s %4d  %s\n", e.Rank, e.Name, e.Score, msg.Message)
	}
	return nil
}

// notices prints and dismisses pending storage notices
func (a *App) notices(c *urfavecli.Context) error {
	out, err := a.svc.Game.StorageStatus(c.Context, &game.StorageStatusInput{})
	if err != nil {
		return err
	}

	if out.Status.AutoSave {
		fmt.Fprintf(a.out, "Auto-saving to %s.\n", out.Status.FileName)
	}
	a.printNotices(out.Notices)
	return nil
}

// printNotices shows storage notices once and dismisses them
func (a *App) printNotices(notices []persistence.Notice) {
	if len(notices) == 0 {
		return
	}
	for _, n := range notices {
		if n.Kind == persistence.NoticeSetupAutoSave {
			if !a.svc.Persistence.Status().AutoSave {
				fmt.Fprintln(a.out, msgSetupTip)
			}
			continue
		}
		fmt.Fprintf(a.out, "[%s] %s\n", strings.ToUpper(string(n.Level)), n.Message)
	}
	a.svc.Persistence.DismissNotices()
}

func winnerName(state models.GameState) string {
	switch {
	case state.WinningTeam != nil:
		return state.WinningTeam.Name
	case state.Winner != nil:
		return state.Winner.Name
	}
	return ""
}
