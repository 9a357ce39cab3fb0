package cli

import (
	"fmt"
	"strconv"
	"strings"

	urfavecli "github.com/urfave/cli/v2"

	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/KirkDiggler/scoretracker/internal/services/game"
)

func (a *App) commands() []*urfavecli.Command {
	playerFlag := &urfavecli.StringFlag{
		Name:    "player",
		Aliases: []string{"p"},
		Usage:   "player name or ID (defaults to the player up)",
	}

	return []*urfavecli.Command{
		{
			Name:      "start",
			Usage:     "start a new game",
			ArgsUsage: "NAME NAME [NAME...]",
			Flags: []urfavecli.Flag{
				&urfavecli.IntFlag{Name: "target", Aliases: []string{"t"}, Usage: "score to hit exactly", Required: true},
				&urfavecli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: string(models.GameModeIndividual), Usage: "individual or team"},
				&urfavecli.StringSliceFlag{Name: "team", Usage: "team as NAME=PLAYER,PLAYER (repeat per team)"},
			},
			Action: a.with(a.start),
		},
		{
			Name:      "score",
			Usage:     "enter scores; three scores complete the turn",
			ArgsUsage: "SCORE [SCORE [SCORE]]",
			Flags:     []urfavecli.Flag{playerFlag},
			Action:    a.with(a.score),
		},
		{
			Name:   "skip",
			Usage:  "score a turn of zeros",
			Flags:  []urfavecli.Flag{playerFlag},
			Action: a.with(a.skip),
		},
		{
			Name:   "next",
			Usage:  "move play to the next player",
			Action: a.with(a.next),
		},
		{
			Name:   "restart",
			Usage:  "zero all scores and keep the players",
			Action: a.with(a.restart),
		},
		{
			Name:   "reset",
			Usage:  "discard the game and its saved copies",
			Action: a.with(a.reset),
		},
		{
			Name:      "target",
			Usage:     "change the target score",
			ArgsUsage: "SCORE",
			Action:    a.with(a.target),
		},
		{
			Name:      "edit",
			Usage:     "correct a completed turn",
			ArgsUsage: "PLAYER TURN SCORE SCORE SCORE",
			Action:    a.with(a.edit),
		},
		{
			Name:      "add-team",
			Usage:     "create an empty team in a team game",
			ArgsUsage: "[NAME]",
			Flags: []urfavecli.Flag{
				&urfavecli.StringFlag{Name: "color", Usage: "team color (defaults to the next palette color)"},
			},
			Action: a.with(a.addTeam),
		},
		{
			Name:      "team",
			Usage:     "move a player to a team (or \"none\")",
			ArgsUsage: "PLAYER TEAM",
			Action:    a.with(a.team),
		},
		{
			Name:   "history",
			Usage:  "list recorded moments",
			Action: a.with(a.history),
		},
		{
			Name:      "travel",
			Usage:     "go back to a recorded moment",
			ArgsUsage: "ENTRY",
			Action:    a.with(a.travel),
		},
		{
			Name:   "clear-history",
			Usage:  "forget all recorded moments",
			Action: a.with(a.clearHistory),
		},
		{
			Name:   "export",
			Usage:  "write a dated copy of the game",
			Action: a.with(a.export),
		},
		{
			Name:  "import",
			Usage: "load a game from a file",
			Flags: []urfavecli.Flag{
				&urfavecli.StringFlag{Name: "from", Usage: "file to import (asks when empty)"},
			},
			Action: a.with(a.importGame),
		},
		{
			Name:   "autosave",
			Usage:  "choose a file to auto-save into",
			Action: a.with(a.autoSave),
		},
		{
			Name:   "show",
			Usage:  "show the scoreboard",
			Action: a.with(a.show),
		},
		{
			Name:   "play",
			Usage:  "run an interactive session",
			Action: a.with(a.play),
		},
	}
}

func (a *App) start(c *urfavecli.Context) error {
	names := c.Args().Slice()
	input := &game.StartGameInput{
		Names:       names,
		TargetScore: c.Int("target"),
		Mode:        models.GameMode(c.String("mode")),
	}

	if input.Mode.IsTeam() {
		teams, err := parseTeams(c.StringSlice("team"), names)
		if err != nil {
			return err
		}
		input.Teams = teams
	}

	out, err := a.svc.Game.StartGame(c.Context, input)
	if err != nil {
		return err
	}
	renderState(a.out, out.State)
	return a.status(c, out.State)
}

// parseTeams reads NAME=PLAYER,PLAYER specs into member indexes of names
func parseTeams(specs []string, names []string) ([]game.TeamInput, error) {
	var teams []game.TeamInput
	for _, spec := range specs {
		name, members, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q should look like NAME=PLAYER,PLAYER", game.ErrInvalidTeam, spec)
		}

		team := game.TeamInput{Name: strings.TrimSpace(name)}
		for _, member := range strings.Split(members, ",") {
			member = strings.TrimSpace(member)
			if member == "" {
				continue
			}
			idx := indexOfName(names, member)
			if idx < 0 {
				return nil, fmt.Errorf("%w: %s is not playing", game.ErrInvalidTeam, member)
			}
			team.Members = append(team.Members, idx)
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func indexOfName(names []string, name string) int {
	for i, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), name) {
			return i
		}
	}
	return -1
}

func (a *App) score(c *urfavecli.Context) error {
	scores, err := parseInts(c.Args().Slice())
	if err != nil {
		return err
	}
	if len(scores) == 0 || len(scores) > models.TurnSize {
		return game.ErrInvalidScores
	}

	state, err := a.playing(c)
	if err != nil {
		return err
	}
	playerID, err := resolvePlayer(state, c.String("player"))
	if err != nil {
		return err
	}

	entered := len(state.Players[state.PlayerIndex(playerID)].CurrentTurnScores)
	if entered+len(scores) > models.TurnSize {
		return game.ErrTurnFull
	}

	if entered == 0 && len(scores) == models.TurnSize {
		out, err := a.svc.Game.SubmitTurn(c.Context, &game.SubmitTurnInput{PlayerID: playerID, Scores: scores})
		if err != nil {
			return err
		}
		return a.turnResult(c, out, false)
	}

	var added *game.AddScoreOutput
	for _, v := range scores {
		added, err = a.svc.Game.AddScore(c.Context, &game.AddScoreInput{PlayerID: playerID, Value: v})
		if err != nil {
			return err
		}
	}

	if !added.TurnReady {
		p := added.State.Players[added.State.PlayerIndex(playerID)]
		fmt.Fprintf(a.out, "%s: %d of %d scores entered %v\n", p.Name, len(p.CurrentTurnScores), models.TurnSize, p.CurrentTurnScores)
		return nil
	}

	completed, err := a.svc.Game.CompleteTurn(c.Context, &game.CompleteTurnInput{PlayerID: playerID})
	if err != nil {
		return err
	}
	out := &game.SubmitTurnOutput{
		State:     completed.State,
		Player:    completed.State.Players[completed.State.PlayerIndex(playerID)],
		Turn:      completed.Turn,
		GameEnded: completed.GameEnded,
	}
	if !completed.GameEnded {
		next, err := a.svc.Game.NextTurn(c.Context, &game.NextTurnInput{})
		if err != nil {
			return err
		}
		out.State = next.State
	}
	return a.turnResult(c, out, false)
}

func (a *App) skip(c *urfavecli.Context) error {
	state, err := a.playing(c)
	if err != nil {
		return err
	}
	playerID, err := resolvePlayer(state, c.String("player"))
	if err != nil {
		return err
	}

	out, err := a.svc.Game.SkipTurn(c.Context, &game.SkipTurnInput{PlayerID: playerID})
	if err != nil {
		return err
	}
	return a.turnResult(c, out, true)
}

func (a *App) next(c *urfavecli.Context) error {
	out, err := a.svc.Game.NextTurn(c.Context, &game.NextTurnInput{})
	if err != nil {
		return err
	}
	return a.status(c, out.State)
}

func (a *App) restart(c *urfavecli.Context) error {
	out, err := a.svc.Game.RestartGame(c.Context, &game.RestartGameInput{})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Scores cleared. Same players, same target.")
	renderState(a.out, out.State)
	return nil
}

func (a *App) reset(c *urfavecli.Context) error {
	if _, err := a.svc.Game.ResetGame(c.Context, &game.ResetGameInput{}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Game discarded.")
	return nil
}

func (a *App) target(c *urfavecli.Context) error {
	target, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return game.ErrInvalidTargetScore
	}

	out, err := a.svc.Game.UpdateTargetScore(c.Context, &game.UpdateTargetScoreInput{TargetScore: target})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Target is now %d.\n", out.State.TargetScore)
	return a.status(c, out.State)
}

func (a *App) edit(c *urfavecli.Context) error {
	args := c.Args().Slice()
	if len(args) != 2+models.TurnSize {
		return game.ErrInvalidScores
	}

	state, err := a.state(c)
	if err != nil {
		return err
	}
	playerID, err := resolvePlayer(state, args[0])
	if err != nil {
		return err
	}
	turn, err := strconv.Atoi(args[1])
	if err != nil {
		return game.ErrTurnNotFound
	}
	scores, err := parseInts(args[2:])
	if err != nil {
		return err
	}

	out, err := a.svc.Game.EditTurnScore(c.Context, &game.EditTurnScoreInput{
		PlayerID:  playerID,
		TurnIndex: turn - 1,
		Scores:    scores,
	})
	if err != nil {
		return err
	}
	renderState(a.out, out.State)
	return nil
}

func (a *App) addTeam(c *urfavecli.Context) error {
	out, err := a.svc.Game.AddTeam(c.Context, &game.AddTeamInput{
		Name:  strings.Join(c.Args().Slice(), " "),
		Color: c.String("color"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s.\n", out.Team.Name)
	renderState(a.out, out.State)
	return nil
}

func (a *App) team(c *urfavecli.Context) error {
	state, err := a.state(c)
	if err != nil {
		return err
	}
	playerID, err := resolvePlayer(state, c.Args().Get(0))
	if err != nil {
		return err
	}
	teamID, err := resolveTeam(state, c.Args().Get(1))
	if err != nil {
		return err
	}

	out, err := a.svc.Game.AssignTeam(c.Context, &game.AssignTeamInput{PlayerID: playerID, TeamID: teamID})
	if err != nil {
		return err
	}
	renderState(a.out, out.State)
	return nil
}

func (a *App) history(c *urfavecli.Context) error {
	state, err := a.state(c)
	if err != nil {
		return err
	}
	renderHistory(a.out, state.History)
	return nil
}

func (a *App) travel(c *urfavecli.Context) error {
	state, err := a.state(c)
	if err != nil {
		return err
	}
	entryID, err := resolveEntry(state.History, c.Args().First())
	if err != nil {
		return err
	}

	out, err := a.svc.Game.TravelToHistory(c.Context, &game.TravelToHistoryInput{EntryID: entryID})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Back to: %s\n", out.Entry.Description)
	renderState(a.out, out.State)
	return nil
}

func (a *App) clearHistory(c *urfavecli.Context) error {
	if _, err := a.svc.Game.ClearHistory(c.Context, &game.ClearHistoryInput{}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "History cleared.")
	return nil
}

func (a *App) export(c *urfavecli.Context) error {
	out, err := a.svc.Game.ExportData(c.Context, &game.ExportDataInput{})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported to %s\n", out.FileName)
	return nil
}

func (a *App) importGame(c *urfavecli.Context) error {
	out, err := a.svc.Game.ImportFromFile(c.Context, &game.ImportFromFileInput{})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Game imported.")
	renderState(a.out, out.State)
	return nil
}

func (a *App) autoSave(c *urfavecli.Context) error {
	out, err := a.svc.Game.SetupAutoSave(c.Context, &game.SetupAutoSaveInput{})
	if err != nil {
		return err
	}
	if out.Enabled {
		fmt.Fprintf(a.out, "Auto-saving to %s\n", out.FileName)
	}
	return a.notices(c)
}

func (a *App) show(c *urfavecli.Context) error {
	state, err := a.state(c)
	if err != nil {
		return err
	}
	renderState(a.out, state)

	if state.GameStarted {
		board, err := a.svc.Game.GetLeaderboard(c.Context, &game.GetLeaderboardInput{})
		if err != nil {
			return err
		}
		if err := a.leaderboard(c, board.Leaderboard); err != nil {
			return err
		}
	}

	if err := a.status(c, state); err != nil {
		return err
	}
	return a.notices(c)
}

func (a *App) state(c *urfavecli.Context) (models.GameState, error) {
	out, err := a.svc.Game.GetState(c.Context, &game.GetStateInput{})
	if err != nil {
		return models.GameState{}, err
	}
	return out.State, nil
}

// playing returns the state of a running game
func (a *App) playing(c *urfavecli.Context) (models.GameState, error) {
	state, err := a.state(c)
	if err != nil {
		return models.GameState{}, err
	}
	if !state.GameStarted {
		return models.GameState{}, game.ErrGameNotStarted
	}
	if state.GameEnded {
		return models.GameState{}, game.ErrGameEnded
	}
	return state, nil
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", game.ErrInvalidScores, arg)
		}
		values = append(values, v)
	}
	return values, nil
}

// resolvePlayer finds a player by ID or case-insensitive name. An empty
// reference means the player whose turn it is.
func resolvePlayer(state models.GameState, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		if p := state.CurrentPlayer(); p != nil {
			return p.ID, nil
		}
		return "", game.ErrPlayerNotFound
	}

	for _, p := range state.Players {
		if p.ID == ref || strings.EqualFold(p.Name, ref) {
			return p.ID, nil
		}
	}
	return "", game.ErrPlayerNotFound
}

// resolveTeam finds a team by ID or name; "none" leaves every team
func resolveTeam(state models.GameState, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if strings.EqualFold(ref, "none") {
		return "", nil
	}

	for _, t := range state.Teams {
		if t.ID == ref || strings.EqualFold(t.Name, ref) {
			return t.ID, nil
		}
	}
	return "", game.ErrTeamNotFound
}

// resolveEntry accepts a history entry ID or its 1-based position in the list
func resolveEntry(entries []models.HistoryEntry, ref string) (string, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(entries) {
			return "", game.ErrHistoryEntryNotFound
		}
		return entries[n-1].ID, nil
	}
	return ref, nil
}
