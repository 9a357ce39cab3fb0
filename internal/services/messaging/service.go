package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/KirkDiggler/scoretracker/internal/services/game"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	r := config.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// GetTurnResultMessage returns a message for a completed turn
func (s *service) GetTurnResultMessage(ctx context.Context, input *GetTurnResultMessageInput) (*GetTurnResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName

	switch {
	case input.Won:
		titles := []string{
			"Bullseye!",
			"Game Over!",
			"Right On The Number!",
			"We Have A Winner!",
		}
		winner := input.WinnerName
		if winner == "" {
			winner = name
		}
		messages := []string{
			fmt.Sprintf("%s hits the target exactly. %s wins!", name, winner),
			fmt.Sprintf("Nothing left on the board! %s takes it.", winner),
			fmt.Sprintf("%s scores %d and lands right on the number. Victory for %s!", name, input.Total, winner),
			fmt.Sprintf("Exactly enough. %s closes it out for %s.", name, winner),
		}
		return &GetTurnResultMessageOutput{Title: s.pick(titles), Message: s.pick(messages), Tone: ToneCelebration}, nil

	case input.IsExcessTurn:
		titles := []string{
			"Bust!",
			"Too Much!",
			"Over The Line!",
		}
		messages := []string{
			fmt.Sprintf("%s threw %d and went %d over. The turn doesn't count; still %d to go.", name, input.Total, input.ExcessScore, input.Remaining),
			fmt.Sprintf("Overshot by %d! %s stays on %d.", input.ExcessScore, name, input.Score),
			fmt.Sprintf("%s got greedy: %d over the target. Back to needing %d.", name, input.ExcessScore, input.Remaining),
			fmt.Sprintf("Whoa there, %s. That's %d too many, so nothing scores this turn.", name, input.ExcessScore),
		}
		return &GetTurnResultMessageOutput{Title: s.pick(titles), Message: s.pick(messages), Tone: ToneFunny}, nil

	case input.Skipped:
		messages := []string{
			fmt.Sprintf("%s sits this one out. Still %d to go.", name, input.Remaining),
			fmt.Sprintf("%s passes. The target isn't going anywhere: %d left.", name, input.Remaining),
			fmt.Sprintf("A quiet turn for %s.", name),
		}
		return &GetTurnResultMessageOutput{Title: "Skipped", Message: s.pick(messages), Tone: ToneNeutral}, nil

	case input.Total < 0:
		messages := []string{
			fmt.Sprintf("Ouch. %s loses %d and drops to %d.", name, -input.Total, input.Score),
			fmt.Sprintf("%s goes backwards by %d. Now %d away.", name, -input.Total, input.Remaining),
		}
		return &GetTurnResultMessageOutput{Title: "Penalty", Message: s.pick(messages), Tone: ToneFunny}, nil

	case input.Remaining <= 10:
		messages := []string{
			fmt.Sprintf("%s scores %d and needs just %d more. Careful now!", name, input.Total, input.Remaining),
			fmt.Sprintf("So close! %s is %d away from the win.", name, input.Remaining),
			fmt.Sprintf("%s is closing in: %d to go. Don't overshoot!", name, input.Remaining),
		}
		return &GetTurnResultMessageOutput{Title: "Closing In", Message: s.pick(messages), Tone: ToneEncouraging}, nil
	}

	messages := []string{
		fmt.Sprintf("%s scores %d and moves to %d. %d to go.", name, input.Total, input.Score, input.Remaining),
		fmt.Sprintf("%d for %s. The score is now %d.", input.Total, name, input.Score),
		fmt.Sprintf("Solid turn, %s: %d points, %d left.", name, input.Total, input.Remaining),
	}
	return &GetTurnResultMessageOutput{Title: "Turn Complete", Message: s.pick(messages), Tone: ToneNeutral}, nil
}

// GetGameStatusMessage returns a message describing where the game stands
func (s *service) GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch {
	case !input.Started:
		messages = []string{
			"No game yet. Add some players and pick a target to get going.",
			"The board is empty. Start a game when you're ready.",
		}
	case input.Ended:
		messages = []string{
			fmt.Sprintf("Game over. %s won. Restart for a rematch or reset for a new game.", input.WinnerName),
			fmt.Sprintf("%s took this one. Restart to play again with the same players.", input.WinnerName),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s is up, needing %d.", input.CurrentPlayerName, input.CurrentRemaining),
			fmt.Sprintf("Over to %s. %d to go.", input.CurrentPlayerName, input.CurrentRemaining),
			fmt.Sprintf("%s, you're up! %d left to hit the target.", input.CurrentPlayerName, input.CurrentRemaining),
		}
	}

	return &GetGameStatusMessageOutput{Message: s.pick(messages)}, nil
}

// GetLeaderboardMessage returns a one-line comment on a leaderboard row
func (s *service) GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch {
	case input.IsWinner:
		messages = []string{
			fmt.Sprintf("%s, champion of exact arithmetic.", input.Name),
			fmt.Sprintf("%s nailed it.", input.Name),
			fmt.Sprintf("All hail %s!", input.Name),
		}
	case input.Rank == 1:
		messages = []string{
			fmt.Sprintf("%s leads the pack with %d to go.", input.Name, input.Remaining),
			fmt.Sprintf("%s is out in front. %d left.", input.Name, input.Remaining),
		}
	case input.Rank == input.TotalEntries && input.TotalEntries > 2:
		messages = []string{
			fmt.Sprintf("%s brings up the rear. Plenty of game left!", input.Name),
			fmt.Sprintf("%s is saving the big turns for later. Surely.", input.Name),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s needs %d.", input.Name, input.Remaining),
			fmt.Sprintf("%s is in the hunt, %d away.", input.Name, input.Remaining),
		}
	}

	return &GetLeaderboardMessageOutput{Message: s.pick(messages)}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch {
	case errors.Is(input.Err, game.ErrGameNotStarted):
		messages = []string{
			"There's no game running. Start one first!",
			"Nothing to score yet. Start a game first.",
		}
	case errors.Is(input.Err, game.ErrGameEnded):
		messages = []string{
			"This game is already over! Restart for a rematch.",
			"The winner has been crowned. Restart or reset to keep playing.",
		}
	case errors.Is(input.Err, game.ErrNotEnoughPlayers):
		messages = []string{
			"You need at least two players. Scoring against yourself is no fun.",
			"Add another player. This game needs a rival.",
		}
	case errors.Is(input.Err, game.ErrInvalidTargetScore):
		messages = []string{
			"The target has to be a positive number.",
			"Pick a target above zero.",
		}
	case errors.Is(input.Err, game.ErrInvalidScores), errors.Is(input.Err, game.ErrTurnIncomplete):
		messages = []string{
			"A turn is exactly three scores.",
			"Three scores per turn, no more, no less.",
		}
	case errors.Is(input.Err, game.ErrTurnFull):
		messages = []string{
			"That turn already has three scores. Complete it first.",
		}
	case errors.Is(input.Err, game.ErrTurnInProgress):
		messages = []string{
			"That player is halfway through a turn. Finish entering it first.",
		}
	case errors.Is(input.Err, game.ErrPlayerNotFound), errors.Is(input.Err, game.ErrTeamNotFound):
		messages = []string{
			"Never heard of them. Check the name and try again.",
			"No one by that name is playing.",
		}
	case errors.Is(input.Err, game.ErrHistoryEntryNotFound):
		messages = []string{
			"That moment isn't in the history anymore.",
		}
	case errors.Is(input.Err, game.ErrHistorySnapshotUnavailable):
		messages = []string{
			"That history entry was saved without its scores, so there's nothing to go back to.",
		}
	case errors.Is(input.Err, game.ErrInvalidGameFile):
		messages = []string{
			"That file doesn't look like a saved game.",
			"Couldn't read a game from that file.",
		}
	case errors.Is(input.Err, game.ErrImportDeclined):
		messages = []string{
			"Import cancelled. Your current game is untouched.",
		}
	case errors.Is(input.Err, game.ErrFilePickerUnsupported):
		messages = []string{
			"Choosing files isn't available here. Pass a file path instead.",
		}
	default:
		tone = ToneNeutral
		messages = []string{
			fmt.Sprintf("Something went wrong: %v", input.Err),
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
