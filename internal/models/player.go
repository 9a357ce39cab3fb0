package models

// TurnSize is the number of score entries that make up one turn
const TurnSize = 3

// Player represents a participant in a tracked game
type Player struct {
	// ID is stable for the lifetime of the game
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Score may go negative through penalties
	Score int `json:"score"`

	// Turns are the completed turns, oldest first
	Turns []Turn `json:"turns"`

	// CurrentTurnScores holds the entries of the turn in progress (0..3)
	CurrentTurnScores []int `json:"currentTurnScores"`

	// TeamID is a weak reference into GameState.Teams
	TeamID string `json:"teamId,omitempty"`
}

// TurnInProgress reports whether the player has entered part of a turn
func (p *Player) TurnInProgress() bool {
	return len(p.CurrentTurnScores) > 0
}

// TurnReady reports whether the in-progress turn can be completed
func (p *Player) TurnReady() bool {
	return len(p.CurrentTurnScores) == TurnSize
}

// Clone returns a deep copy of the player
func (p Player) Clone() Player {
	out := p
	if p.Turns != nil {
		out.Turns = make([]Turn, len(p.Turns))
		for i := range p.Turns {
			out.Turns[i] = p.Turns[i].Clone()
		}
	}
	if p.CurrentTurnScores != nil {
		out.CurrentTurnScores = append([]int{}, p.CurrentTurnScores...)
	}
	return out
}
