package models

// Team groups players. It owns no players; membership is derived from Player.TeamID.
type Team struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`

	// Score is always the sum of the member scores and is only ever recomputed
	Score int `json:"score"`
}

// Members returns the players that belong to the team, in player order
func (t *Team) Members(players []Player) []Player {
	var members []Player
	for _, p := range players {
		if p.TeamID == t.ID {
			members = append(members, p)
		}
	}
	return members
}
